// Command kartsim runs a headless simulation instance: it loads the tuning
// library, spawns karts on a demo track and drives the engine at a fixed tick
// rate, logging the state digest so two instances can be compared for
// lockstep divergence.
package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/driftworks/kartsim"
	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/event"
	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
	"github.com/driftworks/kartsim/track"
)

func main() {
	var (
		configDir = flag.String("config", "", "directory containing kartsim.cfg.json (empty: built-in defaults)")
		ticks     = flag.Int("ticks", 30*game.DefaultTickRate, "number of ticks to simulate")
		realtime  = flag.Bool("realtime", false, "pace the loop at the tick rate instead of free-running")
		parallel  = flag.Bool("parallel", false, "fan karts out on the worker pool")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		go mgr.Start()
	}

	stats, surface := loadContent(*configDir, log)

	tr := track.NewFlat(surface)
	tr.AddPatch(track.Patch{
		MinX: 40, MinZ: -20, MaxX: 80, MaxZ: 20,
		Surface: &content.SurfaceDefinition{Name: "grass", Friction: 0.8, Speed: 0.55, Handling: 0.6, Offroad: true},
	})
	tr.AddObstacle(cube.Box(-6, 0, 28, 6, 2, 30))

	engine := kartsim.New(tr, kartsim.Options{
		Parallel: *parallel,
		Log:      log,
		Events: event.SinkFunc(func(ev event.Event) {
			log.Info().Str("kart", ev.Kart()).Type("event", ev).Msg("notification")
		}),
	})

	for i, id := range []string{"player-1", "player-2"} {
		if _, err := engine.Spawn(id, stats, mgl32.Vec3{float32(i) * 3, 0.4, 0}, mgl32.QuatIdent()); err != nil {
			log.Fatal().Err(err).Str("kart", id).Msg("spawn failed")
		}
	}

	interval := time.Duration(float64(engine.TickDelta()) * float64(time.Second))
	for i := 0; i < *ticks; i++ {
		_ = engine.SetInput("player-1", kart.InputState{Throttle: 1, Steering: 0.3, DriftPressed: i == 2*game.DefaultTickRate})
		_ = engine.SetInput("player-2", kart.InputState{Throttle: 0.8})

		engine.Tick()
		if engine.CurrentTick()%game.DefaultTickRate == 0 {
			log.Info().
				Int64("tick", engine.CurrentTick()).
				Str("digest", strconv.FormatUint(engine.StateDigest(), 16)).
				Msg("state digest")
		}
		if *realtime {
			time.Sleep(interval)
		}
	}
}

func loadContent(configDir string, log zerolog.Logger) (*content.KartStats, *content.SurfaceDefinition) {
	if configDir == "" {
		return content.DefaultStats(), content.DefaultSurface()
	}

	lib, err := content.Load(configDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load tuning library")
	}
	names := lib.StatsNames()
	if len(names) == 0 {
		log.Fatal().Msg("tuning library contains no kart stats")
	}
	stats, _ := lib.Stats(names[0])
	surface, ok := lib.Surface("asphalt")
	if !ok {
		surface = content.DefaultSurface()
	}
	return stats, surface
}
