package content

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kerror"
)

type rawSurface struct {
	Name     string  `json:"name" mapstructure:"name"`
	Friction float32 `json:"friction" mapstructure:"friction"`
	Speed    float32 `json:"speed" mapstructure:"speed"`
	Handling float32 `json:"handling" mapstructure:"handling"`
	Offroad  bool    `json:"offroad" mapstructure:"offroad"`
}

type rawBoost struct {
	Name         string  `json:"name" mapstructure:"name"`
	Duration     float32 `json:"duration" mapstructure:"duration"`
	Acceleration float32 `json:"acceleration" mapstructure:"acceleration"`
	MaxSpeed     float32 `json:"maxSpeed" mapstructure:"maxSpeed"`
}

type rawDrift struct {
	SideAcceleration  float32 `json:"sideAcceleration" mapstructure:"sideAcceleration"`
	ForwardFactor     float32 `json:"forwardFactor" mapstructure:"forwardFactor"`
	MaxSteeringOffset float32 `json:"maxSteeringOffset" mapstructure:"maxSteeringOffset"`

	MinSpeed             float32 `json:"minSpeed" mapstructure:"minSpeed"`
	MinSidewaysSpeed     float32 `json:"minSidewaysSpeed" mapstructure:"minSidewaysSpeed"`
	MaxAirTime           float32 `json:"maxAirTime" mapstructure:"maxAirTime"`
	MaxNoSteerTime       float32 `json:"maxNoSteerTime" mapstructure:"maxNoSteerTime"`
	MaxOppositeSteerTime float32 `json:"maxOppositeSteerTime" mapstructure:"maxOppositeSteerTime"`
}

type rawDriftBoost struct {
	Thresholds []float32 `json:"thresholds" mapstructure:"thresholds"`
	Levels     []string  `json:"levels" mapstructure:"levels"`
}

type rawKart struct {
	Name string `json:"name" mapstructure:"name"`

	Acceleration [][]float32 `json:"acceleration" mapstructure:"acceleration"`
	TurningRate  [][]float32 `json:"turningRate" mapstructure:"turningRate"`
	Friction     [][]float32 `json:"friction" mapstructure:"friction"`

	MaxSpeed    float32 `json:"maxSpeed" mapstructure:"maxSpeed"`
	MinThrottle float32 `json:"minThrottle" mapstructure:"minThrottle"`
	Gravity     float32 `json:"gravity" mapstructure:"gravity"`
	Drag        float32 `json:"drag" mapstructure:"drag"`

	RotationCorrection float32 `json:"rotationCorrection" mapstructure:"rotationCorrection"`
	RotationSmoothing  float32 `json:"rotationSmoothing" mapstructure:"rotationSmoothing"`
	MaxTilt            float32 `json:"maxTilt" mapstructure:"maxTilt"`
	GroundDistance     float32 `json:"groundDistance" mapstructure:"groundDistance"`

	SuspensionTravel float32     `json:"suspensionTravel" mapstructure:"suspensionTravel"`
	SuspensionLength float32     `json:"suspensionLength" mapstructure:"suspensionLength"`
	WheelOffsets     [][]float32 `json:"wheelOffsets" mapstructure:"wheelOffsets"`

	CollisionSize   []float32 `json:"collisionSize" mapstructure:"collisionSize"`
	CollisionOffset []float32 `json:"collisionOffset" mapstructure:"collisionOffset"`

	Drift      rawDrift      `json:"drift" mapstructure:"drift"`
	DriftBoost rawDriftBoost `json:"driftBoost" mapstructure:"driftBoost"`
}

type rawLibrary struct {
	Surfaces []rawSurface `json:"surfaces" mapstructure:"surfaces"`
	Boosts   []rawBoost   `json:"boosts" mapstructure:"boosts"`
	Karts    []rawKart    `json:"karts" mapstructure:"karts"`
}

// Load reads the tuning library from kartsim.cfg.json in the given directory.
// Any validation failure is a configuration error and aborts the load; the
// simulation core never re-checks asset references per tick.
func Load(configDir string, log zerolog.Logger) (*Library, error) {
	v := viper.New()
	v.SetConfigName("kartsim.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		return nil, kerror.New("error reading config file: %v", err)
	}

	var raw rawLibrary
	if err := v.Unmarshal(&raw); err != nil {
		return nil, kerror.New("error decoding config file: %v", err)
	}

	lib := NewLibrary()
	for i := range raw.Surfaces {
		s := raw.Surfaces[i]
		if err := lib.AddSurface(&SurfaceDefinition{
			Name:     s.Name,
			Friction: s.Friction,
			Speed:    s.Speed,
			Handling: s.Handling,
			Offroad:  s.Offroad,
		}); err != nil {
			return nil, err
		}
	}
	for i := range raw.Boosts {
		b := raw.Boosts[i]
		if err := lib.AddBoost(&BoostConfig{
			Name:         b.Name,
			Duration:     b.Duration,
			Acceleration: b.Acceleration,
			MaxSpeed:     b.MaxSpeed,
		}); err != nil {
			return nil, err
		}
	}
	for i := range raw.Karts {
		stats, err := convertKart(&raw.Karts[i], lib)
		if err != nil {
			return nil, err
		}
		if err := lib.AddStats(stats); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("surfaces", len(raw.Surfaces)).
		Int("boosts", len(raw.Boosts)).
		Int("karts", len(raw.Karts)).
		Str("dir", configDir).
		Msg("tuning library loaded")
	return lib, nil
}

func convertKart(r *rawKart, lib *Library) (*KartStats, error) {
	stats := &KartStats{
		Name: r.Name,

		MaxSpeed:    r.MaxSpeed,
		MinThrottle: r.MinThrottle,
		Gravity:     r.Gravity,
		Drag:        r.Drag,

		RotationCorrection: r.RotationCorrection,
		RotationSmoothing:  r.RotationSmoothing,
		MaxTilt:            r.MaxTilt,
		GroundDistance:     r.GroundDistance,

		SuspensionTravel: r.SuspensionTravel,
		SuspensionLength: r.SuspensionLength,

		Drift: DriftTuning(r.Drift),
	}

	var err error
	if stats.Acceleration, err = convertCurve(r.Name, "acceleration", r.Acceleration); err != nil {
		return nil, err
	}
	if stats.TurningRate, err = convertCurve(r.Name, "turningRate", r.TurningRate); err != nil {
		return nil, err
	}
	if stats.Friction, err = convertCurve(r.Name, "friction", r.Friction); err != nil {
		return nil, err
	}

	if len(r.WheelOffsets) != game.WheelCount {
		return nil, kerror.New("stats %q: expected %d wheel offsets, got %d", r.Name, game.WheelCount, len(r.WheelOffsets))
	}
	for i, off := range r.WheelOffsets {
		vec, err := convertVec3(r.Name, "wheelOffsets", off)
		if err != nil {
			return nil, err
		}
		stats.WheelOffsets[i] = vec
	}
	if stats.CollisionSize, err = convertVec3(r.Name, "collisionSize", r.CollisionSize); err != nil {
		return nil, err
	}
	if stats.CollisionOffset, err = convertVec3(r.Name, "collisionOffset", r.CollisionOffset); err != nil {
		return nil, err
	}

	stats.DriftBoost.Thresholds = r.DriftBoost.Thresholds
	for _, name := range r.DriftBoost.Levels {
		boost, ok := lib.Boost(name)
		if !ok {
			return nil, kerror.New("stats %q: drift boost references unknown boost %q", r.Name, name)
		}
		stats.DriftBoost.Levels = append(stats.DriftBoost.Levels, boost)
	}
	return stats, nil
}

func convertCurve(stats, field string, pairs [][]float32) (game.Curve, error) {
	points := make([]game.CurvePoint, 0, len(pairs))
	for _, p := range pairs {
		if len(p) != 2 {
			return game.Curve{}, kerror.New("stats %q: %s keyframes must be [in, out] pairs", stats, field)
		}
		points = append(points, game.CurvePoint{In: p[0], Out: p[1]})
	}
	c := game.NewCurve(points...)
	if !c.Valid() {
		return game.Curve{}, kerror.New("stats %q: %s curve requires ascending keyframes", stats, field)
	}
	return c, nil
}

func convertVec3(stats, field string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, kerror.New("stats %q: %s must have 3 components", stats, field)
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
