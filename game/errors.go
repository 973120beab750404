package game

const (
	ErrorStatsMissing         = "Error: Kart stats reference is required to spawn."
	ErrorStatsInvalid         = "Error: Kart stats failed validation: %v"
	ErrorTrackMissing         = "Error: Simulator requires a track provider."
	ErrorDuplicateKart        = "Error: A kart with id %q is already registered."
	ErrorUnknownKart          = "Error: No kart with id %q is registered."
	ErrorTickDeltaNonPositive = "Error: Tick delta must be positive, got %v."
)
