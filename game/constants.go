package game

const (
	// WheelCount is fixed for every kart; the surface averaging arithmetic
	// depends on it and must not change.
	WheelCount = 4

	SteeringDeadzone = float32(0.05)

	// ObstacleGroundDot is the cutoff for treating an overlap contact as
	// ground rather than an obstacle (contact normal dotted with world down).
	ObstacleGroundDot = float32(0.5)

	// CollisionDampingFactor scales the dot-squared horizontal velocity
	// damping applied per surviving contact.
	CollisionDampingFactor = float32(0.5)

	GroundedGravityMultiplier = float32(0.1)
	AirborneDragMultiplier    = float32(0.1)

	// SpeedClampStep is the fixed per-tick step used to move velocity toward
	// the speed cap. Exceeding the cap decays gradually rather than snapping.
	SpeedClampStep = float32(0.5)

	// DriftChargeDecay is the per-second decay rate of the drift boost
	// visual charge scalar.
	DriftChargeDecay = float32(2.0)

	DefaultTickRate = 60
)

// DefaultTickDelta is the fixed tick duration in seconds. Every timer and
// force in the core is integrated against this value.
const DefaultTickDelta = float32(1) / DefaultTickRate
