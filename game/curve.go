package game

// CurvePoint is a single keyframe of a tuning curve.
type CurvePoint struct {
	In  float32
	Out float32
}

// Curve is a 1-D piecewise-linear tuning function, typically sampled over
// normalized speed. Evaluation clamps to the first and last keyframes and is
// a single deterministic float32 code path.
type Curve struct {
	points []CurvePoint
}

// NewCurve builds a curve from the given keyframes. Keyframes must be sorted
// by ascending In value; validation happens at content load time.
func NewCurve(points ...CurvePoint) Curve {
	return Curve{points: points}
}

// ConstantCurve returns a curve evaluating to the same value everywhere.
func ConstantCurve(out float32) Curve {
	return Curve{points: []CurvePoint{{In: 0, Out: out}}}
}

// Evaluate samples the curve at the given input.
func (c Curve) Evaluate(in float32) float32 {
	if len(c.points) == 0 {
		return 0
	}
	if in <= c.points[0].In {
		return c.points[0].Out
	}
	last := c.points[len(c.points)-1]
	if in >= last.In {
		return last.Out
	}
	for i := 1; i < len(c.points); i++ {
		if in > c.points[i].In {
			continue
		}
		prev := c.points[i-1]
		next := c.points[i]
		t := (in - prev.In) / (next.In - prev.In)
		return Lerp32(prev.Out, next.Out, t)
	}
	return last.Out
}

// Points returns the curve's keyframes for validation and serialization.
func (c Curve) Points() []CurvePoint {
	return c.points
}

// Valid reports whether the curve has at least one keyframe and strictly
// ascending inputs.
func (c Curve) Valid() bool {
	if len(c.points) == 0 {
		return false
	}
	for i := 1; i < len(c.points); i++ {
		if c.points[i].In <= c.points[i-1].In {
			return false
		}
	}
	return true
}
