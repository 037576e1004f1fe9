package wave

// PhaseFactor is the angular multiplier applied to i·dt in the temporal factor
// cos(PhaseFactor·i·dt). It is 2 radians per time unit, not 2π.
const PhaseFactor = 2.0

// Method tokens used as error context prefixes.
const (
	MethodStepCount    = "StepCount"
	MethodEvaluate     = "Evaluate"
	MethodEvaluateGrid = "EvaluateGrid"
	MethodNewVolume    = "NewVolume"
	MethodSelectFrames = "SelectFrames"
	MethodNewStream    = "NewStream"
	MethodStreamFrames = "Stream.Frames"
	MethodParams       = "Params.Validate"
)
