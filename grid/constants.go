package grid

// MinAxisSize is the smallest legal number of axis samples; a single sample
// has no spacing and is rejected.
const MinAxisSize = 2

// Method tokens used as error context prefixes.
const (
	MethodBuildAxis     = "BuildAxis"
	MethodSymmetricAxis = "SymmetricAxis"
	MethodBuildGrid     = "BuildGrid"
	MethodPoint         = "Point"
)
