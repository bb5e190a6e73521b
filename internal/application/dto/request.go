// Package dto contains data transfer objects for application layer use cases.
package dto

// AnalyzeCycleRequest encapsulates the inputs of a single cycle analysis.
// At most one of THigh and SuperheatRatio is set; neither means a
// saturated-vapor turbine inlet.
type AnalyzeCycleRequest struct {
	THigh          *float64
	SuperheatRatio *float64
	Name           string
	Metadata       RequestMetadata
	PLow           float64
	PHigh          float64
}

// RunStudyRequest encapsulates all inputs needed to run a study file.
type RunStudyRequest struct {
	StudyPath string
	Metadata  RequestMetadata
	Filters   FilterOptions
	Execution ExecutionOptions
	Options   StudyOptions
}

// SweepRequest varies the high pressure over a list at fixed low pressure
// and inlet condition.
type SweepRequest struct {
	THigh          *float64
	SuperheatRatio *float64
	Name           string
	Metadata       RequestMetadata
	PHighs         []float64
	Execution      ExecutionOptions
	PLow           float64
}

// FilterOptions defines filters for cycle selection.
type FilterOptions struct {
	FilterExpression string
	IncludeTags      []string
	IncludeCycleIDs  []string
	ExcludeTags      []string
	ExcludeCycleIDs  []string
}

// ExecutionOptions controls how a batch of cycles is computed.
type ExecutionOptions struct {
	// Parallel enables concurrent computation of cycles
	Parallel bool

	// MaxConcurrent limits concurrent computations (0 = configured default)
	MaxConcurrent int

	// FailFast stops the batch at the first failed cycle
	FailFast bool
}

// StudyOptions contains loader and validation switches.
type StudyOptions struct {
	SkipSchemaValidation bool
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}
