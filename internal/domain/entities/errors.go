package entities

import (
	"fmt"
	"strconv"
)

// InvalidCycleParametersError indicates pressures that cannot describe a cycle.
type InvalidCycleParametersError struct {
	Field  string
	Reason string
	Value  float64
}

func (e *InvalidCycleParametersError) Error() string {
	return fmt.Sprintf("invalid cycle parameters: %s=%s: %s",
		e.Field, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Reason)
}

// NewInvalidCycleParametersError creates a new invalid parameters error.
func NewInvalidCycleParametersError(field string, value float64, reason string) *InvalidCycleParametersError {
	return &InvalidCycleParametersError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// DegenerateCycleError indicates that efficiency is undefined for the cycle.
type DegenerateCycleError struct {
	Reason    string
	HeatAdded float64
}

func (e *DegenerateCycleError) Error() string {
	return fmt.Sprintf("degenerate cycle: %s", e.Reason)
}

// PropertyOutOfRangeError indicates a steam property lookup outside the tabulated data.
type PropertyOutOfRangeError struct {
	Property string
	Value    float64
	Min      float64
	Max      float64
}

func (e *PropertyOutOfRangeError) Error() string {
	return fmt.Sprintf("%s %s outside tabulated range [%s, %s]",
		e.Property,
		strconv.FormatFloat(e.Value, 'g', -1, 64),
		strconv.FormatFloat(e.Min, 'g', -1, 64),
		strconv.FormatFloat(e.Max, 'g', -1, 64))
}

// InvalidPropertyError indicates a property value that is physically meaningless,
// such as a quality outside [0, 1].
type InvalidPropertyError struct {
	Property string
	Reason   string
	Value    float64
}

func (e *InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s",
		e.Property, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Reason)
}
