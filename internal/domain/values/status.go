package values

import (
	"fmt"
)

// Status is the outcome of analysing one cycle.
type Status string

const (
	// StatusOK indicates the cycle was computed with an efficiency in (0, 100)
	StatusOK Status = "ok"
	// StatusNonPhysical indicates the cycle was computed but the efficiency is out of band
	StatusNonPhysical Status = "non-physical"
	// StatusError indicates the computation failed
	StatusError Status = "error"
	// StatusSkipped indicates the cycle was filtered out or never started
	StatusSkipped Status = "skipped"
)

// Precedence returns the numeric precedence of this status.
// Higher values win when statuses are aggregated.
//
// Precedence: Error (3) > NonPhysical (2) > Skipped (1) > OK (0)
func (s Status) Precedence() int {
	switch s {
	case StatusError:
		return 3
	case StatusNonPhysical:
		return 2
	case StatusSkipped:
		return 1
	case StatusOK:
		return 0
	default:
		return -1
	}
}

// IsFailure returns true if the computation failed
func (s Status) IsFailure() bool {
	return s == StatusError
}

// IsSuccess returns true if a result was produced
func (s Status) IsSuccess() bool {
	return s == StatusOK || s == StatusNonPhysical
}

// IsSkipped returns true if this status represents a skip
func (s Status) IsSkipped() bool {
	return s == StatusSkipped
}

// Validate returns an error if the status value is invalid
func (s Status) Validate() error {
	switch s {
	case StatusOK, StatusNonPhysical, StatusError, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}
