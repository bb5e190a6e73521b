// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// AnalysisID uniquely identifies one cycle computation.
// A recomputation of the same cycle gets a new ID.
type AnalysisID struct {
	value uuid.UUID
}

// NewAnalysisID creates a new random analysis ID
func NewAnalysisID() AnalysisID {
	return AnalysisID{value: uuid.New()}
}

// ParseAnalysisID parses a string into an AnalysisID
func ParseAnalysisID(s string) (AnalysisID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AnalysisID{}, fmt.Errorf("invalid analysis ID: %w", err)
	}
	return AnalysisID{value: id}, nil
}

// MustParseAnalysisID parses a string or panics (for tests only)
func MustParseAnalysisID(s string) AnalysisID {
	id, err := ParseAnalysisID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (a AnalysisID) String() string {
	return a.value.String()
}

// UUID returns the underlying uuid.UUID
func (a AnalysisID) UUID() uuid.UUID {
	return a.value
}

// IsZero returns true if this is the zero value
func (a AnalysisID) IsZero() bool {
	return a.value == uuid.Nil
}

// Equals checks if two AnalysisIDs are equal
func (a AnalysisID) Equals(other AnalysisID) bool {
	return a.value == other.value
}

// MarshalJSON implements json.Marshaler
func (a AnalysisID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.value.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (a *AnalysisID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid analysis ID JSON")
	}
	s = s[1 : len(s)-1]

	id, err := ParseAnalysisID(s)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// MarshalYAML renders the ID as a plain string.
func (a AnalysisID) MarshalYAML() (interface{}, error) {
	return a.value.String(), nil
}
