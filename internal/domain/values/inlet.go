package values

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type inletKind int

const (
	inletSaturated inletKind = iota
	inletSuperheated
)

// InletCondition describes how the turbine inlet state is fixed.
// It is either Saturated (saturated vapor at the high pressure) or
// Superheated at an explicit temperature. The zero value is Saturated.
type InletCondition struct {
	kind        inletKind
	temperature float64
}

// inletDocument is the serialized form shared by JSON and YAML.
type inletDocument struct {
	Mode        string   `json:"mode" yaml:"mode"`
	Temperature *float64 `json:"temperature_c,omitempty" yaml:"temperature_c,omitempty"`
}

// Saturated returns an inlet fixed by quality x = 1 at the high pressure.
func Saturated() InletCondition {
	return InletCondition{kind: inletSaturated}
}

// Superheated returns an inlet fixed by temperature (°C) at the high pressure.
func Superheated(temperature float64) InletCondition {
	return InletCondition{kind: inletSuperheated, temperature: temperature}
}

// InletFromOptional maps an optional temperature onto an inlet condition.
func InletFromOptional(temperature *float64) InletCondition {
	if temperature == nil {
		return Saturated()
	}
	return Superheated(*temperature)
}

// IsSaturated reports whether the inlet is saturated vapor.
func (i InletCondition) IsSaturated() bool {
	return i.kind == inletSaturated
}

// Temperature returns the inlet temperature and whether one was given.
func (i InletCondition) Temperature() (float64, bool) {
	if i.kind != inletSuperheated {
		return 0, false
	}
	return i.temperature, true
}

// Validate rejects non-finite temperatures.
func (i InletCondition) Validate() error {
	if i.kind == inletSuperheated && (math.IsNaN(i.temperature) || math.IsInf(i.temperature, 0)) {
		return fmt.Errorf("inlet temperature must be finite")
	}
	return nil
}

// Equals checks if two inlet conditions are equal
func (i InletCondition) Equals(other InletCondition) bool {
	return i.kind == other.kind && i.temperature == other.temperature
}

// String returns a compact representation, also used in cache keys.
func (i InletCondition) String() string {
	if i.kind == inletSuperheated {
		return "T=" + strconv.FormatFloat(i.temperature, 'g', -1, 64)
	}
	return "x=1"
}

func (i InletCondition) document() inletDocument {
	if t, ok := i.Temperature(); ok {
		return inletDocument{Mode: "superheated", Temperature: &t}
	}
	return inletDocument{Mode: "saturated"}
}

// MarshalJSON implements json.Marshaler
func (i InletCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.document())
}

// UnmarshalJSON implements json.Unmarshaler
func (i *InletCondition) UnmarshalJSON(data []byte) error {
	var doc inletDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid inlet condition JSON: %w", err)
	}

	switch doc.Mode {
	case "saturated", "":
		*i = Saturated()
	case "superheated":
		if doc.Temperature == nil {
			return fmt.Errorf("superheated inlet requires temperature_c")
		}
		*i = Superheated(*doc.Temperature)
	default:
		return fmt.Errorf("invalid inlet mode: %s", doc.Mode)
	}
	return nil
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler.
func (i InletCondition) MarshalYAML() (interface{}, error) {
	return i.document(), nil
}
