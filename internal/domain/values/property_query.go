package values

import (
	"fmt"
	"strconv"
)

// PropertyKind names the second independent property of a state lookup.
type PropertyKind string

const (
	// PropertyTemperature fixes the state by temperature (°C)
	PropertyTemperature PropertyKind = "temperature"
	// PropertyQuality fixes the state by vapor mass fraction
	PropertyQuality PropertyKind = "quality"
	// PropertyEntropy fixes the state by specific entropy (kJ/kg·K)
	PropertyEntropy PropertyKind = "entropy"
)

// PropertyQuery is the property that, together with pressure, fixes a state.
// Exactly one of temperature, quality or entropy is carried.
type PropertyQuery struct {
	kind  PropertyKind
	value float64
}

// ByTemperature builds a query fixed by temperature in °C.
func ByTemperature(t float64) PropertyQuery {
	return PropertyQuery{kind: PropertyTemperature, value: t}
}

// ByQuality builds a query fixed by quality.
func ByQuality(x float64) PropertyQuery {
	return PropertyQuery{kind: PropertyQuality, value: x}
}

// ByEntropy builds a query fixed by specific entropy in kJ/kg·K.
func ByEntropy(s float64) PropertyQuery {
	return PropertyQuery{kind: PropertyEntropy, value: s}
}

// Kind returns which property the query carries.
func (q PropertyQuery) Kind() PropertyKind {
	return q.kind
}

// Value returns the carried property value.
func (q PropertyQuery) Value() float64 {
	return q.value
}

// Validate rejects queries built without a constructor.
func (q PropertyQuery) Validate() error {
	switch q.kind {
	case PropertyTemperature, PropertyQuality, PropertyEntropy:
		return nil
	default:
		return fmt.Errorf("invalid property query kind: %q", q.kind)
	}
}

// String returns e.g. "entropy=5.745".
func (q PropertyQuery) String() string {
	return string(q.kind) + "=" + strconv.FormatFloat(q.value, 'g', -1, 64)
}
