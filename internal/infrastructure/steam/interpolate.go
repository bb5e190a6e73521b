package steam

import (
	"math"
	"sort"

	"github.com/rankine-dev/rankine/internal/domain/entities"
)

// lerp interpolates linearly between (x0, y0) and (x1, y1).
func lerp(x, x0, y0, x1, y1 float64) float64 {
	if x0 == x1 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

func fraction(x, x0, x1 float64) float64 {
	if x0 == x1 {
		return 0
	}
	return (x - x0) / (x1 - x0)
}

func blendSaturation(a, b saturationRow, f float64) saturationRow {
	mix := func(x, y float64) float64 { return x + f*(y-x) }
	return saturationRow{
		P:  mix(a.P, b.P),
		T:  mix(a.T, b.T),
		Vf: mix(a.Vf, b.Vf),
		Vg: mix(a.Vg, b.Vg),
		Hf: mix(a.Hf, b.Hf),
		Hg: mix(a.Hg, b.Hg),
		Sf: mix(a.Sf, b.Sf),
		Sg: mix(a.Sg, b.Sg),
	}
}

func blendSuperheated(a, b superheatedRow, f float64) superheatedRow {
	mix := func(x, y float64) float64 { return x + f*(y-x) }
	return superheatedRow{
		T: mix(a.T, b.T),
		V: mix(a.V, b.V),
		H: mix(a.H, b.H),
		S: mix(a.S, b.S),
	}
}

// saturationBy interpolates the saturation table on a monotonically
// increasing column. Rows are returned exactly when x hits one.
func saturationBy(x float64, key func(saturationRow) float64, property string) (saturationRow, error) {
	n := len(saturationTable)
	lo, hi := key(saturationTable[0]), key(saturationTable[n-1])
	if math.IsNaN(x) || x < lo || x > hi {
		return saturationRow{}, outOfRange(property, x, lo, hi)
	}

	i := sort.Search(n, func(i int) bool { return key(saturationTable[i]) >= x })
	if key(saturationTable[i]) == x {
		return saturationTable[i], nil
	}
	a, b := saturationTable[i-1], saturationTable[i]
	return blendSaturation(a, b, fraction(x, key(a), key(b))), nil
}

// blockBy interpolates one superheated block on an increasing column.
// Values below the first row are extrapolated from the first two rows;
// values above the last row are rejected.
func blockBy(rows []superheatedRow, x float64, key func(superheatedRow) float64) (superheatedRow, bool) {
	n := len(rows)
	if math.IsNaN(x) || x > key(rows[n-1]) {
		return superheatedRow{}, false
	}
	if x < key(rows[0]) {
		return blendSuperheated(rows[0], rows[1], fraction(x, key(rows[0]), key(rows[1]))), true
	}

	i := sort.Search(n, func(i int) bool { return key(rows[i]) >= x })
	if key(rows[i]) == x {
		return rows[i], true
	}
	a, b := rows[i-1], rows[i]
	return blendSuperheated(a, b, fraction(x, key(a), key(b))), true
}

// superheatedBy interpolates within the blocks bracketing p, then linearly
// in pressure. Specific volume is interpolated as p·v.
func superheatedBy(p, x float64, key func(superheatedRow) float64, property string) (superheatedRow, error) {
	n := len(superheatedTable)
	pMin, pMax := superheatedTable[0].P, superheatedTable[n-1].P
	if math.IsNaN(p) || p < pMin || p > pMax {
		return superheatedRow{}, outOfRange("superheated pressure", p, pMin, pMax)
	}

	lookup := func(b superheatedBlock) (superheatedRow, error) {
		row, ok := blockBy(b.Rows, x, key)
		if !ok {
			return superheatedRow{}, outOfRange(property, x, key(b.Rows[0]), key(b.Rows[len(b.Rows)-1]))
		}
		return row, nil
	}

	i := sort.Search(n, func(i int) bool { return superheatedTable[i].P >= p })
	if superheatedTable[i].P == p {
		return lookup(superheatedTable[i])
	}

	lo, hi := superheatedTable[i-1], superheatedTable[i]
	a, err := lookup(lo)
	if err != nil {
		return superheatedRow{}, err
	}
	b, err := lookup(hi)
	if err != nil {
		return superheatedRow{}, err
	}

	row := blendSuperheated(a, b, fraction(p, lo.P, hi.P))
	row.V = lerp(p, lo.P, lo.P*a.V, hi.P, hi.P*b.V) / p
	return row, nil
}

func outOfRange(property string, value, lo, hi float64) error {
	return &entities.PropertyOutOfRangeError{
		Property: property,
		Value:    value,
		Min:      lo,
		Max:      hi,
	}
}

func byPressure(r saturationRow) float64      { return r.P }
func byTemperature(r saturationRow) float64   { return r.T }
func byLiquidEntropy(r saturationRow) float64 { return r.Sf }
func rowTemperature(r superheatedRow) float64 { return r.T }
func rowEntropy(r superheatedRow) float64     { return r.S }
