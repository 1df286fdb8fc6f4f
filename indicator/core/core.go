package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

func copySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

// CopySlice exposes the defensive copy helper to other packages.
func CopySlice(src []float64) []float64 {
	return copySlice(src)
}

// Reversed returns a reversed copy of src. src itself is left untouched.
func Reversed(src []float64) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[len(src)-1-i] = v
	}
	return dst
}

// ClampInt restricts value to [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

/* -------------------------------------------------------------------------
   Series – the output sequence handed to consumers
--------------------------------------------------------------------------*/

// Series is an ordered output sequence indexed like its input.
//
// Valid is the gap mask: Valid[i] == false marks a placeholder with no value.
// A nil mask means every position carries a value (NaN included).
type Series struct {
	Values []float64
	Valid  []bool
}

// NewSeries wraps values in a Series without gaps.
func NewSeries(values []float64) Series {
	if values == nil {
		values = []float64{}
	}
	return Series{Values: values}
}

// NewGappedSeries wraps values with an explicit gap mask. Both slices must
// have the same length.
func NewGappedSeries(values []float64, valid []bool) Series {
	if len(values) != len(valid) {
		panic(fmt.Sprintf("gap mask length %d does not match %d values", len(valid), len(values)))
	}
	return Series{Values: values, Valid: valid}
}

// Len returns the number of positions, gaps included.
func (s Series) Len() int { return len(s.Values) }

// At returns the value at i and whether the position is populated.
func (s Series) At(i int) (float64, bool) {
	if s.Valid != nil && !s.Valid[i] {
		return math.NaN(), false
	}
	return s.Values[i], true
}

// IsGap reports whether position i is a placeholder.
func (s Series) IsGap(i int) bool {
	return s.Valid != nil && !s.Valid[i]
}

// Gaps counts the placeholder positions.
func (s Series) Gaps() int {
	n := 0
	for _, ok := range s.Valid {
		if !ok {
			n++
		}
	}
	return n
}

// Floats returns a copy of the values with gaps turned into NaN, the form a
// renderer that breaks paths on NaN expects.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s.Values))
	for i := range s.Values {
		out[i], _ = s.At(i)
	}
	return out
}

// MarshalJSON encodes the series as a flat array. Gaps and non-finite values
// become null since JSON has no NaN.
func (s Series) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range s.Values {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s.cell(i, "null"))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// cell renders position i, using empty for gaps and non-finite values.
func (s Series) cell(i int, empty string) string {
	v, ok := s.At(i)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return empty
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

/* -------------------------------------------------------------------------
   Plotting utilities
--------------------------------------------------------------------------*/

// PlotData holds one named series ready for an external renderer.
type PlotData struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    Series    `json:"y"`
	Type string    `json:"type,omitempty"`
}

// NewPlotData builds a line PlotData with X = 0..len(y)-1.
func NewPlotData(name string, y Series) PlotData {
	x := make([]float64, y.Len())
	for i := range x {
		x[i] = float64(i)
	}
	return PlotData{Name: name, X: x, Y: y, Type: "line"}
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != d.Y.Len() {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), d.Y.Len())
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

// FormatPlotDataCSV writes one row per point. Gaps and NaN leave Y empty.
func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("Name,X,Y,Type\n")
	for _, d := range data {
		if len(d.X) != d.Y.Len() {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), d.Y.Len())
		}
		for i := 0; i < len(d.X); i++ {
			fmt.Fprintf(&sb, "%s,%g,%s,%s\n",
				d.Name, d.X[i], d.Y.cell(i, ""), d.Type)
		}
	}
	return sb.String(), nil
}
