package smoothing

import (
	"fmt"
	"strings"
)

// Variant selects the smoothing rule.
type Variant string

const (
	SMA    Variant = "SMA"    // simple moving average
	BSMA   Variant = "BSMA"   // balanced simple moving average
	WMA    Variant = "WMA"    // weighted moving average
	BWMA   Variant = "BWMA"   // balanced weighted moving average
	EMA    Variant = "EMA"    // exponential moving average
	BEMA   Variant = "BEMA"   // balanced exponential moving average
	Slope  Variant = "Slope"  // global linear slope
	BSlope Variant = "BSlope" // edge slopes used by the balanced family
)

// Variants lists every known variant in display order.
func Variants() []Variant {
	return []Variant{SMA, BSMA, WMA, BWMA, EMA, BEMA, Slope, BSlope}
}

// ParseVariant resolves a selector by exact, case-insensitive name.
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	for _, v := range Variants() {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case SMA, BSMA, WMA, BWMA, EMA, BEMA, Slope, BSlope:
		return true
	}
	return false
}

// IsBalanced reports whether v belongs to the centered, edge-extrapolated family.
func (v Variant) IsBalanced() bool {
	switch v {
	case BSMA, BWMA, BEMA, BSlope:
		return true
	}
	return false
}

func (v Variant) String() string { return string(v) }
