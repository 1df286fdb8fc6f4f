package core

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToFloat coerces an arbitrary value to float64 the way a loosely typed
// chart feed expects: nil and empty strings are 0, booleans are 0/1, numeric
// strings are parsed, anything unparseable is NaN.
func ToFloat(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case decimal.Decimal:
		return x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return 0
		}
		return x.InexactFloat64()
	case json.Number:
		return parseNumber(string(x))
	case string:
		return parseNumber(x)
	case []byte:
		return parseNumber(string(x))
	default:
		return math.NaN()
	}
}

// ToFloats coerces every element of src. The result never aliases src.
func ToFloats(src []any) []float64 {
	if src == nil {
		return nil
	}
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = ToFloat(v)
	}
	return out
}

// ParseFloats coerces a slice of textual values.
func ParseFloats(src []string) []float64 {
	if src == nil {
		return nil
	}
	out := make([]float64, len(src))
	for i, s := range src {
		out[i] = parseNumber(s)
	}
	return out
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// parseRadix reads an unsigned integer literal. Values past 2^53 lose
// precision instead of failing.
func parseRadix(digits string, base int) float64 {
	var v float64
	for _, r := range digits {
		d := digitValue(r)
		if d < 0 || d >= base {
			return math.NaN()
		}
		v = v*float64(base) + float64(d)
	}
	return v
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}
