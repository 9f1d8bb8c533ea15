package jsonschema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps math/big.Rat so numeric schema keywords (minimum, maximum,
// multipleOf, ...) keep the exact precision the schema author wrote, even
// when that precision exceeds what float64 can represent. AST instance
// values are always float64 (see ast.go), so comparisons convert the Rat
// down via Float64 rather than converting the instance up.
type Rat struct {
	*big.Rat
}

// UnmarshalJSON implements json.Unmarshaler for Rat.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp any
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}
	r.Rat = converted
	return nil
}

// MarshalJSON implements json.Marshaler for Rat.
func (r *Rat) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(r)
	if strings.Contains(formatted, "/") {
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

func convertToBigRat(data any) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedRatValue
	}

	r := new(big.Rat)
	if _, ok := r.SetString(str); !ok {
		return nil, ErrInvalidRatValue
	}
	return r, nil
}

// NewRat builds a Rat from a Go numeric or numeric-string value, returning
// nil if the value cannot be represented exactly.
func NewRat(value any) *Rat {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{converted}
}

// Float64 converts the Rat to the nearest float64, matching the precision
// the AST's Node.NumberValue carries.
func (r *Rat) Float64() (float64, bool) {
	if r == nil || r.Rat == nil {
		return 0, false
	}
	f, _ := r.Rat.Float64()
	return f, true
}

// FormatRat renders a Rat as an integer, or as a decimal with at most 10
// fractional digits and trailing zeros trimmed, used for diagnostic
// messages ("below exclusive minimum of {min}").
func FormatRat(r *Rat) string {
	if r == nil || r.Rat == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(10)
	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
