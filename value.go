package jsonschema

import (
	"math"
	"sort"
)

// nodeEqualsValue reports whether the AST node n is deep-equal to a plain
// Go value decoded from a schema document (enum/const members, arrived at
// via encoding/json-ish any: nil, bool, float64, string, []any, map[string]any).
//
// Equality honors JSON semantics: numbers compare by numeric value regardless
// of the IsInteger hint, strings/bools/null compare directly, and arrays and
// objects compare structurally and recursively.
func nodeEqualsValue(n *Node, v any) bool {
	if n == nil {
		return v == nil
	}
	switch n.Kind {
	case KindNull:
		return v == nil
	case KindBoolean:
		b, ok := v.(bool)
		return ok && b == n.BoolValue
	case KindNumber:
		f, ok := toPlainFloat(v)
		return ok && f == n.NumberValue
	case KindString:
		s, ok := v.(string)
		return ok && s == n.StringValue
	case KindArray:
		arr, ok := v.([]any)
		if !ok || len(arr) != len(n.Items) {
			return false
		}
		for i, item := range n.Items {
			if !nodeEqualsValue(item, arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		obj, ok := v.(map[string]any)
		if !ok || len(obj) != len(n.Properties) {
			return false
		}
		for _, p := range n.Properties {
			val, exists := obj[p.Key.StringValue]
			if !exists || !nodeEqualsValue(p.Value, val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// toPlainFloat extracts a float64 from the assortment of numeric
// representations a schema document's enum/const/default values may arrive
// as after JSON decoding.
func toPlainFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case *Rat:
		if n == nil {
			return 0, false
		}
		f, _ := n.Float64()
		return f, true
	default:
		return 0, false
	}
}

// deepEqualValues compares two arbitrary decoded values (used by uniqueItems;
// const/enum compare against AST nodes with nodeEqualsValue instead).
func deepEqualValues(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqualValues(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if bv2, ok := bv[k]; !ok || !deepEqualValues(v, bv2) {
				return false
			}
		}
		return true
	default:
		af, aok := toPlainFloat(a)
		bf, bok := toPlainFloat(b)
		if aok && bok {
			return af == bf
		}
		return false
	}
}

// nodeToValue decodes an AST node into a plain Go value, the representation
// uniqueItems and array-wide comparisons use for deepEqualValues.
func nodeToValue(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindNull:
		return nil
	case KindBoolean:
		return n.BoolValue
	case KindNumber:
		return n.NumberValue
	case KindString:
		return n.StringValue
	case KindArray:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = nodeToValue(item)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(n.Properties))
		for _, p := range n.Properties {
			if p.Key != nil {
				out[p.Key.StringValue] = nodeToValue(p.Value)
			}
		}
		return out
	default:
		return nil
	}
}

// multipleOfRemainder computes |value| mod |divisor| the way JSON Schema's
// multipleOf needs: safe against binary-float drift for values like 0.1/0.1
// that would otherwise leave a nonzero remainder under plain math.Mod.
//
// It shifts both operands by a common power of ten until they are
// (approximately) integers, performs the remainder in that integer domain,
// then scales back down.
func multipleOfRemainder(value, divisor float64) float64 {
	if divisor == 0 {
		return math.NaN()
	}
	value = math.Abs(value)
	divisor = math.Abs(divisor)

	shift := decimalShift(value, divisor)
	if shift == 1 {
		return math.Mod(value, divisor)
	}
	shiftedValue := math.Round(value * shift)
	shiftedDivisor := math.Round(divisor * shift)
	if shiftedDivisor == 0 {
		return math.Mod(value, divisor)
	}
	return math.Mod(shiftedValue, shiftedDivisor) / shift
}

// decimalShift finds a power of ten large enough to make both numbers land
// close to integers, bounded to keep the shifted values within float64's
// exact-integer range.
func decimalShift(values ...float64) float64 {
	shift := 1.0
	for _, v := range values {
		for i := 0; i < 15; i++ {
			scaled := v * shift
			if scaled == math.Trunc(scaled) {
				break
			}
			shift *= 10
		}
	}
	return shift
}

// sortedStrings returns a sorted copy, used for the deterministic
// "unexpected properties" message and known-property-name lists.
func sortedStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
