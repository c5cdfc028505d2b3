package string

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
)

// MaxSafeInteger is the largest integer a JavaScript number holds exactly.
const MaxSafeInteger = 1<<53 - 1

var (
	maxSafeInteger = big.NewInt(MaxSafeInteger)

	jsonBigIntRe       = regexp.MustCompile(`(:\s*)(9[0-9]{15,}|[0-9]{17,})([,\]\}]*)`)
	jsonStringBigIntRe = regexp.MustCompile(`(:\s*)"(9[0-9]{15,}|[0-9]{17,})"([\s,\]\}]*)`)
)

// BigIntToString returns val formatted as a string when it is a number whose
// magnitude exceeds [MaxSafeInteger]. Any other value is returned unchanged.
func BigIntToString(val any) any {
	switch v := val.(type) {
	case int:
		if n := int64(v); n > MaxSafeInteger || n < -MaxSafeInteger {
			return strconv.Itoa(v)
		}
	case int64:
		if v > MaxSafeInteger || v < -MaxSafeInteger {
			return strconv.FormatInt(v, 10)
		}
	case uint:
		if uint64(v) > MaxSafeInteger {
			return strconv.FormatUint(uint64(v), 10)
		}
	case uint64:
		if v > MaxSafeInteger {
			return strconv.FormatUint(v, 10)
		}
	case float64:
		if math.Abs(v) > MaxSafeInteger {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	case *big.Int:
		if v != nil && v.CmpAbs(maxSafeInteger) > 0 {
			return v.String()
		}
	}
	return val
}

// BigIntsToString walks maps and slices and applies [BigIntToString] to every
// leaf. Maps of type map[string]any and slices of type []any are updated in
// place and returned.
func BigIntsToString(val any) any {
	switch v := val.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = BigIntsToString(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = BigIntsToString(item)
		}
		return v
	default:
		return BigIntToString(val)
	}
}

// JSONBigIntToString quotes integer values in the JSON document s that are at
// least 9000000000000000 so JavaScript clients do not lose precision.
//
//	JSONBigIntToString(`{"k": 9000000000000000}`) // {"k": "9000000000000000"}
func JSONBigIntToString(s string) string {
	return jsonBigIntRe.ReplaceAllString(s, `${1}"${2}"${3}`)
}

// JSONBigIntFromString reverses [JSONBigIntToString].
func JSONBigIntFromString(s string) string {
	return jsonStringBigIntRe.ReplaceAllString(s, `${1}${2}${3}`)
}
