package translator

import "strconv"

// Ordered-alias lookup helpers. Several canonical fields appear under
// different key names depending on the upstream API version, so extraction
// tries a fixed ordered list of keys and takes the first present value. The
// alias lists in listing_normalizer.go are the only place upstream schema
// knowledge lives; a new upstream variant is a one-line addition there.

// firstString returns the first alias present in the record whose value
// coerces to a non-empty string.
func firstString(record map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := record[key]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstNumber returns the first alias present in the record whose value
// coerces to a number.
func firstNumber(record map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := record[key]; ok {
			if n, ok := asNumber(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// subMap returns the first alias present in the record whose value is an
// object, or nil.
func subMap(record map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if m, ok := record[key].(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

// asString coerces a loosely-typed JSON value to a display string. Numbers
// are rendered without a trailing ".0" so a json 3.0 reads as "3".
func asString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

// asNumber coerces a loosely-typed JSON value to a number. The upstream has
// been seen returning prices as numbers, numeric strings, and one-element
// arrays, so all three shapes are accepted.
func asNumber(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			return n, true
		}
	case []interface{}:
		if len(val) > 0 {
			return asNumber(val[0])
		}
	}
	return 0, false
}
