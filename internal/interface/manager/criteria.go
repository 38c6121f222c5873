package manager

import (
	"reflect"
	"strconv"
	"strings"

	"travelrecords-service/internal/domain/entity"
)

// valuesEqual compares two document values, coercing the numeric
// shapes JSON decoding produces so that 2 and 2.0 are the same value.
func valuesEqual(a, b interface{}) bool {
	if ai, ok := entity.CoerceInt(a); ok {
		bi, ok := entity.CoerceInt(b)
		return ok && ai == bi
	}
	return reflect.DeepEqual(a, b)
}

// criterionInt coerces a search criterion to an integer. Unlike record
// validation, search accepts a numeric string: a user typing "2" into
// an ID criterion means the ID 2.
func criterionInt(value interface{}) (int, bool) {
	if n, ok := entity.CoerceInt(value); ok {
		return n, true
	}
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// matchFields reports whether every criterion matches the record field
// values reached through lookup. String fields match as
// case-insensitive substrings; integer fields require exact equality
// after coercing the criterion, and a coercion failure means no match.
// A criterion naming an unknown field matches nothing.
func matchFields(lookup func(string) (interface{}, bool), criteria entity.Document) bool {
	for key, want := range criteria {
		have, ok := lookup(key)
		if !ok {
			return false
		}
		switch haveValue := have.(type) {
		case string:
			wantString, ok := want.(string)
			if !ok {
				return false
			}
			if !strings.Contains(strings.ToLower(haveValue), strings.ToLower(wantString)) {
				return false
			}
		case int:
			n, ok := criterionInt(want)
			if !ok || n != haveValue {
				return false
			}
		default:
			if !valuesEqual(have, want) {
				return false
			}
		}
	}
	return true
}
