package validation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("invalid id")

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// ValidPin reports whether pin is exactly four digits.
func ValidPin(pin string) bool {
	return pinPattern.MatchString(pin)
}

// ParseID coerces a JSON id value to an integer. Clients send ids back
// the way they received them, so both numbers and numeric strings are
// accepted; anything else is a validation failure, never a silent zero.
func ParseID(value any) (int64, error) {
	switch v := value.(type) {
	case float64:
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, ErrInvalidID
		}
		return id, nil
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, ErrInvalidID
		}
		return id, nil
	default:
		return 0, ErrInvalidID
	}
}

// truthyCompleted is the single coercion rule for the completed flag:
// true, 1 and "1" mean true, everything else (including absent and
// null) means false. Shared by the create and update paths.
func truthyCompleted(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case string:
		return v == "1"
	default:
		return false
	}
}

// trimOrNil trims an optional string and collapses whitespace-only
// values to nil, the storage representation of "absent".
func trimOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
