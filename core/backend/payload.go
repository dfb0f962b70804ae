package backend

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/relabs-tech/neurai/core/schema"
)

// normalizeIntegers rewrites whole numbers written with a fraction or an exponent,
// like 1.0 or 2e3, into plain integer literals. JSON schema accepts them as
// integers, the decoder into int64 does not. Whole numbers outside the int64 range
// are reported per field. body must be a valid JSON document; anything but an
// object is returned unchanged.
func normalizeIntegers(body []byte) ([]byte, []schema.FieldError, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(body, &object); err != nil {
		return body, nil, nil
	}

	var details []schema.FieldError
	changed := false
	for key, raw := range object {
		if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
			continue
		}
		literal := string(raw)
		if _, err := strconv.ParseInt(literal, 10, 64); err == nil {
			continue
		}
		value, ok := new(big.Rat).SetString(literal)
		if !ok || !value.IsInt() {
			continue
		}
		if !value.Num().IsInt64() {
			details = append(details, schema.FieldError{
				Field:   key,
				Type:    "integer_range",
				Message: fmt.Sprintf("%s: %s does not fit into a 64 bit integer", key, literal),
			})
			continue
		}
		object[key] = json.RawMessage(strconv.FormatInt(value.Num().Int64(), 10))
		changed = true
	}

	if len(details) > 0 {
		sort.Slice(details, func(i, j int) bool { return details[i].Field < details[j].Field })
		return nil, details, nil
	}
	if !changed {
		return body, nil, nil
	}
	normalized, err := json.Marshal(object)
	if err != nil {
		return nil, nil, err
	}
	return normalized, nil, nil
}
