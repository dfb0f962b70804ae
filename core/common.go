package core

import (
	"encoding/json"
	"fmt"
)

// Operation represents a backend storage operation that is announced to a Notifier.
// Lists are not announced, so create is the only one.
type Operation string

// all announced database operations
const (
	OperationCreate Operation = "create"
)

// UnmarshalJSON is a custom JSON unmarshaller
func (o *Operation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = Operation(s)
	switch *o {
	case OperationCreate:
		return nil
	default:
		return fmt.Errorf("%s is not valid Operation", s)
	}
}
