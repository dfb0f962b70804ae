package core

import "context"

// Notifier is an interface to receive database notifications. Notify is called
// after a row has been inserted, payload is the JSON representation of the row.
type Notifier interface {
	Notify(ctx context.Context, resource string, operation Operation, id int64, payload []byte) error
}
