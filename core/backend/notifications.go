package backend

import (
	"context"

	"github.com/relabs-tech/neurai/core"
	"github.com/relabs-tech/neurai/core/logger"
)

// notify hands a created row to the notifier. A failing notifier does not fail the
// request, the row is already persisted.
func (b *Backend) notify(ctx context.Context, resource string, operation core.Operation, id int64, payload []byte) {
	if b.notifier == nil {
		return
	}
	if err := b.notifier.Notify(ctx, resource, operation, id, payload); err != nil {
		logger.FromContext(ctx).WithError(err).Errorf("Error 4760: cannot notify %s %s %d", operation, resource, id)
	}
}
