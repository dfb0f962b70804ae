package backend

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/relabs-tech/neurai/core/logger"
)

func (b *Backend) handleCompression() {
	b.router.Use(func(h http.Handler) http.Handler {
		return handlers.CompressHandler(h)
	})
}

// recoveryLogger sends recovered panics to the request logger
type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Default().Errorln(v...)
}

// handleRecovery turns panics in handlers into 500 responses
func (b *Backend) handleRecovery() {
	b.router.Use(handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	))
}
