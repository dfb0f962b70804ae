package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/gorilla/mux"
	"github.com/relabs-tech/neurai/core/logger"
)

// Health contains the backend's health status
type Health struct {
	Database string `json:"database"`
}

// Health returns the backend's health status. The error is non-nil if the
// database cannot be reached.
func (b *Backend) Health(ctx context.Context) (Health, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := b.store.Ping(ctx); err != nil {
		return Health{Database: "unavailable"}, err
	}
	return Health{Database: "ok"}, nil
}

func (b *Backend) handleHealth(router *mux.Router) {
	logger.Default().Debugln("health")
	logger.Default().Debugln("  handle health route: /health GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		rlog := logger.FromContext(r.Context())
		rlog.Infoln("called route for", r.URL, r.Method)
		status := http.StatusOK
		health, err := b.Health(r.Context())
		if err != nil {
			rlog.WithError(err).Errorln("Error 4790: database unavailable")
			status = http.StatusServiceUnavailable
		}
		jsonData, _ := json.Marshal(health)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		w.Write(jsonData)
	}).Methods(http.MethodOptions, http.MethodGet)
}
