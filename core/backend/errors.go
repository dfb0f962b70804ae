package backend

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/relabs-tech/neurai/core/logger"
	"github.com/relabs-tech/neurai/core/schema"
)

// clientError is the body of all 4xx responses
type clientError struct {
	Error   string              `json:"error"`
	Details []schema.FieldError `json:"details,omitempty"`
}

// writeClientError answers a request the client got wrong
func writeClientError(w http.ResponseWriter, r *http.Request, status int, message string, details []schema.FieldError) {
	logger.FromContext(r.Context()).Infof("client error %d: %s", status, message)
	jsonData, _ := json.MarshalWithOption(clientError{Error: message, Details: details}, json.DisableHTMLEscape())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(jsonData)
}

// logStorageError adds the postgres error code and constraint, if any, to the log entry
func logStorageError(rlog *logrus.Entry, err error) *logrus.Entry {
	rlog = rlog.WithError(err)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		rlog = rlog.WithFields(logrus.Fields{
			"pq_code":       string(pqErr.Code),
			"pq_constraint": pqErr.Constraint,
		})
	}
	return rlog
}
