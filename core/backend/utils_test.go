// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

package backend_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/joeshaw/envdecode"

	"github.com/relabs-tech/neurai/core"
	"github.com/relabs-tech/neurai/core/backend"
	"github.com/relabs-tech/neurai/core/client"
	"github.com/relabs-tech/neurai/core/csql"
	"github.com/relabs-tech/neurai/core/store"
)

// TestService holds the configuration for this service
//
// use POSTGRES="host=localhost port=5432 user=postgres dbname=postgres sslmode=disable"
// and POSTGRES_PASSWORD="docker" to run against postgres, otherwise every test
// gets its own sqlite file.
type TestService struct {
	Postgres         string `env:"POSTGRES,optional" description:"the connection string for the Postgres DB without password"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,optional" description:"password to the Postgres DB"`
	Db               *csql.DB
	Router           *mux.Router
	backend          *backend.Backend
	client           client.Client
}

// CreateTestService creates a new service with empty tables for t. The database is
// closed when the test finishes.
func CreateTestService(t *testing.T, notifier core.Notifier) *TestService {
	t.Helper()
	s := TestService{}
	if err := envdecode.Decode(&s); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		t.Fatal(err)
	}

	var err error
	if s.Postgres != "" {
		s.Db, err = csql.OpenWithSchema(s.Postgres, s.PostgresPassword, strings.ToLower("_"+t.Name()+"_"))
	} else {
		s.Db, err = csql.OpenSQLite(filepath.Join(t.TempDir(), "backend.db"))
	}
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Db.Close() })
	if err = s.Db.ClearSchema(store.Tables()...); err != nil {
		t.Fatal(err)
	}

	s.Router = mux.NewRouter()
	s.backend, err = backend.New(&backend.Builder{
		DB:       s.Db,
		Router:   s.Router,
		Notifier: notifier,
	})
	if err != nil {
		t.Fatal(err)
	}
	s.client = client.NewWithRouter(s.Router)
	return &s
}

// notification is one call to recordingNotifier.Notify
type notification struct {
	Resource  string
	Operation core.Operation
	ID        int64
	Payload   []byte
}

// recordingNotifier records all notifications and fails with err, if set
type recordingNotifier struct {
	mutex         sync.Mutex
	notifications []notification
	err           error
}

func (n *recordingNotifier) Notify(ctx context.Context, resource string, operation core.Operation, id int64, payload []byte) error {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.notifications = append(n.notifications, notification{resource, operation, id, payload})
	return n.err
}

func (n *recordingNotifier) all() []notification {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return append([]notification(nil), n.notifications...)
}

// blockingNotifier signals entered on every call and holds the call until release
// is closed
type blockingNotifier struct {
	entered chan struct{}
	release chan struct{}
}

func (n *blockingNotifier) Notify(ctx context.Context, resource string, operation core.Operation, id int64, payload []byte) error {
	n.entered <- struct{}{}
	select {
	case <-n.release:
	case <-ctx.Done():
	}
	return nil
}

// serve sends a raw request through router
func serve(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}
