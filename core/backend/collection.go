// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/gorilla/mux"
	"github.com/relabs-tech/neurai/core"
	"github.com/relabs-tech/neurai/core/logger"
	"github.com/relabs-tech/neurai/core/schema"
	"github.com/relabs-tech/neurai/core/store"
)

// maxBodySize limits the size of create payloads
const maxBodySize = 1 << 20

// resourceConfiguration describes one resource with a create and a list route. P is
// the create payload, T the persisted entity.
type resourceConfiguration[P any, T any] struct {
	resource    string
	schemaID    string
	fromPayload func(P) T
	create      func(*store.Session, context.Context, T) (T, error)
	list        func(*store.Session, context.Context, store.Page) ([]T, error)
	id          func(T) int64
}

// createResource adds the create and list routes for rc. Both /<resource> and
// /<resource>/ are served.
func createResource[P any, T any](b *Backend, router *mux.Router, rc resourceConfiguration[P, T]) {
	resource := rc.resource
	collectionRoute := "/" + resource

	logger.Default().Debugln("resource", resource)
	logger.Default().Debugln("  handle collection routes:", collectionRoute, "GET,POST")

	list := func(w http.ResponseWriter, r *http.Request) {
		rlog := logger.FromContext(r.Context())

		page, err := parsePage(r)
		if err != nil {
			writeClientError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}

		sess, err := b.store.Session(r.Context())
		if err != nil {
			rlog.WithError(err).Errorf("Error 4701: cannot acquire session")
			http.Error(w, "Error 4701", http.StatusInternalServerError)
			return
		}
		defer sess.Close()

		rows, err := rc.list(sess, r.Context(), page)
		if err != nil {
			logStorageError(rlog, err).Errorf("Error 4722: cannot list %s", resource)
			http.Error(w, "Error 4722", http.StatusInternalServerError)
			return
		}

		jsonData, _ := json.MarshalWithOption(rows, json.DisableHTMLEscape())
		etag := bytesToEtag(jsonData)
		w.Header().Set("Etag", etag)
		w.Header().Set("Pagination-Skip", strconv.Itoa(page.Skip))
		w.Header().Set("Pagination-Limit", strconv.Itoa(page.Limit))
		if ifNoneMatchFound(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(jsonData)
	}

	create := func(w http.ResponseWriter, r *http.Request) {
		rlog := logger.FromContext(r.Context())

		if r.Body == nil {
			r.Body = http.NoBody
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			writeClientError(w, r, http.StatusBadRequest, "cannot read body: "+err.Error(), nil)
			return
		}
		if !json.Valid(body) {
			writeClientError(w, r, http.StatusBadRequest, "invalid json", nil)
			return
		}

		if err = b.validator.ValidateBytes(body, rc.schemaID); err != nil {
			var verr *schema.ValidationError
			if errors.As(err, &verr) {
				writeClientError(w, r, http.StatusUnprocessableEntity, "invalid "+resource+" payload", verr.Details)
				return
			}
			rlog.WithError(err).Errorf("Error 4702: cannot validate %s", resource)
			http.Error(w, "Error 4702", http.StatusInternalServerError)
			return
		}

		body, details, err := normalizeIntegers(body)
		if err != nil {
			rlog.WithError(err).Errorf("Error 4703: cannot normalize %s payload", resource)
			http.Error(w, "Error 4703", http.StatusInternalServerError)
			return
		}
		if len(details) > 0 {
			writeClientError(w, r, http.StatusUnprocessableEntity, "invalid "+resource+" payload", details)
			return
		}

		var payload P
		if err = json.Unmarshal(body, &payload); err != nil {
			writeClientError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}

		// the session is released before notifying, a slow broker must not hold
		// the connection
		persist := func() (created T, code string, err error) {
			sess, err := b.store.Session(r.Context())
			if err != nil {
				rlog.WithError(err).Errorf("Error 4701: cannot acquire session")
				return created, "Error 4701", err
			}
			defer sess.Close()

			created, err = rc.create(sess, r.Context(), rc.fromPayload(payload))
			if err != nil {
				logStorageError(rlog, err).Errorf("Error 4721: cannot create %s", resource)
				return created, "Error 4721", err
			}
			return created, "", nil
		}
		created, code, err := persist()
		if err != nil {
			http.Error(w, code, http.StatusInternalServerError)
			return
		}

		jsonData, _ := json.MarshalWithOption(created, json.DisableHTMLEscape())
		b.notify(r.Context(), resource, core.OperationCreate, rc.id(created), jsonData)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		w.Write(jsonData)
	}

	for _, route := range []string{collectionRoute, collectionRoute + "/"} {
		router.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
			logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
			list(w, r)
		}).Methods(http.MethodOptions, http.MethodGet)

		router.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
			logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
			create(w, r)
		}).Methods(http.MethodOptions, http.MethodPost)
	}
}
