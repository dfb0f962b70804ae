// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

package backend

import (
	"net/http"
	"sort"

	"github.com/goccy/go-json"

	"github.com/gorilla/mux"
	"github.com/relabs-tech/neurai/core/logger"
	"github.com/relabs-tech/neurai/core/store"
)

// tableStatistics represents information about a table
type tableStatistics struct {
	Table string `json:"table"`
	Count int64  `json:"count"`
}

// statisticsDetails represents information about the backend tables
type statisticsDetails struct {
	Tables []tableStatistics `json:"tables"`
}

func (b *Backend) handleStatistics(router *mux.Router) {
	logger.Default().Debugln("statistics")
	logger.Default().Debugln("  handle statistics route: /statistics GET")
	router.HandleFunc("/statistics", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		b.statistics(w, r)
	}).Methods(http.MethodOptions, http.MethodGet)
}

func (b *Backend) statistics(w http.ResponseWriter, r *http.Request) {
	rlog := logger.FromContext(r.Context())

	// sorted, so that the etag does not depend on the creation order
	tables := sort.StringSlice(store.Tables())
	tables.Sort()

	sess, err := b.store.Session(r.Context())
	if err != nil {
		rlog.WithError(err).Errorf("Error 4701: cannot acquire session")
		http.Error(w, "Error 4701", http.StatusInternalServerError)
		return
	}
	defer sess.Close()

	s := statisticsDetails{Tables: []tableStatistics{}}
	for _, table := range tables {
		count, err := sess.Count(r.Context(), table)
		if err != nil {
			rlog.WithError(err).Errorln("Error 4028: count")
			http.Error(w, "Error 4028", http.StatusInternalServerError)
			return
		}
		s.Tables = append(s.Tables, tableStatistics{Table: table, Count: count})
	}

	jsonData, _ := json.Marshal(s)
	etag := bytesToEtag(jsonData)
	w.Header().Set("Etag", etag)
	if ifNoneMatchFound(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(jsonData)
}
