// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

package backend

import (
	"context"
	"errors"

	"github.com/gorilla/mux"
	"github.com/relabs-tech/neurai/core"
	"github.com/relabs-tech/neurai/core/csql"
	"github.com/relabs-tech/neurai/core/logger"
	"github.com/relabs-tech/neurai/core/schema"
	"github.com/relabs-tech/neurai/core/store"
)

// Backend is the rest backend of the research catalogue
type Backend struct {
	store     *store.Store
	router    *mux.Router
	notifier  core.Notifier
	validator *schema.Validator
}

// Builder is a builder helper for the Backend
type Builder struct {
	// DB is a postgres or sqlite database. This is mandatory.
	DB *csql.DB
	// Router is a mux router. This is mandatory.
	Router *mux.Router
	// Notifier receives a notification for every created row. This is optional.
	Notifier core.Notifier
	// Validator validates create payloads. If nil, the embedded payload schemas are used.
	Validator *schema.Validator
}

// New realizes the actual backend. It creates the sql tables (if they
// do not exist) and adds the routes to the router
func New(bb *Builder) (*Backend, error) {
	if bb.DB == nil {
		return nil, errors.New("DB is missing")
	}
	if bb.Router == nil {
		return nil, errors.New("Router is missing")
	}

	validator := bb.Validator
	if validator == nil {
		var err error
		validator, err = schema.NewPayloadValidator()
		if err != nil {
			return nil, err
		}
	}

	b := &Backend{
		store:     store.New(bb.DB),
		router:    bb.Router,
		notifier:  bb.Notifier,
		validator: validator,
	}

	if err := b.store.CreateTables(context.Background()); err != nil {
		return nil, err
	}

	b.handleRecovery()
	logger.AddRequestID(b.router)
	b.handleCORS()
	b.handleCompression()

	b.handleRoutes(b.router)
	return b, nil
}

// handleRoutes adds all routes. Tables are created in dependency order, so are the routes.
func (b *Backend) handleRoutes(router *mux.Router) {
	logger.Default().Debugln("backend: handleRoutes")

	b.handleCategorias(router)
	b.handlePesquisas(router)
	b.handleInterCategoriaPesquisas(router)
	b.handleUsuarios(router)
	b.handleHistorico(router)

	b.handleVersion(router)
	b.handleHealth(router)
	b.handleStatistics(router)
}
