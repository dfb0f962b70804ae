// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joeshaw/envdecode"

	"github.com/relabs-tech/neurai/core"
	"github.com/relabs-tech/neurai/core/backend"
	"github.com/relabs-tech/neurai/core/csql"
	"github.com/relabs-tech/neurai/core/logger"
	"github.com/relabs-tech/neurai/core/notify"
)

// Service holds the configuration for this service
//
// use POSTGRES="host=localhost port=5432 user=postgres dbname=postgres sslmode=disable"
// and POSTGRES_PASSWORD="docker", or DATABASE_DRIVER=sqlite for a local file
type Service struct {
	Postgres         string `env:"POSTGRES,optional" description:"the connection string for the Postgres DB without password"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,optional" description:"password to the Postgres DB"`
	DatabaseDriver   string `env:"DATABASE_DRIVER,default=postgres" description:"postgres or sqlite"`
	SQLitePath       string `env:"SQLITE_PATH,default=neurai.db" description:"the sqlite database file, used with DATABASE_DRIVER=sqlite"`
	DatabaseSchema   string `env:"DATABASE_SCHEMA,default=neurai" description:"the postgres schema of all tables"`
	Port             int    `env:"PORT,default=3000" description:"the port to listen on"`
	LogLevel         string `env:"LOG_LEVEL,default=info" description:"the log level: debug, info, warning or error"`
	KafkaBrokers     string `env:"KAFKA_BROKERS,optional" description:"comma separated kafka brokers, enables create notifications"`
	KafkaTopic       string `env:"KAFKA_TOPIC,default=neurai.notifications" description:"the kafka topic for create notifications"`
}

func main() {
	service := &Service{}
	if err := envdecode.Decode(service); err != nil {
		panic(err)
	}
	logger.InitLogger(logger.ParseLevel(service.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, service); err != nil {
		logger.Default().WithError(err).Fatal("neurai stopped")
	}
}

// openDatabase opens the database selected by the service configuration
func openDatabase(service *Service) (*csql.DB, error) {
	switch service.DatabaseDriver {
	case csql.DriverPostgres:
		if service.Postgres == "" {
			return nil, errors.New("POSTGRES is required for the postgres driver")
		}
		return csql.OpenWithSchema(service.Postgres, service.PostgresPassword, service.DatabaseSchema)
	case csql.DriverSQLite:
		return csql.OpenSQLite(service.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DATABASE_DRIVER '%s'", service.DatabaseDriver)
	}
}

// brokers splits the comma separated broker list
func brokers(s string) []string {
	var result []string
	for _, broker := range strings.Split(s, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			result = append(result, broker)
		}
	}
	return result
}

// run serves the backend until ctx is done
func run(ctx context.Context, service *Service) error {
	db, err := openDatabase(service)
	if err != nil {
		return err
	}
	defer db.Close()

	var notifier core.Notifier
	if kafkaBrokers := brokers(service.KafkaBrokers); len(kafkaBrokers) > 0 {
		k := notify.NewKafka(kafkaBrokers, service.KafkaTopic)
		defer k.Close()
		notifier = k
	}

	router := mux.NewRouter()
	if _, err = backend.New(&backend.Builder{
		DB:       db,
		Router:   router,
		Notifier: notifier,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", service.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Default().Infof("listen on port :%d", service.Port)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err = <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Default().Infoln("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
