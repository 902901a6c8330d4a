// Command journal-server runs the journal editorial workflow HTTP API:
// manuscript submission, referee assignment, state-machine transitions,
// text pages, comments, and the person/masthead registry, all backed by
// CouchDB.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"journal.dev/editorial/api"
	"journal.dev/editorial/auth"
	"journal.dev/editorial/comments"
	"journal.dev/editorial/common"
	"journal.dev/editorial/config"
	"journal.dev/editorial/db"
	commonhttp "journal.dev/editorial/http"
	"journal.dev/editorial/manuscripts"
	"journal.dev/editorial/people"
	"journal.dev/editorial/text"
)

const serviceName = "journal-editorial"

func main() {
	serverCfg := config.LoadServerConfig()

	logCfg := common.DefaultLoggerConfig()
	if serverCfg.Debug {
		logCfg.Level = common.LogLevelDebug
		logCfg.Format = "text"
	}
	base := common.NewLogger(logCfg)
	log := logrus.NewEntry(base).WithFields(logrus.Fields{
		"service": serviceName,
		"version": common.ServiceVersion,
	})

	storeCfg, err := config.LoadStoreConfig()
	if err != nil {
		log.WithError(err).Fatal("load store configuration")
	}

	store, err := db.NewStore(db.Config{URL: storeCfg.URL})
	if err != nil {
		log.WithError(err).Fatal("connect to document store")
	}
	defer store.Close()

	ctx := context.Background()

	peopleDocs, err := store.Collection(ctx, "people")
	if err != nil {
		log.WithError(err).Fatal("open people collection")
	}
	manuscriptDocs, err := store.Collection(ctx, "manuscripts")
	if err != nil {
		log.WithError(err).Fatal("open manuscripts collection")
	}
	textDocs, err := store.Collection(ctx, "texts")
	if err != nil {
		log.WithError(err).Fatal("open texts collection")
	}
	commentDocs, err := store.Collection(ctx, "comments")
	if err != nil {
		log.WithError(err).Fatal("open comments collection")
	}

	peopleStore := people.NewStore(peopleDocs, log)
	manuscriptStore := manuscripts.NewStore(manuscriptDocs)
	executor := manuscripts.NewExecutor(manuscriptStore, log)
	textStore := text.NewStore(textDocs)
	commentStore := comments.NewStore(commentDocs)
	authenticator := auth.NewAuthenticator(peopleStore, storeCfg.BcryptCost)

	e := commonhttp.NewEchoServer(commonhttp.ServerConfig{
		Port:            serverCfg.Port,
		Debug:           serverCfg.Debug,
		BodyLimit:       "10M",
		ReadTimeout:     serverCfg.ReadTimeout,
		WriteTimeout:    serverCfg.WriteTimeout,
		ShutdownTimeout: serverCfg.ShutdownTimeout,
		AllowedOrigins:  []string{"*"},
	})
	e.Use(commonhttp.SecurityHeadersMiddleware())
	e.Use(commonhttp.JSONContentTypeMiddleware())
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	api.RegisterRoutes(e, &api.Deps{
		People:      peopleStore,
		Manuscripts: manuscriptStore,
		Executor:    executor,
		Text:        textStore,
		Comments:    commentStore,
		Auth:        authenticator,
		Log:         log,
		BcryptCost:  storeCfg.BcryptCost,
		Title:       "Journal Editorial Workflow",
	})

	go func() {
		if err := commonhttp.StartServer(e, commonhttp.ServerConfig{Port: serverCfg.Port}); err != nil {
			log.WithError(err).Info("server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	if err := commonhttp.GracefulShutdown(e, serverCfg.ShutdownTimeout); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
