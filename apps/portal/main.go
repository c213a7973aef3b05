package main

import (
	stdlog "log"
	"os"

	"github.com/Tahsina2226/course-event-management/core"
	"github.com/Tahsina2226/course-event-management/core/batch"
	"github.com/Tahsina2226/course-event-management/core/enroll"
	"github.com/Tahsina2226/course-event-management/core/event"
	"github.com/Tahsina2226/course-event-management/core/news"
	"github.com/Tahsina2226/course-event-management/core/routine"
	"github.com/Tahsina2226/course-event-management/core/session"
	"github.com/Tahsina2226/course-event-management/services/restapi"
	"github.com/Tahsina2226/course-event-management/storage/localstore"
)

var logger *stdlog.Logger

func main() {
	defer os.Exit(0)

	logger = stdlog.New(os.Stderr, "PORTAL : ", stdlog.LstdFlags)

	conf := core.NewConfig()

	validate, translator := core.NewValidator()
	session.RegisterValidators(validate, translator)
	routine.RegisterValidators(validate, translator)

	// set up local storage
	db, err := localstore.Open(conf.StoragePath)
	errAndDie(err)
	defer db.Close()

	// set up services; the API client reads the token off whatever
	// session is current once the session service is up
	var sessionSvc *session.Service
	client := restapi.NewClient(conf, func() string {
		if sessionSvc == nil {
			return ""
		}
		return sessionSvc.Current().Token
	})
	sessionSvc, err = session.NewService(client, localstore.NewSessionRepository(db), validate)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		out:      os.Stdout,
		sessions: sessionSvc,
		batches:  batch.NewService(client, validate),
		routines: routine.NewService(client, validate),
		events:   event.NewService(client),
		news:     news.NewService(client),
		engine:   enroll.NewEngine(client, sessionSvc),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
