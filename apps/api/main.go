package main

import (
	"fmt"
	stdlog "log"
	"os"

	echoapi "github.com/Tahsina2226/course-event-management/apps/api/echo"
	"github.com/Tahsina2226/course-event-management/core"
	"github.com/Tahsina2226/course-event-management/core/routine"
	"github.com/Tahsina2226/course-event-management/core/session"
	logsvc "github.com/Tahsina2226/course-event-management/services/logger"
)

func main() {
	conf := core.NewConfig()

	std := stdlog.New(os.Stdout, "API : ", stdlog.LstdFlags|stdlog.Lmicroseconds|stdlog.Lshortfile)
	var logger core.Logger
	if conf.Server.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	validate, translator := core.NewValidator()
	session.RegisterValidators(validate, translator)
	routine.RegisterValidators(validate, translator)

	app := echoapi.NewServer(&echoapi.Options{
		Addr:       fmt.Sprintf(":%d", conf.Server.Port),
		Conf:       conf,
		Store:      echoapi.NewStore(),
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
	})
	app.Start()
}
