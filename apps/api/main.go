package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	echoapi "github.com/tmerlos/ciriaqui/apps/api/echo"
	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
	"github.com/tmerlos/ciriaqui/core/teacher"
	emailsvc "github.com/tmerlos/ciriaqui/services/email"
	logsvc "github.com/tmerlos/ciriaqui/services/logger"
	remoteapi "github.com/tmerlos/ciriaqui/storage/remote"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if err := run(std); err != nil {
		std.Fatalf("main : %+v", err)
	}
}

func run(std *log.Logger) error {
	appLogger := logsvc.NewRollbarLogger(std)
	appLogger.Enable(!core.Conf.Debug && !core.Conf.TestMode)

	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(appLogger)
	}

	client := remoteapi.NewClient()
	absenceSvc := absence.NewService(remoteapi.NewAbsenceRepository(client), mailSvc)
	teacherSvc := teacher.NewService(remoteapi.NewTeacherRepository(client))
	subjectSvc := subject.NewService(remoteapi.NewSubjectRepository(client))

	validate := validator.New()
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	core.InitValidators(validate, translator)
	absence.InitValidators(validate, translator)

	server := echoapi.NewServer(&echoapi.Options{
		Address:    core.Conf.Server.Address,
		Logger:     appLogger,
		AbsenceSvc: absenceSvc,
		TeacherSvc: teacherSvc,
		SubjectSvc: subjectSvc,
		Validate:   validate,
		Translator: translator,
	})

	serverErrors := make(chan error, 1)
	go func() {
		std.Printf("main : API listening on %s", core.Conf.Server.Address)
		serverErrors <- server.Start()
	}()

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")

	case sig := <-server.ShutdownSignal():
		std.Printf("main : %v : start shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}
	return nil
}
