package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

// translator renders validation errors; set once in NewServer.
var translator ut.Translator

type Options struct {
	Address        string
	DisableReqLogs bool
	Logger         core.Logger
	AbsenceSvc     *absence.Service
	TeacherSvc     *teacher.Service
	SubjectSvc     *subject.Service
	Validate       *validator.Validate
	Translator     ut.Translator
}

type Server struct {
	opts     *Options
	app      *echo.Echo
	shutdown chan os.Signal
}

func NewServer(opts *Options) *Server {
	translator = opts.Translator

	s := &Server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	debug := core.Conf.Debug

	s.app.Debug = debug
	s.app.HideBanner = true
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.SignalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogLevel: log.ERROR,
		}))
	}

	s.app.GET("/", home)

	api := s.app.Group("/ciriaqui/api")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerTeacherAPI(api, jwt, s.opts.TeacherSvc, s.opts.Validate)
	registerAbsenceAPI(api, jwt, s.opts.AbsenceSvc, s.opts.Validate)
	registerSubjectAPI(api, jwt, s.opts.SubjectSvc, s.opts.AbsenceSvc)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	return s.app.Start(s.opts.Address)
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ShutdownSignal reports OS interrupts and integrity failures picked up by
// the error handler.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) SignalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Ciriaqui!")
}
