package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "teacher not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")
	errHTTPNotFound         = echo.NewHTTPError(http.StatusNotFound, "not found")
)

// newAppHTTPErrorHandler translates application errors into the status codes
// and messages the front end shows. Failures that the user can sensibly
// resubmit carry "retry": true in the payload.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var (
			code    int
			message interface{}
			retry   bool
		)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code, message = errUnauthorized.Code, errUnauthorized.Message
				break
			}
			code, message = origErr.Code, origErr.Message

		case validator.ValidationErrors:
			code = http.StatusBadRequest
			fields := make(echo.Map, len(origErr))
			for _, fieldErr := range origErr {
				fields[fieldErr.Field()] = fieldErr.Translate(translator)
			}
			message = echo.Map{"error": "validation failed", "fields": fields}

		case *core.ValidationError:
			code = http.StatusBadRequest
			message = origErr.Error()

		case *core.RemoteError:
			code = http.StatusBadGateway
			message = "the absence service is unavailable"
			// Transport failures (status 0) are terminal; everything else
			// came back from the remote service and is worth resubmitting.
			retry = origErr.Status != 0
			logger.Error(origErr.Error(), origErr)

		default:
			switch origErr {
			case absence.ErrConflict:
				code = http.StatusConflict
				message = origErr.Error()
			case absence.ErrRejected:
				code = http.StatusBadRequest
				message = origErr.Error()
				retry = true
			case absence.ErrNotFound, teacher.ErrNotFound, subject.ErrNotFound:
				code, message = errHTTPNotFound.Code, errHTTPNotFound.Message
			default:
				code = http.StatusInternalServerError
				message = http.StatusText(code)

				fields := []interface{}{err}
				if tchr, terr := getContextTeacher(ctx); terr == nil {
					fields = append(fields, tchr)
				}
				logger.Error(err.Error(), fields...)

				if core.IsShutdown(origErr) {
					signalShutdown()
				}
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			if retry {
				message = echo.Map{"error": m, "retry": true}
			} else {
				message = echo.Map{"error": m}
			}
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				logger.Error(err.Error(), err)
			}
		}
	}
}
