package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
)

type absenceApi struct {
	svc      *absence.Service
	validate *validator.Validate
}

func registerAbsenceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *absence.Service, validate *validator.Validate) {
	api := absenceApi{svc: svc, validate: validate}

	ag := g.Group("/absences", jwt)
	ag.GET("", api.list)
	ag.POST("", api.create)
	ag.GET("/calendar", api.calendar)
	ag.GET("/kinds", api.kinds)
	ag.GET("/events", api.events)
	ag.GET("/export.ics", api.exportICS)
	ag.GET("/at/:date", api.selectAt)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

func (api absenceApi) list(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	absences, err := api.svc.ListByTeacher(tchr.ID)
	if err != nil {
		return errors.Wrap(err, "listing absences")
	}
	return ctx.JSON(http.StatusOK, absences)
}

func (api absenceApi) calendar(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	absences, err := api.svc.ListByTeacher(tchr.ID)
	if err != nil {
		return errors.Wrap(err, "listing absences")
	}
	return ctx.JSON(http.StatusOK, absence.Classify(absences))
}

func (api absenceApi) kinds(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, absence.Kinds)
}

// calendarEvent is the event shape calendar widgets consume. End is
// exclusive, hence the extra day on multi-day absences.
type calendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (api absenceApi) events(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	absences, err := api.svc.ListByTeacher(tchr.ID)
	if err != nil {
		return errors.Wrap(err, "listing absences")
	}

	events := make([]calendarEvent, len(absences))
	for i, a := range absences {
		events[i] = calendarEvent{
			ID:    strconv.Itoa(a.ID),
			Title: absence.KindLabel(a.Kind) + " de " + tchr.Name,
			Start: a.BeginDate.String(),
			End:   a.EndDate.AddDays(1).String(),
		}
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api absenceApi) exportICS(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	absences, err := api.svc.ListByTeacher(tchr.ID)
	if err != nil {
		return errors.Wrap(err, "listing absences")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="absences.ics"`)
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(absence.BuildICS(absences, tchr.Name)))
}

type selectionResponse struct {
	Absence *absence.Absence `json:"absence"`
}

// selectAt resolves a click on a calendar day. The caller passes the id of
// the absence currently loaded in the form via ?selected= so clicking the
// same absence again clears the selection.
func (api absenceApi) selectAt(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	day, err := absence.ParseDate(ctx.Param("date"))
	if err != nil {
		return core.NewValidationError(errors.New("invalid date"))
	}
	selected, _ := strconv.Atoi(ctx.QueryParam("selected"))

	absences, err := api.svc.ListByTeacher(tchr.ID)
	if err != nil {
		return errors.Wrap(err, "listing absences")
	}

	var resp selectionResponse
	if match, ok := absence.SelectByDay(absences, day, selected); ok {
		resp.Absence = &match
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api absenceApi) create(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var data absence.NewAbsence
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	absences, err := api.svc.Create(tchr, data)
	if err != nil {
		return errors.Wrap(err, "creating absence")
	}
	return ctx.JSON(http.StatusCreated, absences)
}

func (api absenceApi) update(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}

	var data absence.UpdateAbsence
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	absences, err := api.svc.Update(tchr, id, data)
	if err != nil {
		return errors.Wrap(err, "updating absence")
	}
	return ctx.JSON(http.StatusOK, absences)
}

func (api absenceApi) destroy(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}

	absences, err := api.svc.Delete(tchr, id)
	if err != nil {
		return errors.Wrap(err, "deleting absence")
	}
	return ctx.JSON(http.StatusOK, absences)
}
