package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
)

type subjectApi struct {
	svc        *subject.Service
	absenceSvc *absence.Service
}

func registerSubjectAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *subject.Service, absenceSvc *absence.Service) {
	api := subjectApi{svc: svc, absenceSvc: absenceSvc}

	sg := g.Group("/subjects", jwt)
	sg.GET("", api.search)
	sg.GET("/:id/absences", api.absences)
}

func (api subjectApi) search(ctx echo.Context) error {
	if _, err := getContextTeacher(ctx); err != nil {
		return err
	}
	subjects, err := api.svc.Search(ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "searching subjects")
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func (api subjectApi) absences(ctx echo.Context) error {
	if _, err := getContextTeacher(ctx); err != nil {
		return err
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}
	absences, err := api.absenceSvc.ListBySubject(id)
	if err != nil {
		return errors.Wrap(err, "listing absences")
	}
	return ctx.JSON(http.StatusOK, absences)
}
