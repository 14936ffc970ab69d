package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core/teacher"
)

type teacherApi struct {
	svc      *teacher.Service
	validate *validator.Validate
}

func registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *teacher.Service, validate *validator.Validate) {
	api := teacherApi{svc: svc, validate: validate}

	tg := g.Group("/teachers")
	tg.POST("/login", api.login)

	ag := tg.Group("", jwt)
	ag.GET("", api.search)
	ag.GET("/me", api.me)
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Teacher teacher.Teacher `json:"teacher"`
}

func (api teacherApi) login(ctx echo.Context) error {
	var data teacher.Credentials
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tchr, err := api.svc.Login(data)
	if err != nil {
		if errors.Cause(err) == teacher.ErrAuthFailed {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(GetTeacherClaims(tchr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Teacher: tchr})
}

func (api teacherApi) search(ctx echo.Context) error {
	if _, err := getContextTeacher(ctx); err != nil {
		return err
	}
	teachers, err := api.svc.Search(ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "searching teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api teacherApi) me(ctx echo.Context) error {
	tchr, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tchr)
}
