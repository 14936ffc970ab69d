package echoapi

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

var appJWTConfig = middleware.JWTConfig{
	SigningKey:    []byte(core.Conf.SecretKey),
	SigningMethod: middleware.AlgorithmHS256,
	ContextKey:    "sessionToken",
	Claims:        new(Claims),
}

// Claims is the session payload. It carries the teacher returned by the
// remote login endpoint so handlers never have to re-fetch it.
type Claims struct {
	jwt.StandardClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func GetTeacherClaims(tchr teacher.Teacher) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   strconv.Itoa(tchr.ID),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(core.Conf.Server.JWTExpirationDelta).Unix(),
		},
		Name:  tchr.Name,
		Email: tchr.Email,
	}
}

func GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(appJWTConfig.SigningKey)
	return signed, errors.Wrap(err, "signing token")
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token)
	if !ok {
		return Claims{}, errUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Claims{}, errUnauthorized
	}
	return *claims, nil
}

// getContextTeacher rebuilds the session teacher from the verified claims.
// It is the only way a handler learns who is logged in.
func getContextTeacher(ctx echo.Context) (teacher.Teacher, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return teacher.Teacher{}, err
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return teacher.Teacher{}, errUnauthorized
	}
	return teacher.Teacher{ID: id, Name: claims.Name, Email: claims.Email}, nil
}
