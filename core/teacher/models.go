package teacher

import (
	"github.com/go-playground/validator/v10"

	"github.com/tmerlos/ciriaqui/core"
)

// Teacher is the session identity handed out by the remote login endpoint.
// It is created on successful login, carried in the session token and
// cleared on logout; nothing else ever mutates it.
type Teacher struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is the login form payload, forwarded as-is to the remote
// login endpoint.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}
