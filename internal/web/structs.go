package web

import (
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z]\w+$`)

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r signInRequest) Validate() error {
	return errors.Join(validateUserName(r.Username), validatePassword(r.Password))
}

type signUpRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	PasswordRepeat string `json:"passwordRepeat"`
}

func (r signUpRequest) Validate() error {
	err := errors.Join(validateUserName(r.Username), validatePassword(r.Password))
	if r.PasswordRepeat != r.Password {
		err = errors.Join(err, errors.New("la contraseña no coincide con la confirmación"))
	}
	return err
}

func validatePassword(password string) error {
	if password == "" {
		return errors.New("la contraseña no puede estar vacía")
	}
	return nil
}

func validateUserName(name string) error {
	if name == "" {
		return errors.New("el nombre de usuario no puede estar vacío")
	}
	if !nameRegexp.MatchString(name) {
		return errors.New("el nombre de usuario empieza con una letra y solo lleva letras, números y guiones bajos")
	}
	return nil
}

type validator interface {
	Validate() error
}

// parseBody decodes the request body into T and validates it when T knows how.
func parseBody[T any](c *fiber.Ctx) (T, error) {
	var v T
	if err := c.BodyParser(&v); err != nil {
		return v, badRequest(err)
	}
	if val, ok := any(v).(validator); ok {
		if err := val.Validate(); err != nil {
			return v, badRequest(err)
		}
	}
	return v, nil
}
