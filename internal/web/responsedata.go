package web

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	authservice "github.com/goserg/trucoserver/auth/service"
	"github.com/goserg/trucoserver/auth/users"
	"github.com/goserg/trucoserver/internal/scorehistory"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/storage"
	"github.com/goserg/trucoserver/internal/teamdraw"
	"github.com/goserg/trucoserver/internal/web/webpath"
)

// data is what the dashboard templates render.
type data struct {
	Title  string
	Path   map[string]string
	User   users.User
	Errors []string
	Data   map[string]any
}

func newData(title string) data {
	return data{
		Title: title,
		Path:  webpath.Path(),
		Data:  make(map[string]any),
	}
}

func (m data) WithUser(user users.User) data {
	m.User = user
	return m
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func (m data) WithErrors(err error) data {
	for _, err := range unwrap(err) {
		m.Errors = append(m.Errors, err.Error())
	}
	return m
}

type badRequestError struct {
	err error
}

func (e badRequestError) Error() string {
	return e.err.Error()
}

func (e badRequestError) Unwrap() error {
	return e.err
}

func badRequest(err error) error {
	return badRequestError{err: err}
}

// statusOf maps an error to the HTTP status it is answered with.
func statusOf(err error) int {
	var fe *fiber.Error
	var br badRequestError
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &br),
		errors.Is(err, service.ErrValidation),
		errors.Is(err, scorehistory.ErrInvalidRestoreTarget),
		errors.Is(err, teamdraw.ErrInsufficientParticipants),
		errors.Is(err, teamdraw.ErrDuplicateParticipant),
		errors.Is(err, teamdraw.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicate),
		errors.Is(err, service.ErrMatchCanceled),
		errors.Is(err, service.ErrMatchFinished),
		errors.Is(err, service.ErrNoOpenMatch):
		return http.StatusConflict
	case errors.Is(err, authservice.ErrNotAuthorized),
		errors.Is(err, authservice.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, authservice.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func newErrorResponse(err error) errorResponse {
	resp := errorResponse{Message: err.Error()}
	if errs := unwrap(err); len(errs) > 1 {
		for _, e := range errs {
			resp.Errors = append(resp.Errors, e.Error())
		}
	}
	return resp
}
