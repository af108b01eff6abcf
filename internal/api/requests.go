package api

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/classbook/internal/wire"
	"github.com/nikmy/classbook/pkg/errors"
)

const (
	msgEmptyBody   = "Request body is empty"
	msgInvalidJSON = "Invalid JSON format"
)

type loginRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// Empty strings count as missing here, the ID scheme needs both initials.
type signupRequest struct {
	Username    string          `json:"username"    validate:"required"`
	Password    string          `json:"password"    validate:"required"`
	FirstName   string          `json:"firstName"   validate:"required"`
	LastName    string          `json:"lastName"    validate:"required"`
	DateOfBirth string          `json:"dateOfBirth" validate:"required"`
	Email       string          `json:"email"       validate:"required"`
	Role        string          `json:"role"        validate:"required"`
	CourseID    json.RawMessage `json:"courseId"`
}

type enrollmentRequest struct {
	StudentID *string `json:"studentId" validate:"required"`
	CourseID  *string `json:"courseId"  validate:"required"`
}

type gradeRequest struct {
	StudentID *string `json:"studentId" validate:"required"`
	CourseID  *string `json:"courseId"  validate:"required"`
	Score     *int    `json:"score"     validate:"required"`
	Note      string  `json:"note"`
	TeacherID *string `json:"teacherId" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeError carries the client-facing message of a rejected body.
type decodeError struct {
	message string
	cause   error
}

func (e *decodeError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *decodeError) Unwrap() error {
	return e.cause
}

func (h *Handlers) decode(req *wire.Request, dst any) error {
	if len(strings.TrimSpace(string(req.Body))) == 0 {
		return &decodeError{message: msgEmptyBody, cause: errors.Error("empty body")}
	}

	err := json.Unmarshal(req.Body, dst)
	if err != nil {
		return &decodeError{message: msgInvalidJSON, cause: err}
	}

	err = h.validate.Struct(dst)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &decodeError{message: "Missing required field: " + fieldErrs[0].Field(), cause: err}
	}
	if err != nil {
		return &decodeError{message: msgInvalidJSON, cause: err}
	}

	return nil
}
