package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a request field to its validation messages, matching the
// wire shape {"<field>": ["msg", ...]}.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Respond sends the field map with a 400 status.
func (fe FieldErrors) Respond(c *gin.Context) {
	c.JSON(http.StatusBadRequest, fe)
}

var fieldValidator = validator.New()

// ValidEmail reports whether the value passes the same email check the
// binding layer applies on registration.
func ValidEmail(v string) bool {
	return fieldValidator.Var(v, "email") == nil
}

// RespondBindingError translates a gin binding failure into a field-keyed
// 400 response. Non-validator errors (malformed JSON, type mismatches) fall
// back to a single-message body.
func RespondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		BadRequest(c, "Invalid request body")
		return
	}

	fields := FieldErrors{}
	for _, fe := range verrs {
		fields.Add(fieldName(fe.Field()), messageForTag(fe))
	}
	fields.Respond(c)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return "Value must be one of: " + fe.Param() + "."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	default:
		return "This value is invalid."
	}
}

// fieldName converts a Go struct field name to its snake_case wire name.
func fieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
