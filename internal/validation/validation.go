// Package validation turns struct tags on request bodies into field-level
// error messages.  It plugs into echo as the framework's Validator so
// handlers simply call c.Validate(&req).
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// MinYear is the earliest release year accepted for a catalog entry.
const MinYear = 1900

// FieldError is one failed rule, named by the JSON field it applies to.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for any request that fails validation.  The
// HTTP layer renders it as a 400 with the individual field errors.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

// Invalid builds a single-field ValidationError for checks done outside of
// struct tags, such as malformed query parameters.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

var (
	usernameRe    = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailDomainRe = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	lowerRe       = regexp.MustCompile(`[a-z]`)
	upperRe       = regexp.MustCompile(`[A-Z]`)
	digitRe       = regexp.MustCompile(`[0-9]`)
)

// Validator implements echo.Validator on top of go-playground/validator.
type Validator struct {
	v   *playground.Validate
	now func() time.Time
}

// New registers the catalog-specific rules:
//   movie_type        – "Movie" or "TV Show"
//   max_year          – no later than ten years from now
//   password_strength – lower case, upper case and digit present
//   username_chars    – letters, digits and underscore only
//   email_domain      – domain has a dotted TLD of at least two letters
func New() *Validator {
	val := &Validator{v: playground.New(playground.WithRequiredStructEnabled()), now: time.Now}
	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	mustRegister(val.v, "movie_type", func(fl playground.FieldLevel) bool {
		return model.MovieType(fl.Field().String()).Valid()
	})
	mustRegister(val.v, "max_year", func(fl playground.FieldLevel) bool {
		return fl.Field().Int() <= int64(MaxYear(val.now()))
	})
	mustRegister(val.v, "password_strength", func(fl playground.FieldLevel) bool {
		s := fl.Field().String()
		return lowerRe.MatchString(s) && upperRe.MatchString(s) && digitRe.MatchString(s)
	})
	mustRegister(val.v, "username_chars", func(fl playground.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	mustRegister(val.v, "email_domain", func(fl playground.FieldLevel) bool {
		s := fl.Field().String()
		at := strings.LastIndexByte(s, '@')
		return at > 0 && emailDomainRe.MatchString(s[at+1:])
	})
	return val
}

// MaxYear is the latest release year accepted at time now.
func MaxYear(now time.Time) int {
	return now.Year() + 10
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks i against its `validate` tags.  Rule failures come back as
// *ValidationError; programming errors (non-struct input) are returned as is.
func (val *Validator) Validate(i interface{}) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}
	var errs playground.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}
