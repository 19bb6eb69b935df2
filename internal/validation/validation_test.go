package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email,email_domain"`
	Username string `json:"username" validate:"required,min=3,max=30,username_chars"`
	Password string `json:"password" validate:"required,min=6,max=100,password_strength"`
}

type entry struct {
	Type   string  `json:"type" validate:"required,movie_type"`
	Budget float64 `json:"budget" validate:"required,gt=0"`
	Year   int     `json:"year" validate:"required,min=1900,max_year"`
}

type patch struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=255"`
	Year  *int    `json:"year" validate:"omitempty,min=1900,max_year"`
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	out := map[string]string{}
	for _, f := range ve.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestSignupRules(t *testing.T) {
	v := New()

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&signup{Email: "jane@example.com", Username: "jane_doe", Password: "Secret1"}))
	})

	t.Run("BadValues", func(t *testing.T) {
		err := v.Validate(&signup{Email: "not-an-email", Username: "j!", Password: "secret"})
		msgs := fieldMessages(t, err)
		assert.Equal(t, "Invalid email address", msgs["email"])
		assert.Equal(t, "Username must be at least 3 characters", msgs["username"])
		assert.Equal(t, "Password must contain at least one lowercase letter, one uppercase letter, and one number", msgs["password"])
	})

	t.Run("UsernameCharset", func(t *testing.T) {
		msgs := fieldMessages(t, v.Validate(&signup{Email: "jane@example.com", Username: "jane doe", Password: "Secret1"}))
		assert.Equal(t, "Username can only contain letters, numbers, and underscores", msgs["username"])
	})

	t.Run("ErrorString", func(t *testing.T) {
		err := v.Validate(&signup{Email: "jane@example.com", Username: "jane", Password: ""})
		assert.Equal(t, "password: Password is required", err.Error())
	})
}

func TestEmailDomain(t *testing.T) {
	type onlyDomain struct {
		Email string `json:"email" validate:"email_domain"`
	}
	v := New()
	assert.NoError(t, v.Validate(&onlyDomain{Email: "jane@mail.example.co"}))
	for _, bad := range []string{"jane@localhost", "jane@example.c", "jane@-bad.com", "@example.com"} {
		msgs := fieldMessages(t, v.Validate(&onlyDomain{Email: bad}))
		assert.Equal(t, "Please enter a valid email address with a proper domain", msgs["email"], bad)
	}
}

func TestEntryRules(t *testing.T) {
	v := New()
	v.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&entry{Type: "TV Show", Budget: 1.5, Year: 2036}))
	})

	t.Run("Invalid", func(t *testing.T) {
		msgs := fieldMessages(t, v.Validate(&entry{Type: "Documentary", Budget: -3, Year: 2037}))
		assert.Equal(t, "Type must be either Movie or TV Show", msgs["type"])
		assert.Equal(t, "Budget must be positive", msgs["budget"])
		assert.Equal(t, "Year cannot be in the future", msgs["year"])
	})

	t.Run("TooOld", func(t *testing.T) {
		msgs := fieldMessages(t, v.Validate(&entry{Type: "Movie", Budget: 1, Year: 1899}))
		assert.Equal(t, "Year must be at least 1900", msgs["year"])
	})
}

func TestPatchRules(t *testing.T) {
	v := New()
	empty := ""
	old := 1800

	assert.NoError(t, v.Validate(&patch{}))

	msgs := fieldMessages(t, v.Validate(&patch{Title: &empty, Year: &old}))
	assert.Equal(t, "Title is required", msgs["title"])
	assert.Equal(t, "Year must be at least 1900", msgs["year"])
}

func TestInvalid(t *testing.T) {
	err := Invalid("page", "Expected a number")
	assert.Equal(t, "page: Expected a number", err.Error())
	assert.Len(t, err.Fields, 1)
}
