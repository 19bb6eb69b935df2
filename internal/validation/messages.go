package validation

import (
	"fmt"
	"strconv"

	playground "github.com/go-playground/validator/v10"
)

// messages holds the user-facing text per "field.rule".
var messages = map[string]string{
	"email.required":     "Email is required",
	"email.email":        "Invalid email address",
	"email.email_domain": "Please enter a valid email address with a proper domain",

	"username.required":       "Username is required",
	"username.min":            "Username must be at least 3 characters",
	"username.max":            "Username too long",
	"username.username_chars": "Username can only contain letters, numbers, and underscores",

	"password.required":          "Password is required",
	"password.min":               "Password must be at least 6 characters",
	"password.max":               "Password too long",
	"password.password_strength": "Password must contain at least one lowercase letter, one uppercase letter, and one number",

	"title.required":    "Title is required",
	"title.min":         "Title is required",
	"title.max":         "Title too long",
	"director.required": "Director is required",
	"director.min":      "Director is required",
	"director.max":      "Director name too long",
	"location.required": "Location is required",
	"location.min":      "Location is required",
	"location.max":      "Location too long",

	"type.required":   "Type must be either Movie or TV Show",
	"type.movie_type": "Type must be either Movie or TV Show",

	"budget.required":   "Budget must be positive",
	"budget.gt":         "Budget must be positive",
	"duration.required": "Duration must be a positive integer",
	"duration.gt":       "Duration must be a positive integer",
	"year.required":     "Year is required",
	"year.min":          "Year must be at least " + strconv.Itoa(MinYear),
	"year.max_year":     "Year cannot be in the future",

	"page.gte":  "Page must be a positive integer",
	"limit.gte": "Limit must be a positive integer",
	"limit.lte": "Limit must not exceed 100",
}

func message(fe playground.FieldError) string {
	if m, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	}
	return "Invalid value"
}
