package service

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/pageza/fridgechef/internal/category"
	"github.com/pageza/fridgechef/internal/types"
)

// MinPasswordLength is the shortest password accepted at signup and login
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failed check on one input
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Field returns the first message for field, or ""
func (e ValidationErrors) Field(field string) string {
	for _, err := range e {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (e *ValidationErrors) add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func validateEmail(errs *ValidationErrors, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs.add("email", "Please enter your email")
	case !emailPattern.MatchString(email):
		errs.add("email", "Please enter a valid email")
	}
}

func validatePassword(errs *ValidationErrors, password string) {
	switch {
	case password == "":
		errs.add("password", "Please enter your password")
	case passwordLength(password) < MinPasswordLength:
		errs.add("password", fmt.Sprintf("Password should be at least %d characters", MinPasswordLength))
	}
}

// passwordLength counts UTF-16 code units, the unit the mobile screens measure
func passwordLength(password string) int {
	return len(utf16.Encode([]rune(password)))
}

// ValidateLogin checks login input before it is sent
func ValidateLogin(email, password string) error {
	var errs ValidationErrors
	validateEmail(&errs, email)
	validatePassword(&errs, password)
	return errs.orNil()
}

// ValidateSignup checks signup input before it is sent
func ValidateSignup(fullName, email, password string) error {
	var errs ValidationErrors
	if strings.TrimSpace(fullName) == "" {
		errs.add("fullName", "Please enter your full name")
	}
	validateEmail(&errs, email)
	validatePassword(&errs, password)
	return errs.orNil()
}

// ValidateRecipe checks a recipe form. Ingredient rows are reported as
// ingredients[i].
func ValidateRecipe(in *types.RecipeInput) error {
	var errs ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs.add("name", "Please enter a recipe name")
	}
	switch {
	case in.Category == "":
		errs.add("category", "Please select a category")
	case !category.Valid(category.Key(in.Category)):
		errs.add("category", fmt.Sprintf("Unknown category %q", in.Category))
	}
	if strings.TrimSpace(in.Cuisine) == "" {
		errs.add("cuisine", "Please enter a cuisine")
	}
	if in.Difficulty != "" && !category.ValidDifficulty(in.Difficulty) {
		errs.add("difficulty", fmt.Sprintf("Difficulty must be one of %s", strings.Join(category.Difficulties, ", ")))
	}
	if len(in.Ingredients) == 0 {
		errs.add("ingredients", "Please add at least one ingredient")
	}
	for i, ing := range in.Ingredients {
		if strings.TrimSpace(ing.Name) == "" || strings.TrimSpace(ing.Amount) == "" {
			errs.add(fmt.Sprintf("ingredients[%d]", i), "Please fill in both ingredient name and amount")
		}
	}
	if strings.TrimSpace(in.Instructions) == "" {
		errs.add("instructions", "Please enter instructions")
	}
	return errs.orNil()
}

// ValidateRating checks a rating is within 0..5
func ValidateRating(rating float64) error {
	if math.IsNaN(rating) || rating < 0 || rating > 5 {
		return ValidationErrors{{Field: "rating", Message: "Rating must be between 0 and 5"}}
	}
	return nil
}
