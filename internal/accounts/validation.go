package accounts

import (
	"sync"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 5
	MaxPasswordLength = 12

	userNameRules = "required,alphanum,min=3,max=35"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	hasDigit  = regexp2.MustCompile(`\d`, regexp2.None)
	hasLetter = regexp2.MustCompile(`[a-zA-Z]`, regexp2.None)
	// an alphanumeric run immediately followed by itself, e.g. "aa" or "abab"
	selfRepeat = regexp2.MustCompile(`([a-zA-Z0-9]+)\1`, regexp2.None)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// IsUserNameValid reports whether name is 3 to 35 ASCII letters or digits.
func IsUserNameValid(name string) bool {
	return validatorInstance().Var(name, userNameRules) == nil
}

// IsPasswordValid applies the password rules to a single value: length in
// [MinPasswordLength, MaxPasswordLength] characters, at least one digit and
// one letter, and no immediately repeated substring.
func IsPasswordValid(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength || n > MaxPasswordLength {
		return false
	}

	digit, errDigit := hasDigit.MatchString(password)
	letter, errLetter := hasLetter.MatchString(password)
	repeat, errRepeat := selfRepeat.MatchString(password)
	// matchers only fail on timeout; reject rather than guess
	if errDigit != nil || errLetter != nil || errRepeat != nil {
		return false
	}
	return digit && letter && !repeat
}
