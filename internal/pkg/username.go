package pkg

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const (
	MinUsernameLength = 5
	MaxUsernameDigits = 3

	// ForbiddenUsernameChars are the characters reserved in Windows file names.
	ForbiddenUsernameChars = `<>:"/\|?*`
)

// IsValidUsername - reports whether name has at least MinUsernameLength characters,
// at most MaxUsernameDigits decimal digits and none of ForbiddenUsernameChars.
func IsValidUsername(name string) bool {
	return ValidateUsername(name) == nil
}

// ValidateUsername - same rule as IsValidUsername, returning the reason on failure.
func ValidateUsername(name string) error {
	if length := utf8.RuneCountInString(name); length < MinUsernameLength {
		return fmt.Errorf("%w: %d characters, need at least %d", apperror.ErrInvalidUsername, length, MinUsernameLength)
	}

	if idx := strings.IndexAny(name, ForbiddenUsernameChars); idx >= 0 {
		return fmt.Errorf("%w: forbidden character %q", apperror.ErrInvalidUsername, name[idx])
	}

	digits := 0
	for _, r := range name {
		if unicode.IsDigit(r) {
			digits++
		}
	}

	if digits > MaxUsernameDigits {
		return fmt.Errorf("%w: %d digits, at most %d allowed", apperror.ErrInvalidUsername, digits, MaxUsernameDigits)
	}

	return nil
}
