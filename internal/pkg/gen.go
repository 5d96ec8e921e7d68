package pkg

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	generatedLetters   = 5
	generatedMaxDigits = 3

	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// GenerateUsername - builds a random name of 5 letters and 0-3 digits in shuffled order.
// The result always satisfies IsValidUsername.
func GenerateUsername() string {
	digitCount := rand.IntN(generatedMaxDigits + 1) //nolint: gosec // display name, not a secret

	name := make([]byte, 0, generatedLetters+digitCount)
	for range generatedLetters {
		name = append(name, letters[rand.IntN(len(letters))]) //nolint: gosec // display name, not a secret
	}

	for range digitCount {
		name = append(name, digits[rand.IntN(len(digits))]) //nolint: gosec // display name, not a secret
	}

	rand.Shuffle(len(name), func(i, j int) {
		name[i], name[j] = name[j], name[i]
	})

	return string(name)
}

// GenerateGameID - generates a unique identifier for a game session.
func GenerateGameID() string {
	return uuid.NewString()
}
