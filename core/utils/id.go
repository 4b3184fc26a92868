package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short url-safe identifier, used for reservation
// request reference codes.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateRandomString returns a random string of the given length, used for
// placeholder credentials on OAuth-created accounts.
func GenerateRandomString(length int) string {
	s, err := gonanoid.Generate(idAlphabet, length)
	if err != nil {
		return ""
	}
	return s
}
