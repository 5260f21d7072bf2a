package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	tokenCharset   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	numericCharset = "0123456789"
)

func randomFromCharset(length int, charset string) string {
	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			token[i] = charset[0]
			continue
		}
		token[i] = charset[n.Int64()]
	}
	return string(token)
}

// GenerateRandomToken returns a short code for password reset emails.
func GenerateRandomToken(length int) string {
	return randomFromCharset(length, tokenCharset)
}

// GenerateNumericCode returns a digits-only code, used for MFA so it can be
// typed from a phone keypad.
func GenerateNumericCode(length int) string {
	return randomFromCharset(length, numericCharset)
}
