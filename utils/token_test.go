package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateNumericCode(6)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.Contains(t, "0123456789", string(c))
		}
	}
}

func TestGenerateRandomToken(t *testing.T) {
	token := GenerateRandomToken(8)
	require.Len(t, token, 8)
	for _, c := range token {
		assert.True(t, strings.ContainsRune(tokenCharset, c))
	}
}
