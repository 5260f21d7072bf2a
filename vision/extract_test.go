package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{
			name:  "bare array",
			in:    `[{"name":"rice","weight_g":150}]`,
			want:  `[{"name":"rice","weight_g":150}]`,
			found: true,
		},
		{
			name:  "code fence",
			in:    "```json\n[{\"name\":\"rice\"}]\n```",
			want:  `[{"name":"rice"}]`,
			found: true,
		},
		{
			name:  "prose around",
			in:    `Here is what I found: [{"name":"egg"}] hope that helps!`,
			want:  `[{"name":"egg"}]`,
			found: true,
		},
		{
			name:  "nested arrays",
			in:    `[[1,2],[3,4]] trailing`,
			want:  `[[1,2],[3,4]]`,
			found: true,
		},
		{
			name:  "bracket inside string literal",
			in:    `[{"name":"beans [canned]"}]`,
			want:  `[{"name":"beans [canned]"}]`,
			found: true,
		},
		{
			name:  "escaped quote inside string",
			in:    `[{"name":"5\" sub"}]`,
			want:  `[{"name":"5\" sub"}]`,
			found: true,
		},
		{
			name:  "empty array",
			in:    "No food detected. []",
			want:  "[]",
			found: true,
		},
		{
			name:  "no array",
			in:    "I cannot identify any food in this image.",
			found: false,
		},
		{
			name:  "unterminated array",
			in:    `[{"name":"rice"`,
			found: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractJSONArray(tc.in)
			require.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	got, ok := extractJSONObject("Sure! ```json\n{\"foods\": [{\"name\": \"rice\"}]}\n```")
	require.True(t, ok)
	assert.Equal(t, `{"foods": [{"name": "rice"}]}`, got)

	_, ok = extractJSONObject("no object here")
	assert.False(t, ok)
}

func TestExtractJSONObjectSkipsBracesInStrings(t *testing.T) {
	got, ok := extractJSONObject(`{"note":"use {caution}","n":1}`)
	require.True(t, ok)
	assert.Equal(t, `{"note":"use {caution}","n":1}`, got)
}
