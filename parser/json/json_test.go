package json_test

import (
	"encoding/json"
	"testing"

	jsonparser "github.com/0xalexb/hjarta-config/parser/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := jsonparser.Parse(`{"format": "json", "json": true, "port": 8080, "ratio": 0.5, "list": [1, "a"]}`)
	require.NoError(t, err)

	expected := map[string]any{
		"format": "json",
		"json":   true,
		"port":   json.Number("8080"),
		"ratio":  json.Number("0.5"),
		"list":   []any{json.Number("1"), "a"},
	}
	assert.Equal(t, expected, doc)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "syntax", text: `{"a": }`},
		{name: "trailing value", text: `{"a": 1} {"b": 2}`},
	}

	for _, testInfo := range testCases {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			_, err := jsonparser.Parse(testInfo.text)
			require.Error(t, err)
		})
	}
}

func TestParse_TrailingWhitespace(t *testing.T) {
	t.Parallel()

	doc, err := jsonparser.Parse("{\"a\": \"b\"}\n\n")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "b"}, doc)
}
