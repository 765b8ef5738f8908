package json5

import (
	"fmt"

	"github.com/titanous/json5"
)

// Parse decodes a JSON5 document.
func Parse(text string) (any, error) {
	var doc any

	err := json5.Unmarshal([]byte(text), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode json5: %w", err)
	}

	return doc, nil
}
