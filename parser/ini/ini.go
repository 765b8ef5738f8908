package ini

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Parse decodes an INI document into a map.
func Parse(text string) (any, error) {
	file, err := ini.LoadSources(ini.LoadOptions{}, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("decode ini: %w", err)
	}

	doc := make(map[string]any)

	for _, section := range file.Sections() {
		values := section.KeysHash()

		if section.Name() == ini.DefaultSection {
			for key, value := range values {
				doc[key] = value
			}

			continue
		}

		nested := make(map[string]any, len(values))
		for key, value := range values {
			nested[key] = value
		}

		doc[section.Name()] = nested
	}

	return doc, nil
}
