package tree

// Merge folds source into target in place.
//
// For every key of source: when both target and source hold a Mapping the two
// are merged recursively, otherwise the source value replaces the target value.
// Replacing values are deep-copied so target never aliases source.
//
// target must be non-nil unless source is empty; merging into a nil map panics.
// Use Fold to start from a fresh mapping.
func Merge(target, source Mapping) {
	for key, incoming := range source {
		if into, ok := target[key].(Mapping); ok && into != nil {
			if from, ok := incoming.(Mapping); ok {
				Merge(into, from)

				continue
			}
		}

		target[key] = clone(incoming)
	}
}

// Fold merges trees left to right into a fresh mapping; the last tree wins.
func Fold(trees ...Mapping) Mapping {
	acc := Mapping{}

	for _, t := range trees {
		Merge(acc, t)
	}

	return acc
}
