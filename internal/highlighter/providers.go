package highlighter

import "sort"

// BuiltinNames lists the provider names the global registry can load
// lazily, sorted for stable output.
func BuiltinNames() []string {
	table := builtinProviders()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinProviders is the static name→loader table the global registry
// consults on a registry miss. Each loader runs at most once per name;
// results (including failures) land in the registry's entry map.
func builtinProviders() map[string]Loader {
	chromaLoader := func() (Entry, error) { return Entry{New: NewChromaAdapter}, nil }
	hljsLoader := func() (Entry, error) { return Entry{New: NewHighlightJSAdapter}, nil }
	prismLoader := func() (Entry, error) { return Entry{New: NewPrismAdapter}, nil }

	return map[string]Loader{
		"chroma":       chromaLoader,
		"highlight.js": hljsLoader,
		"highlightjs":  hljsLoader, // alias
		"prism":        prismLoader,
	}
}
