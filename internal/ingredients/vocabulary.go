package ingredients

import "sort"

// known is the fixed reference vocabulary. It is built once at package
// initialization and never written afterwards, so concurrent reads need no
// synchronization.
var known = map[string]struct{}{
	"oeufs":     {},
	"fromage":   {},
	"poulet":    {},
	"tomate":    {},
	"riz":       {},
	"carotte":   {},
	"thon":      {},
	"avocat":    {},
	"haricots":  {},
	"courgette": {},
	"aubergine": {},
	"pomme":     {},
	"banane":    {},
	"lait":      {},
	"farine":    {},
	"sucre":     {},
	"yaourt":    {},
	"crevette":  {},
	"poisson":   {},
	"boeuf":     {},
	"jambon":    {},
}

// Known reports whether name is an exact member of the vocabulary. Callers
// are expected to pass an already lowercased name.
func Known(name string) bool {
	_, ok := known[name]
	return ok
}

// Vocabulary returns a sorted copy of the known ingredient names.
func Vocabulary() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
