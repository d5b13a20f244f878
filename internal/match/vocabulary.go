package match

// Vocabulary holds the keyword sets the semantic strategy recognizes.
// It is injected at construction and treated as immutable afterwards, so
// tests can substitute custom vocabularies without shared state.
type Vocabulary struct {
	FabricTypes []string `json:"fabric_types"`
	Colors      []string `json:"colors"`
	Patterns    []string `json:"patterns"`
}

// DefaultVocabulary returns the built-in fabric domain keyword sets.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		FabricTypes: []string{
			"cotton", "silk", "wool", "linen", "polyester", "rayon", "nylon", "acrylic",
			"velvet", "chenille", "jacquard", "suede",
		},
		Colors: []string{
			"red", "blue", "green", "yellow", "black", "white", "brown", "pink",
			"purple", "orange", "gray", "grey", "beige", "biege", "ivory", "cream",
		},
		Patterns: []string{
			"striped", "checked", "floral", "geometric", "solid", "print",
			"embroidery", "plain", "textured",
		},
	}
}

// lookup is the compiled, read-only form used during matching.
type lookup map[string]struct{}

func (v Vocabulary) compile() lookup {
	l := make(lookup, len(v.FabricTypes)+len(v.Colors)+len(v.Patterns))
	for _, set := range [][]string{v.FabricTypes, v.Colors, v.Patterns} {
		for _, w := range set {
			l[w] = struct{}{}
		}
	}
	return l
}

// keywords returns the recognized keywords among tokens, de-duplicated.
func (l lookup) keywords(tokens []string) map[string]struct{} {
	var found map[string]struct{}
	for _, t := range tokens {
		if _, ok := l[t]; ok {
			if found == nil {
				found = make(map[string]struct{})
			}
			found[t] = struct{}{}
		}
	}
	return found
}
