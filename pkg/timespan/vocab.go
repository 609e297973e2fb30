package timespan

import (
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the overridable text tables shared by the formatter and
// the parser: one entry per canonical component, largest unit first.
//
// Overrides are passed explicitly to NewFormatter and NewParser; the
// package-level entry points on Span always use DefaultVocabulary.
type Vocabulary struct {
	// FormatKeys are the lowercase directive keys. The zero-padded variant
	// of a key is derived by uppercasing its final letter (h -> H, ms -> mS);
	// weeks and days have no padded variant.
	FormatKeys [numUnits]string

	// Symbols are the unit symbols used by symbol-mode rendering.
	Symbols [numUnits]string

	// Aliases are the spellings the parser accepts for each component.
	Aliases [numUnits][]string
}

// DefaultVocabulary returns the stock directive keys, unit symbols, and
// parser aliases.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		FormatKeys: [numUnits]string{"w", "d", "h", "m", "s", "ms", "us"},
		Symbols:    [numUnits]string{"wk", "d", "h", "min", "s", "ms", "µs"},
		Aliases: [numUnits][]string{
			{"w", "wk", "week", "weeks"},
			{"d", "day", "days"},
			{"h", "hr", "hour", "hours"},
			{"m", "min", "mins", "minute", "minutes"},
			{"s", "sec", "secs", "second", "seconds"},
			{"msec", "ms", "millisecond", "milliseconds"},
			{"usec", "us", "µs", "microsecond", "microseconds"},
		},
	}
}

// padWidth is the zero-pad width of each component's padded directive
// variant. Weeks and days have none.
var padWidth = [numUnits]int{0, 0, 2, 2, 2, 3, 3}

// directive resolves a format key to a component and pad width.
type directive struct {
	u     unit
	width int
}

// directiveTable derives the full key-to-directive mapping, including the
// padded variants.
func (v *Vocabulary) directiveTable() map[string]directive {
	t := make(map[string]directive, 2*numUnits)
	for u := unitWeeks; u < numUnits; u++ {
		key := v.FormatKeys[u]
		t[key] = directive{u: u}
		if w := padWidth[u]; w > 0 {
			t[padKey(key)] = directive{u: u, width: w}
		}
	}
	return t
}

// padKey uppercases the final letter of a directive key: h -> H, ms -> mS.
func padKey(key string) string {
	r := []rune(key)
	r[len(r)-1] = unicode.ToUpper(r[len(r)-1])
	return string(r)
}

// rawVocabulary is the YAML form of a vocabulary override. Omitted sections
// keep their defaults.
type rawVocabulary struct {
	FormatKeys []string            `yaml:"format_keys"`
	Symbols    []string            `yaml:"symbols"`
	Aliases    map[string][]string `yaml:"aliases"`
}

// ParseVocabulary parses a vocabulary override from YAML bytes. Sections
// not present in the document keep their default values.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	v := DefaultVocabulary()

	var raw rawVocabulary
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return v, fmt.Errorf("parsing vocabulary: %w", err)
	}

	if raw.FormatKeys != nil {
		if len(raw.FormatKeys) != int(numUnits) {
			return v, fmt.Errorf("vocabulary: want %d format keys, got %d", numUnits, len(raw.FormatKeys))
		}
		copy(v.FormatKeys[:], raw.FormatKeys)
	}
	if raw.Symbols != nil {
		if len(raw.Symbols) != int(numUnits) {
			return v, fmt.Errorf("vocabulary: want %d symbols, got %d", numUnits, len(raw.Symbols))
		}
		copy(v.Symbols[:], raw.Symbols)
	}
	for name, aliases := range raw.Aliases {
		u, ok := unitByName(name)
		if !ok {
			return v, fmt.Errorf("vocabulary: unknown component %q", name)
		}
		if len(aliases) == 0 {
			return v, fmt.Errorf("vocabulary: component %q has no aliases", name)
		}
		v.Aliases[u] = aliases
	}
	return v, nil
}

// LoadVocabulary loads and parses a vocabulary override from a file.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultVocabulary(), fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseVocabulary(data)
}
