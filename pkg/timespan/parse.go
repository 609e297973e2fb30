package timespan

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser extracts duration values from free text using an overridable alias
// vocabulary.
type Parser struct {
	vocab Vocabulary

	// All aliases flattened and ordered longest first, so "min" is never
	// shadowed by "m".
	aliases []aliasEntry
}

type aliasEntry struct {
	text string
	u    unit
}

// NewParser returns a parser using the given vocabulary.
func NewParser(v Vocabulary) *Parser {
	p := &Parser{vocab: v}
	for u := unitWeeks; u < numUnits; u++ {
		for _, a := range v.Aliases[u] {
			p.aliases = append(p.aliases, aliasEntry{text: a, u: u})
		}
	}
	sort.SliceStable(p.aliases, func(i, j int) bool {
		return len(p.aliases[i].text) > len(p.aliases[j].text)
	})
	return p
}

// defaultParser backs the package-level Parse. Built once and never mutated.
var defaultParser = NewParser(DefaultVocabulary())

// Parse recognizes every "<number> <unit>" pair in text and reduces the
// collected quantities to a canonical Span. See Parser.Parse.
func Parse(text string) (Span, error) {
	return defaultParser.Parse(text)
}

// Parse recognizes every "<number> <unit>" pair in text, where the number
// may carry a sign, a decimal point, and an exponent, and the unit is any
// alias in the vocabulary. Whitespace between number and unit is optional.
// Components with no match default to zero.
//
// Recognition is best effort: text outside matched pairs is ignored. Two
// matches resolving to the same canonical component return
// ErrDuplicateUnit, and a number followed by a word that matches no alias
// returns ErrUnknownUnit.
func (p *Parser) Parse(text string) (Span, error) {
	var seen [numUnits]bool
	total := new(big.Rat)

	for i := 0; i < len(text); {
		num, end, ok := scanNumber(text, i)
		if !ok {
			i++
			continue
		}

		j := end
		for j < len(text) && isSpaceByte(text[j]) {
			j++
		}

		entry, n, ok := p.matchAlias(text[j:])
		if !ok {
			if word := leadingUnitWord(text[j:]); word != "" {
				return Span{}, fmt.Errorf("%q: %w", word, ErrUnknownUnit)
			}
			// A number bound to no unit; leave it to the surrounding text.
			i++
			continue
		}

		if seen[entry.u] {
			return Span{}, fmt.Errorf("%q already parsed as %s: %w",
				entry.text, unitName[entry.u], ErrDuplicateUnit)
		}
		seen[entry.u] = true

		num.Mul(num, new(big.Rat).SetInt64(unitWeight[entry.u]))
		total.Add(total, num)
		i = j + n
	}

	span, err := fromRat(total)
	if err != nil {
		return Span{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	return span, nil
}

// matchAlias returns the longest alias that prefixes s and ends on a word
// boundary, so "minx" is not read as "min".
func (p *Parser) matchAlias(s string) (aliasEntry, int, bool) {
	for _, e := range p.aliases {
		if !strings.HasPrefix(s, e.text) {
			continue
		}
		r, _ := utf8.DecodeRuneInString(s[len(e.text):])
		if unicode.IsLetter(r) {
			continue
		}
		return e, len(e.text), true
	}
	return aliasEntry{}, 0, false
}

// leadingUnitWord returns the run of letters at the start of s.
func leadingUnitWord(s string) string {
	end := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			break
		}
		end += len(string(r))
	}
	return s[:end]
}

// maxExponent bounds the decimal exponent accepted by scanNumber. Values
// beyond it are clamped; the magnitude still exceeds the representable
// range by an enormous margin, so the result is unchanged.
const maxExponent = 4096

// scanNumber matches an optionally signed decimal number with optional
// fraction and exponent starting at position i, converting it exactly to a
// rational. The decimal point and the exponent marker are consumed only
// when digits follow them, so "5.x" yields 5 with the dot left in place.
func scanNumber(text string, i int) (*big.Rat, int, bool) {
	j := i
	neg := false
	if j < len(text) && (text[j] == '+' || text[j] == '-') {
		neg = text[j] == '-'
		j++
	}

	intStart := j
	for j < len(text) && isDigitByte(text[j]) {
		j++
	}
	intEnd := j

	fracStart, fracEnd := j, j
	if j < len(text) && text[j] == '.' {
		k := j + 1
		for k < len(text) && isDigitByte(text[k]) {
			k++
		}
		if k > j+1 {
			fracStart, fracEnd = j+1, k
			j = k
		}
	}

	if intEnd == intStart && fracEnd == fracStart {
		return nil, 0, false
	}

	exp := 0
	if j < len(text) && (text[j] == 'e' || text[j] == 'E') {
		k := j + 1
		if k < len(text) && (text[k] == '+' || text[k] == '-') {
			k++
		}
		digStart := k
		for k < len(text) && isDigitByte(text[k]) {
			k++
		}
		if k > digStart {
			// ParseInt saturates with the right sign on overflow, so the
			// clamp below holds either way.
			exp64, _ := strconv.ParseInt(text[j+1:k], 10, 64)
			if exp64 > maxExponent {
				exp64 = maxExponent
			} else if exp64 < -maxExponent {
				exp64 = -maxExponent
			}
			exp = int(exp64)
			j = k
		}
	}

	digits := text[intStart:intEnd] + text[fracStart:fracEnd]
	mantissa, _ := new(big.Int).SetString(digits, 10)
	r := new(big.Rat).SetInt(mantissa)

	scale := exp - (fracEnd - fracStart)
	if scale != 0 {
		mag := scale
		if mag < 0 {
			mag = -mag
		}
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(mag)), nil)
		if scale > 0 {
			r.Mul(r, new(big.Rat).SetInt(pow))
		} else {
			r.Quo(r, new(big.Rat).SetInt(pow))
		}
	}
	if neg {
		r.Neg(r)
	}
	return r, j, true
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
