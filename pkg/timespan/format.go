package timespan

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatter renders spans using an overridable vocabulary. The zero-config
// entry points on Span use the default vocabulary.
type Formatter struct {
	vocab      Vocabulary
	directives map[string]directive
}

// NewFormatter returns a formatter using the given vocabulary.
func NewFormatter(v Vocabulary) *Formatter {
	return &Formatter{vocab: v, directives: v.directiveTable()}
}

// defaultFormatter backs the Span-level formatting methods. Built once and
// never mutated.
var defaultFormatter = NewFormatter(DefaultVocabulary())

// RenderOptions selects one of the canned presentations.
type RenderOptions struct {
	// HideZeros omits zero-valued components where that reads naturally:
	// the weeks and days clauses in clock form, any component in symbol form.
	HideZeros bool

	// Symbols renders each component as "<value> <symbol>" instead of the
	// clock form.
	Symbols bool

	// HideMilli drops both milliseconds and microseconds.
	HideMilli bool

	// HideMicro drops microseconds only.
	HideMicro bool
}

// Format substitutes %-directives in template with the span's components.
//
// A directive is % followed by a directive key; the default keys are
// %w %d %h %H %m %M %s %S %ms %mS %us %uS, where the uppercase-final forms
// are zero-padded (2 digits for H/M/S, 3 for mS/uS). %% emits a literal
// percent sign, and a % not followed by a word character is kept as-is.
// An unrecognized key returns ErrFormat.
func (s Span) Format(template string) (string, error) {
	return defaultFormatter.Format(s, template)
}

// Render renders a canned presentation with the default vocabulary.
func (s Span) Render(o RenderOptions) string {
	return defaultFormatter.Render(s, o)
}

// String renders the span in the default textual form, for example
// "1 week, 2 days, 03:04:05.006007". Weeks and days use the singular word
// when equal to one.
func (s Span) String() string {
	return defaultFormatter.Render(s, RenderOptions{})
}

// Format substitutes %-directives in template using this formatter's
// vocabulary. See Span.Format for the directive syntax.
func (f *Formatter) Format(s Span, template string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(template) && template[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}
		j := i + 1
		for j < len(template) && isWordByte(template[j]) {
			j++
		}
		key := template[i+1 : j]
		if key == "" {
			// A bare % with no key is literal text.
			b.WriteByte('%')
			i = j
			continue
		}
		d, ok := f.directives[key]
		if !ok {
			return "", fmt.Errorf("%q: %w", "%"+key, ErrFormat)
		}
		b.WriteString(formatComponent(s.component(d.u), d.width))
		i = j
	}
	return b.String(), nil
}

// Render renders one of the canned presentations using this formatter's
// vocabulary.
//
// In clock form the weeks and days clauses are followed by a comma and the
// time of day is always printed. In symbol form every non-suppressed
// component is emitted as "<value> <symbol>"; if HideZeros suppresses
// everything, the result falls back to "0 <seconds-symbol>".
func (f *Formatter) Render(s Span, o RenderOptions) string {
	var parts []string

	if o.Symbols {
		for u := unitWeeks; u < numUnits; u++ {
			if u == unitMicroseconds && (o.HideMicro || o.HideMilli) {
				continue
			}
			if u == unitMilliseconds && o.HideMilli {
				continue
			}
			v := s.component(u)
			if v != 0 || !o.HideZeros {
				parts = append(parts, fmt.Sprintf("%d %s", v, f.vocab.Symbols[u]))
			}
		}
		if parts == nil {
			parts = append(parts, "0 "+f.vocab.Symbols[unitSeconds])
		}
		return strings.Join(parts, " ")
	}

	if !o.HideZeros || s.weeks != 0 {
		parts = append(parts, fmt.Sprintf("%d %s,", s.weeks, weekWord(s.weeks)))
	}
	if !o.HideZeros || s.days != 0 {
		parts = append(parts, fmt.Sprintf("%d %s,", s.days, dayWord(s.days)))
	}

	clock := fmt.Sprintf("%02d:%02d:%02d", s.hours, s.minutes, s.seconds)
	switch {
	case o.HideMilli:
	case o.HideMicro:
		clock += fmt.Sprintf(".%03d", s.milliseconds)
	default:
		clock += fmt.Sprintf(".%03d%03d", s.milliseconds, s.microseconds)
	}
	parts = append(parts, clock)

	return strings.Join(parts, " ")
}

func formatComponent(v int64, width int) string {
	if width > 0 {
		return fmt.Sprintf("%0*d", width, v)
	}
	return strconv.FormatInt(v, 10)
}

// weekWord returns the singular or plural word for the weeks clause.
func weekWord(n int64) string {
	if n == 1 {
		return "week"
	}
	return "weeks"
}

// dayWord returns the singular or plural word for the days clause.
func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

func isWordByte(c byte) bool {
	return c == '_' ||
		c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}
