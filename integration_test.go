package timespan_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/timespan-project/timespan-go/pkg/timespan"
)

// TestE2E_ParseComputeFormat runs a value through the full pipeline: free-text
// parsing, mixed-operand arithmetic, and rendering.
func TestE2E_ParseComputeFormat(t *testing.T) {
	shift, err := timespan.Parse("1 week 2 days 3h 4min")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	// Double it, then knock off a native duration.
	doubled, err := timespan.Mul(shift, 2)
	if err != nil {
		t.Fatalf("Failed to multiply: %v", err)
	}
	trimmed, err := timespan.Sub(doubled, 8*time.Minute)
	if err != nil {
		t.Fatalf("Failed to subtract: %v", err)
	}

	span, ok := trimmed.(timespan.Span)
	if !ok {
		t.Fatalf("Expected a span, got %T", trimmed)
	}
	if got, want := span.String(), "2 weeks, 4 days, 06:00:00.000000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	out, err := span.Format("%w weeks and %d days plus %H:%M")
	if err != nil {
		t.Fatalf("Failed to format: %v", err)
	}
	if want := "2 weeks and 4 days plus 06:00"; out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}

	// The symbol rendering must parse back to the same value.
	text := span.Render(timespan.RenderOptions{HideZeros: true, Symbols: true})
	back, err := timespan.Parse(text)
	if err != nil {
		t.Fatalf("Failed to re-parse %q: %v", text, err)
	}
	if !back.Equal(span) {
		t.Errorf("Round trip changed value: %q -> %v", text, back)
	}
}

// TestE2E_Codecs round-trips a span through the CBOR and JSON codecs.
func TestE2E_Codecs(t *testing.T) {
	span, err := timespan.Parse("-90 minutes")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	raw, err := cbor.Marshal(span)
	if err != nil {
		t.Fatalf("Failed to CBOR-encode: %v", err)
	}
	var fromCBOR timespan.Span
	if err := cbor.Unmarshal(raw, &fromCBOR); err != nil {
		t.Fatalf("Failed to CBOR-decode: %v", err)
	}
	if !fromCBOR.Equal(span) {
		t.Errorf("CBOR round trip changed value: %v != %v", fromCBOR, span)
	}

	blob, err := json.Marshal(span)
	if err != nil {
		t.Fatalf("Failed to JSON-encode: %v", err)
	}
	var fromJSON timespan.Span
	if err := json.Unmarshal(blob, &fromJSON); err != nil {
		t.Fatalf("Failed to JSON-decode: %v", err)
	}
	if !fromJSON.Equal(span) {
		t.Errorf("JSON round trip changed value: %v != %v", fromJSON, span)
	}
}

// TestE2E_VocabularyFile loads a vocabulary override from disk and uses it
// end to end.
func TestE2E_VocabularyFile(t *testing.T) {
	doc := "aliases:\n  hours: [stunden, stunde, std]\n"
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("Failed to write vocabulary file: %v", err)
	}

	vocab, err := timespan.LoadVocabulary(path)
	if err != nil {
		t.Fatalf("Failed to load vocabulary: %v", err)
	}

	span, err := timespan.NewParser(vocab).Parse("2 stunden 30 min")
	if err != nil {
		t.Fatalf("Failed to parse with override: %v", err)
	}
	if got := span.TotalMicroseconds(); got != 2*timespan.Hour+30*timespan.Minute {
		t.Errorf("Parsed %d microseconds", got)
	}
}
