package timespan

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// encMode is the CBOR encoder mode for spans, configured for deterministic
// output.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for spans.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// MarshalCBOR encodes the span as its signed microsecond total.
func (s Span) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(s.total)
}

// UnmarshalCBOR decodes a signed microsecond total.
func (s *Span) UnmarshalCBOR(data []byte) error {
	var total int64
	if err := decMode.Unmarshal(data, &total); err != nil {
		return fmt.Errorf("failed to decode span: %w", err)
	}
	*s = fromTotal(total)
	return nil
}

// text is the compact rendering used by the JSON and YAML codecs, for
// example "1 wk 2 d 3 h". It round-trips through Parse because every
// default symbol is also a parser alias.
func (s Span) text() string {
	return s.Render(RenderOptions{HideZeros: true, Symbols: true})
}

// MarshalJSON encodes the span in its symbol text form.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.text())
}

// UnmarshalJSON decodes a span from its text form.
func (s *Span) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("failed to decode span: %w", err)
	}
	span, err := Parse(text)
	if err != nil {
		return err
	}
	*s = span
	return nil
}

// MarshalYAML encodes the span in its symbol text form.
func (s Span) MarshalYAML() (any, error) {
	return s.text(), nil
}

// UnmarshalYAML decodes a span from its text form.
func (s *Span) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return fmt.Errorf("failed to decode span: %w", err)
	}
	span, err := Parse(text)
	if err != nil {
		return err
	}
	*s = span
	return nil
}
