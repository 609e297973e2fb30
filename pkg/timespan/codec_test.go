package timespan_test

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/timespan-project/timespan-go/pkg/timespan"
)

func TestCBORRoundTrip(t *testing.T) {
	spans := []timespan.Span{
		{},
		timespan.FromMicroseconds(-1),
		mustNew(t, timespan.Components{Weeks: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5, Milliseconds: 6, Microseconds: 7}),
	}

	for _, want := range spans {
		data, err := cbor.Marshal(want)
		require.NoError(t, err)

		var got timespan.Span
		require.NoError(t, cbor.Unmarshal(data, &got))
		assert.True(t, got.Equal(want), "total %d", want.TotalMicroseconds())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type job struct {
		Name    string        `json:"name"`
		Timeout timespan.Span `json:"timeout"`
	}

	in := job{Name: "rebuild", Timeout: mustNew(t, timespan.Components{Minutes: 90})}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"rebuild","timeout":"1 h 30 min"}`, string(data))

	var out job
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Timeout.Equal(in.Timeout))
}

func TestJSONZero(t *testing.T) {
	data, err := json.Marshal(timespan.Span{})
	require.NoError(t, err)
	assert.Equal(t, `"0 s"`, string(data))

	var got timespan.Span
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.IsZero())
}

func TestJSONUnmarshalErrors(t *testing.T) {
	var got timespan.Span
	assert.Error(t, got.UnmarshalJSON([]byte(`42`)))
	assert.ErrorIs(t, got.UnmarshalJSON([]byte(`"5m 5 min"`)), timespan.ErrDuplicateUnit)
}

func TestYAMLRoundTrip(t *testing.T) {
	type config struct {
		Retry timespan.Span `yaml:"retry"`
	}

	var cfg config
	require.NoError(t, yaml.Unmarshal([]byte("retry: 2.5 s\n"), &cfg))
	assert.True(t, cfg.Retry.Equal(mustNew(t, timespan.Components{Seconds: 2.5})))

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var again config
	require.NoError(t, yaml.Unmarshal(data, &again))
	assert.True(t, again.Retry.Equal(cfg.Retry))
}
