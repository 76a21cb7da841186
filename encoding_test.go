package months_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rabitt1ove/months"
)

type billing struct {
	Start  months.Month  `json:"start" yaml:"start" toml:"start"`
	Window months.Period `json:"window" yaml:"window" toml:"window"`
	Cycle  months.Range  `json:"cycle" yaml:"cycle" toml:"cycle"`
}

func sampleBilling(t *testing.T) billing {
	t.Helper()

	r, err := months.NewRange(m(2019, time.April), m(2019, time.June))
	require.NoError(t, err)
	return billing{
		Start:  m(2019, time.March),
		Window: months.NewPeriod(m(2019, time.January), m(2019, time.March)),
		Cycle:  r,
	}
}

func assertBillingEqual(t *testing.T, want, got billing) {
	t.Helper()

	assert.Equal(t, want.Start, got.Start)
	assert.True(t, want.Window.Equal(got.Window), "window %s != %s", want.Window, got.Window)
	assert.True(t, want.Cycle.Equal(got.Cycle), "cycle %s != %s", want.Cycle, got.Cycle)
	assert.Equal(t, want.Window.Months(), got.Window.Months())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	want := sampleBilling(t)
	data, err := json.Marshal(want)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2019-03","window":"2019-01/2019-03","cycle":"2019-04/2019-06"}`, string(data))

	var got billing
	require.NoError(t, json.Unmarshal(data, &got))
	assertBillingEqual(t, want, got)
}

func TestJSON_MapKeys(t *testing.T) {
	t.Parallel()

	totals := map[months.Month]int{
		m(2019, time.January): 10,
		m(2019, time.February): 20,
	}
	data, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2019-01":10,"2019-02":20}`, string(data))

	var got map[months.Month]int
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, totals, got)
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	var mo months.Month
	require.ErrorIs(t, json.Unmarshal([]byte(`"2019-13"`), &mo), months.ErrInvalidDate)

	var r months.Range
	require.ErrorIs(t, json.Unmarshal([]byte(`"2019-03/2019-03"`), &r), months.ErrInvalidRange)

	_, err := json.Marshal(months.Month{})
	require.ErrorIs(t, err, months.ErrInvalidDate)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	want := sampleBilling(t)
	data, err := yaml.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2019-01/2019-03")

	var got billing
	require.NoError(t, yaml.Unmarshal(data, &got))
	assertBillingEqual(t, want, got)

	var decoded billing
	doc := "start: \"2019-03\"\nwindow: \"2019-03/2019-01\"\ncycle: \"2019-04/2019-06\"\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &decoded))
	assertBillingEqual(t, want, decoded)
}

func TestTOML(t *testing.T) {
	t.Parallel()

	want := sampleBilling(t)
	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(want))
	assert.Contains(t, buf.String(), `start = "2019-03"`)

	var got billing
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err)
	assertBillingEqual(t, want, got)
}
