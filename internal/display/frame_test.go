package display

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/launchpad/internal/countdown"
	"github.com/mattjoyce/launchpad/internal/ring"
)

func TestCompose(t *testing.T) {
	target := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	e := countdown.New(target)
	now := target.Add(-(3*24*time.Hour + 6*time.Hour + 30*time.Minute + 15*time.Second))

	f := Compose(e, now, 44)

	assert.False(t, f.Expired)
	assert.Equal(t, countdown.TimeLeft{Days: 3, Hours: 6, Minutes: 30, Seconds: 15}, f.Left)
	assert.Equal(t, target, f.Target)
	assert.Equal(t, now, f.At)

	hours := f.Units[Hours]
	assert.Equal(t, "Hours", hours.Label)
	assert.Equal(t, "06", hours.Text)
	assert.Equal(t, 24.0, hours.Max)
	assert.InDelta(t, 0.25, hours.Fraction, 1e-12)
	assert.InDelta(t, 207.35, hours.Offset, 0.01)

	days := f.Units[Days]
	assert.Equal(t, "03", days.Text)
	assert.InDelta(t, 3.0/365, days.Fraction, 1e-12)

	assert.InDelta(t, 0.5, f.Units[Minutes].Fraction, 1e-12)
	assert.InDelta(t, 0.25, f.Units[Seconds].Fraction, 1e-12)
}

func TestComposeExpired(t *testing.T) {
	target := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	f := Compose(countdown.New(target), target.Add(time.Second), 42)

	assert.True(t, f.Expired)
	for _, u := range f.Units {
		assert.Equal(t, 0, u.Value)
		assert.Equal(t, "00", u.Text)
		assert.InDelta(t, ring.Circumference(42), u.Offset, 1e-9)
	}
}

func TestFrameJSON(t *testing.T) {
	target := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	f := Compose(countdown.New(target), target.Add(-90*time.Second), 42)

	b, err := json.Marshal(f)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	units, ok := out["units"].([]any)
	require.True(t, ok)
	require.Len(t, units, 4)

	minutes := units[Minutes].(map[string]any)
	assert.Equal(t, "Minutes", minutes["label"])
	assert.Equal(t, "01", minutes["text"])
	assert.Contains(t, minutes, "offset")
	assert.Contains(t, minutes, "circumference")
}

func TestUnitMetadata(t *testing.T) {
	assert.Equal(t, "Seconds", Seconds.String())
	assert.Equal(t, 365.0, Days.Max())
	left := countdown.TimeLeft{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}
	got := []int{}
	for _, u := range Units {
		got = append(got, u.Value(left))
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestWithRadius(t *testing.T) {
	target := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	f := Compose(countdown.New(target), target.Add(-6*time.Hour), 44)

	g := f.WithRadius(42)
	assert.Equal(t, 42.0, g.Radius)
	assert.Equal(t, 44.0, f.Radius)
	assert.Equal(t, f.Left, g.Left)
	assert.InDelta(t, f.Units[Hours].Fraction, g.Units[Hours].Fraction, 1e-12)
	assert.InDelta(t, ring.StrokeOffset(42, 0.25), g.Units[Hours].Offset, 1e-9)
	assert.InDelta(t, ring.Circumference(42), g.Units[Hours].Circumference, 1e-9)
}

func TestWithRadiusAfterJSONRestoresUnits(t *testing.T) {
	target := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	f := Compose(countdown.New(target), target.Add(-6*time.Hour), 44)

	data, err := json.Marshal(f)
	require.NoError(t, err)
	var decoded Frame
	require.NoError(t, json.Unmarshal(data, &decoded))

	g := decoded.WithRadius(42)
	for i, u := range g.Units {
		assert.Equal(t, Units[i], u.Unit)
		assert.Equal(t, Units[i].String(), u.Label)
	}
}
