package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
)

func TestParseTimerExpression_Duration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"PT1H", time.Hour},
		{"PT30M", 30 * time.Minute},
		{"PT45S", 45 * time.Second},
		{"PT1H30M", 90 * time.Minute},
		{"PT2H15M30S", 2*time.Hour + 15*time.Minute + 30*time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			parsed, err := ParseTimerExpression(&bpmn.TimerDefinition{Value: tt.value})
			require.NoError(t, err)
			assert.Equal(t, "duration", parsed.Type)
			assert.Equal(t, tt.want, parsed.Duration)
		})
	}
}

func TestParseTimerExpression_Repetition(t *testing.T) {
	parsed, err := ParseTimerExpression(&bpmn.TimerDefinition{Value: "R3/PT10M"})
	require.NoError(t, err)
	assert.Equal(t, "repetition", parsed.Type)
	assert.Equal(t, 10*time.Minute, parsed.Duration)
	assert.Equal(t, 3, parsed.Repeats)

	unbounded, err := ParseTimerExpression(&bpmn.TimerDefinition{Value: "R/PT1H"})
	require.NoError(t, err)
	assert.Equal(t, -1, unbounded.Repeats)
}

func TestParseTimerExpression_Date(t *testing.T) {
	parsed, err := ParseTimerExpression(&bpmn.TimerDefinition{Value: "2030-01-02T15:04:05Z"})
	require.NoError(t, err)
	assert.Equal(t, "date", parsed.Type)
	assert.Equal(t, time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC), parsed.At)
}

func TestParseTimerExpression_Invalid(t *testing.T) {
	for _, v := range []string{"", "banana", "P1D2X", "R3/banana"} {
		_, err := ParseTimerExpression(&bpmn.TimerDefinition{Value: v})
		assert.Error(t, err, v)
	}
	_, err := ParseTimerExpression(nil)
	assert.Error(t, err)
}

func TestNextFireTime(t *testing.T) {
	from := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	d, _ := ParseTimerExpression(&bpmn.TimerDefinition{Value: "PT1H"})
	next, ok := NextFireTime(d, from, nil)
	require.True(t, ok)
	assert.Equal(t, from.Add(time.Hour), next)

	// A future date fires at the date; a past one fires immediately.
	future, _ := ParseTimerExpression(&bpmn.TimerDefinition{Value: "2030-01-01T00:00:00Z"})
	next, ok = NextFireTime(future, from, nil)
	require.True(t, ok)
	assert.Equal(t, future.At, next)

	past, _ := ParseTimerExpression(&bpmn.TimerDefinition{Value: "2020-01-01T00:00:00Z"})
	next, ok = NextFireTime(past, from, nil)
	require.True(t, ok)
	assert.Equal(t, from, next)

	// Repetition respects the remaining counter.
	rep, _ := ParseTimerExpression(&bpmn.TimerDefinition{Value: "R2/PT10M"})
	remaining := 2
	next, ok = NextFireTime(rep, from, &remaining)
	require.True(t, ok)
	assert.Equal(t, from.Add(10*time.Minute), next)

	exhausted := 0
	_, ok = NextFireTime(rep, from, &exhausted)
	assert.False(t, ok)
}
