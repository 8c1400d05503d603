package fnlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	tt := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.want, tc.level.String())
	}
}

func TestLevel_Ordering(t *testing.T) {
	assert.True(t, LevelTrace < LevelDebug)
	assert.True(t, LevelDebug < LevelInfo)
	assert.True(t, LevelInfo < LevelWarn)
	assert.True(t, LevelWarn < LevelError)
}

func TestParseLevel(t *testing.T) {
	tt := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"WARN", LevelWarn},
		{" info ", LevelInfo},
	}

	for _, tc := range tt {
		got, err := ParseLevel(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown level "verbose"`)
}
