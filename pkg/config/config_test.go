package config

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedulebot/pkg/timetable"
)

func setenv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		EnvToken, EnvTimetableURL, EnvLang, EnvStudentGroup, EnvTimezone, EnvShowGroups,
		EnvFetchTimeout, EnvPollTimeout, EnvWeeklyChats, EnvWeeklyCron, EnvPort, EnvLogLevel,
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadDefaults(t *testing.T) {
	setenv(t, map[string]string{EnvToken: "123:abc"})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, timetable.DefaultURL, cfg.Timetable.URL)
	assert.Equal(t, "ET", cfg.Timetable.Lang)
	assert.True(t, cfg.ShowGroups)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 10*time.Second, cfg.PollTimeout)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "0 7 * * 1", cfg.Weekly.Spec)
	assert.Empty(t, cfg.Weekly.Chats)
	assert.Equal(t, log.InfoLevel, cfg.Level())

	query, err := cfg.Query()
	require.NoError(t, err)
	assert.Equal(t, timetable.DefaultGroup, query.StudentGroup)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Tallinn", loc.String())
}

func TestLoadOverrides(t *testing.T) {
	setenv(t, map[string]string{
		EnvToken:        "123:abc",
		EnvStudentGroup: "0b5e7a52-5d1c-4f43-9b61-3f0e1c9a4d2e",
		EnvShowGroups:   "false",
		EnvWeeklyChats:  "42, -100123",
		EnvPort:         "9090",
		EnvLogLevel:     "DEBUG",
		EnvFetchTimeout: "5s",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.ShowGroups)
	assert.Equal(t, []int64{42, -100123}, cfg.Weekly.Chats)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing token", map[string]string{}},
		{"bad group", map[string]string{EnvToken: "t", EnvStudentGroup: "not-a-uuid"}},
		{"bad url", map[string]string{EnvToken: "t", EnvTimetableURL: "::"}},
		{"bad chats", map[string]string{EnvToken: "t", EnvWeeklyChats: "42,abc"}},
		{"bad level", map[string]string{EnvToken: "t", EnvLogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setenv(t, tt.env)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
