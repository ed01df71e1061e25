package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"schedulebot/pkg/timetable"
)

const (
	EnvToken        = "API_KEY"
	EnvTimetableURL = "TIMETABLE_URL"
	EnvLang         = "TIMETABLE_LANG"
	EnvStudentGroup = "STUDENT_GROUP_UUID"
	EnvTimezone     = "TIMEZONE"
	EnvShowGroups   = "SHOW_GROUPS"
	EnvFetchTimeout = "FETCH_TIMEOUT"
	EnvPollTimeout  = "POLL_TIMEOUT"
	EnvWeeklyChats  = "WEEKLY_CHATS"
	EnvWeeklyCron   = "WEEKLY_CRON"
	EnvPort         = "PORT"
	EnvLogLevel     = "LOG_LEVEL"
)

type Config struct {
	// Token authenticates the bot against Telegram.
	Token string `validate:"required"`

	Timetable TimetableConfig
	Weekly    WeeklyConfig

	Timezone     string        `validate:"required"`
	ShowGroups   bool
	FetchTimeout time.Duration `validate:"gt=0"`
	PollTimeout  time.Duration `validate:"gt=0"`
	Port         int           `validate:"min=1,max=65535"`
	LogLevel     string        `validate:"oneof=debug info warn error fatal"`
}

// TimetableConfig holds the fixed parameters of the timetable request.
type TimetableConfig struct {
	URL          string `validate:"required,url"`
	Lang         string `validate:"required"`
	StudentGroup string `validate:"required,uuid"`
}

// WeeklyConfig enables the weekly broadcast when Chats is not empty.
type WeeklyConfig struct {
	Spec  string `validate:"required"`
	Chats []int64
}

// Load reads the configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	chats, err := parseChats(v.GetString(EnvWeeklyChats))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Token: v.GetString(EnvToken),
		Timetable: TimetableConfig{
			URL:          v.GetString(EnvTimetableURL),
			Lang:         v.GetString(EnvLang),
			StudentGroup: v.GetString(EnvStudentGroup),
		},
		Weekly: WeeklyConfig{
			Spec:  v.GetString(EnvWeeklyCron),
			Chats: chats,
		},
		Timezone:     v.GetString(EnvTimezone),
		ShowGroups:   v.GetBool(EnvShowGroups),
		FetchTimeout: v.GetDuration(EnvFetchTimeout),
		PollTimeout:  v.GetDuration(EnvPollTimeout),
		Port:         v.GetInt(EnvPort),
		LogLevel:     strings.ToLower(v.GetString(EnvLogLevel)),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(EnvTimetableURL, timetable.DefaultURL)
	v.SetDefault(EnvLang, timetable.DefaultLang)
	v.SetDefault(EnvStudentGroup, timetable.DefaultGroup.String())
	v.SetDefault(EnvTimezone, "Europe/Tallinn")
	v.SetDefault(EnvShowGroups, true)
	v.SetDefault(EnvFetchTimeout, "30s")
	v.SetDefault(EnvPollTimeout, "10s")
	v.SetDefault(EnvWeeklyChats, "")
	v.SetDefault(EnvWeeklyCron, "0 7 * * 1")
	v.SetDefault(EnvPort, 8080)
	v.SetDefault(EnvLogLevel, "info")
}

func parseChats(s string) ([]int64, error) {
	var chats []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry %q: %w", EnvWeeklyChats, part, err)
		}
		chats = append(chats, id)
	}
	return chats, nil
}

// Query returns the fixed timetable request parameters.
func (c *Config) Query() (timetable.Query, error) {
	group, err := uuid.Parse(c.Timetable.StudentGroup)
	if err != nil {
		return timetable.Query{}, fmt.Errorf("invalid %s: %w", EnvStudentGroup, err)
	}
	return timetable.Query{
		URL:          c.Timetable.URL,
		Lang:         c.Timetable.Lang,
		StudentGroup: group,
	}, nil
}

// Location loads the time zone "today" is computed in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTimezone, err)
	}
	return loc, nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
