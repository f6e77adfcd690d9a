package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DBPath         string
	JWTSecret      string
	MeetingBaseURL string
	// RingTimeoutSec bounds how long an unanswered call keeps ringing.
	// 0 keeps "created" sessions ringable forever.
	RingTimeoutSec int
	TemplateGlob   string
	StaticDir      string
}

func Load() Config {
	port := 8080
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "skillswap.db"
	}

	meetingBase := os.Getenv("MEETING_BASE_URL")
	if meetingBase == "" {
		meetingBase = "https://meet.jit.si"
	}

	ringTimeout := 60
	if v := os.Getenv("VIDEO_RING_TIMEOUT"); v != "" {
		if t, err := strconv.Atoi(v); err == nil && t >= 0 {
			ringTimeout = t
		}
	}

	return Config{
		Port:           port,
		DBPath:         dbPath,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		MeetingBaseURL: meetingBase,
		RingTimeoutSec: ringTimeout,
		TemplateGlob:   "web/templates/*.html",
		StaticDir:      "web/static",
	}
}
