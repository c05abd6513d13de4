package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	DBPath       string
	SyllabusPath string         // optional YAML seed applied on start
	Location     *time.Location // default zone for calendar-day bucketing

	// LLM grading; grading is disabled when LLMURL is empty.
	LLMURL         string // OpenAI-compatible endpoint, e.g. "http://localhost:11434"
	LLMModel       string // model name, e.g. "qwen3-8b"
	GradingWorkers int
	GradingQueue   int

	AnalyticsPartitions int
}

// Load reads the configuration from the environment, loading .env first if
// it exists, and exits on invalid values.
func Load() *Config {
	_ = godotenv.Load()
	cfg, err := Parse(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Parse builds a Config from getenv.
func Parse(getenv func(string) string) (*Config, error) {
	e := env{getenv: getenv}
	cfg := &Config{
		ServerAddress:       e.mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:     e.mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:              e.getenvDefault("DB_PATH", "examprep.db"),
		SyllabusPath:        e.getenvDefault("SYLLABUS_PATH", ""),
		Location:            e.getLocation("TIMEZONE"),
		LLMURL:              e.getenvDefault("LLM_URL", ""),
		LLMModel:            e.getenvDefault("LLM_MODEL", "qwen3-8b"),
		GradingWorkers:      e.getenvInt("GRADING_WORKERS", 3),
		GradingQueue:        e.getenvInt("GRADING_QUEUE", 32),
		AnalyticsPartitions: e.getenvInt("ANALYTICS_PARTITIONS", 1),
	}
	if e.err != nil {
		return nil, e.err
	}
	return cfg, nil
}

// env records the first lookup error so Parse can report it once.
type env struct {
	getenv func(string) string
	err    error
}

func (e *env) fail(format string, args ...any) {
	if e.err == nil {
		e.err = fmt.Errorf(format, args...)
	}
}

func (e *env) mustGetenv(k string) string {
	v := e.getenv(k)
	if v == "" {
		e.fail("required environment variable %s is not set", k)
	}
	return v
}

func (e *env) mustGetDuration(k string) time.Duration {
	v := e.mustGetenv(k)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail("%s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func (e *env) getenvDefault(k, fallback string) string {
	if v := e.getenv(k); v != "" {
		return v
	}
	return fallback
}

func (e *env) getenvInt(k string, fallback int) int {
	v := e.getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		e.fail("%s=%q must be a positive integer", k, v)
		return fallback
	}
	return n
}

func (e *env) getLocation(k string) *time.Location {
	v := e.getenvDefault(k, "UTC")
	loc, err := time.LoadLocation(v)
	if err != nil {
		e.fail("%s=%q is not a known time zone: %v", k, v, err)
		return time.UTC
	}
	return loc
}
