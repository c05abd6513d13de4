package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(lookup(map[string]string{
		"SERVER_ADDRESS":   ":8080",
		"SHUTDOWN_TIMEOUT": "10s",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "examprep.db", cfg.DBPath)
	assert.Empty(t, cfg.SyllabusPath)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Empty(t, cfg.LLMURL)
	assert.Equal(t, 3, cfg.GradingWorkers)
	assert.Equal(t, 32, cfg.GradingQueue)
	assert.Equal(t, 1, cfg.AnalyticsPartitions)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(lookup(map[string]string{
		"SERVER_ADDRESS":       ":9000",
		"SHUTDOWN_TIMEOUT":     "1m",
		"DB_PATH":              "/data/progress.db",
		"SYLLABUS_PATH":        "configs/syllabus.yaml",
		"TIMEZONE":             "Asia/Kolkata",
		"LLM_URL":              "http://localhost:11434",
		"GRADING_WORKERS":      "8",
		"ANALYTICS_PARTITIONS": "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, "/data/progress.db", cfg.DBPath)
	assert.Equal(t, 8, cfg.GradingWorkers)
	assert.Equal(t, 4, cfg.AnalyticsPartitions)
}

func TestParse_Errors(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{"SERVER_ADDRESS": ":8080", "SHUTDOWN_TIMEOUT": "5s"}
	}
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"missing address", "SERVER_ADDRESS", "", "SERVER_ADDRESS is not set"},
		{"bad duration", "SHUTDOWN_TIMEOUT", "soon", "not a valid duration"},
		{"bad zone", "TIMEZONE", "Mars/Olympus", "not a known time zone"},
		{"bad workers", "GRADING_WORKERS", "0", "positive integer"},
		{"bad partitions", "ANALYTICS_PARTITIONS", "many", "positive integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := base()
			vars[tt.key] = tt.value
			_, err := Parse(lookup(vars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
