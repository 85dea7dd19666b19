package observability_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/bankledger/internal/observability"
)

func TestInitLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.InitLogger(observability.LogConfig{
		Level:  "debug",
		Format: "json",
		Writer: &buf,
	})

	logger.Debug("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestInitLogger_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.InitLogger(observability.LogConfig{
		Level:  "warn",
		Format: "text",
		Writer: &buf,
	})

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestInitLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.InitLogger(observability.LogConfig{
		Level:  "bogus",
		Format: "text",
		Writer: &buf,
	})

	logger.Debug("dropped")
	assert.Empty(t, buf.String())

	logger.Info("kept")
	assert.Contains(t, buf.String(), "kept")
}
