package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerReturnsConsoleLogger(t *testing.T) {
	log := GetLogger()
	require.NotNil(t, log)

	// Repeated calls hand back the same global instance.
	assert.Same(t, log, GetLogger())
}

func TestInitLoggerConfiguresOutputs(t *testing.T) {
	log := InitLogger("debug", []string{"stdout"})
	require.NotNil(t, log)
	assert.Same(t, log, GetLogger())

	// Unknown outputs fall back to console rather than a silent logger.
	log = InitLogger("info", []string{"syslog"})
	require.NotNil(t, log)
}
