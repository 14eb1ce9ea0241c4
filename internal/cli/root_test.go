package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/travelbot-console/pkg/config"
)

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["plan"])
	assert.True(t, names["cities"])
	assert.True(t, names["health"])
}

func TestPlanCommandFlags(t *testing.T) {
	cmd := newPlanCmd()

	for _, name := range []string{"city", "days", "interests", "with-kids", "budget", "max-walk", "style", "plans", "select"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}

	require.NoError(t, cmd.Flags().Set("days", "3"))
	assert.Equal(t, "3", cmd.Flags().Lookup("days").Value.String())
}

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		cfg := &config.Config{}
		cfg.Log.Level = level
		cfg.Log.Format = "json"
		assert.NotNil(t, newLogger(cfg))
	}
}
