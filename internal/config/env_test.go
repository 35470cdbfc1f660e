package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CARLOT_SCENARIO", "")
	t.Setenv("CARLOT_CHOICE_TIMEOUT", "")
	t.Setenv("CARLOT_SEED", "")

	env := FromEnv()
	assert.Equal(t, logrus.InfoLevel, env.LogLevel)
	assert.Empty(t, env.Scenario)
	assert.Zero(t, env.ChoiceTimeout)
	assert.Zero(t, env.Seed)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CARLOT_SCENARIO", "tables/showroom.toml")
	t.Setenv("CARLOT_CHOICE_TIMEOUT", "30")
	t.Setenv("CARLOT_SEED", "42")

	env := FromEnv()
	assert.Equal(t, logrus.DebugLevel, env.LogLevel)
	assert.Equal(t, "tables/showroom.toml", env.Scenario)
	assert.Equal(t, 30*time.Second, env.ChoiceTimeout)
	assert.Equal(t, int64(42), env.Seed)
	assert.Equal(t, logrus.DebugLevel, env.NewLogger().GetLevel())
}

func TestFromEnvBadValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("CARLOT_CHOICE_TIMEOUT", "soon")

	env := FromEnv()
	assert.Equal(t, logrus.InfoLevel, env.LogLevel)
	assert.Zero(t, env.ChoiceTimeout)
}
