package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("CARLOT_SCENARIO", "")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateBuiltIn(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario 'built-in' is valid")
}

func TestValidateReportsProblems(t *testing.T) {
	path := writeScenario(t, `
[[cards]]
kind = "teleport"

[[players]]
name = "alice"
`)
	out, err := run(t, "validate", path)
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, `unknown kind "teleport"`)
}

func TestCardsMatrix(t *testing.T) {
	path := writeScenario(t, `
name = "tiny"

[[cards]]
kind = "buy_from_auto_exchange_for_n"
amount = 100

[[cars]]
name = "Edsel"
list_price = 120
value = 60

[[players]]
name = "rich"
money = 100

[[players]]
name = "poor"
money = 99
`)
	out, err := run(t, "cards", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "tiny: 1 cars in the exchange, 0 insurances")
	assert.Contains(t, out, "buy the top car of the auto exchange for 100")
	assert.Regexp(t, `rich\s+money=100\s+cars=0\s+yes`, out)
	assert.Regexp(t, `poor\s+money=99\s+cars=0\s+no`, out)
}

func TestSimulateIsDeterministicForSeed(t *testing.T) {
	first, err := run(t, "simulate", "--seed", "7", "--rounds", "4")
	require.NoError(t, err)
	second, err := run(t, "simulate", "--seed", "7", "--rounds", "4")
	require.NoError(t, err)

	assert.Contains(t, first, "Standings after")
	assert.Regexp(t, `round 1: \w+ plays (sell|buy|take|revoke) `, first)
	assert.Equal(t, first, second)
}

func TestSimulateMissingScenario(t *testing.T) {
	_, err := run(t, "simulate", "does-not-exist.toml")
	assert.ErrorContains(t, err, "scenario file not found")
}
