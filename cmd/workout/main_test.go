package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bzimmer/workout"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"workout"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestDefault(t *testing.T) {
	a := assert.New(t)
	stdout, stderr, err := execute(t)
	a.NoError(err)
	a.Equal(strings.Join([]string{
		"Activity type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Mean speed: 1.000 km/h; Calories: 336.000.",
		"Activity type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories: 699.750.",
		"Activity type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Mean speed: 5.850 km/h; Calories: 157.500.",
		"",
	}, "\n"), stdout)
	a.Contains(stderr, "etc/packages.json")
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	stdout, _, err := execute(t, "--json")
	a.NoError(err)
	a.Equal(3, strings.Count(stdout, `"type":`))
	a.Contains(stdout, `"type": "SportsWalking"`)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "packages.json")

	t.Run("file", func(t *testing.T) {
		a := assert.New(t)
		require.NoError(t, os.WriteFile(cfg, []byte(`{"packages": [{"code": "RUN", "data": [15000, 1, 75]}]}`), 0600))
		stdout, stderr, err := execute(t, "--config", cfg)
		a.NoError(err)
		a.Equal(workout.NewRunning(15000, 1, 75).Report().String()+"\n", stdout)
		a.Contains(stderr, cfg)
	})

	t.Run("unknown code", func(t *testing.T) {
		a := assert.New(t)
		require.NoError(t, os.WriteFile(cfg, []byte(`{"packages": [{"code": "XYZ", "data": [1]}]}`), 0600))
		stdout, stderr, err := execute(t, "--config", cfg)
		a.ErrorIs(err, workout.ErrUnknownActivity)
		a.Empty(stdout)
		a.Contains(stderr, "unknown activity code")
	})

	t.Run("malformed", func(t *testing.T) {
		a := assert.New(t)
		require.NoError(t, os.WriteFile(cfg, []byte(`{"packages": `), 0600))
		_, _, err := execute(t, "--config", cfg)
		a.Error(err)
	})

	t.Run("missing", func(t *testing.T) {
		a := assert.New(t)
		_, _, err := execute(t, "--config", filepath.Join(dir, "missing.json"))
		a.ErrorIs(err, os.ErrNotExist)
	})
}
