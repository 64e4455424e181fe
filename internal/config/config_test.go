package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Hunterosmun/conways-game/pkg/grid"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigMatchesReferenceBoard(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rows != 30 || cfg.Cols != 20 || cfg.Topology != grid.Bounded {
		t.Fatalf("unexpected default board %dx%d %s", cfg.Rows, cfg.Cols, cfg.Topology)
	}
	require.NoError(t, cfg.Validate())
}

func TestDecodeHCL(t *testing.T) {
	src := []byte(`
rows           = 12
cols           = 16
topology       = "continuous"
stop_on_resize = false
live_percent   = 25
`)
	cfg, err := Decode("life.hcl", src, DefaultConfig())
	require.NoError(t, err)

	want := DefaultConfig()
	want.Rows, want.Cols = 12, 16
	want.Topology = grid.Toroidal
	want.StopOnResize = false
	want.LivePercent = 25
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON(t *testing.T) {
	cfg, err := Decode("life.json", []byte(`{"rows": 9, "tps": 12}`), DefaultConfig())
	require.NoError(t, err)
	if cfg.Rows != 9 || cfg.TPS != 12 || cfg.Cols != 20 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := Decode("life.hcl", []byte(`topology = "klein"`), DefaultConfig())
	require.Error(t, err)

	_, err = Decode("life.hcl", []byte(`rows = "many"`), DefaultConfig())
	require.Error(t, err)

	_, err = Decode("life.hcl", []byte(`unknown_key = 1`), DefaultConfig())
	require.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `
rows         = 10
cols         = 11
live_percent = 15
tps          = 5
`)
	env := []string{"LIFE_COLS=13", "LIFE_TPS=7", "HOME=/root", "LIFE_BOGUS"}
	args := []string{"-config", path, "-tps", "30", "-topology", "toroidal"}

	cfg, err := Load("life", args, env, io.Discard)
	require.NoError(t, err)

	require.Equal(t, 10, cfg.Rows, "file value")
	require.Equal(t, 13, cfg.Cols, "env beats file")
	require.Equal(t, 15, cfg.LivePercent, "file value")
	require.Equal(t, 30, cfg.TPS, "flag beats env and file")
	require.Equal(t, grid.Toroidal, cfg.Topology, "flag value")
	require.Equal(t, path, cfg.File)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("life", []string{"-h"}, nil, io.Discard)
	require.True(t, IsHelp(err))

	_, err = Load("life", []string{"-rows", "0"}, nil, io.Discard)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = Load("life", []string{"-topology", "sphere"}, nil, io.Discard)
	require.Error(t, err)

	_, err = Load("life", []string{"-config", filepath.Join(t.TempDir(), "missing.hcl")}, nil, io.Discard)
	require.Error(t, err)
}

func TestWithMapIgnoresBadValues(t *testing.T) {
	base := DefaultConfig()
	cfg := base.WithMap(map[string]string{
		"rows":         "-3",
		"cols":         "abc",
		"live_percent": "140",
		"topology":     "klein",
		"seed":         "7",
	})
	want := base
	want.Seed = 7
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvMap(t *testing.T) {
	got := EnvMap([]string{"LIFE_LIVE_PERCENT=10", "PATH=/bin", "LIFE_ROWS=4", "LIFE_EMPTY="})
	want := map[string]string{"live_percent": "10", "rows": "4", "empty": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("env map mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	mutations := map[string]func(*Config){
		"cols":         func(c *Config) { c.Cols = 0 },
		"live percent": func(c *Config) { c.LivePercent = -1 },
		"scale":        func(c *Config) { c.Scale = 0 },
		"tps":          func(c *Config) { c.TPS = 0 },
		"log format":   func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range mutations {
		cfg := DefaultConfig()
		mutate(&cfg)
		if cfg.Validate() == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestSchedulerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Topology, cfg.StopOnResize = 4, 6, grid.Toroidal, false
	opts := cfg.SchedulerOptions(nil)
	if opts.Rows != 4 || opts.Cols != 6 || opts.Topology != grid.Toroidal || opts.StopOnResize {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.LivePercent != cfg.LivePercent || opts.Seed != cfg.Seed {
		t.Fatal("randomize settings not carried over")
	}
}
