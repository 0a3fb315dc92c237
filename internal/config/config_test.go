package config

import (
	"testing"

	"goamb/domain/ambtest"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "TEST_ALPHA", "TEST_PERMUTATIONS", "TEST_SEED", "TEST_EXACT_CEILING"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Test.Alpha != ambtest.DefaultAlpha {
		t.Errorf("Alpha = %v, want %v", cfg.Test.Alpha, ambtest.DefaultAlpha)
	}
	if cfg.Test.Permutations != ambtest.DefaultPermutations {
		t.Errorf("Permutations = %d, want %d", cfg.Test.Permutations, ambtest.DefaultPermutations)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("TEST_ALPHA", "0.01")
	t.Setenv("TEST_PERMUTATIONS", "2500")
	t.Setenv("TEST_SEED", "7")
	t.Setenv("TEST_EXACT_CEILING", "1000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != "9191" {
		t.Errorf("Port = %q, want 9191", cfg.Server.Port)
	}

	params := cfg.Params()
	if params.Alpha != 0.01 || params.Permutations != 2500 || params.Seed != 7 || params.ExactCeiling != 1000 {
		t.Errorf("Params() = %+v", params)
	}
	if params.Mode != ambtest.ModeAuto {
		t.Errorf("Mode = %q, want %q", params.Mode, ambtest.ModeAuto)
	}
}

func TestLoadRejectsBadAlpha(t *testing.T) {
	t.Setenv("TEST_ALPHA", "1.5")
	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted alpha outside (0, 1)")
	}
}

func TestLoadRejectsNonPositivePermutations(t *testing.T) {
	t.Setenv("TEST_PERMUTATIONS", "-3")
	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted negative permutation budget")
	}
}
