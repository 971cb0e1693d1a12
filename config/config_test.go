package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Population.TotalAgents != 100 {
		t.Errorf("total_agents = %d, want 100", cfg.Population.TotalAgents)
	}
	if cfg.Arena.SpaceSize != 50 {
		t.Errorf("space_size = %v, want 50", cfg.Arena.SpaceSize)
	}
	if cfg.Run.TotalDays != 180 {
		t.Errorf("total_days = %d, want 180", cfg.Run.TotalDays)
	}
	if cfg.Derived.AgentsPerGender != 50 {
		t.Errorf("AgentsPerGender = %d, want 50", cfg.Derived.AgentsPerGender)
	}
	// floor(100 * 0.332 / 2) = 16
	if cfg.Derived.InitialPairs != 16 {
		t.Errorf("InitialPairs = %d, want 16", cfg.Derived.InitialPairs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("population:\n  total_agents: 20\nrun:\n  total_days: 7\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Population.TotalAgents != 20 {
		t.Errorf("total_agents = %d, want 20", cfg.Population.TotalAgents)
	}
	if cfg.Run.TotalDays != 7 {
		t.Errorf("total_days = %d, want 7", cfg.Run.TotalDays)
	}
	// Untouched fields keep their defaults
	if cfg.Population.InitialPairRate != 0.332 {
		t.Errorf("initial_pair_rate = %v, want default 0.332", cfg.Population.InitialPairRate)
	}
	if cfg.Derived.AgentsPerGender != 10 {
		t.Errorf("AgentsPerGender = %d, want 10", cfg.Derived.AgentsPerGender)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"odd agents", func(c *Config) { c.Population.TotalAgents = 7 }, true},
		{"negative agents", func(c *Config) { c.Population.TotalAgents = -2 }, true},
		{"zero agents", func(c *Config) { c.Population.TotalAgents = 0 }, false},
		{"break prob above one", func(c *Config) { c.Dissolution.BreakProbability = 1.5 }, true},
		{"negative pair rate", func(c *Config) { c.Population.InitialPairRate = -0.1 }, true},
		{"app rate above one", func(c *Config) { c.University.MeetRateApp = 2 }, true},
		{"noapp rate at one", func(c *Config) { c.University.MeetRateNoApp = 1 }, false},
		{"zero space", func(c *Config) { c.Arena.SpaceSize = 0 }, true},
		{"negative speed", func(c *Config) { c.Movement.Speed = -1 }, true},
		{"infinite speed", func(c *Config) { c.Movement.Speed = math.Inf(1) }, true},
		{"NaN speed", func(c *Config) { c.Movement.Speed = math.NaN() }, true},
		{"zero speed", func(c *Config) { c.Movement.Speed = 0 }, false},
		{"infinite space", func(c *Config) { c.Arena.SpaceSize = math.Inf(1) }, true},
		{"NaN space", func(c *Config) { c.Arena.SpaceSize = math.NaN() }, true},
		{"infinite meet distance", func(c *Config) { c.Pairing.MeetDistance = math.Inf(1) }, true},
		{"negative infinite meet distance", func(c *Config) { c.Pairing.MeetDistance = math.Inf(-1) }, true},
		{"zero meet distance", func(c *Config) { c.Pairing.MeetDistance = 0 }, false},
		{"zero days is a no-op run", func(c *Config) { c.Run.TotalDays = 0 }, false},
		{"negative days is a no-op run", func(c *Config) { c.Run.TotalDays = -3 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateRefreshesDerived(t *testing.T) {
	cfg := Default()
	cfg.Population.TotalAgents = 4
	cfg.Population.InitialPairRate = 1.0
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Derived.AgentsPerGender != 2 {
		t.Errorf("AgentsPerGender = %d, want 2", cfg.Derived.AgentsPerGender)
	}
	if cfg.Derived.InitialPairs != 2 {
		t.Errorf("InitialPairs = %d, want 2", cfg.Derived.InitialPairs)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Pairing.StrictApp = true
	cfg.Run.Seed = 99

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !loaded.Pairing.StrictApp || loaded.Run.Seed != 99 {
		t.Errorf("written config not reloaded: strict=%v seed=%d", loaded.Pairing.StrictApp, loaded.Run.Seed)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic from Cfg() before Init()")
		}
	}()
	Cfg()
}
