package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Grid.StartTime != "07:00" || cfg.Grid.EndTime != "22:00" {
		t.Fatalf("unexpected default grid window %s-%s", cfg.Grid.StartTime, cfg.Grid.EndTime)
	}
	if cfg.Grid.HourHeightPx != 100 {
		t.Fatalf("expected default hour height 100, got %v", cfg.Grid.HourHeightPx)
	}
	if cfg.Redis.Enabled {
		t.Fatal("redis cache should be disabled by default")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("GRID_SLOT_MINUTES", "15")
	t.Setenv("GRID_SLOT_POLICY", "overshoot")
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Grid.SlotMinutes != 15 || cfg.Grid.SlotPolicy != "overshoot" || cfg.Server.Port != "8080" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("GRID_HOUR_HEIGHT_PX", "tall")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-numeric hour height")
	}
}
