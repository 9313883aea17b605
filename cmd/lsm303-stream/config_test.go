package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sunsided/lsm303dlhc/accel"
	"github.com/sunsided/lsm303dlhc/mag"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "bus: \"1\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bus != "1" {
		t.Errorf("Bus = %q, want \"1\"", cfg.Bus)
	}
	if cfg.IntervalMs != 100 {
		t.Errorf("IntervalMs = %d, want 100", cfg.IntervalMs)
	}
	if rate, _ := cfg.Accel.rate(); rate != accel.Odr100Hz {
		t.Errorf("accel rate = %v, want 100Hz", rate)
	}
	if gain, _ := cfg.Mag.gain(); gain != mag.Gain1_3 {
		t.Errorf("mag gain = %v, want ±1.3Gs", gain)
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
bus: "/dev/i2c-1"
interval_ms: 20
accel:
  rate_hz: 400
  scale_g: 8
  high_resolution: true
mag:
  rate_hz: 75
  gain_gauss: 4.7
temperature: true
mqtt:
  broker: tcp://localhost:1883
  topic: imu/bench
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rate, _ := cfg.Accel.rate(); rate != accel.Odr400Hz {
		t.Errorf("accel rate = %v, want 400Hz", rate)
	}
	if scale, _ := cfg.Accel.scale(); scale != accel.Scale8G {
		t.Errorf("accel scale = %v, want ±8g", scale)
	}
	if rate, _ := cfg.Mag.rate(); rate != mag.Odr75Hz {
		t.Errorf("mag rate = %v, want 75Hz", rate)
	}
	if gain, _ := cfg.Mag.gain(); gain != mag.Gain4_7 {
		t.Errorf("mag gain = %v, want ±4.7Gs", gain)
	}
	if cfg.MQTT.ClientID != "lsm303-stream" {
		t.Errorf("ClientID = %q, want default kept", cfg.MQTT.ClientID)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []string{
		"interval_ms: -5\n",
		"accel:\n  rate_hz: 123\n",
		"accel:\n  scale_g: 3\n",
		"mag:\n  rate_hz: 100\n",
		"mag:\n  gain_gauss: 9\n",
	}
	for _, body := range tests {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("Load(%q) accepted invalid config", body)
		}
	}
}
