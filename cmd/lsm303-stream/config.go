package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sunsided/lsm303dlhc/accel"
	"github.com/sunsided/lsm303dlhc/mag"
)

type Config struct {
	Bus        string      `yaml:"bus"`
	IntervalMs int         `yaml:"interval_ms"`
	Accel      AccelConfig `yaml:"accel"`
	Mag        MagConfig   `yaml:"mag"`
	Temp       bool        `yaml:"temperature"`
	MQTT       MQTTConfig  `yaml:"mqtt"`
}

type AccelConfig struct {
	RateHz         int  `yaml:"rate_hz"`
	ScaleG         int  `yaml:"scale_g"`
	HighResolution bool `yaml:"high_resolution"`
	LowPower       bool `yaml:"low_power"`
}

type MagConfig struct {
	RateHz    float64 `yaml:"rate_hz"`
	GainGauss float64 `yaml:"gain_gauss"`
}

// MQTTConfig is optional; an empty broker keeps samples on stdout.
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
}

// Load reads and validates the YAML configuration, filling in defaults for
// omitted values.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := &Config{
		IntervalMs: 100,
		Accel:      AccelConfig{RateHz: 100, ScaleG: 2},
		Mag:        MagConfig{RateHz: 15, GainGauss: 1.3},
		MQTT:       MQTTConfig{ClientID: "lsm303-stream", Topic: "imu/lsm303dlhc"},
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	if cfg.IntervalMs <= 0 {
		return nil, fmt.Errorf("interval_ms must be positive, got %d", cfg.IntervalMs)
	}
	if _, err := cfg.Accel.rate(); err != nil {
		return nil, err
	}
	if _, err := cfg.Accel.scale(); err != nil {
		return nil, err
	}
	if _, err := cfg.Mag.rate(); err != nil {
		return nil, err
	}
	if _, err := cfg.Mag.gain(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c AccelConfig) rate() (accel.Odr, error) {
	switch c.RateHz {
	case 1:
		return accel.Odr1Hz, nil
	case 10:
		return accel.Odr10Hz, nil
	case 25:
		return accel.Odr25Hz, nil
	case 50:
		return accel.Odr50Hz, nil
	case 100:
		return accel.Odr100Hz, nil
	case 200:
		return accel.Odr200Hz, nil
	case 400:
		return accel.Odr400Hz, nil
	case 1344:
		return accel.Odr1344Hz, nil
	case 1620:
		return accel.OdrLowPower1620Hz, nil
	}
	return 0, fmt.Errorf("unsupported accel rate_hz %d", c.RateHz)
}

func (c AccelConfig) scale() (accel.Scale, error) {
	switch c.ScaleG {
	case 2:
		return accel.Scale2G, nil
	case 4:
		return accel.Scale4G, nil
	case 8:
		return accel.Scale8G, nil
	case 16:
		return accel.Scale16G, nil
	}
	return 0, fmt.Errorf("unsupported accel scale_g %d", c.ScaleG)
}

func (c MagConfig) rate() (mag.Odr, error) {
	switch c.RateHz {
	case 0.75:
		return mag.Odr0_75Hz, nil
	case 1.5:
		return mag.Odr1_5Hz, nil
	case 3:
		return mag.Odr3Hz, nil
	case 7.5:
		return mag.Odr7_5Hz, nil
	case 15:
		return mag.Odr15Hz, nil
	case 30:
		return mag.Odr30Hz, nil
	case 75:
		return mag.Odr75Hz, nil
	case 220:
		return mag.Odr220Hz, nil
	}
	return 0, fmt.Errorf("unsupported mag rate_hz %g", c.RateHz)
}

func (c MagConfig) gain() (mag.Gain, error) {
	switch c.GainGauss {
	case 1.3:
		return mag.Gain1_3, nil
	case 1.9:
		return mag.Gain1_9, nil
	case 2.5:
		return mag.Gain2_5, nil
	case 4.0:
		return mag.Gain4_0, nil
	case 4.7:
		return mag.Gain4_7, nil
	case 5.6:
		return mag.Gain5_6, nil
	case 8.1:
		return mag.Gain8_1, nil
	}
	return 0, fmt.Errorf("unsupported mag gain_gauss %g", c.GainGauss)
}
