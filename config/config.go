package config

import (
	"fmt"
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	USB       USBConfig `yaml:"usb"`
	LogLevel  string    `yaml:"log_level"`
	ShowInOut bool      `yaml:"show_in_out"`
}

// USBConfig selects the device to open. Discovery is not performed;
// exactly this VID/PID pair is opened.
type USBConfig struct {
	VID uint16 `yaml:"vid"`
	PID uint16 `yaml:"pid"`
}

const (
	DefaultVID = 0x18d1
	DefaultPID = 0x4ee0
)

func Default() Config {
	return Config{
		USB:      USBConfig{VID: DefaultVID, PID: DefaultPID},
		LogLevel: "info",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path or
// a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		log.WithField("path", path).Warn("config file not found, using defaults")
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks configuration correctness without mutating it.
func Validate(cfg Config) error {
	if cfg.USB.VID == 0 {
		return fmt.Errorf("usb.vid must be set")
	}
	if cfg.USB.PID == 0 {
		return fmt.Errorf("usb.pid must be set")
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %v", err)
	}
	return nil
}
