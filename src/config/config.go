package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumCars       = 3
	MaxFloor      = 7
	FullLoad      = 5
	TickInterval  = 1 * time.Second
	DwellDuration = 2 * time.Second
	EventBuffer   = 64
	EnvPrefix     = "ELEVBANK_"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is fixed once the system is constructed.
type Config struct {
	NumCars             int           `yaml:"num_cars"`
	MaxFloor            int           `yaml:"max_floor"`
	FullLoad            int           `yaml:"full_load"`
	TickInterval        time.Duration `yaml:"tick_interval"`
	DwellDuration       time.Duration `yaml:"dwell_duration"`
	ResumeToDestination bool          `yaml:"resume_to_destination"`
	EventBuffer         int           `yaml:"event_buffer"`
	LogLevel            string        `yaml:"log_level"`
	LogFile             string        `yaml:"log_file"`
}

func Default() Config {
	return Config{
		NumCars:       NumCars,
		MaxFloor:      MaxFloor,
		FullLoad:      FullLoad,
		TickInterval:  TickInterval,
		DwellDuration: DwellDuration,
		EventBuffer:   EventBuffer,
		LogLevel:      "info",
	}
}

// Load decodes a YAML file on top of the defaults. Missing keys keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ReadEnvFile reads a .env file and merges it with the process environment.
// Process variables win over file entries. An empty path only reads the process environment.
func ReadEnvFile(path string) (map[string]string, error) {
	env := make(map[string]string)
	if path != "" {
		fileEnv, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides cfg with ELEVBANK_* keys found in env.
func ApplyEnv(cfg Config, env map[string]string) (Config, error) {
	ints := map[string]*int{
		"NUM_CARS":     &cfg.NumCars,
		"MAX_FLOOR":    &cfg.MaxFloor,
		"FULL_LOAD":    &cfg.FullLoad,
		"EVENT_BUFFER": &cfg.EventBuffer,
	}
	for key, field := range ints {
		raw, ok := env[EnvPrefix+key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, raw)
		}
		*field = n
	}

	durations := map[string]*time.Duration{
		"TICK_INTERVAL":  &cfg.TickInterval,
		"DWELL_DURATION": &cfg.DwellDuration,
	}
	for key, field := range durations {
		raw, ok := env[EnvPrefix+key]
		if !ok {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, raw)
		}
		*field = d
	}

	if raw, ok := env[EnvPrefix+"RESUME_TO_DESTINATION"]; ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("%w: %sRESUME_TO_DESTINATION=%q", ErrInvalidConfig, EnvPrefix, raw)
		}
		cfg.ResumeToDestination = b
	}
	if raw, ok := env[EnvPrefix+"LOG_LEVEL"]; ok {
		cfg.LogLevel = raw
	}
	if raw, ok := env[EnvPrefix+"LOG_FILE"]; ok {
		cfg.LogFile = raw
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	switch {
	case cfg.NumCars < 1:
		return fmt.Errorf("%w: num_cars must be at least 1, got %d", ErrInvalidConfig, cfg.NumCars)
	case cfg.MaxFloor < 1:
		return fmt.Errorf("%w: max_floor must be at least 1, got %d", ErrInvalidConfig, cfg.MaxFloor)
	case cfg.FullLoad < 1:
		return fmt.Errorf("%w: full_load must be at least 1, got %d", ErrInvalidConfig, cfg.FullLoad)
	case cfg.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	case cfg.DwellDuration <= 0:
		return fmt.Errorf("%w: dwell_duration must be positive", ErrInvalidConfig)
	case cfg.EventBuffer < 0:
		return fmt.Errorf("%w: event_buffer must not be negative", ErrInvalidConfig)
	}
	return nil
}
