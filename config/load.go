package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names for overrides
const (
	EnvBaseSize      = "PYRAMID_BASE_SIZE"
	EnvTreeCount     = "PYRAMID_TREE_COUNT"
	EnvForestRadius  = "PYRAMID_FOREST_RADIUS"
	EnvTreeSpacing   = "PYRAMID_TREE_SPACING"
	EnvRotationSpeed = "PYRAMID_ROTATION_SPEED"
	EnvCycleDuration = "PYRAMID_CYCLE_DURATION"
	EnvGroundSize    = "PYRAMID_GROUND_SIZE"
	EnvSeed          = "PYRAMID_SEED"
)

// Load resolves the configuration: defaults, then the YAML file (optional),
// then the .env file (optional, missing is fine), then PYRAMID_* variables
// The result is normalized and validated
func Load(path, envFile string) (Generation, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := DecodeYAML(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if clamped := ClampBaseSize(cfg.PyramidBaseSize); clamped != cfg.PyramidBaseSize {
		log.Printf("config: pyramid_base_size %d clamped to %d", cfg.PyramidBaseSize, clamped)
	}
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DecodeYAML overlays a YAML document onto cfg after schema validation
// Keys absent from the document keep their current values
func DecodeYAML(raw []byte, cfg *Generation) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		return nil
	}
	if err := validateDocument(doc); err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ApplyEnv overrides fields from variables found by lookup
func ApplyEnv(cfg *Generation, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvBaseSize, &cfg.PyramidBaseSize},
		{EnvTreeCount, &cfg.TreeCount},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.key, v, err)
		}
		*e.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvForestRadius, &cfg.ForestRadius},
		{EnvTreeSpacing, &cfg.TreeSpacing},
		{EnvRotationSpeed, &cfg.RotationSpeed},
		{EnvCycleDuration, &cfg.CycleDuration},
		{EnvGroundSize, &cfg.GroundSize},
	}
	for _, e := range floats {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.key, v, err)
		}
		*e.dst = f
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	return nil
}
