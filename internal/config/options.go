// internal/config/options.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the initialization record the host hands to the core. Title
// identifies the target surface (the window) and is required; every other
// field resolves silently to a default when absent.
type Options struct {
	Title    string  `yaml:"title"`
	DiskNum  int     `yaml:"disk_num"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	DiskSize float64 `yaml:"disk_size"`
	Seed     int64   `yaml:"seed"`

	// Collision is reserved: accepted in the options record but not wired
	// to any behavior. Only disk-boundary collision is modeled.
	Collision bool `yaml:"collision"`
}

// DefaultOptions returns the options record with every optional field at its
// default value. Title stays empty: it is required and has no default.
func DefaultOptions() Options {
	return Options{
		DiskNum:  DefaultDiskNum,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		DiskSize: DefaultDiskSize,
	}
}

// Load resolves the options record.
// Search order: customPath -> ./configs/disks.yaml -> defaults only.
// YAML fields overlay the defaults, so absent fields keep their default and
// an explicit disk_num: 0 is respected (a valid empty population).
func Load(customPath string) (Options, error) {
	opts := DefaultOptions()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return opts, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return opts, nil
	}

	if data, err := os.ReadFile("configs/disks.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse configs/disks.yaml: %w", err)
		}
	}
	return opts, nil
}

// Validate reports a setup failure for an unusable options record. A failed
// validation aborts initialization; there is no degraded mode.
func (o Options) Validate() error {
	if o.Title == "" {
		return fmt.Errorf("options: title is required")
	}
	if o.DiskNum < 0 {
		return fmt.Errorf("options: disk_num must be >= 0, got %d", o.DiskNum)
	}
	if o.DiskNum > MaxDiskNum {
		return fmt.Errorf("options: disk_num must be <= %d, got %d", MaxDiskNum, o.DiskNum)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("options: viewport must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.DiskSize <= 0 {
		return fmt.Errorf("options: disk_size must be positive, got %v", o.DiskSize)
	}
	return nil
}
