package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk tunables override. Sections and keys that are absent
// keep the values that were current when the file was loaded.
type File struct {
	Planet  PlanetConfig  `yaml:"planet"`
	Gravity GravityConfig `yaml:"gravity"`
	Player  PlayerConfig  `yaml:"player"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Camera  CameraConfig  `yaml:"camera"`
}

// LoadFile reads a YAML override file seeded with the current globals.
func LoadFile(path string) (*File, error) {
	f := &File{
		Planet:  Planet,
		Gravity: Gravity,
		Player:  Player,
		Bullet:  Bullet,
		Camera:  Camera,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return f, nil
}

// Validate rejects values the simulation cannot run with.
func (f *File) Validate() error {
	switch {
	case f.Planet.Radius <= 0:
		return fmt.Errorf("planet.radius must be positive, got %v", f.Planet.Radius)
	case f.Planet.AtmosphereScale < 1:
		return fmt.Errorf("planet.atmosphere_scale must be at least 1, got %v", f.Planet.AtmosphereScale)
	case f.Player.Mass <= 0:
		return fmt.Errorf("player.mass must be positive, got %v", f.Player.Mass)
	case f.Bullet.Mass <= 0:
		return fmt.Errorf("bullet.mass must be positive, got %v", f.Bullet.Mass)
	case f.Camera.MinScale <= 0 || f.Camera.MaxScale < f.Camera.MinScale:
		return fmt.Errorf("camera scale range [%v, %v] is invalid", f.Camera.MinScale, f.Camera.MaxScale)
	}
	return nil
}

// Apply copies the file's values over the globals.
func (f *File) Apply() {
	Planet = f.Planet
	Gravity = f.Gravity
	Player = f.Player
	Bullet = f.Bullet
	Camera = f.Camera
}
