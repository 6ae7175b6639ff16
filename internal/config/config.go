// Package config provides YAML-based game configuration loading and
// validation for the shooter.
package config

import "time"

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
}

// ArenaConfig defines the logical playfield size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Displacement per step on each held axis
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between player and arena floor at spawn
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Upward displacement per step
}

// EnemyConfig defines the descending enemies.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Downward displacement per step
}

// SpawnConfig defines the enemy spawn cadence.
type SpawnConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives             int `yaml:"lives"`
	FireCooldownSteps int `yaml:"fire_cooldown_steps"` // 0 = no rate limit
}

// SpawnInterval returns the spawn cadence as a duration.
func (c ShooterConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Spawn.IntervalMS) * time.Millisecond
}
