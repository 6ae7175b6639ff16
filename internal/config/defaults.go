package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is the last fallback of LoadShooter.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			Speed:        10,
			BottomMargin: 10,
		},
		Projectile: ProjectileConfig{
			Width:  5,
			Height: 10,
			Speed:  14,
		},
		Enemy: EnemyConfig{
			Width:  50,
			Height: 50,
			Speed:  2,
		},
		Spawn: SpawnConfig{
			IntervalMS: 1000,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			FireCooldownSteps: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
