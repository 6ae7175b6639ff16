package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks a configuration before a game is built from it.
// All problems are reported together; each one is a *ValidationError.
func Validate(cfg ShooterConfig) error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.Arena.Width <= 0 {
		fail("arena.width", "must be positive, got %v", cfg.Arena.Width)
	}
	if cfg.Arena.Height <= 0 {
		fail("arena.height", "must be positive, got %v", cfg.Arena.Height)
	}

	sprites := []struct {
		name string
		w, h float64
	}{
		{"player", cfg.Player.Width, cfg.Player.Height},
		{"projectile", cfg.Projectile.Width, cfg.Projectile.Height},
		{"enemy", cfg.Enemy.Width, cfg.Enemy.Height},
	}
	for _, s := range sprites {
		if s.w <= 0 {
			fail(s.name+".width", "must be positive, got %v", s.w)
		} else if cfg.Arena.Width > 0 && s.w > cfg.Arena.Width {
			fail(s.name+".width", "%v does not fit arena width %v", s.w, cfg.Arena.Width)
		}
		if s.h <= 0 {
			fail(s.name+".height", "must be positive, got %v", s.h)
		} else if cfg.Arena.Height > 0 && s.h > cfg.Arena.Height {
			fail(s.name+".height", "%v does not fit arena height %v", s.h, cfg.Arena.Height)
		}
	}

	if cfg.Player.Speed < 0 {
		fail("player.speed", "must not be negative, got %v", cfg.Player.Speed)
	}
	if cfg.Player.BottomMargin < 0 {
		fail("player.bottom_margin", "must not be negative, got %v", cfg.Player.BottomMargin)
	}
	if cfg.Projectile.Speed < 0 {
		fail("projectile.speed", "must not be negative, got %v", cfg.Projectile.Speed)
	}
	if cfg.Enemy.Speed < 0 {
		fail("enemy.speed", "must not be negative, got %v", cfg.Enemy.Speed)
	}
	if cfg.Spawn.IntervalMS <= 0 {
		fail("spawn.interval_ms", "must be positive, got %d", cfg.Spawn.IntervalMS)
	}
	if cfg.Gameplay.Lives < 1 {
		fail("gameplay.lives", "must be at least 1, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.FireCooldownSteps < 0 {
		fail("gameplay.fire_cooldown_steps", "must not be negative, got %d", cfg.Gameplay.FireCooldownSteps)
	}

	return errors.Join(errs...)
}
