package utils

import (
	"math/rand"
	"strings"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "`!@#$%^&*[]_-{}+="

	MinLength     = 6
	MaxLength     = 100
	DefaultLength = 8
)

// GeneratorConfig holds the user-controlled generator settings.
type GeneratorConfig struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultGeneratorConfig returns length 8 with digits and symbols off.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{Length: DefaultLength}
}

// ClampLength bounds n to [MinLength, MaxLength]. GeneratePassword does not
// call it; range enforcement belongs to the input control.
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// CharacterPool returns the characters eligible for sampling under cfg.
// Letters are always present so the pool is never empty.
func CharacterPool(cfg GeneratorConfig) string {
	pool := letters
	if cfg.IncludeDigits {
		pool += digits
	}
	if cfg.IncludeSymbols {
		pool += symbols
	}
	return pool
}

// GeneratePassword returns cfg.Length+1 characters sampled uniformly from the
// pool. The extra character is long-standing behaviour of this generator and
// is kept deliberately. The source is math/rand and is not suitable where a
// cryptographic guarantee is needed.
func GeneratePassword(cfg GeneratorConfig) string {
	return generateWith(rand.Float64, cfg)
}

// generateWith picks each character as pool[floor(r()*len(pool))], r
// returning values in [0, 1).
func generateWith(r func() float64, cfg GeneratorConfig) string {
	pool := CharacterPool(cfg)

	var pass strings.Builder
	if cfg.Length >= 0 {
		pass.Grow(cfg.Length + 1)
	}
	for i := 0; i <= cfg.Length; i++ {
		idx := int(r() * float64(len(pool)))
		if idx >= len(pool) {
			idx = len(pool) - 1
		}
		pass.WriteByte(pool[idx])
	}
	return pass.String()
}
