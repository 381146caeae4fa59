package ratelimit

import "time"

// Preset tiers used by the API routes. The numbers are policy constants that
// dependent call sites rely on; change them there, not here.
var (
	Standard = Config{Limit: 100, Window: time.Minute}
	Strict   = Config{Limit: 20, Window: time.Minute}
	Generous = Config{Limit: 300, Window: time.Minute}
)

// PresetByName maps a configured tier name to its Config, defaulting to
// Standard for unknown names.
func PresetByName(name string) Config {
	switch name {
	case "strict":
		return Strict
	case "generous":
		return Generous
	default:
		return Standard
	}
}
