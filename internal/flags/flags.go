// Package flags provides feature flags read from the flags: section of the
// config file. Flags are read-only after initialization.
package flags

import (
	"maps"

	"github.com/renflow/renflow/internal/log"
)

const (
	// FlagBackdropEffects gates the post-build mica backdrop on Windows.
	// When disabled, the mica decorator builds the window without one.
	FlagBackdropEffects = "backdrop-effects"

	// FlagEventStream gates the GET /events server-sent event stream.
	FlagEventStream = "event-stream"
)

// Defaults returns the value every known flag takes when the config file
// does not mention it.
func Defaults() map[string]bool {
	return map[string]bool{
		FlagBackdropEffects: true,
		FlagEventStream:     true,
	}
}

// Registry holds feature flag state.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map.
// If flags is nil, an empty registry is created (all flags disabled).
func New(flags map[string]bool) *Registry {
	if flags == nil {
		flags = make(map[string]bool)
	}
	r := &Registry{flags: flags}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	return r
}

// WithDefaults creates a Registry from Defaults overlaid with overrides.
func WithDefaults(overrides map[string]bool) *Registry {
	merged := Defaults()
	maps.Copy(merged, overrides)
	return New(merged)
}

// Enabled returns true if the named flag is enabled.
// Unknown flags and a nil registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name, "result", false)
		return false
	}
	return value
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}
