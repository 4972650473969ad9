package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Store holds the current EffectsSettings value. There is exactly one writer
// path (UpdateSetting / ResetToDefaults); every accepted mutation is
// persisted to disk best-effort and fanned out synchronously to subscribers.
type Store struct {
	mu      sync.RWMutex
	path    string
	current EffectsSettings

	subMu   sync.Mutex
	subs    map[int]func(EffectsSettings)
	nextSub int

	logger *zap.Logger
}

// NewStore creates a store backed by the JSON file at path. Missing or
// unreadable files fall back to defaults; a missing field inside the file
// falls back to its default, so older files stay loadable as toggles are
// added. The store never fails to construct.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		path:   path,
		subs:   make(map[int]func(EffectsSettings)),
		logger: logger,
	}
	s.current = s.load()
	return s
}

// Settings returns a snapshot of the current, fully-populated configuration.
func (s *Store) Settings() EffectsSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Path returns the persistence file path.
func (s *Store) Path() string {
	return s.path
}

// UpdateSetting applies a single key/value mutation. Invalid keys or values
// are rejected silently (warn log, store unchanged) — the calling UI offers
// only legal choices, so a bad value is a programming error, not a user one.
// Returns true when the mutation was accepted.
func (s *Store) UpdateSetting(key, value string) bool {
	s.mu.Lock()
	next := s.current
	switch key {
	case KeyAnimationStyle:
		style := AnimationStyle(value)
		if !style.Valid() {
			s.mu.Unlock()
			s.logger.Warn("rejected setting update", zap.String("key", key), zap.String("value", value))
			return false
		}
		next.AnimationStyle = style
	case KeyTransitionSpeed:
		speed := TransitionSpeed(value)
		if !speed.Valid() {
			s.mu.Unlock()
			s.logger.Warn("rejected setting update", zap.String("key", key), zap.String("value", value))
			return false
		}
		next.TransitionSpeed = speed
	case KeyParallaxIntensity:
		intensity := ParallaxIntensity(value)
		if !intensity.Valid() {
			s.mu.Unlock()
			s.logger.Warn("rejected setting update", zap.String("key", key), zap.String("value", value))
			return false
		}
		next.ParallaxIntensity = intensity
	case KeyCustomCursor, KeyAmbientLighting, KeyFilmGrain:
		on, err := strconv.ParseBool(value)
		if err != nil {
			s.mu.Unlock()
			s.logger.Warn("rejected setting update", zap.String("key", key), zap.String("value", value))
			return false
		}
		switch key {
		case KeyCustomCursor:
			next.EffectToggles.CustomCursor = on
		case KeyAmbientLighting:
			next.EffectToggles.AmbientLighting = on
		case KeyFilmGrain:
			next.EffectToggles.FilmGrain = on
		}
	default:
		s.mu.Unlock()
		s.logger.Warn("rejected setting update: unknown key", zap.String("key", key))
		return false
	}

	s.current = next
	s.persistLocked()
	s.mu.Unlock()

	s.notify(next)
	return true
}

// ResetToDefaults restores the compiled-in configuration and persists it.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	s.current = DefaultSettings()
	s.persistLocked()
	next := s.current
	s.mu.Unlock()

	s.notify(next)
}

// Reload re-reads the persistence file and adopts its contents. Used by the
// file watcher when the settings file is edited externally. Subscribers are
// notified only when the value actually changed.
func (s *Store) Reload() {
	loaded := s.load()

	s.mu.Lock()
	if loaded == s.current {
		s.mu.Unlock()
		return
	}
	s.current = loaded
	s.mu.Unlock()

	s.logger.Debug("settings reloaded from disk", zap.String("path", s.path))
	s.notify(loaded)
}

// Subscribe registers fn to be called synchronously after every accepted
// mutation. The returned id unsubscribes via Unsubscribe.
func (s *Store) Subscribe(fn func(EffectsSettings)) int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return id
}

// Unsubscribe removes a subscription. Unknown ids are a no-op.
func (s *Store) Unsubscribe(id int) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	delete(s.subs, id)
}

func (s *Store) notify(value EffectsSettings) {
	s.subMu.Lock()
	fns := make([]func(EffectsSettings), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// persistedSettings mirrors EffectsSettings with every field optional, so a
// file written by an older or newer build still reads cleanly.
type persistedSettings struct {
	AnimationStyle    *AnimationStyle    `json:"animationStyle,omitempty"`
	TransitionSpeed   *TransitionSpeed   `json:"transitionSpeed,omitempty"`
	ParallaxIntensity *ParallaxIntensity `json:"parallaxIntensity,omitempty"`
	EffectToggles     *persistedToggles  `json:"effectToggles,omitempty"`
}

type persistedToggles struct {
	CustomCursor    *bool `json:"customCursor,omitempty"`
	AmbientLighting *bool `json:"ambientLighting,omitempty"`
	FilmGrain       *bool `json:"filmGrain,omitempty"`
}

// load reads the persistence file, falling back to defaults field by field.
// All read failures are non-fatal: the store degrades to in-memory defaults.
func (s *Store) load() EffectsSettings {
	out := DefaultSettings()
	if s.path == "" {
		return out
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read settings file", zap.String("path", s.path), zap.Error(err))
		}
		return out
	}

	var p persistedSettings
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("could not parse settings file", zap.String("path", s.path), zap.Error(err))
		return out
	}

	if p.AnimationStyle != nil && p.AnimationStyle.Valid() {
		out.AnimationStyle = *p.AnimationStyle
	}
	if p.TransitionSpeed != nil && p.TransitionSpeed.Valid() {
		out.TransitionSpeed = *p.TransitionSpeed
	}
	if p.ParallaxIntensity != nil && p.ParallaxIntensity.Valid() {
		out.ParallaxIntensity = *p.ParallaxIntensity
	}
	if p.EffectToggles != nil {
		if p.EffectToggles.CustomCursor != nil {
			out.EffectToggles.CustomCursor = *p.EffectToggles.CustomCursor
		}
		if p.EffectToggles.AmbientLighting != nil {
			out.EffectToggles.AmbientLighting = *p.EffectToggles.AmbientLighting
		}
		if p.EffectToggles.FilmGrain != nil {
			out.EffectToggles.FilmGrain = *p.EffectToggles.FilmGrain
		}
	}
	return out
}

// persistLocked writes the current settings to disk. Persistence is
// best-effort: on any failure the in-memory value stays authoritative for
// the session and the failure is only logged.
func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.logger.Warn("could not create settings directory", zap.String("path", s.path), zap.Error(err))
		return
	}

	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		s.logger.Warn("could not marshal settings", zap.Error(err))
		return
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.Warn("could not write settings file", zap.String("path", s.path), zap.Error(err))
	}
}

// DefaultPath returns the conventional settings location for a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".driftglass", "settings.json")
}

// String renders the settings as the persisted JSON document.
func (s EffectsSettings) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", struct {
			EffectsSettings
		}{s})
	}
	return string(data)
}
