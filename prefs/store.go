package prefs

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotFound is returned by KV.Get for a missing key.
var ErrNotFound = errors.New("prefs: key not found")

// KV is a string-valued key-value store.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store reads and writes State through a KV.
type Store struct {
	kv  KV
	log *slog.Logger
}

// NewStore wraps kv. A nil logger discards fallback diagnostics.
func NewStore(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, log: log}
}

// Load returns the persisted state. Each field falls back to its default on
// its own when missing, unreadable, or invalid.
func (s *Store) Load() State {
	def := Defaults()
	st := State{Preferences: def}

	if v, ok := s.get(KeyText); ok {
		st.Text = v
	}
	if v, ok := s.get(KeyFontSize); ok {
		if n, err := ParseFontSize(v); err == nil {
			st.FontSize = n
		} else {
			s.log.Warn("invalid stored value, using default", "key", KeyFontSize, "err", err)
		}
	}
	if v, ok := s.get(KeyFontFamily); ok {
		if f := FontFamily(v); f.Valid() {
			st.FontFamily = f
		} else {
			s.log.Warn("invalid stored value, using default", "key", KeyFontFamily, "value", v)
		}
	}
	if v, ok := s.get(KeyDensity); ok {
		if d := Density(v); d.Valid() {
			st.Density = d
		} else {
			s.log.Warn("invalid stored value, using default", "key", KeyDensity, "value", v)
		}
	}
	if v, ok := s.get(KeyTheme); ok {
		if t := Theme(v); t.Valid() {
			st.Theme = t
		} else {
			s.log.Warn("invalid stored value, using default", "key", KeyTheme, "value", v)
		}
	}
	return st
}

func (s *Store) get(key Key) (string, bool) {
	if s == nil || s.kv == nil {
		return "", false
	}
	v, err := s.kv.Get(string(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("read stored value", "key", key, "err", err)
		}
		return "", false
	}
	return v, true
}

// Save writes a single value synchronously.
func (s *Store) Save(key Key, value string) error {
	if s == nil || s.kv == nil {
		return nil
	}
	if err := s.kv.Set(string(key), value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) SaveText(text string) error {
	return s.Save(KeyText, text)
}

// SavePreferences writes every field of next that differs from prev.
func (s *Store) SavePreferences(prev, next Preferences) error {
	var errs []error
	if prev.FontSize != next.FontSize {
		errs = append(errs, s.Save(KeyFontSize, FormatFontSize(next.FontSize)))
	}
	if prev.FontFamily != next.FontFamily {
		errs = append(errs, s.Save(KeyFontFamily, string(next.FontFamily)))
	}
	if prev.Density != next.Density {
		errs = append(errs, s.Save(KeyDensity, string(next.Density)))
	}
	if prev.Theme != next.Theme {
		errs = append(errs, s.Save(KeyTheme, string(next.Theme)))
	}
	return errors.Join(errs...)
}

// Clear removes the stored text. Preferences are left untouched.
func (s *Store) Clear() error {
	if s == nil || s.kv == nil {
		return nil
	}
	if err := s.kv.Delete(string(KeyText)); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear %s: %w", KeyText, err)
	}
	return nil
}
