package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"expenzo/internal/storage"
)

// SettingsService holds the display settings. Like the expense collection,
// the flag loads at startup and persists on every change.
type SettingsService struct {
	store    storage.Store
	darkMode bool
}

func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Load reads the persisted dark-mode flag. Absent or malformed values fall
// back to light mode.
func (s *SettingsService) Load(ctx context.Context) error {
	s.darkMode = false

	blob, ok, err := s.store.Get(ctx, storage.KeyDarkMode)
	if err != nil {
		return fmt.Errorf("load dark mode: %w", err)
	}
	if !ok {
		return nil
	}

	var v bool
	if err := json.Unmarshal(blob, &v); err != nil {
		slog.WarnContext(ctx, "Discarding malformed dark mode blob", "error", err)
		return nil
	}
	s.darkMode = v
	return nil
}

func (s *SettingsService) DarkMode() bool {
	return s.darkMode
}

// Toggle flips the flag and persists it, returning the new value.
func (s *SettingsService) Toggle(ctx context.Context) (bool, error) {
	if err := s.SetDarkMode(ctx, !s.darkMode); err != nil {
		return s.darkMode, err
	}
	return s.darkMode, nil
}

func (s *SettingsService) SetDarkMode(ctx context.Context, v bool) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode dark mode: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyDarkMode, blob); err != nil {
		return fmt.Errorf("persist dark mode: %w", err)
	}
	s.darkMode = v
	return nil
}
