package theme

import (
	"context"
	"fmt"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// Service exposes the theme registry and the persisted selection.
type Service interface {
	List(ctx context.Context) []Palette
	Current(ctx context.Context) (Palette, error)
	Set(ctx context.Context, id string) (Palette, error)
}

// service implements Service over a SettingsRepository.
type service struct {
	repo SettingsRepository
}

// NewService creates a theme service with the given settings repository.
func NewService(repo SettingsRepository) Service {
	return &service{repo: repo}
}

// List returns every built-in palette.
func (s *service) List(ctx context.Context) []Palette {
	return Palettes()
}

// Current returns the active palette. An unknown persisted ID (a theme
// removed in an update, or a hand-edited row) falls back to the default
// rather than erroring.
func (s *service) Current(ctx context.Context) (Palette, error) {
	id, err := s.repo.CurrentTheme(ctx)
	if err != nil {
		return Palette{}, apperror.NewInternal(fmt.Errorf("loading current theme: %w", err))
	}

	palette, ok := Lookup(id)
	if !ok {
		palette, _ = Lookup(DefaultID)
	}
	return palette, nil
}

// Set activates a theme by ID and persists the selection.
func (s *service) Set(ctx context.Context, id string) (Palette, error) {
	palette, ok := Lookup(id)
	if !ok {
		return Palette{}, apperror.NewValidation("unknown theme")
	}

	if err := s.repo.SetCurrentTheme(ctx, id); err != nil {
		return Palette{}, apperror.NewInternal(fmt.Errorf("saving theme selection: %w", err))
	}

	return palette, nil
}
