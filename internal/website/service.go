package website

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ryanwoodall/sitehub/internal/apperror"
	"github.com/ryanwoodall/sitehub/internal/sanitize"
)

// UsageRecorder receives search and visit events for the statistics
// snapshot. Satisfied by stats.Aggregator.
type UsageRecorder interface {
	RecordSearch(keyword, username string)
	RecordWebsiteVisit(name, category string)
}

// Service defines the business logic contract for the catalog and the
// per-user website lists.
type Service interface {
	Catalog(ctx context.Context, category string) ([]Website, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query, username string) ([]Website, error)
	Visit(ctx context.Context, input VisitInput) error

	UserList(ctx context.Context, userID int64) ([]UserWebsite, error)
	AddToUserList(ctx context.Context, userID int64, input AddWebsiteInput) (*UserWebsite, error)
	RemoveFromUserList(ctx context.Context, userID, id int64) error
}

// service implements Service over a Repository.
type service struct {
	repo  Repository
	usage UsageRecorder
}

// NewService creates a website service. usage may be nil in tests that
// don't assert on statistics.
func NewService(repo Repository, usage UsageRecorder) Service {
	return &service{repo: repo, usage: usage}
}

// Catalog returns the curated catalog, optionally restricted to one category.
func (s *service) Catalog(ctx context.Context, category string) ([]Website, error) {
	var (
		sites []Website
		err   error
	)
	if category == "" {
		sites, err = s.repo.ListCatalog(ctx)
	} else {
		sites, err = s.repo.ListCatalogByCategory(ctx, category)
	}
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading catalog: %w", err))
	}
	return sites, nil
}

// Categories returns the catalog's category names.
func (s *service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading categories: %w", err))
	}
	return categories, nil
}

// Search finds catalog entries matching the query and records the search
// event. username may be empty for anonymous searches; the keyword still
// counts toward the global and daily totals.
func (s *service) Search(ctx context.Context, query, username string) ([]Website, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.NewValidation("search query is required")
	}

	sites, err := s.repo.SearchCatalog(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("searching catalog: %w", err))
	}

	if s.usage != nil {
		s.usage.RecordSearch(query, username)
	}

	return sites, nil
}

// Visit records a website visit event. The website name is taken from the
// client as-is (custom list entries are visitable too), so it is sanitized
// before it becomes a statistics key.
func (s *service) Visit(ctx context.Context, input VisitInput) error {
	name := sanitize.Text(input.Name)
	if name == "" {
		return apperror.NewValidation("website name is required")
	}

	if s.usage != nil {
		s.usage.RecordWebsiteVisit(name, sanitize.Text(input.Category))
	}

	return nil
}

// --- Personal lists ---

// maxRating bounds the 1-5 star scale.
const (
	minRating = 1
	maxRating = 5
)

// UserList returns the user's personal website list.
func (s *service) UserList(ctx context.Context, userID int64) ([]UserWebsite, error) {
	sites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading user websites: %w", err))
	}
	return sites, nil
}

// AddToUserList validates and stores a new personal list entry. Free-text
// fields are sanitized; the URL must parse as absolute http(s).
func (s *service) AddToUserList(ctx context.Context, userID int64, input AddWebsiteInput) (*UserWebsite, error) {
	name := sanitize.Text(input.Name)
	if name == "" {
		return nil, apperror.NewValidation("website name is required")
	}
	if utf8.RuneCountInString(name) > 200 {
		return nil, apperror.NewValidation("website name must be at most 200 characters")
	}

	if err := validateURL(input.URL); err != nil {
		return nil, err
	}

	rating := input.Rating
	if rating == 0 {
		rating = maxRating
	}
	if rating < minRating || rating > maxRating {
		return nil, apperror.NewValidation("rating must be between 1 and 5")
	}

	now := time.Now().UTC()
	site := &UserWebsite{
		UserID:      userID,
		Name:        name,
		URL:         input.URL,
		Description: sanitize.Text(input.Description),
		Category:    sanitize.Text(input.Category),
		Rating:      rating,
		IsPrivate:   input.IsPrivate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateUserWebsite(ctx, site); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating user website: %w", err))
	}

	return site, nil
}

// RemoveFromUserList deletes one of the user's own entries.
func (s *service) RemoveFromUserList(ctx context.Context, userID, id int64) error {
	if err := s.repo.DeleteUserWebsite(ctx, userID, id); err != nil {
		if appErr, ok := err.(*apperror.AppError); ok {
			return appErr
		}
		return apperror.NewInternal(fmt.Errorf("deleting user website: %w", err))
	}
	return nil
}

// validateURL requires an absolute http or https URL.
func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return apperror.NewValidation("website URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperror.NewValidation("website URL must start with http:// or https://")
	}
	return nil
}
