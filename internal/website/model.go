// Package website serves the curated website catalog and per-user custom
// website lists. The catalog is seeded by migration and read-only at
// runtime; user lists are owned by their creator.
package website

import "time"

// Website is one entry of the curated catalog.
type Website struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Rating      int    `json:"rating"`
}

// UserWebsite is a custom entry on a user's personal list.
type UserWebsite struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rating      int       `json:"rating"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddWebsiteInput is the input for adding a website to a personal list.
type AddWebsiteInput struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Rating      int    `json:"rating"`
	IsPrivate   bool   `json:"is_private"`
}

// VisitInput is the input for recording a catalog website visit.
type VisitInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
