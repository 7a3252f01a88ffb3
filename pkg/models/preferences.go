package models

import "fmt"

// Preferences represents stored per-user recommendation preferences
type Preferences struct {
	UserID              string   `json:"user_id"`
	PreferredCategories []string `json:"preferred_categories"`
	ExcludedSources     []string `json:"excluded_sources"`
	PreferredAuthors    []string `json:"preferred_authors"`
	Sources             []string `json:"sources"`
	Keywords            []string `json:"keywords"`
	Language            string   `json:"language"`
	MinReadingLevel     int      `json:"min_reading_level"`
	MaxArticleLength    int      `json:"max_article_length"`
}

// ApplyDefaults fills unset optional fields with their defaults
func (p *Preferences) ApplyDefaults() {
	if p.Language == "" {
		p.Language = "en"
	}
	if p.MinReadingLevel == 0 {
		p.MinReadingLevel = 1
	}
	if p.MaxArticleLength == 0 {
		p.MaxArticleLength = 1000
	}
}

// Validate checks preference invariants. A failure here is an invalid-input
// condition to surface to the caller, not a transport or provider failure.
func (p *Preferences) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if p.MinReadingLevel < 1 || p.MinReadingLevel > 5 {
		return fmt.Errorf("min_reading_level must be between 1 and 5, got %d", p.MinReadingLevel)
	}
	if p.MaxArticleLength < 100 {
		return fmt.Errorf("max_article_length must be at least 100, got %d", p.MaxArticleLength)
	}
	return nil
}
