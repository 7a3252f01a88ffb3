package models

import "time"

// ArticleSource identifies the publication an article came from
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article represents a raw article as returned by the news search boundary
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt time.Time     `json:"publishedAt"`
	Content     string        `json:"content"`
}

// Text returns the article body used for analysis: the first non-empty of
// content, description, title.
func (a *Article) Text() string {
	if a.Content != "" {
		return a.Content
	}
	if a.Description != "" {
		return a.Description
	}
	return a.Title
}

// EnrichedArticle is an article plus optional LLM analysis results and the
// relevance score assigned at ranking time. Empty string / nil slice means
// the corresponding analysis produced no result.
type EnrichedArticle struct {
	Article

	Summary        string   `json:"summary,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Sentiment      string   `json:"sentiment,omitempty"`
	Category       string   `json:"category,omitempty"`
	RelevanceScore float64  `json:"relevance_score"`
}
