package api

import "github.com/selivandex/news-agent/pkg/models"

// Recommendation is the wire representation of a single recommended article
type Recommendation struct {
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Source         string   `json:"source"`
	Summary        string   `json:"summary,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Sentiment      string   `json:"sentiment,omitempty"`
	Category       string   `json:"category,omitempty"`
	RelevanceScore float64  `json:"relevance_score"`
}

// RecommendationResponse is the response body for GET /api/recommendations
type RecommendationResponse struct {
	UserID          string           `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
}

// errorResponse is the body for all error statuses
type errorResponse struct {
	Error string `json:"error"`
}

// formatRecommendations maps ranked articles to their wire shape
func formatRecommendations(articles []models.EnrichedArticle) []Recommendation {
	out := make([]Recommendation, 0, len(articles))
	for _, a := range articles {
		out = append(out, Recommendation{
			Title:          a.Title,
			URL:            a.URL,
			Source:         a.Source.Name,
			Summary:        a.Summary,
			Keywords:       a.Keywords,
			Sentiment:      a.Sentiment,
			Category:       a.Category,
			RelevanceScore: a.RelevanceScore,
		})
	}
	return out
}
