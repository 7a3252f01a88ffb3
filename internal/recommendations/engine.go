package recommendations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/selivandex/news-agent/pkg/models"
)

// Score weights. Category matches outweigh keyword matches, which outweigh
// the source boost. Sentiment, recency, length, diversity and author are
// deliberately not scoring signals.
const (
	keywordPoints  = 1.0
	categoryPoints = 2.0
	sourcePoints   = 0.5
)

// Engine scores and ranks articles against user preferences. Pure and
// deterministic: the same article and preferences always yield the same
// score, independent of prior calls.
type Engine struct{}

// NewEngine creates new recommendation engine
func NewEngine() *Engine {
	return &Engine{}
}

// Score computes the relevance of a single article to the preferences.
// Each preference keyword found in the article text adds 1.0 (counted once
// per keyword, however often it repeats). A preferred-category match adds
// 2.0 and a preferred-source match adds 0.5.
func (e *Engine) Score(article models.EnrichedArticle, prefs models.Preferences) float64 {
	haystack := strings.ToLower(article.Title + " " + article.Description + " " + article.Content)

	var score float64

	for _, keyword := range prefs.Keywords {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			score += keywordPoints
		}
	}

	if article.Category != "" {
		for _, category := range prefs.PreferredCategories {
			if article.Category == category {
				score += categoryPoints
				break
			}
		}
	}

	sourceName := strings.ToLower(article.Source.Name)
	for _, source := range prefs.Sources {
		if strings.EqualFold(sourceName, source) {
			score += sourcePoints
			break
		}
	}

	return score
}

// Rank scores every article, records the score on it and returns the
// articles ordered by score descending. The sort is stable: equally scored
// articles keep their original relative order. Empty input yields empty
// output.
func (e *Engine) Rank(articles []models.EnrichedArticle, prefs models.Preferences) []models.EnrichedArticle {
	if len(articles) == 0 {
		return []models.EnrichedArticle{}
	}

	ranked := make([]models.EnrichedArticle, len(articles))
	copy(ranked, articles)

	for i := range ranked {
		ranked[i].RelevanceScore = e.Score(ranked[i], prefs)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}

// SelectTop ranks the articles and returns the first n, or all of them when
// fewer exist. A negative n is a programmer error and panics.
func (e *Engine) SelectTop(articles []models.EnrichedArticle, prefs models.Preferences, n int) []models.EnrichedArticle {
	if n < 0 {
		panic(fmt.Sprintf("recommendations: negative selection count %d", n))
	}

	ranked := e.Rank(articles, prefs)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
