package preferences

import (
	"strings"

	"github.com/selivandex/news-agent/internal/adapters/newsapi"
	"github.com/selivandex/news-agent/pkg/models"
)

const (
	defaultPageSize = 20
	defaultSortBy   = "publishedAt"
)

// BuildQuery transforms validated preferences into NewsAPI query
// parameters. Pure function: identical preferences always produce an
// identical query.
//
// Preferred categories and keywords are joined, in that order, into a
// single OR search term. Empty preference lists leave their parameters
// unset, so a record with only a user ID yields just the language filter.
func BuildQuery(prefs models.Preferences) newsapi.Query {
	query := newsapi.Query{
		Language: prefs.Language,
		PageSize: defaultPageSize,
		SortBy:   defaultSortBy,
	}
	if query.Language == "" {
		query.Language = "en"
	}

	var terms []string
	terms = append(terms, prefs.PreferredCategories...)
	terms = append(terms, prefs.Keywords...)
	if len(terms) > 0 {
		query.Q = strings.Join(terms, " OR ")
	}

	if len(prefs.Sources) > 0 {
		query.Sources = strings.Join(prefs.Sources, ",")
	}
	if len(prefs.ExcludedSources) > 0 {
		query.ExcludeDomains = strings.Join(prefs.ExcludedSources, ",")
	}

	return query
}
