package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/news-agent/internal/adapters/ai"
	"github.com/selivandex/news-agent/pkg/cache"
	"github.com/selivandex/news-agent/pkg/logger"
	"github.com/selivandex/news-agent/pkg/models"
)

const (
	defaultSummaryWords = 100
	defaultNumKeywords  = 5
)

// DefaultCategories is the category set used when the caller supplies none
var DefaultCategories = []string{
	"technology", "business", "sports", "entertainment", "health", "science", "world",
}

// Analyzer runs LLM-backed article analysis: summary, keyword extraction,
// sentiment and categorization. All four operations share one memoization
// cache, fingerprinted per operation and per parameter set. Every operation
// degrades to an absent result on provider failure or malformed output;
// nothing here returns an error to the caller.
type Analyzer struct {
	provider ai.Provider
	cache    *cache.Cache[result]
}

// result is the shared cache value for all operations. Absent results are
// cached too, so a failing provider is not re-queried within the TTL window.
type result struct {
	text string
	list []string
	ok   bool
}

// NewAnalyzer creates new analyzer backed by the given provider
func NewAnalyzer(provider ai.Provider, cacheCapacity int, cacheTTL time.Duration) *Analyzer {
	return &Analyzer{
		provider: provider,
		cache:    cache.New[result](cacheCapacity, cacheTTL),
	}
}

// Available reports whether the underlying LLM provider is usable. When
// false every operation returns absent immediately; callers should check
// this once per batch instead of paying four no-op calls per article.
func (a *Analyzer) Available() bool {
	return a.provider != nil && a.provider.IsEnabled()
}

// Summarize generates a summary of about maxWords words. The second return
// value is false when no summary could be produced.
func (a *Analyzer) Summarize(ctx context.Context, text string, maxWords int) (string, bool) {
	if !a.Available() || text == "" {
		return "", false
	}
	if maxWords <= 0 {
		maxWords = defaultSummaryWords
	}

	key := cache.Fingerprint("generate_summary", text, maxWords)
	res := a.cache.GetOrCompute(key, func() result {
		prompt := fmt.Sprintf("Summarize the following news article text in about %d words:\n\n%s", maxWords, text)
		out, err := a.complete(ctx, "summarize", prompt, maxWords+50)
		if err != nil || out == "" {
			return result{}
		}
		return result{text: out, ok: true}
	})

	return res.text, res.ok
}

// ExtractKeywords extracts up to numKeywords keywords from the text. An
// empty input or a failed call yields an empty list, never an error.
func (a *Analyzer) ExtractKeywords(ctx context.Context, text string, numKeywords int) []string {
	if !a.Available() || text == "" {
		return nil
	}
	if numKeywords <= 0 {
		numKeywords = defaultNumKeywords
	}

	key := cache.Fingerprint("extract_keywords", text, numKeywords)
	res := a.cache.GetOrCompute(key, func() result {
		prompt := fmt.Sprintf("Extract the %d most important keywords from the following news article text. Return them as a comma-separated list:\n\n%s", numKeywords, text)
		out, err := a.complete(ctx, "extract_keywords", prompt, 50)
		if err != nil {
			return result{}
		}

		var keywords []string
		for _, kw := range strings.Split(out, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		return result{list: keywords, ok: true}
	})

	return res.list
}

// AnalyzeSentiment classifies the text as positive, negative or neutral.
// Anything else coming back from the model is rejected, not guessed at.
func (a *Analyzer) AnalyzeSentiment(ctx context.Context, text string) (string, bool) {
	if !a.Available() || text == "" {
		return "", false
	}

	key := cache.Fingerprint("analyze_sentiment", text)
	res := a.cache.GetOrCompute(key, func() result {
		prompt := fmt.Sprintf("Analyze the sentiment of the following news article text. Respond with only one word: positive, negative, or neutral.\n\n%s", text)
		out, err := a.complete(ctx, "analyze_sentiment", prompt, 10)
		if err != nil {
			return result{}
		}

		sentiment := strings.ToLower(strings.TrimSpace(out))
		switch sentiment {
		case "positive", "negative", "neutral":
			return result{text: sentiment, ok: true}
		}

		logger.Warn("could not determine valid sentiment from LLM response",
			zap.String("response", out),
		)
		return result{}
	})

	return res.text, res.ok
}

// Categorize assigns one of the given categories to the text. A nil or
// empty category set falls back to DefaultCategories. A response outside
// the set is rejected; there is no fuzzy matching.
func (a *Analyzer) Categorize(ctx context.Context, text string, categories []string) (string, bool) {
	if !a.Available() || text == "" {
		return "", false
	}
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)

	key := cache.Fingerprint("categorize_article", text, sorted)
	res := a.cache.GetOrCompute(key, func() result {
		prompt := fmt.Sprintf("Categorize the following news article text into one of these categories: %s. Respond with only the category name.\n\n%s", strings.Join(sorted, ", "), text)
		out, err := a.complete(ctx, "categorize_article", prompt, 15)
		if err != nil {
			return result{}
		}

		category := strings.ToLower(strings.TrimSpace(out))
		for _, c := range categories {
			if strings.ToLower(c) == category {
				return result{text: category, ok: true}
			}
		}

		logger.Warn("could not determine valid category from LLM response",
			zap.String("response", out),
		)
		return result{}
	})

	return res.text, res.ok
}

// Enrich runs all four analysis operations over an article's text. The
// operations are independent; a failure in one leaves the others' results
// intact. An article with no text passes through unanalyzed.
func (a *Analyzer) Enrich(ctx context.Context, article models.Article) models.EnrichedArticle {
	enriched := models.EnrichedArticle{Article: article}

	text := article.Text()
	if text == "" {
		logger.Warn("skipping analysis for article with no text content",
			zap.String("title", article.Title),
		)
		return enriched
	}

	if summary, ok := a.Summarize(ctx, text, defaultSummaryWords); ok {
		enriched.Summary = summary
	}
	enriched.Keywords = a.ExtractKeywords(ctx, text, defaultNumKeywords)
	if sentiment, ok := a.AnalyzeSentiment(ctx, text); ok {
		enriched.Sentiment = sentiment
	}
	if category, ok := a.Categorize(ctx, text, nil); ok {
		enriched.Category = category
	}

	return enriched
}

func (a *Analyzer) complete(ctx context.Context, op, prompt string, maxTokens int) (string, error) {
	logger.Debug("analysis cache miss, calling LLM",
		zap.String("operation", op),
	)

	out, err := a.provider.Complete(ctx, prompt, maxTokens)
	if err != nil {
		logger.Error("LLM call failed",
			zap.String("operation", op),
			zap.Error(err),
		)
		return "", err
	}

	return strings.TrimSpace(out), nil
}
