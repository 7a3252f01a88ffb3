package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/news-agent/internal/adapters/config"
	"github.com/selivandex/news-agent/pkg/cache"
	"github.com/selivandex/news-agent/pkg/logger"
	"github.com/selivandex/news-agent/pkg/models"
)

// Client fetches articles from NewsAPI. Responses are memoized per
// normalized query; failures are normalized to an absent result and are
// cached for the same window, so a failing upstream is not hammered.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   *cache.Cache[fetchResult]
}

type fetchResult struct {
	articles []models.Article
	ok       bool
}

type envelope struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []models.Article `json:"articles"`
}

// NewClient creates new NewsAPI client. The API key is required. The client
// owns its memoization cache; cacheCapacity and cacheTTL bound it.
func NewClient(cfg *config.NewsAPIConfig, cacheCapacity int, cacheTTL time.Duration) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("NewsAPI key is required")
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New[fetchResult](cacheCapacity, cacheTTL),
	}, nil
}

// FetchArticles fetches articles matching the query. The second return
// value is false when the fetch failed (transport error, timeout, non-2xx
// status or an error envelope); the failure is logged here and never
// surfaces as an error. Retry policy, if any, belongs to the caller.
func (c *Client) FetchArticles(ctx context.Context, query Query) ([]models.Article, bool) {
	q := query.normalize()
	key := cache.Fingerprint("fetch_articles", q.fingerprintArgs())

	res := c.cache.GetOrCompute(key, func() fetchResult {
		return c.fetch(ctx, q)
	})

	return res.articles, res.ok
}

func (c *Client) fetch(ctx context.Context, q Query) fetchResult {
	logger.Debug("article cache miss, querying NewsAPI",
		zap.String("q", q.Q),
		zap.String("language", q.Language),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		logger.Error("failed to create NewsAPI request", zap.Error(err))
		return fetchResult{}
	}
	req.URL.RawQuery = q.params().Encode()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("NewsAPI request failed", zap.Error(err))
		return fetchResult{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("NewsAPI returned HTTP error",
			zap.Int("status", resp.StatusCode),
		)
		return fetchResult{}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		logger.Error("failed to decode NewsAPI response", zap.Error(err))
		return fetchResult{}
	}

	if env.Status != "ok" {
		logger.Error("NewsAPI returned error envelope",
			zap.String("code", env.Code),
			zap.String("message", env.Message),
		)
		return fetchResult{}
	}

	logger.Info("fetched articles from NewsAPI",
		zap.Int("count", len(env.Articles)),
	)

	// Pagination past the first page is out of scope
	return fetchResult{articles: env.Articles, ok: true}
}
