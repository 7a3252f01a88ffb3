package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/selivandex/news-agent/internal/adapters/newsapi"
	"github.com/selivandex/news-agent/internal/analysis"
	"github.com/selivandex/news-agent/internal/preferences"
	"github.com/selivandex/news-agent/internal/recommendations"
	"github.com/selivandex/news-agent/pkg/logger"
	"github.com/selivandex/news-agent/pkg/models"
)

// Articles are fetched in pages of 20 and the engine keeps at most this many
const maxRecommendations = 20

// Fetcher is the article search boundary as seen by the handler
type Fetcher interface {
	FetchArticles(ctx context.Context, query newsapi.Query) ([]models.Article, bool)
}

// Handler serves the preference and recommendation endpoints
type Handler struct {
	store    *preferences.Store
	fetcher  Fetcher
	analyzer *analysis.Analyzer
	engine   *recommendations.Engine
}

// NewHandler creates new API handler
func NewHandler(store *preferences.Store, fetcher Fetcher, analyzer *analysis.Analyzer, engine *recommendations.Engine) *Handler {
	return &Handler{
		store:    store,
		fetcher:  fetcher,
		analyzer: analyzer,
		engine:   engine,
	}
}

// ReceivePreferences handles POST /api/preferences
func (h *Handler) ReceivePreferences(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid preference data: " + err.Error()})
		return
	}

	prefs.ApplyDefaults()
	if err := prefs.Validate(); err != nil {
		logger.Warn("rejected invalid preferences", zap.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid preference data: " + err.Error()})
		return
	}

	h.store.Set(prefs)
	logger.Info("stored preferences", zap.String("user_id", prefs.UserID))

	c.JSON(http.StatusCreated, gin.H{"message": "Preferences received for user " + prefs.UserID})
}

// GetRecommendations handles GET /api/recommendations?user_id=...
//
// A fetch failure is treated as "nothing found": the response is an empty
// recommendation list, not an error. Only a missing user or a bad request
// produces an error status.
func (h *Handler) GetRecommendations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id query parameter is required"})
		return
	}

	prefs, ok := h.store.Get(userID)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Preferences not found for user " + userID})
		return
	}

	query := preferences.BuildQuery(prefs)
	articles, ok := h.fetcher.FetchArticles(c.Request.Context(), query)
	if !ok {
		logger.Warn("article fetch failed, returning empty recommendations",
			zap.String("user_id", userID),
		)
		c.JSON(http.StatusOK, RecommendationResponse{UserID: userID, Recommendations: []Recommendation{}})
		return
	}

	enriched := make([]models.EnrichedArticle, 0, len(articles))
	if h.analyzer.Available() {
		for _, article := range articles {
			enriched = append(enriched, h.analyzer.Enrich(c.Request.Context(), article))
		}
	} else {
		// One cheap availability check for the whole batch instead of
		// four no-op calls per article.
		logger.Warn("LLM analyzer unavailable, skipping article analysis")
		for _, article := range articles {
			enriched = append(enriched, models.EnrichedArticle{Article: article})
		}
	}

	top := h.engine.SelectTop(enriched, prefs, maxRecommendations)

	logger.Info("returning recommendations",
		zap.String("user_id", userID),
		zap.Int("count", len(top)),
	)

	c.JSON(http.StatusOK, RecommendationResponse{
		UserID:          userID,
		Recommendations: formatRecommendations(top),
	})
}
