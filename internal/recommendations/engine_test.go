package recommendations

import (
	"testing"

	"github.com/selivandex/news-agent/pkg/models"
)

func testPrefs() models.Preferences {
	return models.Preferences{
		UserID:              "u1",
		Keywords:            []string{"ai", "gpu"},
		PreferredCategories: []string{"technology"},
		Sources:             []string{"tech report"},
	}
}

func chipArticle() models.EnrichedArticle {
	return models.EnrichedArticle{
		Article: models.Article{
			Title:  "New AI Chip uses Advanced GPU",
			Source: models.ArticleSource{Name: "Tech Report"},
		},
		Category: "technology",
	}
}

func TestEngine_Score(t *testing.T) {
	engine := NewEngine()

	t.Run("full match", func(t *testing.T) {
		// 2 keywords + category + source = 1.0 + 1.0 + 2.0 + 0.5
		if got := engine.Score(chipArticle(), testPrefs()); got != 4.5 {
			t.Errorf("Expected score 4.5, got %v", got)
		}
	})

	t.Run("non-matching source drops the boost", func(t *testing.T) {
		article := chipArticle()
		article.Source.Name = "Other Outlet"

		if got := engine.Score(article, testPrefs()); got != 4.0 {
			t.Errorf("Expected score 4.0, got %v", got)
		}
	})

	t.Run("keyword counted once despite repeats", func(t *testing.T) {
		article := models.EnrichedArticle{
			Article: models.Article{
				Title:   "AI everywhere",
				Content: "ai ai ai ai",
			},
		}
		prefs := models.Preferences{UserID: "u1", Keywords: []string{"ai"}}

		if got := engine.Score(article, prefs); got != 1.0 {
			t.Errorf("Expected score 1.0, got %v", got)
		}
	})

	t.Run("missing category scores nothing for categories", func(t *testing.T) {
		article := chipArticle()
		article.Category = ""
		article.Source.Name = "Other"

		if got := engine.Score(article, testPrefs()); got != 2.0 {
			t.Errorf("Expected score 2.0, got %v", got)
		}
	})

	t.Run("no signals yields zero", func(t *testing.T) {
		article := models.EnrichedArticle{
			Article: models.Article{Title: "Gardening tips"},
		}

		if got := engine.Score(article, testPrefs()); got != 0 {
			t.Errorf("Expected score 0, got %v", got)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := engine.Score(chipArticle(), testPrefs())
		b := engine.Score(chipArticle(), testPrefs())

		if a != b {
			t.Errorf("Expected identical scores, got %v and %v", a, b)
		}
	})
}

func TestEngine_Rank(t *testing.T) {
	engine := NewEngine()
	prefs := testPrefs()

	full := chipArticle() // 4.5
	partial := models.EnrichedArticle{ // category only = 2.0
		Article:  models.Article{Title: "Quarterly earnings"},
		Category: "technology",
	}
	zeroA := models.EnrichedArticle{Article: models.Article{Title: "City council meeting", URL: "http://a"}}
	zeroB := models.EnrichedArticle{Article: models.Article{Title: "Weather outlook", URL: "http://b"}}

	ranked := engine.Rank([]models.EnrichedArticle{full, partial, zeroA, zeroB}, prefs)

	wantScores := []float64{4.5, 2.0, 0, 0}
	for i, want := range wantScores {
		if ranked[i].RelevanceScore != want {
			t.Errorf("Position %d: expected score %v, got %v", i, want, ranked[i].RelevanceScore)
		}
	}

	// Stable sort: tied articles keep input order
	if ranked[2].URL != "http://a" || ranked[3].URL != "http://b" {
		t.Error("Expected tied articles to keep their original relative order")
	}
}

func TestEngine_RankEmpty(t *testing.T) {
	engine := NewEngine()

	ranked := engine.Rank(nil, testPrefs())
	if len(ranked) != 0 {
		t.Errorf("Expected empty output, got %d articles", len(ranked))
	}
}

func TestEngine_RankDoesNotMutateInput(t *testing.T) {
	engine := NewEngine()
	input := []models.EnrichedArticle{
		{Article: models.Article{Title: "Gardening"}},
		chipArticle(),
	}

	engine.Rank(input, testPrefs())

	if input[0].Title != "Gardening" {
		t.Error("Expected input order to be unchanged")
	}
}

func TestEngine_SelectTop(t *testing.T) {
	engine := NewEngine()
	prefs := testPrefs()

	articles := []models.EnrichedArticle{
		{Article: models.Article{Title: "Nothing relevant"}},
		chipArticle(),
		{Article: models.Article{Title: "ai update"}},
	}

	t.Run("takes the n best", func(t *testing.T) {
		top := engine.SelectTop(articles, prefs, 2)
		if len(top) != 2 {
			t.Fatalf("Expected 2 articles, got %d", len(top))
		}
		if top[0].Title != "New AI Chip uses Advanced GPU" {
			t.Errorf("Expected best article first, got %q", top[0].Title)
		}
	})

	t.Run("n larger than input returns everything", func(t *testing.T) {
		top := engine.SelectTop(articles, prefs, 10)
		if len(top) != 3 {
			t.Errorf("Expected 3 articles, got %d", len(top))
		}
	})

	t.Run("n zero returns empty", func(t *testing.T) {
		top := engine.SelectTop(articles, prefs, 0)
		if len(top) != 0 {
			t.Errorf("Expected empty selection, got %d articles", len(top))
		}
	})

	t.Run("negative n panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for negative n")
			}
		}()
		engine.SelectTop(articles, prefs, -1)
	})
}
