package models

import "testing"

func TestPreferences_Validate(t *testing.T) {
	valid := func() Preferences {
		return Preferences{
			UserID:           "u1",
			Language:         "en",
			MinReadingLevel:  1,
			MaxArticleLength: 1000,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Preferences)
		wantErr bool
	}{
		{"valid", func(p *Preferences) {}, false},
		{"missing user id", func(p *Preferences) { p.UserID = "" }, true},
		{"reading level too low", func(p *Preferences) { p.MinReadingLevel = 0 }, true},
		{"reading level too high", func(p *Preferences) { p.MinReadingLevel = 6 }, true},
		{"article length too short", func(p *Preferences) { p.MaxArticleLength = 99 }, true},
		{"article length at minimum", func(p *Preferences) { p.MaxArticleLength = 100 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := valid()
			tt.mutate(&prefs)

			err := prefs.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreferences_ApplyDefaults(t *testing.T) {
	prefs := Preferences{UserID: "u1"}
	prefs.ApplyDefaults()

	if prefs.Language != "en" {
		t.Errorf("Expected default language 'en', got %q", prefs.Language)
	}
	if prefs.MinReadingLevel != 1 {
		t.Errorf("Expected default reading level 1, got %d", prefs.MinReadingLevel)
	}
	if prefs.MaxArticleLength != 1000 {
		t.Errorf("Expected default article length 1000, got %d", prefs.MaxArticleLength)
	}

	if err := prefs.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestArticle_Text(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		want    string
	}{
		{"content preferred", Article{Title: "t", Description: "d", Content: "c"}, "c"},
		{"description next", Article{Title: "t", Description: "d"}, "d"},
		{"title last", Article{Title: "t"}, "t"},
		{"all empty", Article{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.article.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
