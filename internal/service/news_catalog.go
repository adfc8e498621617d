package service

import (
	"time"

	"hoopline/internal/models"
)

// newsCatalog returns the curated demo feed. Publish times are anchored to
// now so the feed always looks fresh in development.
func newsCatalog(now time.Time) []models.NewsArticle {
	return []models.NewsArticle{
		{
			ID:          "1",
			Title:       "LeBron James Reaches Historic Milestone",
			Summary:     "The Lakers superstar becomes the all-time leading scorer in NBA history.",
			Content:     "In a historic moment for basketball...",
			Author:      "ESPN Staff",
			Source:      "ESPN",
			ImageURL:    "https://via.placeholder.com/600x300/7C3AED/FFFFFF?text=NBA+News",
			PublishedAt: now.Add(-2 * time.Hour),
			Category:    "NBA",
			Tags:        []string{"LeBron", "Lakers", "Record"},
			URL:         "https://example.com/lebron-milestone",
			IsBreaking:  true,
		},
		{
			ID:          "2",
			Title:       "WNBA Season Preview: Top Contenders",
			Summary:     "Analysis of the top teams heading into the new WNBA season.",
			Content:     "As the WNBA season approaches...",
			Author:      "Sarah Basketball",
			Source:      "Bleacher Report",
			ImageURL:    "https://via.placeholder.com/600x300/5B21B6/FFFFFF?text=WNBA+News",
			PublishedAt: now.Add(-4 * time.Hour),
			Category:    "WNBA",
			Tags:        []string{"WNBA", "Preview", "Season"},
			URL:         "https://example.com/wnba-preview",
			IsBreaking:  false,
		},
		{
			ID:          "3",
			Title:       "March Madness Bracket Predictions",
			Summary:     "Expert predictions for the upcoming NCAA tournament.",
			Content:     "The NCAA tournament is upon us...",
			Author:      "College Basketball Insider",
			Source:      "The Athletic",
			ImageURL:    "https://via.placeholder.com/600x300/A855F7/FFFFFF?text=NCAA+News",
			PublishedAt: now.Add(-6 * time.Hour),
			Category:    "NCAA",
			Tags:        []string{"NCAA", "March Madness", "Tournament"},
			URL:         "https://example.com/march-madness",
			IsBreaking:  false,
		},
		{
			ID:          "4",
			Title:       "EuroLeague Final Four Set",
			Summary:     "The four teams that will compete for the EuroLeague championship.",
			Content:     "After intense playoff action...",
			Author:      "International Basketball Reporter",
			Source:      "FIBA",
			ImageURL:    "https://via.placeholder.com/600x300/F59E0B/FFFFFF?text=International",
			PublishedAt: now.Add(-8 * time.Hour),
			Category:    "International",
			Tags:        []string{"EuroLeague", "International", "Playoffs"},
			URL:         "https://example.com/euroleague-final-four",
			IsBreaking:  false,
		},
		{
			ID:          "5",
			Title:       "Trade Deadline Shakeup: Multiple Stars Move",
			Summary:     "Several All-Star players change teams in blockbuster trades.",
			Content:     "The NBA trade deadline delivered...",
			Author:      "Trade Expert",
			Source:      "The Ringer",
			ImageURL:    "https://via.placeholder.com/600x300/EF4444/FFFFFF?text=Breaking+Trade",
			PublishedAt: now.Add(-1 * time.Hour),
			Category:    "NBA",
			Tags:        []string{"Trade", "NBA", "Breaking"},
			URL:         "https://example.com/trade-deadline",
			IsBreaking:  true,
		},
	}
}

func newsCategories() []models.NewsCategory {
	return []models.NewsCategory{
		{ID: "nba", Name: "NBA", Description: "National Basketball Association"},
		{ID: "wnba", Name: "WNBA", Description: "Women's National Basketball Association"},
		{ID: "ncaa", Name: "NCAA", Description: "College Basketball"},
		{ID: "international", Name: "International", Description: "Global Basketball Leagues"},
		{ID: "g-league", Name: "G League", Description: "NBA Development League"},
		{ID: "summer-league", Name: "Summer League", Description: "NBA Summer League"},
	}
}
