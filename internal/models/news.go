package models

import "time"

// NewsArticle is a curated news item. The news feed is served from an
// in-memory catalog; articles are not persisted.
type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Source      string    `json:"source"`
	ImageURL    string    `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	URL         string    `json:"url"`
	IsBreaking  bool      `json:"isBreaking"`
}

// NewsCategory describes one selectable news category.
type NewsCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
