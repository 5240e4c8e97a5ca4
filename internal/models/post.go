// Package models defines the domain types for Raido.
package models

import "time"

// Post represents one published content record in the collection.
//
// HeroImage and ReadingTime are display payloads: the query layer carries
// them through untouched and never branches on their contents.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"published_at"`
	Tags        []string  `json:"tags,omitempty"`
	HeroImage   any       `json:"hero_image,omitempty"`
	ReadingTime string    `json:"reading_time,omitempty"`
}

// PostMetadata is a lightweight representation returned by storage listings.
type PostMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
