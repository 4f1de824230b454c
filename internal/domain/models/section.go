// internal/domain/models/section.go
package models

// SectionType discriminates the shape of a section's content fields.
type SectionType string

const (
	SectionText         SectionType = "text"
	SectionImageText    SectionType = "image-text"
	SectionFeatures     SectionType = "features"
	SectionStats        SectionType = "stats"
	SectionVideo        SectionType = "video"
	SectionTestimonials SectionType = "testimonials"
)

// AllSectionTypes lists every valid section type.
var AllSectionTypes = []SectionType{
	SectionText, SectionImageText, SectionFeatures,
	SectionStats, SectionVideo, SectionTestimonials,
}

// IsValidSectionType reports whether t is a known section type.
func IsValidSectionType(t SectionType) bool {
	for _, s := range AllSectionTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Section is one free-form page section. PageID must reference a page
// present in the bundle; an orphaned PageID renders nothing and is treated
// as a validation warning, not a fatal error. Which of the remaining fields
// are populated depends on Type.
type Section struct {
	PageID   PageID      `bson:"page_id" json:"pageId"`
	Type     SectionType `bson:"type" json:"type"`
	Order    int         `bson:"order" json:"order"`
	Title    string      `bson:"title,omitempty" json:"title,omitempty"`
	Body     string      `bson:"body,omitempty" json:"body,omitempty"`
	Image    string      `bson:"image,omitempty" json:"image,omitempty"`
	VideoURL string      `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	Features []Feature   `bson:"features,omitempty" json:"features,omitempty"`
	Stats    []Stat      `bson:"stats,omitempty" json:"stats,omitempty"`
}

// Feature is one entry of a features-type section.
type Feature struct {
	Icon        string `bson:"icon" json:"icon"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Stat is one entry of a stats-type section.
type Stat struct {
	Number string `bson:"number" json:"number"`
	Label  string `bson:"label" json:"label"`
	Suffix string `bson:"suffix,omitempty" json:"suffix,omitempty"`
}
