// internal/domain/models/page.go
package models

import "go.mongodb.org/mongo-driver/bson"

// PageID identifies one of the fixed set of site pages. Each page is stored
// as its own singleton document keyed by this id.
type PageID string

const (
	PageHome     PageID = "home"
	PageAbout    PageID = "about"
	PageServices PageID = "services"
	PageContact  PageID = "contact"
	PageJoin     PageID = "join"
	PageWhy      PageID = "why"
)

// AllPageIDs lists every valid page id in display order.
var AllPageIDs = []PageID{PageHome, PageAbout, PageServices, PageContact, PageJoin, PageWhy}

// IsValidPageID reports whether id names one of the fixed site pages.
func IsValidPageID(id PageID) bool {
	for _, p := range AllPageIDs {
		if p == id {
			return true
		}
	}
	return false
}

// Page is the per-page content singleton. Each page type has its own nested
// shape (hero blocks, feature lists, stat lists, pricing packages), so the
// body is kept as a free-form document rather than a shared schema; the
// presentation layer renders whatever it is given.
type Page struct {
	PageID  PageID  `bson:"page_id" json:"pageId"`
	Hero    *Hero   `bson:"hero,omitempty" json:"hero,omitempty"`
	Content bson.M  `bson:"content,omitempty" json:"content,omitempty"`
}

// Hero is the common hero block most page shapes start with.
type Hero struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
	CTALabel string `bson:"cta_label,omitempty" json:"ctaLabel,omitempty"`
	CTAHref  string `bson:"cta_href,omitempty" json:"ctaHref,omitempty"`
}
