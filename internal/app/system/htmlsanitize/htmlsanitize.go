// Package htmlsanitize cleans HTML produced by the content producer before
// it is staged. Producer output is untrusted input; bluemonday strips
// dangerous markup while keeping the formatting the presentation layer
// renders.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.AllowElements("u", "s", "sub", "sup", "mark")
	})
	return policy
}

// Sanitize cleans one HTML string, preserving safe formatting such as bold,
// italic, lists, and links.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// SanitizeBundle cleans every rich-text field of a bundle in place: section
// bodies and email template bodies. Plain-text fields (labels, titles,
// contact info) are rendered escaped by the presentation layer and are left
// alone.
func SanitizeBundle(b *models.ContentBundle) {
	for i := range b.Sections {
		b.Sections[i].Body = Sanitize(b.Sections[i].Body)
	}
	b.EmailSettings.ContactTemplate.Body = Sanitize(b.EmailSettings.ContactTemplate.Body)
	b.EmailSettings.JoinTemplate.Body = Sanitize(b.EmailSettings.JoinTemplate.Body)
	b.EmailSettings.AdminNotification.Body = Sanitize(b.EmailSettings.AdminNotification.Body)
}
