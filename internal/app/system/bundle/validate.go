// internal/app/system/bundle/validate.go
package bundle

import (
	"fmt"
	"strings"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// Validate checks a parsed bundle against the hard invariants and returns
// any soft warnings. Hard errors abort the pipeline before any store writes;
// warnings accompany the bundle through staging and activation (the content
// is still useful).
//
// Hard errors:
//   - empty business name
//   - nil/empty pages map, or a page keyed by an unknown page id
//   - testimonial rating outside [1,5]
//   - unknown section type
//   - empty admin credential email or password (the owner must be able to
//     log into the admin panel immediately after activation; a blank
//     credential would be hashed and stored, locking the panel for good)
//
// Warnings:
//   - a section whose pageId references no page in the bundle (the
//     presentation layer would silently render nothing for it)
func Validate(b *models.ContentBundle) ([]string, error) {
	var problems []string
	var warnings []string

	if strings.TrimSpace(b.SiteSettings.BusinessName) == "" {
		problems = append(problems, "siteSettings.businessName is empty")
	}

	if len(b.Pages) == 0 {
		problems = append(problems, "pages is empty")
	}
	for id := range b.Pages {
		if !models.IsValidPageID(id) {
			problems = append(problems, fmt.Sprintf("pages: unknown page id %q", id))
		}
	}

	if strings.TrimSpace(b.AdminCredentials.Email) == "" {
		problems = append(problems, "adminCredentials.email is empty")
	}
	if b.AdminCredentials.Password == "" {
		problems = append(problems, "adminCredentials.password is empty")
	}

	for i, tm := range b.Testimonials {
		if tm.Rating < 1 || tm.Rating > 5 {
			problems = append(problems, fmt.Sprintf("testimonials[%d]: rating %d outside [1,5]", i, tm.Rating))
		}
	}

	for i, sec := range b.Sections {
		if !models.IsValidSectionType(sec.Type) {
			problems = append(problems, fmt.Sprintf("sections[%d]: unknown type %q", i, sec.Type))
			continue
		}
		if _, ok := b.Pages[sec.PageID]; !ok {
			warnings = append(warnings, fmt.Sprintf("sections[%d]: pageId %q has no matching page", i, sec.PageID))
		}
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	return warnings, nil
}
