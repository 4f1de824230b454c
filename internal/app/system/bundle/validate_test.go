package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

func validBundle() *models.ContentBundle {
	return &models.ContentBundle{
		SiteSettings: models.SiteSettings{BusinessName: "Iron Temple Gym"},
		Pages: map[models.PageID]models.Page{
			models.PageHome: {PageID: models.PageHome},
			models.PageJoin: {PageID: models.PageJoin},
		},
		Navigation: []models.NavItem{
			{Label: "Home", Href: "/home", Order: 0, Visible: true},
			{Label: "Join", Href: "/join", Order: 1, Visible: true},
		},
		Testimonials: []models.Testimonial{
			{Name: "Sam", Content: "Great gym", Rating: 5, Order: 0},
		},
		Sections: []models.Section{
			{PageID: models.PageHome, Type: models.SectionText, Order: 0, Body: "<p>hi</p>"},
		},
		AdminCredentials: models.AdminCredentials{
			Email:    "owner@irontemple.example",
			Password: "forged-in-iron-42",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	warnings, err := Validate(validBundle())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_RatingBounds(t *testing.T) {
	for _, rating := range []int{1, 5} {
		b := validBundle()
		b.Testimonials[0].Rating = rating
		_, err := Validate(b)
		assert.NoError(t, err, "rating %d should be accepted", rating)
	}
	for _, rating := range []int{0, 6, -1} {
		b := validBundle()
		b.Testimonials[0].Rating = rating
		_, err := Validate(b)
		require.Error(t, err, "rating %d should be rejected", rating)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestValidate_OrphanSectionIsWarning(t *testing.T) {
	b := validBundle()
	b.Sections = append(b.Sections, models.Section{
		PageID: models.PageWhy, Type: models.SectionText, Order: 1,
	})

	warnings, err := Validate(b)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "why")
}

func TestValidate_UnknownSectionType(t *testing.T) {
	b := validBundle()
	b.Sections[0].Type = "carousel"
	_, err := Validate(b)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidate_UnknownPageID(t *testing.T) {
	b := validBundle()
	b.Pages["blog"] = models.Page{PageID: "blog"}
	_, err := Validate(b)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidate_EmptyBusinessName(t *testing.T) {
	b := validBundle()
	b.SiteSettings.BusinessName = "   "
	_, err := Validate(b)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidate_EmptyAdminCredentials(t *testing.T) {
	b := validBundle()
	b.AdminCredentials.Email = "  "
	_, err := Validate(b)
	assert.ErrorIs(t, err, ErrValidation, "a missing email leaves no account to log into")

	b = validBundle()
	b.AdminCredentials.Password = ""
	_, err = Validate(b)
	assert.ErrorIs(t, err, ErrValidation, "an empty password would be hashed and never shown")
}

func TestValidate_NoPages(t *testing.T) {
	b := validBundle()
	b.Pages = nil
	_, err := Validate(b)
	assert.ErrorIs(t, err, ErrValidation)
}
