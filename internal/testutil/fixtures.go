package testutil

import (
	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// ValidBundle returns a small, fully valid content bundle for tests. The
// bundle covers two pages, navigation, testimonials, and sections so write
// paths that iterate over collections have more than one document to move.
func ValidBundle() models.ContentBundle {
	return models.ContentBundle{
		SiteSettings: models.SiteSettings{
			BusinessName:   "Test Business",
			SiteTitle:      "Test Business",
			SEODescription: "A place for testing",
			ContactEmail:   "hello@test.example",
			ContactPhone:   "555-0100",
			Address:        "1 Test Way",
			Hours:          "Mon-Fri 9-5",
			Theme:          "default",
			LogoText:       "Test Business",
		},
		Pages: map[models.PageID]models.Page{
			models.PageHome: {
				PageID: models.PageHome,
				Hero: &models.Hero{
					Title:    "Welcome",
					Subtitle: "We test things",
					CTALabel: "Get Started",
					CTAHref:  "/contact",
				},
			},
			models.PageContact: {
				PageID: models.PageContact,
			},
		},
		Navigation: []models.NavItem{
			{Label: "Home", Href: "/", Order: 0, Visible: true},
			{Label: "Contact", Href: "/contact", Order: 1, Visible: true},
		},
		Testimonials: []models.Testimonial{
			{Name: "Pat Example", Role: "Customer", Content: "Great service.", Rating: 5, Order: 0},
			{Name: "Sam Sample", Role: "Customer", Content: "Would return.", Rating: 4, Order: 1},
		},
		Sections: []models.Section{
			{PageID: models.PageHome, Type: models.SectionText, Order: 0, Title: "About Us", Body: "<p>We are a test business.</p>"},
			{PageID: models.PageHome, Type: models.SectionFeatures, Order: 1, Title: "What We Do", Features: []models.Feature{
				{Title: "Testing", Description: "All day"},
			}},
			{PageID: models.PageContact, Type: models.SectionText, Order: 0, Title: "Reach Us", Body: "<p>Call any time.</p>"},
		},
		EmailSettings: models.EmailSettings{
			ContactTemplate: models.EmailTemplate{
				Subject: "Thanks for reaching out, {{name}}",
				Body:    "<p>We received your message, {{name}}.</p>",
			},
			JoinTemplate: models.EmailTemplate{
				Subject: "Welcome, {{name}}",
				Body:    "<p>Glad to have you.</p>",
			},
			AdminNotification: models.EmailTemplate{
				Subject: "New contact from {{name}}",
				Body:    "<p>{{name}} ({{email}}) wrote: {{message}}</p>",
			},
		},
		AdminCredentials: models.AdminCredentials{
			Email:    "admin@test.example",
			Password: "test-password-123",
		},
	}
}
