// internal/app/system/producer/templates_data.go
//
// Hand-authored content bundles for the "Initialize Business Data" flow.
// Each builder returns a fresh value so callers can mutate freely.
package producer

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

func gymBundle() *models.ContentBundle {
	return &models.ContentBundle{
		SiteSettings: models.SiteSettings{
			BusinessName:   "Forge Fitness",
			SiteTitle:      "Forge Fitness - Train With Purpose",
			SEODescription: "Neighborhood gym with certified trainers, group classes, and 24/7 member access.",
			ContactEmail:   "hello@forgefitness.example",
			ContactPhone:   "+1 555 010 2200",
			Address:        "410 Anvil Ave",
			Hours:          "Open 24/7 for members; staffed Mon-Fri 6:00-21:00",
			Theme:          "bold-red",
			LogoText:       "Forge",
			LogoIcon:       "dumbbell",
		},
		Pages: map[models.PageID]models.Page{
			models.PageHome: {
				PageID: models.PageHome,
				Hero: &models.Hero{
					Title:    "Train With Purpose",
					Subtitle: "Coaching, community, and equipment that works as hard as you do.",
					CTALabel: "Start today",
					CTAHref:  "/join",
				},
			},
			models.PageAbout: {
				PageID: models.PageAbout,
				Hero:   &models.Hero{Title: "Built by Lifters"},
			},
			models.PageServices: {
				PageID: models.PageServices,
				Hero:   &models.Hero{Title: "Programs & Coaching"},
			},
			models.PageJoin: {
				PageID: models.PageJoin,
				Hero:   &models.Hero{Title: "Become a Member"},
				Content: bson.M{
					"packages": bson.A{
						bson.M{"name": "Open Gym", "price": "39", "period": "month"},
						bson.M{"name": "Classes + Gym", "price": "69", "period": "month"},
						bson.M{"name": "Personal Training", "price": "55", "period": "session"},
					},
				},
			},
			models.PageContact: {
				PageID: models.PageContact,
				Hero:   &models.Hero{Title: "Visit or Write Us"},
			},
		},
		Navigation: []models.NavItem{
			{Label: "Home", Href: "/home", Order: 0, Visible: true},
			{Label: "About", Href: "/about", Order: 1, Visible: true},
			{Label: "Programs", Href: "/services", Order: 2, Visible: true},
			{Label: "Join", Href: "/join", Order: 3, Visible: true},
			{Label: "Contact", Href: "/contact", Order: 4, Visible: true},
		},
		Testimonials: []models.Testimonial{
			{Name: "Marcus T.", Role: "Member since 2021", Content: "Lost 30 pounds and found a second family.", Rating: 5, Order: 0},
			{Name: "Priya K.", Role: "Competitive lifter", Content: "Best platforms and coaching in town.", Rating: 5, Order: 1},
			{Name: "Joel R.", Role: "New member", Content: "Never felt judged walking in as a beginner.", Rating: 4, Order: 2},
		},
		Sections: []models.Section{
			{
				PageID: models.PageHome, Type: models.SectionFeatures, Order: 0,
				Title: "Why Forge",
				Features: []models.Feature{
					{Icon: "trainer", Title: "Certified trainers", Description: "Every coach holds a national certification."},
					{Icon: "clock", Title: "24/7 access", Description: "Your schedule, not ours."},
					{Icon: "group", Title: "Group classes", Description: "Strength, conditioning, and mobility daily."},
				},
			},
			{
				PageID: models.PageHome, Type: models.SectionStats, Order: 1,
				Stats: []models.Stat{
					{Number: "900", Label: "active members", Suffix: "+"},
					{Number: "12", Label: "coaches"},
					{Number: "40", Label: "classes weekly", Suffix: "+"},
				},
			},
			{
				PageID: models.PageAbout, Type: models.SectionText, Order: 0,
				Title: "Our Story",
				Body:  "<p>Forge opened in 2016 with three squat racks and a promise: no gimmicks, just progress. Today we are the neighborhood's strength home.</p>",
			},
			{
				PageID: models.PageServices, Type: models.SectionImageText, Order: 0,
				Title: "Personal Training", Image: "/img/training.jpg",
				Body: "<p>One-on-one programming built around your goals, reviewed every four weeks.</p>",
			},
			{
				PageID: models.PageHome, Type: models.SectionTestimonials, Order: 2,
				Title: "What Members Say",
			},
		},
		EmailSettings: models.EmailSettings{
			ContactTemplate: models.EmailTemplate{
				Subject: "Thanks for contacting Forge Fitness, {{name}}",
				Body:    "We received your message and will get back to you within one business day.",
			},
			JoinTemplate: models.EmailTemplate{
				Subject: "Welcome to Forge Fitness, {{name}}",
				Body:    "Your membership is active. Drop by the front desk for your access fob.",
			},
			AdminNotification: models.EmailTemplate{
				Subject: "New website contact from {{name}}",
				Body:    "{{name}} <{{email}}> wrote: {{message}}",
			},
		},
		AdminCredentials: models.AdminCredentials{Email: "owner@forgefitness.example"},
	}
}

func salonBundle() *models.ContentBundle {
	return &models.ContentBundle{
		SiteSettings: models.SiteSettings{
			BusinessName:   "Velvet & Vine Salon",
			SiteTitle:      "Velvet & Vine - Hair, Nails, Glow",
			SEODescription: "Boutique salon for cuts, color, and nail artistry.",
			ContactEmail:   "book@velvetvine.example",
			ContactPhone:   "+1 555 010 8833",
			Address:        "27 Orchard Lane",
			Hours:          "Tue-Sat 9:00-19:00",
			Theme:          "soft-rose",
			LogoText:       "Velvet & Vine",
			LogoIcon:       "scissors",
		},
		Pages: map[models.PageID]models.Page{
			models.PageHome: {
				PageID: models.PageHome,
				Hero: &models.Hero{
					Title:    "Look Like Yourself, Only Brighter",
					Subtitle: "Cuts, color, and care from stylists who listen.",
					CTALabel: "Book now",
					CTAHref:  "/contact",
				},
			},
			models.PageServices: {
				PageID: models.PageServices,
				Hero:   &models.Hero{Title: "Services & Pricing"},
			},
			models.PageContact: {
				PageID: models.PageContact,
				Hero:   &models.Hero{Title: "Book an Appointment"},
			},
		},
		Navigation: []models.NavItem{
			{Label: "Home", Href: "/home", Order: 0, Visible: true},
			{Label: "Services", Href: "/services", Order: 1, Visible: true},
			{Label: "Book", Href: "/contact", Order: 2, Visible: true},
		},
		Testimonials: []models.Testimonial{
			{Name: "Elena S.", Role: "Regular", Content: "The only salon that gets my curls right.", Rating: 5, Order: 0},
			{Name: "Dee W.", Role: "First visit", Content: "Walked out feeling brand new.", Rating: 5, Order: 1},
		},
		Sections: []models.Section{
			{
				PageID: models.PageServices, Type: models.SectionFeatures, Order: 0,
				Title: "What We Do",
				Features: []models.Feature{
					{Icon: "scissors", Title: "Cut & style", Description: "From trims to transformations."},
					{Icon: "palette", Title: "Color", Description: "Balayage, gloss, and corrective color."},
					{Icon: "sparkle", Title: "Nails", Description: "Manicure and pedicure artistry."},
				},
			},
			{
				PageID: models.PageHome, Type: models.SectionImageText, Order: 0,
				Title: "A Calm Corner of the City", Image: "/img/salon.jpg",
				Body: "<p>Unhurried appointments, honest consultations, and products we actually use ourselves.</p>",
			},
		},
		EmailSettings: models.EmailSettings{
			ContactTemplate: models.EmailTemplate{
				Subject: "We got your booking request, {{name}}",
				Body:    "A stylist will confirm your slot shortly.",
			},
			JoinTemplate: models.EmailTemplate{
				Subject: "Welcome to the Velvet & Vine list, {{name}}",
				Body:    "You'll be first to hear about openings and seasonal offers.",
			},
			AdminNotification: models.EmailTemplate{
				Subject: "New booking request from {{name}}",
				Body:    "{{name}} <{{email}}> wrote: {{message}}",
			},
		},
		AdminCredentials: models.AdminCredentials{Email: "owner@velvetvine.example"},
	}
}

func restaurantBundle() *models.ContentBundle {
	return &models.ContentBundle{
		SiteSettings: models.SiteSettings{
			BusinessName:   "Harbor & Hearth",
			SiteTitle:      "Harbor & Hearth - Coastal Kitchen",
			SEODescription: "Seasonal coastal cooking, wood-fired oven, local catch.",
			ContactEmail:   "reserve@harborhearth.example",
			ContactPhone:   "+1 555 010 7744",
			Address:        "3 Quay Road",
			Hours:          "Wed-Sun 17:00-23:00",
			Theme:          "deep-navy",
			LogoText:       "Harbor & Hearth",
			LogoIcon:       "anchor",
		},
		Pages: map[models.PageID]models.Page{
			models.PageHome: {
				PageID: models.PageHome,
				Hero: &models.Hero{
					Title:    "From the Boats, To the Fire",
					Subtitle: "A daily menu written by the morning's catch.",
					CTALabel: "Reserve a table",
					CTAHref:  "/contact",
				},
			},
			models.PageAbout: {
				PageID: models.PageAbout,
				Hero:   &models.Hero{Title: "Our Kitchen"},
			},
			models.PageContact: {
				PageID: models.PageContact,
				Hero:   &models.Hero{Title: "Reservations"},
			},
		},
		Navigation: []models.NavItem{
			{Label: "Home", Href: "/home", Order: 0, Visible: true},
			{Label: "About", Href: "/about", Order: 1, Visible: true},
			{Label: "Reserve", Href: "/contact", Order: 2, Visible: true},
		},
		Testimonials: []models.Testimonial{
			{Name: "The Harbor Gazette", Role: "Restaurant review", Content: "The wood-fired monkfish alone is worth the drive.", Rating: 5, Order: 0},
			{Name: "Anan P.", Role: "Regular", Content: "Every visit tastes like a different season.", Rating: 4, Order: 1},
		},
		Sections: []models.Section{
			{
				PageID: models.PageAbout, Type: models.SectionText, Order: 0,
				Title: "Rooted in the Tide",
				Body:  "<p>We buy whole fish from day boats and let the hearth do the talking. Bread, butter, and dessert are made in-house every afternoon.</p>",
			},
			{
				PageID: models.PageHome, Type: models.SectionStats, Order: 0,
				Stats: []models.Stat{
					{Number: "9", Label: "local suppliers"},
					{Number: "120", Label: "seats"},
					{Number: "2", Label: "wood ovens"},
				},
			},
			{
				PageID: models.PageHome, Type: models.SectionVideo, Order: 1,
				Title: "An Evening at the Hearth", VideoURL: "https://video.example/harborhearth-tour",
			},
		},
		EmailSettings: models.EmailSettings{
			ContactTemplate: models.EmailTemplate{
				Subject: "Reservation request received, {{name}}",
				Body:    "We'll confirm your table by email within the hour during opening times.",
			},
			JoinTemplate: models.EmailTemplate{
				Subject: "Welcome to the Harbor & Hearth supper club, {{name}}",
				Body:    "Expect one email a month with the new menu and supper club dates.",
			},
			AdminNotification: models.EmailTemplate{
				Subject: "New reservation request from {{name}}",
				Body:    "{{name}} <{{email}}> wrote: {{message}}",
			},
		},
		AdminCredentials: models.AdminCredentials{Email: "owner@harborhearth.example"},
	}
}

func consultingBundle() *models.ContentBundle {
	return &models.ContentBundle{
		SiteSettings: models.SiteSettings{
			BusinessName:   "Northbridge Advisory",
			SiteTitle:      "Northbridge Advisory - Operations Consulting",
			SEODescription: "Operations and supply-chain consulting for growing manufacturers.",
			ContactEmail:   "contact@northbridge.example",
			ContactPhone:   "+1 555 010 3311",
			Address:        "Suite 400, 88 Commerce Park",
			Hours:          "Mon-Fri 9:00-18:00",
			Theme:          "slate-blue",
			LogoText:       "Northbridge",
			LogoIcon:       "bridge",
		},
		Pages: map[models.PageID]models.Page{
			models.PageHome: {
				PageID: models.PageHome,
				Hero: &models.Hero{
					Title:    "Operations That Scale With You",
					Subtitle: "We find the bottleneck, fix it, and teach your team to keep it fixed.",
					CTALabel: "Book a call",
					CTAHref:  "/contact",
				},
			},
			models.PageServices: {
				PageID: models.PageServices,
				Hero:   &models.Hero{Title: "Engagements"},
			},
			models.PageWhy: {
				PageID: models.PageWhy,
				Hero:   &models.Hero{Title: "Why Northbridge"},
			},
			models.PageContact: {
				PageID: models.PageContact,
				Hero:   &models.Hero{Title: "Start a Conversation"},
			},
		},
		Navigation: []models.NavItem{
			{Label: "Home", Href: "/home", Order: 0, Visible: true},
			{Label: "Engagements", Href: "/services", Order: 1, Visible: true},
			{Label: "Why Us", Href: "/why", Order: 2, Visible: true},
			{Label: "Contact", Href: "/contact", Order: 3, Visible: true},
		},
		Testimonials: []models.Testimonial{
			{Name: "COO, Meridian Foods", Content: "Cut our changeover time by 40% in one quarter.", Rating: 5, Order: 0},
		},
		Sections: []models.Section{
			{
				PageID: models.PageServices, Type: models.SectionFeatures, Order: 0,
				Title: "How We Engage",
				Features: []models.Feature{
					{Icon: "search", Title: "Diagnostic sprint", Description: "Two weeks on your floor, one prioritized roadmap."},
					{Icon: "wrench", Title: "Implementation", Description: "We run the fix alongside your team."},
					{Icon: "chart", Title: "Operating cadence", Description: "Quarterly reviews that keep gains compounding."},
				},
			},
			{
				PageID: models.PageWhy, Type: models.SectionStats, Order: 0,
				Stats: []models.Stat{
					{Number: "60", Label: "engagements", Suffix: "+"},
					{Number: "18", Label: "percent average cost reduction", Suffix: "%"},
				},
			},
			{
				PageID: models.PageWhy, Type: models.SectionText, Order: 1,
				Title: "Operators, Not Deck-Makers",
				Body:  "<p>Every Northbridge consultant has run a plant, a warehouse, or a fleet. We measure our work in your numbers, not our slides.</p>",
			},
		},
		EmailSettings: models.EmailSettings{
			ContactTemplate: models.EmailTemplate{
				Subject: "Thanks for reaching out, {{name}}",
				Body:    "A partner will reply within one business day.",
			},
			JoinTemplate: models.EmailTemplate{
				Subject: "Welcome aboard, {{name}}",
				Body:    "Your client portal access is on its way.",
			},
			AdminNotification: models.EmailTemplate{
				Subject: "New inquiry from {{name}}",
				Body:    "{{name}} <{{email}}> wrote: {{message}}",
			},
		},
		AdminCredentials: models.AdminCredentials{Email: "owner@northbridge.example"},
	}
}
