// internal/domain/models/bundle.go
package models

import "time"

// ContentBundle is the complete structured content payload produced for one
// business description. It is created in memory by a content producer,
// persisted immutably to staging, and published wholesale to the live store
// by the activation engine. There is no partial-update mode: activation
// replaces every document and collection enumerated here.
type ContentBundle struct {
	SiteSettings     SiteSettings      `bson:"site_settings" json:"siteSettings"`
	Pages            map[PageID]Page   `bson:"pages" json:"pages"`
	Navigation       []NavItem         `bson:"navigation" json:"navigation"`
	Testimonials     []Testimonial     `bson:"testimonials" json:"testimonials"`
	Sections         []Section         `bson:"sections" json:"sections"`
	EmailSettings    EmailSettings     `bson:"email_settings" json:"emailSettings"`
	AdminCredentials AdminCredentials  `bson:"admin_credentials" json:"adminCredentials"`
}

// SiteSettings is the business-identity singleton. It carries no
// relationships; activation overwrites the entire prior document.
type SiteSettings struct {
	BusinessName   string `bson:"business_name" json:"businessName"`
	SiteTitle      string `bson:"site_title" json:"siteTitle"`
	SEODescription string `bson:"seo_description" json:"seoDescription"`
	ContactEmail   string `bson:"contact_email" json:"contactEmail"`
	ContactPhone   string `bson:"contact_phone" json:"contactPhone"`
	Address        string `bson:"address" json:"address"`
	Hours          string `bson:"hours" json:"hours"`
	Theme          string `bson:"theme" json:"theme"`
	LogoText       string `bson:"logo_text" json:"logoText"`
	LogoIcon       string `bson:"logo_icon" json:"logoIcon"`
}

// NavItem is one entry of the site navigation. Order is an explicit integer
// field because the backing collection is unordered; activation reassigns
// sequential values and does not trust gaps in producer output.
type NavItem struct {
	Label   string `bson:"label" json:"label"`
	Href    string `bson:"href" json:"href"`
	Order   int    `bson:"order" json:"order"`
	Visible bool   `bson:"visible" json:"visible"`
}

// Testimonial is one customer quote. Rating must lie in [1,5]; out-of-range
// values are rejected during validation rather than clamped, since they
// indicate producer malfunction.
type Testimonial struct {
	Name    string `bson:"name" json:"name"`
	Role    string `bson:"role" json:"role"`
	Content string `bson:"content" json:"content"`
	Rating  int    `bson:"rating" json:"rating"`
	Image   string `bson:"image" json:"image"`
	Order   int    `bson:"order" json:"order"`
}

// EmailSettings is the email-template singleton. Template bodies carry
// {{variable}} placeholders resolved by the mailer at send time.
type EmailSettings struct {
	ContactTemplate   EmailTemplate `bson:"contact_template" json:"contactEmailTemplate"`
	JoinTemplate      EmailTemplate `bson:"join_template" json:"joinEmailTemplate"`
	AdminNotification EmailTemplate `bson:"admin_notification" json:"adminNotificationTemplate"`
}

// EmailTemplate is one subject/body pair.
type EmailTemplate struct {
	Subject string `bson:"subject" json:"subject"`
	Body    string `bson:"body" json:"body"`
}

// AdminCredentials is generated alongside each bundle so the business owner
// can log into the admin panel immediately after activation. The clear-text
// password exists only in the bundle; the live store keeps a bcrypt hash.
type AdminCredentials struct {
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"password"`
}

// StagedBundle is the immutable staging snapshot for one (userID, chatID)
// pair. Re-generation under the same pair replaces the earlier snapshot
// (last-write-wins singleton, not an append-only log).
type StagedBundle struct {
	UserID      string        `bson:"user_id" json:"user_id"`
	ChatID      string        `bson:"chat_id" json:"chat_id"`
	Description string        `bson:"description" json:"description"`
	Bundle      ContentBundle `bson:"bundle" json:"bundle"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}
