// internal/app/system/producer/prompt.go
package producer

import "fmt"

// systemPrompt pins the model to the bundle contract. The schema is conveyed
// as a worked example rather than a formal schema document; the parser and
// validator enforce the contract on the way back in.
const systemPrompt = `You generate complete website content bundles for small businesses.
Respond with a single JSON object and nothing else. The object must follow
exactly the shape of the example the user provides: the same top-level keys
(siteSettings, pages, navigation, testimonials, sections, emailSettings,
adminCredentials), the same page ids (home, about, services, contact, join,
why - include only the pages that fit the business), and the same section
types (text, image-text, features, stats, video, testimonials). Testimonial
ratings are integers from 1 to 5. Email template bodies may use {{variable}}
placeholders. Invent realistic, specific content for the described business.`

// exampleBundle is the worked example embedded in every prompt.
const exampleBundle = `{
  "siteSettings": {
    "businessName": "Riverbend Yoga",
    "siteTitle": "Riverbend Yoga - Find Your Balance",
    "seoDescription": "Community yoga studio offering classes for all levels.",
    "contactEmail": "hello@riverbendyoga.com",
    "contactPhone": "+1 555 010 4477",
    "address": "12 River St, Springfield",
    "hours": "Mon-Sat 7:00-21:00",
    "theme": "calm-green",
    "logoText": "Riverbend",
    "logoIcon": "lotus"
  },
  "pages": {
    "home": {"pageId": "home", "hero": {"title": "Find Your Balance", "subtitle": "Yoga for every body", "ctaLabel": "Book a class", "ctaHref": "/join"}},
    "about": {"pageId": "about", "hero": {"title": "Our Story"}},
    "join": {"pageId": "join", "hero": {"title": "Join Riverbend"}, "content": {"packages": [{"name": "Drop-in", "price": "18", "period": "class"}]}}
  },
  "navigation": [
    {"label": "Home", "href": "/home", "order": 0, "visible": true},
    {"label": "About", "href": "/about", "order": 1, "visible": true},
    {"label": "Join", "href": "/join", "order": 2, "visible": true}
  ],
  "testimonials": [
    {"name": "Dana M.", "role": "Member since 2022", "content": "The teachers meet you where you are.", "rating": 5, "image": "", "order": 0}
  ],
  "sections": [
    {"pageId": "home", "type": "features", "order": 0, "title": "Why Riverbend", "features": [{"icon": "heart", "title": "All levels", "description": "Beginner-friendly classes every day."}]},
    {"pageId": "home", "type": "stats", "order": 1, "stats": [{"number": "12", "label": "teachers", "suffix": "+"}]},
    {"pageId": "about", "type": "text", "order": 0, "title": "Our Story", "body": "<p>Founded on the river in 2015...</p>"}
  ],
  "emailSettings": {
    "contactEmailTemplate": {"subject": "Thanks for reaching out, {{name}}", "body": "We received your message and will reply within a day."},
    "joinEmailTemplate": {"subject": "Welcome to Riverbend, {{name}}", "body": "Your membership is ready."},
    "adminNotificationTemplate": {"subject": "New contact from {{name}}", "body": "{{name}} <{{email}}> wrote: {{message}}"}
  },
  "adminCredentials": {"email": "owner@riverbendyoga.com", "password": "replace-with-generated"}
}`

// buildPrompt combines the worked example with the user's description.
func buildPrompt(description string) string {
	return fmt.Sprintf(`Here is an example content bundle:

%s

Now produce a complete content bundle, in exactly that JSON shape, for the
following business:

%s`, exampleBundle, description)
}
