package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

const minimalBundleJSON = `{
	"siteSettings": {"businessName": "Iron Temple Gym", "siteTitle": "Iron Temple"},
	"pages": {"home": {"pageId": "home", "hero": {"title": "Welcome"}}},
	"navigation": [{"label": "Home", "href": "/home", "order": 0, "visible": true}],
	"testimonials": [],
	"sections": [],
	"emailSettings": {
		"contactEmailTemplate": {"subject": "Thanks {{name}}", "body": "We got your message."},
		"joinEmailTemplate": {"subject": "Welcome", "body": "Hi {{name}}"},
		"adminNotificationTemplate": {"subject": "New contact", "body": "{{name}}: {{message}}"}
	},
	"adminCredentials": {"email": "owner@irontemple.test", "password": "hunter22"}
}`

func TestParse_PlainJSON(t *testing.T) {
	b, err := Parse(minimalBundleJSON)
	require.NoError(t, err)
	assert.Equal(t, "Iron Temple Gym", b.SiteSettings.BusinessName)
	require.Len(t, b.Navigation, 1)
	assert.Equal(t, "/home", b.Navigation[0].Href)
	require.Contains(t, b.Pages, models.PageHome)
	assert.Equal(t, "Welcome", b.Pages[models.PageHome].Hero.Title)
}

func TestParse_FencedJSON(t *testing.T) {
	fenced := "Here is your website content:\n```json\n" + minimalBundleJSON + "\n```\nLet me know if you'd like changes."
	plain, err := Parse(minimalBundleJSON)
	require.NoError(t, err)

	b, err := Parse(fenced)
	require.NoError(t, err)
	assert.Equal(t, plain, b)
}

func TestParse_FenceWithoutLanguageTag(t *testing.T) {
	fenced := "```\n" + minimalBundleJSON + "\n```"
	b, err := Parse(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Iron Temple Gym", b.SiteSettings.BusinessName)
}

func TestParse_Malformed(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":        "",
		"prose":        "I'm sorry, I can't produce a website for that.",
		"truncated":    `{"siteSettings": {"businessName": "Gym"`,
		"fenced prose": "```\nnot json at all\n```",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedProducerOutput)
		})
	}
}

func TestStripFences_NoFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences(` {"a":1} `))
}
