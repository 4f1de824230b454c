package htmlsanitize

import (
	"strings"
	"testing"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

func TestSanitize_StripsScript(t *testing.T) {
	in := `<p>hello</p><script>alert("x")</script>`
	out := Sanitize(in)
	if strings.Contains(out, "script") {
		t.Errorf("script tag survived: %q", out)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Errorf("safe markup lost: %q", out)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q", got)
	}
}

func TestSanitizeBundle(t *testing.T) {
	b := &models.ContentBundle{
		Sections: []models.Section{
			{Type: models.SectionText, Body: `<p>ok</p><img src=x onerror="steal()">`},
		},
		EmailSettings: models.EmailSettings{
			ContactTemplate: models.EmailTemplate{Body: `Thanks {{name}}<script>bad()</script>`},
		},
	}
	SanitizeBundle(b)

	if strings.Contains(b.Sections[0].Body, "onerror") {
		t.Errorf("onerror survived: %q", b.Sections[0].Body)
	}
	body := b.EmailSettings.ContactTemplate.Body
	if strings.Contains(body, "script") {
		t.Errorf("script survived in email body: %q", body)
	}
	if !strings.Contains(body, "{{name}}") {
		t.Errorf("placeholder must survive sanitizing: %q", body)
	}
}
