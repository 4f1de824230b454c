// internal/app/system/mailer/render.go
package mailer

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// placeholderRe matches {{variable}} markers in template subjects and
// bodies. Names are alphanumeric with dots/underscores, whitespace inside
// the braces tolerated.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Render resolves the {{variable}} placeholders of one email template.
// Unknown variables are left verbatim and logged, never dropped: a visible
// {{name}} in a delivered email is diagnosable, silent truncation is not.
func Render(tpl models.EmailTemplate, vars map[string]string, log *zap.Logger) (subject, body string) {
	resolve := func(s string) string {
		return placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
			name := placeholderRe.FindStringSubmatch(match)[1]
			if val, ok := vars[name]; ok {
				return val
			}
			if log != nil {
				log.Warn("unresolved email template variable", zap.String("variable", name))
			}
			return match
		})
	}
	return resolve(tpl.Subject), resolve(tpl.Body)
}
