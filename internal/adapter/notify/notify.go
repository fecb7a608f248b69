// Package notify delivers voter notifications by mail, or to the log when
// no SMTP host is configured.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

var templates = template.Must(template.New("notify").Option("missingkey=error").Parse(`
{{define "passcode"}}Your one-time passcode for "{{.Election}}" is {{.Code}}.
It expires at {{.ExpiresAt}} and can be used once.{{end}}
{{define "voter_approved"}}Hello {{.Name}},

your voter registration has been approved. Your voter code is {{.VoterCode}}.{{end}}
{{define "voter_rejected"}}Hello {{.Name}},

your voter registration has been rejected.
Reason: {{.Reason}}{{end}}
`))

// Render executes the message template.
func Render(msg domain.Notification) (string, error) {
	if templates.Lookup(msg.Template) == nil {
		return "", fmt.Errorf("notify: unknown template %q", msg.Template)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, msg.Template, msg.Params); err != nil {
		return "", fmt.Errorf("notify: render %s: %w", msg.Template, err)
	}
	return buf.String(), nil
}

// Sender is implemented by SMTPSender and LogSender.
type Sender interface {
	Send(ctx context.Context, msg domain.Notification) error
}
