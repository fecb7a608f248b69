package domain

// Notification templates.
const (
	TemplatePasscode      = "passcode"
	TemplateVoterApproved = "voter_approved"
	TemplateVoterRejected = "voter_rejected"
)

// Notification is one outgoing message to a voter. Params feed the template.
type Notification struct {
	To       string
	Subject  string
	Template string
	Params   map[string]any
}
