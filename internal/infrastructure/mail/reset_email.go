package mail

import (
	"bytes"
	"text/template"
)

const resetEmailSubject = "Reset your password"

const resetEmailText = `Hi {{.Username}},

A password reset was requested for your account. Use the link below to
choose a new password. The link is valid for 10 minutes and can only be
used once.

{{.Link}}

If you did not request a reset, you can ignore this email; your password
has not been changed.
`

var resetEmailTmpl = template.Must(template.New("reset_email").Parse(resetEmailText))

// ResetEmailBuilder renders the password-reset email.
//
// ResetEmailBuilder implements service.ResetEmailBuilder.
type ResetEmailBuilder struct{}

func NewResetEmailBuilder() *ResetEmailBuilder {
	return &ResetEmailBuilder{}
}

func (b *ResetEmailBuilder) BuildResetEmail(username, link string) (string, string, error) {
	data := struct {
		Username string
		Link     string
	}{
		Username: username,
		Link:     link,
	}

	var body bytes.Buffer
	if err := resetEmailTmpl.Execute(&body, data); err != nil {
		return "", "", err
	}
	return resetEmailSubject, body.String(), nil
}
