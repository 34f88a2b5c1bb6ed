package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

type EmailData struct {
	Name    string
	Message string
	LinkURL string
}

var emailTemplate = template.Must(template.New("email").Parse(`<h1>Hi {{.Name}},</h1>
<p>{{.Message}}</p>
<p><a href="{{.LinkURL}}">{{.LinkURL}}</a></p>
<p>If you already updated your password you can ignore this email.</p>`))

type Mailer interface {
	SendEmail(emailTo, emailSubject string, data EmailData) error
}

type SMTPMailer struct {
	From     string
	Password string
	Host     string
	Address  string
}

func (m *SMTPMailer) SendEmail(emailTo, emailSubject string, data EmailData) error {
	if m.Address == "" {
		return fmt.Errorf("smtp address is not configured")
	}

	var body bytes.Buffer
	if err := emailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.From,
		emailTo,
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)
	if err := smtp.SendMail(m.Address, auth, m.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
