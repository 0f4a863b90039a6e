package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jordan-wright/email"
)

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

func buildEmail(from string, to, cc []string, subject, message string, attachments []Attachment) (*email.Email, error) {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("FuelTrack <%s>", from)
	mail.To = to
	mail.Cc = cc
	mail.Subject = subject
	mail.Text = []byte(message)

	for _, a := range attachments {
		_, err := mail.Attach(bytes.NewReader(a.Data), a.Filename, a.ContentType)
		if err != nil {
			return nil, err
		}
	}
	return mail, nil
}

func (s Service) sendEmail(mail *email.Email) error {
	addr := fmt.Sprintf("%s:%d", s.config.Smtp.Server, s.config.Smtp.Port)
	err := mail.Send(addr, s.auth)
	// local/test SMTP servers tend to reject AUTH outright, retrying
	// unauthenticated keeps them working
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		return mail.Send(addr, nil)
	}
	return err
}
