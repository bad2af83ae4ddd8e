package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"casino-admin-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, fullName, roleName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	panelURL    string
	logger      logger.ILogger
}

// NewEmailService returns a gomail sender, or a logging no-op when host is empty.
func NewEmailService(host string, port int, username, password, senderName, panelURL string, log logger.ILogger) IEmailService {
	if host == "" {
		return &noopEmailService{logger: log}
	}
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		panelURL:    panelURL,
		logger:      log,
	}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
	<h2>Welcome to the back office, {{.Name}}</h2>
	<p>An account was created for you with the <strong>{{.Role}}</strong> role.</p>
	<p>Sign in at <a href="{{.URL}}">{{.URL}}</a> with this email address and the password shared by your administrator.</p>
	<p>Please change your password after the first login.</p>
</div>
`))

func RenderWelcome(fullName, roleName, panelURL string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, map[string]string{"Name": fullName, "Role": roleName, "URL": panelURL})
	return buf.String(), err
}

func (s *emailService) SendWelcome(toEmail, fullName, roleName string) error {
	body, err := RenderWelcome(fullName, roleName, s.panelURL)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your back office account")
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send welcome email", map[string]interface{}{"to": toEmail, "error": err.Error()})
		return fmt.Errorf("send welcome email: %w", err)
	}
	s.logger.Info("MAILER", "Welcome email sent", map[string]interface{}{"to": toEmail})
	return nil
}

type noopEmailService struct {
	logger logger.ILogger
}

func (s *noopEmailService) SendWelcome(toEmail, _, _ string) error {
	s.logger.Info("MAILER", "SMTP not configured, skipping welcome email", map[string]interface{}{"to": toEmail})
	return nil
}
