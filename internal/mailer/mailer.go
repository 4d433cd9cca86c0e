// Package mailer delivers report PDFs over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP delivery settings
type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	To            []string
	SubjectPrefix string
	TLS           string // "starttls", "tls", "none"
}

// Mailer sends report emails
type Mailer struct {
	config Config
}

func New(config Config) *Mailer {
	return &Mailer{config: config}
}

// BuildMessage assembles the report email with the PDF attached.
func (m *Mailer) BuildMessage(subject, body, attachmentPath string) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(m.config.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", m.config.From, err)
	}
	if err := msg.To(m.config.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient list: %w", err)
	}

	fullSubject := subject
	if m.config.SubjectPrefix != "" {
		fullSubject = m.config.SubjectPrefix + " " + subject
	}
	msg.Subject(fullSubject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if attachmentPath != "" {
		msg.AttachFile(attachmentPath)
	}

	return msg, nil
}

// SendReport emails the PDF at path to the configured recipients. Errors are
// returned to the caller; the scheduler logs them and keeps the schedule.
func (m *Mailer) SendReport(ctx context.Context, subject, body, attachmentPath string) error {
	msg, err := m.BuildMessage(subject, body, attachmentPath)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.config.Port),
	}

	switch m.config.TLS {
	case "starttls":
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	case "tls":
		opts = append(opts, mail.WithSSL())
	case "none":
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		return fmt.Errorf("invalid TLS mode: %s", m.config.TLS)
	}

	if m.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.config.Username),
			mail.WithPassword(m.config.Password),
		)
	}

	client, err := mail.NewClient(m.config.Host, opts...)
	if err != nil {
		return fmt.Errorf("create SMTP client: %w", err)
	}

	start := time.Now()
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send report mail: %w", err)
	}

	log.Printf("mailer: sent %q to %s in %v", subject, strings.Join(m.config.To, ", "), time.Since(start))
	return nil
}
