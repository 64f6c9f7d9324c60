package notifications

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"

	"github.com/you/usersvc/domain"
)

// SMTPServiceImpl implements domain.NotificationService over SMTP with
// STARTTLS. Delivery errors are always returned to the caller.
type SMTPServiceImpl struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(host, port, username, password, from string) domain.NotificationService {
	return &SMTPServiceImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendEmail implements domain.NotificationService
func (s *SMTPServiceImpl) SendEmail(to, subject, html string) error {
	// If no host is configured, log instead of sending
	if s.host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	client, err := s.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp mail from failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}

	msg := s.buildMessage(to, subject, html)
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}

// connect dials the SMTP server and upgrades the connection with STARTTLS.
func (s *SMTPServiceImpl) connect() (*smtp.Client, error) {
	addr := s.host + ":" + s.port

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if ok, _ := client.Extension("STARTTLS"); !ok {
		client.Close()
		return nil, fmt.Errorf("smtp server does not support STARTTLS")
	}
	tlsConfig := &tls.Config{
		ServerName: s.host,
		MinVersion: tls.VersionTLS12,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		client.Close()
		return nil, fmt.Errorf("smtp auth failed: %w", err)
	}

	return client, nil
}

func (s *SMTPServiceImpl) buildMessage(to, subject, html string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)
	return b.String()
}
