package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"

	"github.com/gcgpws/backend-portal/utils/apperrors"
)

// EmailData carries the applicant fields the templates render
type EmailData struct {
	FirstName   string
	LastName    string
	Course      string
	ReferenceNo string
	Reason      string
}

// Mailer is the outbound email contract the admission workflow depends on.
// Every operation reports success as a bool and never raises past its
// boundary; a false return must never be treated as cause to undo committed
// state.
type Mailer interface {
	SendAcknowledgment(ctx context.Context, to string, data EmailData) bool
	SendApproval(ctx context.Context, to string, data EmailData) bool
	SendRejection(ctx context.Context, to string, data EmailData) bool
}

// EmailConfig holds SMTP transport settings
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailService sends applicant emails via SMTP. It satisfies Mailer.
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// IsConfigured checks if SMTP is properly configured
func (e *EmailService) IsConfigured() bool {
	return e.config.Username != "" && e.config.Password != ""
}

// SendAcknowledgment confirms receipt of a new application
func (e *EmailService) SendAcknowledgment(ctx context.Context, to string, data EmailData) bool {
	return e.send(ctx, to, "acknowledgment", "Application Received: GCGPWS College", acknowledgmentTemplate, data)
}

// SendApproval informs the applicant their application was approved
func (e *EmailService) SendApproval(ctx context.Context, to string, data EmailData) bool {
	return e.send(ctx, to, "approval", "Application Approved: GCGPWS College", approvalTemplate, data)
}

// SendRejection informs the applicant their application was declined
func (e *EmailService) SendRejection(ctx context.Context, to string, data EmailData) bool {
	return e.send(ctx, to, "rejection", "Application Status Update: GCGPWS College", rejectionTemplate, data)
}

func (e *EmailService) send(ctx context.Context, to, templateName, subject string, tmpl *template.Template, data EmailData) bool {
	if !e.IsConfigured() {
		log.Printf("SMTP not configured, skipping %s email to %s", templateName, to)
		return false
	}

	var body strings.Builder
	if err := tmpl.Execute(&body, data); err != nil {
		log.Println(&apperrors.EmailError{Recipient: to, Template: templateName, Err: err})
		return false
	}

	if err := e.deliver(ctx, to, subject, body.String()); err != nil {
		log.Println(&apperrors.EmailError{Recipient: to, Template: templateName, Err: err})
		return false
	}

	log.Printf("Sent %s email to %s", templateName, to)
	return true
}

// deliver sends an email using SMTP with STARTTLS. The context deadline
// bounds the whole exchange; the transport is torn down when it expires.
func (e *EmailService) deliver(ctx context.Context, to, subject, htmlBody string) error {
	headers := map[string]string{
		"From":         e.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", e.config.Host, e.config.Port)
	auth := smtp.PlainAuth("", e.config.Username, e.config.Password, e.config.Host)

	conn, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	// Abort the session if the caller's deadline passes mid-exchange
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	tlsConfig := &tls.Config{
		ServerName: e.config.Host,
	}
	if err := conn.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if err := conn.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := conn.Mail(e.config.Username); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := conn.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err := w.Write([]byte(message.String())); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return conn.Quit()
}
