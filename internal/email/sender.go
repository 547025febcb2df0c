// Package email sends transactional notifications over SMTP.
package email

import (
	"fmt"
	"log"
	"math"
	"net/smtp"
	"strings"
	"time"
)

const maxRetries = 3

// Config holds SMTP settings. A config without a host disables sending.
type Config struct {
	Host     string
	Port     string
	From     string
	Password string
}

// Sender delivers plain-text mail with retries. Notifications are
// best-effort; callers log failures and move on.
type Sender struct {
	config Config
}

// NewSender creates a sender from the given config.
func NewSender(config Config) *Sender {
	if config.Port == "" {
		config.Port = "587"
	}
	return &Sender{config: config}
}

// Enabled reports whether SMTP is configured.
func (s *Sender) Enabled() bool {
	return s.config.Host != "" && s.config.From != ""
}

// Send delivers a message to one recipient, retrying transient failures
// with exponential backoff. A disabled sender drops the message silently.
func (s *Sender) Send(to, subject, body string) error {
	if !s.Enabled() {
		return nil
	}

	msg := buildMessage(s.config.From, to, subject, body)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			wait := time.Duration(math.Pow(2, float64(i))) * time.Second
			time.Sleep(wait)
		}
		if err := s.send(to, msg); err != nil {
			lastErr = err
			log.Printf("email send failed (attempt %d/%d): %v", i+1, maxRetries, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

func (s *Sender) send(to string, msg []byte) error {
	addr := s.config.Host + ":" + s.config.Port
	var auth smtp.Auth
	if s.config.Password != "" {
		auth = smtp.PlainAuth("", s.config.From, s.config.Password, s.config.Host)
	}
	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// buildMessage assembles an RFC 5322 plain-text message. Headers and body
// are separated by a blank line.
func buildMessage(from, to, subject, body string) []byte {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return []byte(msg.String())
}
