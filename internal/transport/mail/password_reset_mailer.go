package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/url"
	"strings"
)

// PasswordResetMailer delivers reset links over plain SMTP. The token is
// embedded in a frontend URL; the API never echoes it back to the
// requester.
type PasswordResetMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	useTLS   bool
}

func NewPasswordResetMailer(host, port, username, password, from string, useTLS bool) *PasswordResetMailer {
	return &PasswordResetMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		useTLS:   useTLS,
	}
}

func (m *PasswordResetMailer) SendPasswordReset(ctx context.Context, email, token, resetURL string) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	link := buildResetLink(resetURL, token)

	subject := "Reset your ArtistDesk password"
	body := fmt.Sprintf("Open the link below to choose a new password. The link expires in one hour.\n\n%s\n\nIf you did not request this, ignore this email.", link)

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", email))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 7bit\r\n\r\n")
	message.WriteString(body)
	message.WriteString("\r\n")

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{email}, []byte(message.String()))
}

func buildResetLink(resetURL, token string) string {
	base := strings.TrimRight(strings.TrimSpace(resetURL), "/")
	if base == "" {
		return token
	}
	return base + "/reset_password?token=" + url.QueryEscape(token)
}
