// Package mail sends digest and test messages over SMTP. The standard
// library client is enough here: one recipient per message, no queueing,
// settings come from storage on every call.
package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"newsdesk/contexts/community-experience/digest-service/domain/entities"
)

type SMTPMailer struct {
	Logger *slog.Logger
}

func (m SMTPMailer) Send(ctx context.Context, settings entities.MailSettings, to string, subject string, htmlBody string) error {
	if strings.TrimSpace(settings.Host) == "" {
		return errors.New("smtp host is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))
	from := strings.TrimSpace(settings.FromAddress)
	if from == "" {
		from = settings.Username
	}

	client, err := m.dial(addr, settings)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer func() { _ = client.Close() }()

	if settings.Username != "" {
		auth := smtp.PlainAuth("", settings.Username, settings.Password, settings.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := writer.Write(composeMessage(settings, from, to, subject, htmlBody)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}

	if m.Logger != nil {
		m.Logger.Info("mail sent",
			"event", "mail_sent",
			"module", "internal/platform/mail",
			"layer", "platform",
			"to", to,
		)
	}
	return client.Quit()
}

// dial opens the connection in the mode the stored settings ask for:
// "ssl" means implicit TLS on connect, "tls" means STARTTLS after the
// greeting, anything else stays plain.
func (m SMTPMailer) dial(addr string, settings entities.MailSettings) (*smtp.Client, error) {
	mode := strings.ToLower(strings.TrimSpace(settings.Encryption))

	if mode == "ssl" {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: settings.Host})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, settings.Host)
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, err
	}
	if mode == "tls" || mode == "starttls" {
		if err := client.StartTLS(&tls.Config{ServerName: settings.Host}); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

func composeMessage(settings entities.MailSettings, from string, to string, subject string, htmlBody string) []byte {
	var b strings.Builder
	if name := strings.TrimSpace(settings.FromName); name != "" {
		fmt.Fprintf(&b, "From: %s <%s>\r\n", name, from)
	} else {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return []byte(b.String())
}
