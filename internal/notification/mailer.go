package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/wb-go/wbf/logger"
)

// Mailer sends plain-text mail over SMTP. With no host configured it runs
// disabled and only logs what it would have sent.
type Mailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger logger.Logger
}

func NewMailer(host string, port int, username, password, from string, log logger.Logger) *Mailer {
	if host == "" {
		log.Warn("smtp host is empty, mail delivery disabled")
		return &Mailer{logger: log}
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &Mailer{
		addr:   fmt.Sprintf("%s:%d", host, port),
		from:   from,
		auth:   auth,
		logger: log,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.addr == "" {
		m.logger.Debug("mail skipped (mailer disabled)",
			logger.String("to", to),
			logger.String("subject", subject),
		)
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}
