package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/logger"
)

// SimulatedSender accepts every submission after a short delay without
// delivering it anywhere.
type SimulatedSender struct {
	Delay time.Duration
}

// Send waits for Delay or until ctx is done.
func (s SimulatedSender) Send(ctx context.Context, ref string, sub Submission) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	logger.G(ctx).WithField("ref", ref).Debug("simulated contact delivery")
	return nil
}

// SendMailFunc has the signature of smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender mails submissions to the site owner.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	// SendMail defaults to smtp.SendMail.
	SendMail SendMailFunc
}

// Send composes a plain-text mail with Reply-To set to the visitor.
func (s SMTPSender) Send(ctx context.Context, ref string, sub Submission) error {
	if s.User == "" || s.Pass == "" {
		return errors.New("SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := s.To
	if to == "" {
		to = s.User
	}

	sendMail := s.SendMail
	if sendMail == nil {
		sendMail = smtp.SendMail
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := sendMail(s.Host+":"+s.Port, auth, s.User, []string{to}, composeMessage(s.User, to, ref, sub)); err != nil {
		return errors.Wrapf(err, "failed to send mail via %s", s.Host)
	}
	return nil
}

var headerSafe = strings.NewReplacer("\r", "", "\n", " ")

func composeMessage(from, to, ref string, sub Submission) []byte {
	subject := headerSafe.Replace(sub.Subject)
	if subject == "" {
		subject = "Portfolio Contact: " + headerSafe.Replace(sub.Name)
	}

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Reference: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, ref, sub.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe.Replace(sub.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
