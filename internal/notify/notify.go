package notify

import (
	"errors"
	"fmt"
	"net/smtp"
)

// Notification describes one outbound email about a submission or a
// moderation outcome.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers a single notification. Delivery is best-effort; a
// failed send must never affect already-committed state.
type Notifier interface {
	Notify(n Notification) error
}

// Sender is the fire-and-forget surface handed to services. Enqueue must
// not block and must not return delivery errors.
type Sender interface {
	Enqueue(n Notification)
}

// SMTPMailer 通过一个普通的 SMTP 端点发送邮件。
type SMTPMailer struct {
	Addr string
	From string
}

// Notify sends the mail synchronously. Callers wanting fire-and-forget
// wrap it in a Dispatcher.
func (m *SMTPMailer) Notify(n Notification) error {
	if m.Addr == "" {
		return errors.New("smtp address is not configured")
	}
	if n.To == "" {
		return errors.New("notification has no recipient")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.From, n.To, n.Subject, n.Body)
	return smtp.SendMail(m.Addr, nil, m.From, []string{n.To}, []byte(msg))
}
