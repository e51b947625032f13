package smtp

import (
	"bytes"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

var ErrNotConfigured = errors.New("smtp client is not configured")

type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

type Provider interface {
	Send(msg Message) error
	From() string
}

func Connect(user, password, host, port, from string, tlsEnabled bool) error {
	if from == "" {
		from = user
	}
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

func (i impl) From() string {
	return i.from
}

func (i impl) Send(msg Message) (err error) {
	if msg.From == "" {
		msg.From = i.from
	}
	logger := log.
		WithField("sender", msg.From).
		WithField("recipients", msg.To)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("email not sent, smtp client is not configured")
		return ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}
	body, err := Compose(msg)
	if err != nil {
		return err
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, msg.To, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, msg.To, body)
	}
	if err != nil {
		logger.WithError(err).Error("email send failed")
		return err
	}
	logger.Info("email sent")
	return nil
}

// Compose builds the MIME message, the envelope is sent separately.
func Compose(msg Message) (*bytes.Buffer, error) {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "compose email")
	}
	return &buf, nil
}
