package mail

import (
	"context"
	"fmt"
	"io"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/syemed/intake/internal/model"
)

// Attachment rides along a message.
type Attachment struct {
	Name    string
	Content []byte
}

// Message is one outbound mail.
type Message struct {
	To         string
	Cc         string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Mailer delivers messages. Implementations must not retry, a failed
// confirmation is reported as a warning and never blocks the request.
type Mailer interface {
	Send(context.Context, Message) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer dials with STARTTLS on the given port, the submission
// account is both the authenticated user and the sender.
func NewSMTPMailer(host string, port int, username string, password string) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.dialer.DialAndSend(build(m.from, msg)); err != nil {
		return fmt.Errorf("failed to send email to %s - %w", msg.To, err)
	}
	return nil
}

func build(from string, msg Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To)
	if msg.Cc != "" {
		gm.SetHeader("Cc", msg.Cc)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if msg.Attachment != nil {
		content := msg.Attachment.Content
		gm.Attach(msg.Attachment.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return gm
}

// ReceiptMessage composes the confirmation sent to the submitter once the
// request is persisted. summary may be nil when the generation step
// failed, the mail still goes out without the attachment.
func ReceiptMessage(req *model.ServiceRequest, copyTo string, summaryName string, summary []byte) Message {
	var body strings.Builder
	body.WriteString("Estimado/a,\n\n")
	body.WriteString("Hemos recibido su solicitud de ingreso a servicio técnico.\n\n")
	body.WriteString(fmt.Sprintf("Número de caso: #%d\n", req.ID))

	if orders := req.ServiceOrders(); len(orders) > 0 {
		numbers := make([]string, 0, len(orders))
		for _, ost := range orders {
			numbers = append(numbers, fmt.Sprintf("#%d", ost))
		}
		body.WriteString(fmt.Sprintf("Órdenes de servicio (OST): %s\n", strings.Join(numbers, ", ")))
	}

	body.WriteString(fmt.Sprintf("Motivo: %s\n\n", req.Reason))
	body.WriteString("Le adjuntamos un resumen en PDF con el detalle de los equipos registrados. ")
	body.WriteString("Nuestro equipo se pondrá en contacto a la brevedad.\n\n")
	body.WriteString("Por favor no responda este correo.\n\n")
	body.WriteString("Saludos,\nServicio Técnico - Syemed")

	msg := Message{
		To:      req.SubmitterEmail,
		Cc:      copyTo,
		Subject: fmt.Sprintf("Solicitud de Ingreso, Caso: #%d - Syemed", req.ID),
		Body:    body.String(),
	}
	if len(summary) > 0 {
		msg.Attachment = &Attachment{Name: summaryName, Content: summary}
	}
	return msg
}
