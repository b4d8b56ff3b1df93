package email

import (
	"context"
	"fmt"

	"user-registration-service/internal/config"
	"user-registration-service/internal/domain"

	"github.com/wneessen/go-mail"
)

const activationSubject = "Account activation"

// SMTPMailer отправляет письма активации через SMTP.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	username string
	password string
}

// NewSMTPMailer создает новый экземпляр SMTPMailer.
func NewSMTPMailer(cfg config.Config) domain.EmailGateway {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// SendActivationEmail отправляет письмо с токеном активации.
// Ошибка отправки означает, что регистрация должна быть откатана.
func (m *SMTPMailer) SendActivationEmail(ctx context.Context, to, token string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject(activationSubject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Token is %s", token))

	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}

	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send activation e-mail: %w", err)
	}
	return nil
}
