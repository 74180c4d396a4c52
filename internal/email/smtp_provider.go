package email

import (
	"fmt"
	"net/url"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

// Send отправляет email сообщение. Вызов синхронный: ошибка возвращается вызывающему.
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	switch {
	case email.HTMLBody != "" && email.Body != "":
		m.SetBody("text/plain", email.Body)
		m.AddAlternative("text/html", email.HTMLBody)
	case email.HTMLBody != "":
		m.SetBody("text/html", email.HTMLBody)
	default:
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendConfirmation рендерит шаблон подтверждения и отправляет письмо
func (p *SMTPProvider) SendConfirmation(to, username, token string) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	link := ConfirmationLink(p.config.ConfirmURL, token)
	htmlBody, err := p.renderer.Render(TemplateConfirmation, TemplateData{
		"Username": username,
		"Link":     link,
		"Token":    token,
	})
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Confirm your account",
		Body:     fmt.Sprintf("Hello %s, confirm your account: %s", username, link),
		HTMLBody: htmlBody,
	})
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Close закрывает соединение (gomail открывает соединение на каждое письмо)
func (p *SMTPProvider) Close() error {
	return nil
}

// ConfirmationLink дописывает экранированный токен к базовой ссылке
func ConfirmationLink(base, token string) string {
	return base + url.PathEscape(token)
}
