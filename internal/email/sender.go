package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailProvider реализует Provider поверх gomail
type GomailProvider struct {
	config    Config
	dialer    *gomail.Dialer
	templates *TemplateManager
}

// NewGomailProvider создает SMTP провайдер
func NewGomailProvider(config Config) (*GomailProvider, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	provider := &GomailProvider{
		config:    config,
		dialer:    gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
		templates: tm,
	}

	if err := provider.Validate(); err != nil {
		return nil, err
	}

	return provider, nil
}

// Send отправляет email сообщение
func (p *GomailProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

// SendOverdueNotice уведомляет клиента о просроченном платеже
func (p *GomailProvider) SendOverdueNotice(to string, data OverdueNoticeData) error {
	if data.Subject == "" {
		data.Subject = "Payment Overdue"
	}
	if data.CompanyName == "" {
		data.CompanyName = p.config.FromName
	}

	html, err := p.templates.Render("overdue_notice", data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  data.Subject,
		HTMLBody: html,
	})
}

// SendPaymentReceipt отправляет квитанцию об успешной оплате
func (p *GomailProvider) SendPaymentReceipt(to string, data PaymentReceiptData) error {
	if data.Subject == "" {
		data.Subject = "Payment Received"
	}
	if data.CompanyName == "" {
		data.CompanyName = p.config.FromName
	}

	html, err := p.templates.Render("payment_receipt", data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  data.Subject,
		HTMLBody: html,
	})
}

// Validate проверяет конфигурацию SMTP
func (p *GomailProvider) Validate() error {
	if p.config.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.SMTPPort <= 0 || p.config.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.SMTPPort)
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Close закрывает соединение (gomail открывает его на каждую отправку)
func (p *GomailProvider) Close() error {
	return nil
}
