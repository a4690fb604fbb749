package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendOverdueNotice уведомляет клиента о просроченном платеже
	SendOverdueNotice(to string, data OverdueNoticeData) error

	// SendPaymentReceipt отправляет квитанцию об успешной оплате
	SendPaymentReceipt(to string, data PaymentReceiptData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}

// NoopProvider - заглушка, когда email отключен в конфигурации.
// Все операции успешны и ничего не отправляют.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider { return &NoopProvider{} }

func (p *NoopProvider) Send(email *Email) error { return nil }

func (p *NoopProvider) SendOverdueNotice(to string, data OverdueNoticeData) error { return nil }

func (p *NoopProvider) SendPaymentReceipt(to string, data PaymentReceiptData) error { return nil }

func (p *NoopProvider) Validate() error { return nil }

func (p *NoopProvider) Close() error { return nil }
