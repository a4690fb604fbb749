package email

// Email представляет структуру email сообщения
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData базовая структура для данных шаблонов
type TemplateData struct {
	CustomerName string
	Subject      string
	Message      string
	SupportEmail string
	CompanyName  string
}

// OverdueNoticeData данные для письма о просроченном платеже
type OverdueNoticeData struct {
	TemplateData
	PackageName   string
	PendingAmount float64
	PenaltyAmount float64
	DueDate       string
}

// PaymentReceiptData данные для квитанции об оплате
type PaymentReceiptData struct {
	TemplateData
	PackageName   string
	PaidAmount    float64
	TransactionID string
}

// Config конфигурация email сервиса
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Enabled   bool
}
