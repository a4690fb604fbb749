package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager управляет встроенными шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
}

var builtinTemplates = map[string]string{
	"overdue_notice": `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Payment Overdue</h2>
	<p>Dear {{.CustomerName}},</p>
	<p>Your payment for the <b>{{.PackageName}}</b> internet package was due on {{.DueDate}} and is now overdue.</p>
	<p>Amount due: <b>{{printf "%.2f" .PendingAmount}}</b>{{if gt .PenaltyAmount 0.0}} (includes a late fee of {{printf "%.2f" .PenaltyAmount}}){{end}}.</p>
	<p>Please settle the outstanding amount to avoid service suspension.</p>
	<p>{{.CompanyName}}</p>
</body>
</html>`,

	"payment_receipt": `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Payment Received</h2>
	<p>Dear {{.CustomerName}},</p>
	<p>We received your payment of <b>{{printf "%.2f" .PaidAmount}}</b> for the <b>{{.PackageName}}</b> package.</p>
	<p>Transaction ID: {{.TransactionID}}</p>
	<p>Thank you for staying connected with {{.CompanyName}}.</p>
</body>
</html>`,
}

// NewTemplateManager создает менеджер с встроенными шаблонами
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	for name, text := range builtinTemplates {
		tpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return buf.String(), nil
}
