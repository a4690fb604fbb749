package workers

import (
	"context"
	"time"

	"swiftconnect_backend/internal/billing"
	"swiftconnect_backend/internal/email"
	"swiftconnect_backend/internal/logger"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/repositories"
)

// BillingWorker ведет расчетный цикл: помечает просрочку, начисляет штраф
// и открывает платежи следующего периода.
type BillingWorker struct {
	subscriptionRepo repositories.SubscriptionRepository
	paymentRepo      repositories.PaymentRepository
	customerRepo     repositories.CustomerRepository
	emailProvider    email.Provider

	penaltyAmount float64
	graceDays     int
	interval      time.Duration
}

func NewBillingWorker(
	subscriptionRepo repositories.SubscriptionRepository,
	paymentRepo repositories.PaymentRepository,
	customerRepo repositories.CustomerRepository,
	emailProvider email.Provider,
	penaltyAmount float64,
	graceDays int,
	interval time.Duration,
) *BillingWorker {
	return &BillingWorker{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		customerRepo:     customerRepo,
		emailProvider:    emailProvider,
		penaltyAmount:    penaltyAmount,
		graceDays:        graceDays,
		interval:         interval,
	}
}

// Start запускает фоновые задачи биллинга
func (w *BillingWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *BillingWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый проход сразу при старте
	w.RunOnce(time.Now())

	for {
		select {
		case <-ctx.Done():
			logger.Info("billing worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(time.Now())
		}
	}
}

// RunOnce выполняет один расчетный проход
func (w *BillingWorker) RunOnce(now time.Time) {
	w.markOverduePayments(now)
	w.openNextCyclePayments(now)
}

// markOverduePayments помечает платежи, просроченные сверх льготного периода,
// и один раз начисляет фиксированный штраф.
func (w *BillingWorker) markOverduePayments(now time.Time) {
	cutoff := now.AddDate(0, 0, -w.graceDays)

	payments, err := w.paymentRepo.FindOpenPastDue(cutoff)
	if err != nil {
		logger.WorkerLog("billing", "find overdue payments", err)
		return
	}

	for i := range payments {
		p := &payments[i]

		// Выборка возвращает только pending/partially_paid, поэтому
		// переход в overdue и штраф случаются ровно один раз.
		billing.AccruePenalty(p, w.penaltyAmount)
		p.Status = models.PaymentStatusOverdue

		if err := w.paymentRepo.Update(p); err != nil {
			logger.WorkerLog("billing", "mark payment overdue", err)
			continue
		}

		logger.Info("payment marked overdue",
			"payment_id", p.ID,
			"subscription_id", p.SubscriptionID,
			"pending", p.PendingAmount,
		)

		w.sendOverdueNotice(p)
	}
}

// openNextCyclePayments продлевает активные подписки: когда срок очередного
// платежа прошел и открытых платежей нет, двигает nextDueDate и открывает
// новый pending платеж по зафиксированной цене.
func (w *BillingWorker) openNextCyclePayments(now time.Time) {
	subs, err := w.subscriptionRepo.FindActive()
	if err != nil {
		logger.WorkerLog("billing", "find active subscriptions", err)
		return
	}

	for i := range subs {
		sub := &subs[i]
		if sub.NextDueDate.After(now) {
			continue
		}

		hasOpen, err := w.paymentRepo.HasOpenPayment(sub.ID)
		if err != nil {
			logger.WorkerLog("billing", "check open payments", err)
			continue
		}
		if hasOpen {
			continue
		}

		sub.NextDueDate = billing.NextDueDate(sub.NextDueDate, sub.PaymentCycle)
		if err := w.subscriptionRepo.Update(sub); err != nil {
			logger.WorkerLog("billing", "advance next due date", err)
			continue
		}

		payment := &models.Payment{
			SubscriptionID: sub.ID,
			TotalAmount:    sub.Price,
			PendingAmount:  sub.Price,
			Status:         models.PaymentStatusPending,
			DueDate:        sub.NextDueDate,
		}
		if err := w.paymentRepo.Create(payment); err != nil {
			logger.WorkerLog("billing", "open next cycle payment", err)
			continue
		}

		logger.Info("opened next cycle payment",
			"subscription_id", sub.ID,
			"due_date", payment.DueDate,
			"amount", payment.TotalAmount,
		)
	}
}

// sendOverdueNotice уведомляет клиента; ошибки только логируются
func (w *BillingWorker) sendOverdueNotice(p *models.Payment) {
	sub, err := w.subscriptionRepo.FindByID(p.SubscriptionID)
	if err != nil {
		logger.WorkerLog("billing", "overdue notice: subscription lookup", err)
		return
	}

	customer, err := w.customerRepo.FindByID(sub.CustomerID)
	if err != nil {
		logger.WorkerLog("billing", "overdue notice: customer lookup", err)
		return
	}

	packageName := ""
	if sub.Package != nil {
		packageName = sub.Package.Name
	}

	data := email.OverdueNoticeData{
		TemplateData:  email.TemplateData{CustomerName: customer.FullName},
		PackageName:   packageName,
		PendingAmount: p.PendingAmount,
		PenaltyAmount: p.PenaltyAmount,
		DueDate:       p.DueDate.Format("2006-01-02"),
	}

	if err := w.emailProvider.SendOverdueNotice(customer.Email, data); err != nil {
		logger.WorkerLog("billing", "overdue notice: send", err)
	}
}
