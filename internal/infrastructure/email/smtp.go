package email

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"github.com/brt06a/Testv5/internal/domain/payment"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPReceiptSender emails a receipt to customers who left an address at
// checkout.
type SMTPReceiptSender struct {
	fromAddress   string
	fromName      string
	publicBaseURL string
	sender        Sender
	policy        *bluemonday.Policy
	logger        logger.Interface
}

func NewSMTPReceiptSender(config sharedConfig.EmailConfig, publicBaseURL string, logger logger.Interface) *SMTPReceiptSender {
	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return newReceiptSender(config, publicBaseURL, dialer, logger)
}

func newReceiptSender(config sharedConfig.EmailConfig, publicBaseURL string, sender Sender, logger logger.Interface) *SMTPReceiptSender {
	return &SMTPReceiptSender{
		fromAddress:   config.FromAddress,
		fromName:      config.FromName,
		publicBaseURL: publicBaseURL,
		sender:        sender,
		policy:        bluemonday.StrictPolicy(),
		logger:        logger,
	}
}

func (s *SMTPReceiptSender) NotifyPaymentSucceeded(_ context.Context, event payment.PaymentSucceededEvent) error {
	if event.CustomerEmail == "" {
		return nil
	}

	subject, plainBody, htmlBody := s.renderReceipt(event)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", event.CustomerEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send receipt for %s: %w", event.OrderID, err)
	}

	s.logger.Infow("payment receipt sent",
		"order_id", event.OrderID,
		"to", utils.MaskEmail(event.CustomerEmail),
	)
	return nil
}

func (s *SMTPReceiptSender) renderReceipt(event payment.PaymentSucceededEvent) (subject, plainBody, htmlBody string) {
	amount := utils.FormatAmount(event.Amount, event.Currency)
	paidAt := biztime.FormatBiz(event.CompletedAt)
	statusURL := fmt.Sprintf("%s/payment-status?order_id=%s", s.publicBaseURL, event.OrderID)

	name := event.CustomerName
	if name == "" {
		name = "there"
	}

	subject = fmt.Sprintf("Your PromotionX receipt for %s", event.PlanName)

	plainBody = fmt.Sprintf(`Hi %s,

Thanks for your purchase. Your payment has been received.

Plan:     %s
Amount:   %s
Order ID: %s
Paid at:  %s

You can check your order at any time:
%s
`, name, event.PlanName, amount, event.OrderID, paidAt, statusURL)

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment received</h2>
			<p>Hi %s,</p>
			<p>Thanks for your purchase. Your payment has been received.</p>
			<table>
				<tr><td><b>Plan</b></td><td>%s</td></tr>
				<tr><td><b>Amount</b></td><td>%s</td></tr>
				<tr><td><b>Order ID</b></td><td>%s</td></tr>
				<tr><td><b>Paid at</b></td><td>%s</td></tr>
			</table>
			<p><a href="%s">View your order</a></p>
		</body>
		</html>
	`,
		s.policy.Sanitize(name),
		s.policy.Sanitize(event.PlanName),
		s.policy.Sanitize(amount),
		s.policy.Sanitize(event.OrderID),
		paidAt,
		s.policy.Sanitize(statusURL),
	)

	return subject, plainBody, htmlBody
}
