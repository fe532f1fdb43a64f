package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/brt06a/Testv5/internal/domain/payment"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

// MessageSender is the Bot API call the notifier depends on.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// PaymentNotifier posts completed payments to the admin chat.
type PaymentNotifier struct {
	sender MessageSender
	chatID int64
	logger logger.Interface
}

func NewPaymentNotifier(sender MessageSender, chatID int64, logger logger.Interface) *PaymentNotifier {
	return &PaymentNotifier{
		sender: sender,
		chatID: chatID,
		logger: logger,
	}
}

func (n *PaymentNotifier) NotifyPaymentSucceeded(ctx context.Context, event payment.PaymentSucceededEvent) error {
	if err := n.sender.SendMessage(ctx, n.chatID, FormatPaymentSucceeded(event)); err != nil {
		if IsBotBlocked(err) {
			n.logger.Warnw("bot cannot post to admin chat", "chat_id", n.chatID, "error", err)
		}
		return fmt.Errorf("failed to send payment notification for %s: %w", event.OrderID, err)
	}

	n.logger.Infow("payment notification sent", "order_id", event.OrderID)
	return nil
}

// FormatPaymentSucceeded renders the admin alert. Empty optional fields are
// left out.
func FormatPaymentSucceeded(event payment.PaymentSucceededEvent) string {
	var b strings.Builder

	b.WriteString("✅ <b>New payment received</b>\n\n")
	line(&b, "Plan", EscapeHTML(event.PlanName))
	line(&b, "Amount", EscapeHTML(utils.FormatAmount(event.Amount, event.Currency)))
	if event.OrderID != "" {
		fmt.Fprintf(&b, "<b>Order:</b> <code>%s</code>\n", EscapeHTML(event.OrderID))
	}
	line(&b, "Customer", EscapeHTML(event.CustomerName))
	line(&b, "Email", EscapeHTML(event.CustomerEmail))
	line(&b, "Phone", EscapeHTML(event.CustomerPhone))
	line(&b, "Method", EscapeHTML(event.PaymentMethod))
	if event.UTR != "" {
		fmt.Fprintf(&b, "<b>UTR:</b> <code>%s</code>\n", EscapeHTML(event.UTR))
	}
	line(&b, "Transaction", EscapeHTML(event.TransactionID))
	if !event.CompletedAt.IsZero() {
		line(&b, "Paid at", biztime.FormatBiz(event.CompletedAt))
	}

	return strings.TrimRight(b.String(), "\n")
}

func line(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<b>%s:</b> %s\n", label, value)
}
