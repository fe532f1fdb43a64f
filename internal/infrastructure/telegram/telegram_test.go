package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brt06a/Testv5/internal/domain/payment"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

func TestBotService_SendMessage(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123:ABC/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"ok": true, "result": {}}`))
	}))
	defer server.Close()

	bot := NewBotService(sharedConfig.TelegramConfig{BotToken: "123:ABC", APIBaseURL: server.URL})
	require.NoError(t, bot.SendMessage(context.Background(), -100123, "<b>hi</b>"))

	assert.Equal(t, float64(-100123), received["chat_id"])
	assert.Equal(t, "<b>hi</b>", received["text"])
	assert.Equal(t, "HTML", received["parse_mode"])
}

func TestBotService_SendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok": false, "error_code": 403, "description": "Forbidden: bot was kicked from the group chat"}`))
	}))
	defer server.Close()

	bot := NewBotService(sharedConfig.TelegramConfig{BotToken: "123:ABC", APIBaseURL: server.URL})
	err := bot.SendMessage(context.Background(), 1, "x")

	require.Error(t, err)
	assert.True(t, IsBotBlocked(err))
}

func TestRedactToken(t *testing.T) {
	msg := `Post "https://api.telegram.org/bot123:SECRET/sendMessage": dial tcp: timeout`
	assert.Equal(t, `Post "https://api.telegram.org/bot***/sendMessage": dial tcp: timeout`, redactToken(msg))
	assert.Equal(t, "plain", redactToken("plain"))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "Asha", EscapeHTML("<b>Asha</b>"))
	assert.Equal(t, "a &lt; b &amp; c", EscapeHTML("a < b & c"))
	assert.NotContains(t, EscapeHTML(`<script>alert(1)</script>Ravi`), "<script")
}

func TestFormatPaymentSucceeded(t *testing.T) {
	event := payment.PaymentSucceededEvent{
		OrderID:       "order_1_ab",
		PlanName:      "1 Week Pro",
		Amount:        decimal.NewFromInt(499),
		Currency:      "INR",
		CustomerName:  "<i>Asha</i>",
		CustomerEmail: "asha@example.com",
		PaymentMethod: "upi",
		UTR:           "UTR42",
		CompletedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	msg := FormatPaymentSucceeded(event)

	assert.Contains(t, msg, "<b>Plan:</b> 1 Week Pro")
	assert.Contains(t, msg, "499")
	assert.Contains(t, msg, "<code>order_1_ab</code>")
	assert.Contains(t, msg, "<b>Customer:</b> Asha\n")
	assert.Contains(t, msg, "<code>UTR42</code>")
	assert.Contains(t, msg, "01 Mar 2025 15:30")
	assert.NotContains(t, msg, "Phone")
	assert.NotContains(t, msg, "Transaction")
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.Called(ctx, chatID, text).Error(0)
}

func TestPaymentNotifier(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendMessage", mock.Anything, int64(42), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "1 Day Pass")
	})).Return(nil).Once()

	notifier := NewPaymentNotifier(sender, 42, logger.NewDiscard())
	err := notifier.NotifyPaymentSucceeded(context.Background(), payment.PaymentSucceededEvent{
		OrderID: "order_1", PlanName: "1 Day Pass", Amount: decimal.NewFromInt(99), Currency: "INR",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestPaymentNotifier_SendFailure(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendMessage", mock.Anything, int64(42), mock.Anything).Return(&APIError{ErrorCode: 403, Description: "blocked"})

	notifier := NewPaymentNotifier(sender, 42, logger.NewDiscard())
	err := notifier.NotifyPaymentSucceeded(context.Background(), payment.PaymentSucceededEvent{OrderID: "order_1"})

	require.Error(t, err)
	assert.True(t, IsBotBlocked(err))
}
