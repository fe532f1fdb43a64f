package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
)

// BotService provides the Telegram Bot API operations used for admin alerts
type BotService struct {
	httpClient *http.Client
	baseURL    string
}

// NewBotService creates a new Telegram bot service
func NewBotService(config sharedConfig.TelegramConfig) *BotService {
	apiBase := strings.TrimRight(config.APIBaseURL, "/")
	if apiBase == "" {
		apiBase = "https://api.telegram.org"
	}
	return &BotService{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: fmt.Sprintf("%s/bot%s", apiBase, config.BotToken),
	}
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

// SendMessage sends an HTML formatted message to a chat
func (s *BotService) SendMessage(ctx context.Context, chatID int64, text string) error {
	body := map[string]any{
		"chat_id":                  chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}
	return s.makeRequest(ctx, s.baseURL+"/sendMessage", body)
}

func (s *BotService) makeRequest(ctx context.Context, url string, body map[string]any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// the URL embeds the bot token
		return fmt.Errorf("failed to send request: %s", redactToken(err.Error()))
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.OK {
		apiErr := &APIError{ErrorCode: result.ErrorCode, Description: result.Description}
		if result.Parameters != nil {
			apiErr.RetryAfter = result.Parameters.RetryAfter
		}
		return apiErr
	}

	return nil
}

// redactToken hides the token segment of Bot API URLs in error text.
func redactToken(msg string) string {
	start := strings.Index(msg, "/bot")
	if start < 0 {
		return msg
	}
	end := strings.Index(msg[start+4:], "/")
	if end < 0 {
		return msg
	}
	return msg[:start+4] + "***" + msg[start+4+end:]
}
