package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// TelegramSender sends messages via the Telegram Bot API.
type TelegramSender struct {
	BotToken string
	Client   *http.Client
}

// NewTelegramSender creates a sender with optional proxy support.
func NewTelegramSender(botToken, proxyURL string) *TelegramSender {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramSender{
		BotToken: botToken,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Send delivers text to every chat, best effort per chat. It succeeds
// as long as at least one chat accepted the message.
func (t *TelegramSender) Send(text string, chatIDs []string) error {
	if t.BotToken == "" || len(chatIDs) == 0 {
		return fmt.Errorf("telegram not configured")
	}
	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.BotToken)

	delivered := 0
	var lastErr error
	for _, chatID := range chatIDs {
		if err := t.sendOne(apiURL, chatID, text); err != nil {
			lastErr = err
			log.Printf("[WARN] telegram chat %s: %v", chatID, err)
			continue
		}
		delivered++
	}
	if delivered == 0 {
		return fmt.Errorf("all %d chats failed: %w", len(chatIDs), lastErr)
	}
	log.Printf("[INFO] telegram delivered to %d/%d chats", delivered, len(chatIDs))
	return nil
}

func (t *TelegramSender) sendOne(apiURL, chatID, text string) error {
	payload := map[string]string{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := t.Client.Post(apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
