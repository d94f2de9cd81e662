// Package telegram delivers status messages through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is the public Bot API base URL.
const DefaultAPIURL = "https://api.telegram.org"

// Notifier sends text messages to a single chat.
type Notifier struct {
	apiURL string
	token  string
	chatID string
	http   *http.Client
	log    *slog.Logger
}

// NewNotifier creates a Notifier for the given bot token and chat.
// An empty apiURL selects DefaultAPIURL.
func NewNotifier(apiURL, token, chatID string, timeout time.Duration) *Notifier {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Notifier{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		chatID: chatID,
		http:   &http.Client{Timeout: timeout},
		log:    slog.Default().With("component", "telegram"),
	}
}

// Send delivers msg and reports whether Telegram answered 200. Failures are
// logged, never returned.
func (n *Notifier) Send(ctx context.Context, msg string) bool {
	if err := n.send(ctx, msg); err != nil {
		n.log.Error("Failed to send Telegram message", "error", err)
		return false
	}
	n.log.Info("Telegram message sent", "message", msg)
	return true
}

func (n *Notifier) send(ctx context.Context, msg string) error {
	payload := map[string]any{"chat_id": n.chatID, "text": msg}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	u := fmt.Sprintf("%s/bot%s/sendMessage", n.apiURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.http.Do(req)
	if err != nil {
		// The URL embeds the token; keep it out of the logs.
		return fmt.Errorf("post sendMessage: %w", redact(err, n.token))
	}
	defer res.Body.Close()

	resp, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram status %d: %s", res.StatusCode, string(resp))
	}
	return nil
}

func redact(err error, token string) error {
	if token == "" {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), token, "<token>"))
}
