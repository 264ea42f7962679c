package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxResponseSize = 1 << 20

// DefaultTimeout bounds a sendMessage call when Config.Timeout is unset.
const DefaultTimeout = 10 * time.Second

// APIError describes a rejected sendMessage call.
type APIError struct {
	StatusCode  int
	ErrorCode   int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error: status %d, code %d: %s", e.StatusCode, e.ErrorCode, e.Description)
}

// Client sends messages to a single configured chat.
type Client struct {
	cfg  Config
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// NewClient creates a client. Missing credentials are not an error here;
// Ready and Notify report ErrNotConfigured instead.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
	if c.cfg.Timeout <= 0 {
		c.cfg.Timeout = DefaultTimeout
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready returns ErrNotConfigured when the bot token or chat ID is missing.
func (c *Client) Ready() error {
	if !c.cfg.Configured() {
		return ErrNotConfigured
	}
	return nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Notify sends text to the configured chat using Markdown parse mode.
func (c *Client) Notify(ctx context.Context, text string) error {
	if err := c.Ready(); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrInvalidMessage
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.cfg.ChatID,
		Text:      text,
		ParseMode: tgbotapi.ModeMarkdown,
	})
	if err != nil {
		return errors.Join(ErrInvalidMessage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrRequestFailed, redact(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.Join(ErrTimeout, redact(err))
		}
		return errors.Join(ErrRequestFailed, redact(err))
	}
	defer resp.Body.Close()

	var apiResp tgbotapi.APIResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&apiResp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !apiResp.Ok {
		apiErr := &APIError{
			StatusCode:  resp.StatusCode,
			ErrorCode:   apiResp.ErrorCode,
			Description: apiResp.Description,
		}
		if apiErr.Description == "" && decodeErr != nil {
			apiErr.Description = "unreadable response body"
		}
		return errors.Join(ErrSendFailed, apiErr)
	}

	return nil
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf(c.cfg.endpoint(), c.cfg.BotToken, method)
}

// redact drops the request URL, which embeds the bot token, from transport
// errors before they reach logs.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

// EscapeMarkdown escapes user text for the Markdown parse mode.
func EscapeMarkdown(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
