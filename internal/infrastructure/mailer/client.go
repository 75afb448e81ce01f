package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/ficmart-checkout/internal/config"
)

type sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type recipient struct {
	Email string `json:"email"`
}

type sendEmailRequest struct {
	Sender      sender      `json:"sender"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type sendEmailResponse struct {
	MessageID string `json:"messageId"`
}

// BrevoClient sends transactional email through the Brevo SMTP API.
type BrevoClient struct {
	baseURL    string
	apiKey     string
	from       sender
	httpClient *http.Client
	logger     *slog.Logger
}

func NewBrevoClient(cfg config.EmailConfig, logger *slog.Logger) *BrevoClient {
	return &BrevoClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		from: sender{
			Name:  cfg.SenderName,
			Email: cfg.SenderEmail,
		},
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "mailer"),
	}
}

// Send posts one message and reports whether the provider accepted it.
// Failures are logged, never returned.
func (c *BrevoClient) Send(ctx context.Context, to, subject, html string) bool {
	messageID, err := c.send(ctx, sendEmailRequest{
		Sender:      c.from,
		To:          []recipient{{Email: to}},
		Subject:     subject,
		HTMLContent: html,
	})
	if err != nil {
		c.logger.Error("email dispatch failed", "to", to, "error", err)
		return false
	}

	c.logger.Info("email sent", "to", to, "message_id", messageID)
	return true
}

func (c *BrevoClient) send(ctx context.Context, payload sendEmailRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error marshalling json: %w", err)
	}

	url := fmt.Sprintf("%s/v3/smtp/email", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	// An accepted message with an unreadable body still counts as sent.
	var out sendEmailResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return out.MessageID, nil
}
