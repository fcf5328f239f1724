package contact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// ErrRejected wraps a non-200 answer from the email service.
var ErrRejected = errors.New("email service rejected the message")

// Sender relays a contact message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

// EmailJSClient sends template emails through the EmailJS REST API.
type EmailJSClient struct {
	cfg        EmailJSConfig
	httpClient *http.Client
}

func NewEmailJSClient(cfg EmailJSConfig) *EmailJSClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &EmailJSClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts m to the configured template. Only HTTP 200 counts as
// accepted; there is no delivery confirmation beyond that.
func (c *EmailJSClient) Send(ctx context.Context, m Message) error {
	reqBody := sendRequest{
		ServiceID:   c.cfg.ServiceID,
		TemplateID:  c.cfg.TemplateID,
		UserID:      c.cfg.PublicKey,
		AccessToken: c.cfg.PrivateKey,
		TemplateParams: map[string]string{
			"user_name":  m.Name,
			"user_email": m.Email,
			"service":    m.Service,
			"message":    m.Message,
		},
	}

	jsonData, err := sonic.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(body))
	}
	return nil
}
