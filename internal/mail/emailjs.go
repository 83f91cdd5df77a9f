package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/greenwood-edu/attendance/internal/logging"
)

// Client sends mail through an EmailJS-style REST endpoint:
// a JSON POST carrying service id, template id, public key and the
// template parameters. The HTTP client is created once, on first use.
type Client struct {
	endpoint  string
	serviceID string
	publicKey string
	timeout   time.Duration
	log       logging.Logger

	initOnce sync.Once
	http     *http.Client
}

func NewClient(endpoint, serviceID, publicKey string, timeout time.Duration, log logging.Logger) *Client {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Client{
		endpoint:  endpoint,
		serviceID: serviceID,
		publicKey: publicKey,
		timeout:   timeout,
		log:       log,
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send posts one message. The context bounds the whole round trip in
// addition to the client's own timeout; cancellation by the caller is
// reported as a failed Result like any other transport error.
func (c *Client) Send(ctx context.Context, templateID string, params map[string]any) Result {
	c.initOnce.Do(func() {
		c.http = &http.Client{Timeout: c.timeout}
	})

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return Result{Err: fmt.Sprintf("failed to encode mail request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Err: fmt.Sprintf("failed to build mail request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			c.log.Warn(ctx, "mail request timed out", "template", templateID)
			return Result{Err: "mail request timed out"}
		}
		c.log.Warn(ctx, "mail request failed", "template", templateID, "error", err)
		return Result{Err: fmt.Sprintf("failed to send email: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		text := strings.TrimSpace(string(msg))
		if text == "" {
			text = resp.Status
		}
		c.log.Warn(ctx, "mail endpoint rejected request", "template", templateID, "status", resp.StatusCode)
		return Result{Err: text}
	}

	c.log.Info(ctx, "mail sent", "template", templateID)
	return Result{OK: true}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
