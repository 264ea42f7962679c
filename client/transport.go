package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/cykrypt/registration/svc/registration"
)

// DefaultTimeout bounds a single submission request.
const DefaultTimeout = 15 * time.Second

const maxReplySize = 64 << 10

// Reply is the decoded endpoint response.
type Reply struct {
	StatusCode  int               `json:"-"`
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// OK reports a 2xx status.
func (r Reply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport delivers a payload to the registration endpoint. An error means
// no reply was received.
type Transport interface {
	Send(ctx context.Context, p registration.Payload) (Reply, error)
}

// HTTPTransport posts payloads as JSON.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		if c != nil {
			t.client = c
		}
	}
}

func WithTimeout(d time.Duration) TransportOption {
	return func(t *HTTPTransport) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// NewHTTPTransport creates a transport for the endpoint URL.
func NewHTTPTransport(endpoint string, opts ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		endpoint: endpoint,
		client:   &http.Client{},
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send implements Transport. Non-2xx statuses are returned as a Reply, not
// an error; a body that is not JSON leaves the reply fields empty.
func (t *HTTPTransport) Send(ctx context.Context, p registration.Payload) (Reply, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return Reply{}, errors.Join(ErrTransport, err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return Reply{}, errors.Join(ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return Reply{}, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	var reply Reply
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxReplySize)).Decode(&reply)
	reply.StatusCode = resp.StatusCode
	return reply, nil
}
