package notestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gerunddev/evned/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// HTTPClient talks to the note service REST API with a developer token
type HTTPClient struct {
	baseURL    string
	transport  http.RoundTripper
	httpClient *http.Client
	log        *logger.Logger
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithTransport sets the transport underneath the token transport
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		c.transport = rt
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *logger.Logger) Option {
	return func(c *HTTPClient) {
		c.log = l
	}
}

// NewHTTPClient creates a client for the service rooted at baseURL
func NewHTTPClient(baseURL, token string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: http.DefaultTransport,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: c.transport},
	}

	return c
}

// Search finds up to max notes matching term via GET /v1/notes.
// Notes come back in the order the service returns them.
func (c *HTTPClient) Search(ctx context.Context, term string, max int) ([]Note, error) {
	q := url.Values{}
	q.Set("words", term)
	q.Set("offset", "0")
	q.Set("maxNotes", strconv.Itoa(max))

	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, "/v1/notes?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		notes = append(notes, n.note())
	}
	return notes, nil
}

// Create stores a new note via POST /v1/notes
func (c *HTTPClient) Create(ctx context.Context, note NewNote) (Note, error) {
	req := createRequest{
		Title:    note.Title,
		Content:  note.Content,
		TagNames: note.Tags,
	}

	var created wireNote
	if err := c.do(ctx, http.MethodPost, "/v1/notes", req, &created); err != nil {
		return Note{}, err
	}
	return created.note(), nil
}

// do sends one request and decodes a 2xx JSON body into out.
// Every failure is returned as a *ServiceError.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &ServiceError{Kind: KindSystem, Message: "failed to marshal request", Err: err}
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &ServiceError{Kind: KindSystem, Message: "failed to build request", Err: err}
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", requestID)
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("note service request",
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &ServiceError{Kind: KindSystem, Err: fmt.Errorf("failed to call note service: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServiceError{Kind: KindSystem, Status: resp.StatusCode, Message: "failed to decode note service response", Err: err}
	}
	return nil
}

// decodeError turns a non-2xx response into a ServiceError. A body that
// cannot be read falls back to the status text.
func (c *HTTPClient) decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		c.log.Debug("failed to read error body",
			"status", resp.StatusCode,
			"error", err)
	}

	se := &ServiceError{
		Kind:   kindForStatus(resp.StatusCode),
		Status: resp.StatusCode,
	}

	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && (er.Message != "" || er.ErrorCode != "") {
		se.Code = er.ErrorCode
		se.Message = er.Message
		se.Parameter = er.Parameter
	} else {
		se.Message = strings.TrimSpace(string(raw))
	}

	if se.Message == "" {
		se.Message = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return se
}
