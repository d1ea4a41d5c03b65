// Package client is the Go SDK for the cafe management API. Every call
// resolves to an Envelope, so callers branch on Success instead of handling
// transport errors themselves.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TokenSource supplies the current access token. It is read on every request,
// so a refreshed session takes effect without rebuilding the client.
type TokenSource interface {
	AccessToken() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.SugaredLogger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func New(baseURL string, logger *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetTokenSource swaps the token source after login.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

func (c *Client) Get(ctx context.Context, path string) Envelope {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) Envelope {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) Envelope {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) Envelope {
	return c.do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) Envelope {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) Envelope {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return failure("failed to encode request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return failure("failed to build request", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return failure("request failed", err)
	}
	defer resp.Body.Close()

	return c.normalize(resp)
}

// FileField is a binary attachment on a multipart form submit.
type FileField struct {
	Field    string
	FileName string
	Data     []byte
}

// PostFile uploads a single file as multipart form data.
func (c *Client) PostFile(ctx context.Context, path, field, fileName string, file []byte) Envelope {
	return c.SubmitForm(ctx, http.MethodPost, path, nil, &FileField{Field: field, FileName: fileName, Data: file})
}

// SubmitForm sends a multipart form with text fields and an optional file.
// Create and update calls that carry a binary image take this path instead of
// JSON.
func (c *Client) SubmitForm(ctx context.Context, method, path string, fields map[string]string, file *FileField) Envelope {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return failure("failed to build form", err)
		}
	}

	if file != nil {
		part, err := mw.CreateFormFile(file.Field, file.FileName)
		if err != nil {
			return failure("failed to build form", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return failure("failed to build form", err)
		}
	}

	if err := mw.Close(); err != nil {
		return failure("failed to build form", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return failure("failed to build request", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return failure("request failed", err)
	}
	defer resp.Body.Close()

	return c.normalize(resp)
}

// GetFile downloads a binary response, such as a report export.
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, Envelope) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, failure("failed to build request", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, failure("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.normalize(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure("failed to read response", err)
	}

	return data, Envelope{Success: true, Message: "file downloaded"}
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// normalize turns any HTTP response into an Envelope. Responses that do not
// carry the envelope shape, such as proxy error pages, still come back as a
// failed Envelope rather than a decoding error.
func (c *Client) normalize(resp *http.Response) Envelope {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("failed to read response", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Message == "" {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return Envelope{Success: true, Message: http.StatusText(resp.StatusCode), Data: data}
		}
		return Envelope{
			Success: false,
			Message: http.StatusText(resp.StatusCode),
			Error:   fmt.Sprintf("unexpected response: %s", strings.TrimSpace(string(data))),
		}
	}

	if !env.Success && c.logger != nil {
		c.logger.Debugw("api call failed", "status", resp.StatusCode, "message", env.Message, "error", env.Error)
	}

	return env
}

func failure(message string, err error) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Error:   err.Error(),
	}
}
