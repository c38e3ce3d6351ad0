// Package agent talks to the remote conversational agent that powers the advisor.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dohr-michael/advisor/internal/config"
)

const maxErrorBody = 512

// OutcomeKind classifies how an exchange ended.
type OutcomeKind int

const (
	OutcomeReplied   OutcomeKind = iota
	OutcomeNoContent             // well-formed response without reply text
	OutcomeFailed                // transport, status or decode failure
)

// Outcome is the result of one exchange as seen by the UI. Text is always
// displayable: the agent's reply or one of the fallback strings.
type Outcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

// Client sends utterances to one agent. It is safe for concurrent use;
// calls are neither serialized nor cancelled by later calls.
type Client struct {
	endpoint   string
	toolName   string
	toolKwarg  string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the agent described by cfg.
func NewClient(cfg config.AgentConfig, opts ...Option) *Client {
	c := &Client{
		endpoint:   MessagesURL(cfg.BaseURL, cfg.AgentID),
		toolName:   cfg.ToolName,
		toolKwarg:  cfg.ToolKwarg,
		httpClient: &http.Client{Timeout: cfg.Timeout.Duration()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MessagesURL returns the messages endpoint of an agent.
func MessagesURL(baseURL, agentID string) string {
	return strings.TrimRight(baseURL, "/") + "/v1/agents/" + url.PathEscape(agentID) + "/messages"
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send performs exactly one round trip and returns the reply text.
func (c *Client) Send(ctx context.Context, utterance string) (string, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return "", ErrEmptyUtterance
	}

	body, err := json.Marshal(NewRequest(utterance, c.toolName, c.toolKwarg))
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	slog.Debug("agent request", "endpoint", c.endpoint, "body", string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	slog.Info("agent response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	var parsed Response
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &DecodeError{Err: err}
	}

	text, _ := FirstReply(parsed.Messages, c.toolName, c.replyKeys()...)
	if text == "" {
		slog.Warn("no assistant message found in response", "records", len(parsed.Messages))
		return "", ErrNoContent
	}
	return text, nil
}

// Exchange is Send with every error absorbed into a displayable Outcome.
// Blank input returns an Outcome carrying ErrEmptyUtterance and no text.
func (c *Client) Exchange(ctx context.Context, utterance string) Outcome {
	text, err := c.Send(ctx, utterance)
	switch {
	case err == nil:
		return Outcome{Kind: OutcomeReplied, Text: text}
	case errors.Is(err, ErrEmptyUtterance):
		return Outcome{Kind: OutcomeFailed, Err: err}
	case errors.Is(err, ErrNoContent):
		return Outcome{Kind: OutcomeNoContent, Text: FallbackNoContent, Err: err}
	default:
		slog.Error("agent exchange failed", "error", err)
		return Outcome{Kind: OutcomeFailed, Text: FallbackCommunication, Err: err}
	}
}

// replyKeys lists the argument keys checked for the reply text of a tool call.
func (c *Client) replyKeys() []string {
	keys := []string{c.toolKwarg}
	for _, k := range []string{"message", "content"} {
		if k != c.toolKwarg {
			keys = append(keys, k)
		}
	}
	return keys
}
