// Package slack wraps the handful of Slack Web API calls this bot makes
// and the inbound webhook payload shapes it receives.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"slack-todo/internal/template"
)

const defaultBaseURL = "https://slack.com/api"

// APIError is a well-formed Slack response with ok:false.
type APIError struct {
	Code     string
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("slack API error: %s. Details: %v", e.Code, e.Messages)
	}
	return fmt.Sprintf("slack API error: %s", e.Code)
}

// envelope is the common part of every Slack Web API response.
type envelope struct {
	OK               bool   `json:"ok"`
	Error            string `json:"error,omitempty"`
	ResponseMetadata struct {
		Messages []string `json:"messages"`
	} `json:"response_metadata,omitempty"`
	View struct {
		ID string `json:"id"`
	} `json:"view,omitempty"`
}

// Client calls the Slack Web API with a fixed bot token. It holds only
// immutable configuration and is safe for concurrent use.
type Client struct {
	// BaseURL is the Web API root, overridable in tests.
	BaseURL string

	token      string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage posts a plain text message to a channel.
func (c *Client) SendMessage(ctx context.Context, text, channel string) error {
	body, err := json.Marshal(map[string]string{"text": text, "channel": channel})
	if err != nil {
		return fmt.Errorf("marshal message payload: %w", err)
	}
	_, err = c.call(ctx, c.BaseURL+"/chat.postMessage", body)
	return err
}

// SendBlocks posts a rendered blocks document to a channel. blocks is the
// raw JSON array text produced by the template store.
func (c *Client) SendBlocks(ctx context.Context, channel string, blocks template.Document) error {
	payload := struct {
		Channel string          `json:"channel"`
		Blocks  json.RawMessage `json:"blocks"`
	}{Channel: channel, Blocks: json.RawMessage(blocks)}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal blocks payload: %w", err)
	}
	_, err = c.call(ctx, c.BaseURL+"/chat.postMessage", body)
	return err
}

// SendEphemeral posts a blocks document visible only to one user.
func (c *Client) SendEphemeral(ctx context.Context, blocks template.Document, channel, user string) error {
	payload := struct {
		Blocks  json.RawMessage `json:"blocks"`
		Channel string          `json:"channel"`
		User    string          `json:"user"`
	}{Blocks: json.RawMessage(blocks), Channel: channel, User: user}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal ephemeral payload: %w", err)
	}
	_, err = c.call(ctx, c.BaseURL+"/chat.postEphemeral", body)
	return err
}

// SendWebhook posts a document to a single-use response URL supplied by
// Slack for the current command invocation. If ephemeral is true a
// response_type field is injected so only the invoker sees the reply.
// Response URLs answer with a bare "ok" body, not the API envelope.
func (c *Client) SendWebhook(ctx context.Context, url string, document template.Document, ephemeral bool) error {
	body := []byte(document)
	if ephemeral {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal(body, &payload); err != nil {
			return fmt.Errorf("webhook document is not valid JSON: %w", err)
		}
		payload["response_type"] = json.RawMessage(`"ephemeral"`)
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return fmt.Errorf("marshal webhook payload: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status: %s", resp.Status)
	}
	return nil
}

// OpenModal opens a modal dialog and returns the platform-assigned id of
// the opened view, which correlates the eventual submission back to this
// request.
func (c *Client) OpenModal(ctx context.Context, triggerID string, view template.Document) (string, error) {
	payload := struct {
		TriggerID string          `json:"trigger_id"`
		View      json.RawMessage `json:"view"`
	}{TriggerID: triggerID, View: json.RawMessage(view)}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal views.open payload: %w", err)
	}
	resp, err := c.call(ctx, c.BaseURL+"/views.open", body)
	if err != nil {
		return "", err
	}
	if resp.View.ID == "" {
		return "", fmt.Errorf("views.open response has no view id")
	}
	return resp.View.ID, nil
}

// call POSTs a JSON body to a Web API method and validates the response
// envelope: transport failures and non-200 statuses are wrapped errors, a
// decoded ok:false becomes *APIError, otherwise the parsed envelope is
// returned.
func (c *Client) call(ctx context.Context, url string, body []byte) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create Slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send Slack request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("slack API returned status: %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode Slack response: %w", err)
	}
	if !env.OK {
		return nil, &APIError{Code: env.Error, Messages: env.ResponseMetadata.Messages}
	}
	return &env, nil
}
