// Package relay is the messaging-platform adapter. It talks to the bot relay
// sidecar over HTTP: the relay owns the platform session and renders notices;
// this client translates between engine types and the relay's JSON API.
package relay

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
	"time"

	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/sentinel"
)

const defaultTimeout = 10 * time.Second

// Client implements ports.ChannelGateway, ports.Notifier and ports.Authorizer
// against the relay's REST surface.
type Client struct {
	baseURL      string
	token        string
	managerRoles map[string]struct{}
	httpClient   *http.Client
	logger       *slog.Logger
}

// New builds a relay client. managerRoles is the set of role IDs allowed to
// manage sanctions; membership is checked against the relay's member lookup.
func New(baseURL, token string, managerRoles []string, logger *slog.Logger) *Client {
	roles := make(map[string]struct{}, len(managerRoles))
	for _, r := range managerRoles {
		roles[r] = struct{}{}
	}
	return &Client{
		baseURL:      baseURL,
		token:        token,
		managerRoles: roles,
		httpClient:   &http.Client{Timeout: defaultTimeout},
		logger:       logger,
	}
}

type noticePayload struct {
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	FieldList   []noticeFieldOut `json:"fields,omitempty"`
	Footer      string           `json:"footer,omitempty"`
	Color       int              `json:"color,omitempty"`
	Timestamp   string           `json:"timestamp,omitempty"`
}

type noticeFieldOut struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

func encodeNotice(n models.Notice) noticePayload {
	out := noticePayload{
		Title:       n.Title,
		Description: n.Description,
		Footer:      n.Footer,
		Color:       int(n.Color),
	}
	if !n.Timestamp.IsZero() {
		out.Timestamp = n.Timestamp.UTC().Format(time.RFC3339)
	}
	for _, f := range n.Fields {
		out.FieldList = append(out.FieldList, noticeFieldOut{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return out
}

func decodeNotice(p noticePayload) models.Notice {
	n := models.Notice{
		Title:       p.Title,
		Description: p.Description,
		Footer:      p.Footer,
		Color:       models.Color(p.Color),
	}
	if p.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, p.Timestamp); err == nil {
			n.Timestamp = t
		}
	}
	for _, f := range p.FieldList {
		n.Fields = append(n.Fields, models.NoticeField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return n
}

// do issues one relay request and decodes the response into out when non-nil.
// Relay status codes map onto the engine's sentinel errors so callers can
// distinguish missing resources from permission problems.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "encode relay request")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "build relay request")
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay %s %s: %w", method, path, sentinel.ErrUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return sentinel.ErrNotFound
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusUnauthorized:
		return sentinel.ErrForbidden
	case resp.StatusCode >= 400:
		return fmt.Errorf("relay %s %s: status %d: %w", method, path, resp.StatusCode, sentinel.ErrUnavailable)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "decode relay response")
		}
	}
	return nil
}

func (c *Client) ResolveChannel(ctx context.Context, channel id.ChannelID) error {
	return c.do(ctx, http.MethodGet, "/channels/"+url.PathEscape(channel.String()), nil, nil)
}

type messageResponse struct {
	MessageID string `json:"message_id"`
	ChannelID string `json:"channel_id"`
}

func (c *Client) SendNotice(ctx context.Context, channel id.ChannelID, notice models.Notice) (id.MessageID, error) {
	var resp messageResponse
	err := c.do(ctx, http.MethodPost,
		"/channels/"+url.PathEscape(channel.String())+"/messages",
		map[string]any{"notice": encodeNotice(notice)}, &resp)
	if err != nil {
		return "", err
	}
	return id.MessageID(resp.MessageID), nil
}

func (c *Client) FetchNotice(ctx context.Context, ref ports.MessageRef) (models.Notice, error) {
	var resp struct {
		Notice noticePayload `json:"notice"`
	}
	err := c.do(ctx, http.MethodGet, messagePath(ref), nil, &resp)
	if err != nil {
		return models.Notice{}, err
	}
	return decodeNotice(resp.Notice), nil
}

func (c *Client) EditNotice(ctx context.Context, ref ports.MessageRef, notice models.Notice) error {
	return c.do(ctx, http.MethodPatch, messagePath(ref), map[string]any{"notice": encodeNotice(notice)}, nil)
}

func (c *Client) DeleteMessage(ctx context.Context, ref ports.MessageRef) error {
	return c.do(ctx, http.MethodDelete, messagePath(ref), nil, nil)
}

type threadResponse struct {
	ThreadID string `json:"thread_id"`
}

func (c *Client) CreateThread(ctx context.Context, ref ports.MessageRef, name string) (id.ThreadID, error) {
	var resp threadResponse
	err := c.do(ctx, http.MethodPost, messagePath(ref)+"/threads", map[string]any{"name": name}, &resp)
	if err != nil {
		return "", err
	}
	return id.ThreadID(resp.ThreadID), nil
}

func (c *Client) ResolveThread(ctx context.Context, thread id.ThreadID) error {
	return c.do(ctx, http.MethodGet, "/threads/"+url.PathEscape(thread.String()), nil, nil)
}

func (c *Client) DeleteThread(ctx context.Context, thread id.ThreadID) error {
	return c.do(ctx, http.MethodDelete, "/threads/"+url.PathEscape(thread.String()), nil, nil)
}

func (c *Client) SendFiles(ctx context.Context, thread id.ThreadID, caption string, files []ports.File) error {
	type fileOut struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	out := make([]fileOut, 0, len(files))
	for _, f := range files {
		out = append(out, fileOut{Name: f.Name, URL: f.URL})
	}
	return c.do(ctx, http.MethodPost,
		"/threads/"+url.PathEscape(thread.String())+"/files",
		map[string]any{"caption": caption, "files": out}, nil)
}

func (c *Client) SendPrivateNotice(ctx context.Context, user id.UserID, notice models.Notice) bool {
	err := c.do(ctx, http.MethodPost,
		"/users/"+url.PathEscape(user.String())+"/messages",
		map[string]any{"notice": encodeNotice(notice)}, nil)
	if err != nil {
		c.logger.WarnContext(ctx, "private notice undeliverable",
			"user_id", user.String(),
			"error", err.Error(),
		)
		return false
	}
	return true
}

func (c *Client) SendPrompt(ctx context.Context, req ports.PromptRequest) (ports.MessageRef, error) {
	type optionOut struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
	options := make([]optionOut, 0, len(req.Options))
	for _, o := range req.Options {
		options = append(options, optionOut{Key: o.Key, Label: o.Label})
	}

	var resp messageResponse
	err := c.do(ctx, http.MethodPost,
		"/users/"+url.PathEscape(req.Recipient.String())+"/prompts",
		map[string]any{
			"token":   req.Token,
			"notice":  encodeNotice(req.Notice),
			"options": options,
		}, &resp)
	if err != nil {
		return ports.MessageRef{}, err
	}
	return ports.MessageRef{
		Channel: id.ChannelID(resp.ChannelID),
		Message: id.MessageID(resp.MessageID),
	}, nil
}

func (c *Client) EditPrompt(ctx context.Context, ref ports.MessageRef, notice models.Notice) error {
	return c.do(ctx, http.MethodPatch, messagePath(ref),
		map[string]any{"notice": encodeNotice(notice), "clear_options": true}, nil)
}

type memberResponse struct {
	Roles []string `json:"roles"`
}

// CanManageSanctions checks the member's role set against the configured
// manager roles. A member the relay cannot find simply has no privileges.
func (c *Client) CanManageSanctions(ctx context.Context, actor id.UserID) (bool, error) {
	var resp memberResponse
	err := c.do(ctx, http.MethodGet, "/members/"+url.PathEscape(actor.String()), nil, &resp)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) || errors.Is(err, sentinel.ErrForbidden) {
			return false, nil
		}
		return false, err
	}
	for _, role := range resp.Roles {
		if _, ok := c.managerRoles[role]; ok {
			return true, nil
		}
	}
	return false, nil
}

func messagePath(ref ports.MessageRef) string {
	return "/channels/" + url.PathEscape(ref.Channel.String()) + "/messages/" + url.PathEscape(ref.Message.String())
}
