// Package ports declares the external collaborators the sanction workflow
// engine depends on. Interfaces are defined on the consuming side so the
// engine stays testable and transport adapters stay swappable.
package ports

import (
	"context"

	"warden/internal/sanction/models"
	id "warden/pkg/domain"
	"warden/pkg/platform/audit"
)

// MessageRef locates an externally rendered message: the public sanction
// notice or a private confirmation prompt.
type MessageRef struct {
	Channel id.ChannelID
	Message id.MessageID
}

// File is one evidence attachment, referenced by the URL the platform hosts
// it under. Gateways re-attach by URL rather than streaming content through
// the engine.
type File struct {
	Name string
	URL  string
}

// ChannelGateway is the messaging-platform adapter. Any call may fail with
// sentinel.ErrNotFound or sentinel.ErrForbidden; the engine treats both as
// recoverable-and-logged unless the call is load-bearing for the operation
// in progress.
type ChannelGateway interface {
	// ResolveChannel verifies the channel exists and is reachable.
	ResolveChannel(ctx context.Context, channel id.ChannelID) error

	// SendNotice posts a notice and returns the created message ID.
	SendNotice(ctx context.Context, channel id.ChannelID, notice models.Notice) (id.MessageID, error)

	// FetchNotice retrieves the rendered notice behind a message.
	FetchNotice(ctx context.Context, ref MessageRef) (models.Notice, error)

	// EditNotice replaces the rendered notice behind a message.
	EditNotice(ctx context.Context, ref MessageRef, notice models.Notice) error

	// DeleteMessage removes a message.
	DeleteMessage(ctx context.Context, ref MessageRef) error

	// CreateThread opens a discussion thread under a message.
	CreateThread(ctx context.Context, ref MessageRef, name string) (id.ThreadID, error)

	// ResolveThread verifies a previously recorded thread still exists.
	ResolveThread(ctx context.Context, thread id.ThreadID) error

	// DeleteThread removes a thread.
	DeleteThread(ctx context.Context, thread id.ThreadID) error

	// SendFiles posts attachments with a caption into a thread.
	SendFiles(ctx context.Context, thread id.ThreadID, caption string, files []File) error
}

// PromptOption is one interactive control on a confirmation prompt. Key is
// what the transport reports back when the recipient picks it.
type PromptOption struct {
	Key   string
	Label string
}

// PromptRequest is a plain data-carrying interactive prompt: the notice to
// render, the controls to attach, and the token the responses are keyed by.
type PromptRequest struct {
	Token     string
	Recipient id.UserID
	Notice    models.Notice
	Options   []PromptOption
}

// Notifier delivers private notices to specific users.
type Notifier interface {
	// SendPrivateNotice is best-effort: it reports false rather than
	// returning an error when the recipient is unreachable. Callers log
	// and continue, never abort.
	SendPrivateNotice(ctx context.Context, user id.UserID, notice models.Notice) bool

	// SendPrompt delivers an interactive confirmation prompt. Unlike
	// SendPrivateNotice this is load-bearing: failure to deliver fails
	// the operation that needed the prompt.
	SendPrompt(ctx context.Context, req PromptRequest) (MessageRef, error)

	// EditPrompt rewrites a previously delivered prompt, dropping its
	// interactive controls.
	EditPrompt(ctx context.Context, ref MessageRef, notice models.Notice) error
}

// Authorizer is the external role/permission predicate.
type Authorizer interface {
	CanManageSanctions(ctx context.Context, actor id.UserID) (bool, error)
}

// AuditPort emits lifecycle audit events. Defined here rather than importing
// the publisher directly to keep the hexagonal boundary.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}
