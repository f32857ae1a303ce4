// Package prompt tracks delivered interactive confirmation prompts so that a
// later response or expiry can find the message to annotate. The registry is
// keyed by the same token that guards dispute validity, which decouples
// prompt bookkeeping from the state machine that renders outcomes.
package prompt

import (
	"sync"

	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	id "warden/pkg/domain"
)

// Prompt is the data-carrying record of one delivered interactive prompt.
type Prompt struct {
	Token      string
	SanctionID id.SanctionID
	Ref        ports.MessageRef
	Notice     models.Notice
}

// Registry stores pending prompts in process memory, scoped to the engine's
// lifetime like the rest of the pending-action state.
type Registry struct {
	mu      sync.Mutex
	prompts map[string]Prompt
}

func NewRegistry() *Registry {
	return &Registry{prompts: make(map[string]Prompt)}
}

// Register stores a delivered prompt under its token, replacing any stale
// entry left by an earlier dispute on the same sanction.
func (r *Registry) Register(p Prompt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[p.Token] = p
}

// Lookup fetches the prompt for a token.
func (r *Registry) Lookup(token string) (Prompt, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prompts[token]
	return p, ok
}

// Remove drops the prompt for a token. Idempotent.
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prompts, token)
}
