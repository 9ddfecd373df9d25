package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// Assistant is the external text-generation backend. Implementations are
// best-effort: callers bound the context and absorb errors.
type Assistant interface {
	Reply(ctx context.Context, message, role string) (string, error)
}

// AssistantService answers free-text chat messages. Respond never fails: when
// the backend is absent or errors, it degrades to canned responses.
type AssistantService interface {
	Respond(ctx context.Context, ident domain.Identity, message string) string
}
