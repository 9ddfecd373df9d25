package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobmatch/jobmatch-api/internal/metrics"
	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

const defaultAssistantTimeout = 10 * time.Second

// AssistantService answers chat messages via the configured backend, degrading
// to deterministic canned replies when the backend is absent or failing.
// Respond never returns an error to the caller.
type AssistantService struct {
	backend ports.Assistant // nil when no backend is configured
	timeout time.Duration
	log     zerolog.Logger
}

func NewAssistantService(backend ports.Assistant, timeout time.Duration, log zerolog.Logger) *AssistantService {
	if timeout <= 0 {
		timeout = defaultAssistantTimeout
	}
	return &AssistantService{backend: backend, timeout: timeout, log: log}
}

func (s *AssistantService) Respond(ctx context.Context, ident domain.Identity, message string) string {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return "Say something and I'll try to help."
	}

	if s.backend != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.backend.Reply(ctx, msg, ident.Role)
		if err == nil {
			if text = strings.TrimSpace(text); text != "" {
				metrics.AssistantRepliesTotal.WithLabelValues("backend").Inc()
				return text
			}
		} else {
			s.log.Warn().Err(err).Msg("assistant backend failed, using canned reply")
		}
	}

	metrics.AssistantRepliesTotal.WithLabelValues("canned").Inc()
	return cannedReply(msg, firstName(ident.Name))
}

// cannedReply is the deterministic keyword-matched fallback responder.
func cannedReply(msg, name string) string {
	low := strings.ToLower(msg)
	switch {
	case strings.Contains(low, "hello") || strings.Contains(low, "hi"):
		return "Hey " + name + "! How can I help you today?"
	case strings.Contains(low, "apply"):
		return "Open Applications, pick a job, and click Apply."
	case strings.Contains(low, "status"):
		return "Check your Dashboard tabs: Accepted / Rejected / Under Review."
	case strings.Contains(low, "post") && strings.Contains(low, "job"):
		return "As an employer, go to Dashboard and use Post a Job."
	case strings.Contains(low, "profile"):
		return "Open Profile to view or edit details. Password changes are in the Password tab."
	default:
		return "Try asking about applications, status, posting jobs, resources, or profile."
	}
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}
