package services

import (
	"collection-dashboard/internal/platform/obs"
	"collection-dashboard/internal/ports"
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
)

// User-visible chat failures. The underlying error is only logged.
const (
	ChatStatusFailure      = "Erreur lors de l'appel à l'API OpenAI."
	ChatUnavailableFailure = "Erreur : le service de chat est indisponible."
)

// ChatReply is one question/answer exchange. Err is set instead of Reply
// when the relay failed.
type ChatReply struct {
	Question string
	Reply    string
	Err      string
}

// ChatRelay forwards questions to a completer and turns every failure into
// a generic message. It keeps no conversation state.
type ChatRelay struct {
	completer ports.ChatCompleter
	metrics   *obs.Metrics
}

// completer may be nil when no API key is configured; Ask then fails softly.
func NewChatRelay(completer ports.ChatCompleter, metrics *obs.Metrics) *ChatRelay {
	return &ChatRelay{completer: completer, metrics: metrics}
}

func (r *ChatRelay) Configured() bool { return r.completer != nil }

func (r *ChatRelay) Ask(ctx context.Context, text string) ChatReply {
	q := strings.TrimSpace(text)
	if q == "" {
		return ChatReply{}
	}

	entry := log.WithField("req_id", obs.RequestID(ctx))

	if r.completer == nil {
		entry.Warn("chat relay called without an API key")
		r.metrics.RecordChat("unconfigured")
		return ChatReply{Question: q, Err: ChatUnavailableFailure}
	}

	reply, err := r.completer.Complete(ctx, q)
	if err != nil {
		entry.WithError(err).Warn("chat completion failed")
		if errors.Is(err, ports.ErrChatStatus) {
			r.metrics.RecordChat("status_error")
			return ChatReply{Question: q, Err: ChatStatusFailure}
		}
		r.metrics.RecordChat("error")
		return ChatReply{Question: q, Err: ChatUnavailableFailure}
	}

	r.metrics.RecordChat("success")
	return ChatReply{Question: q, Reply: reply}
}
