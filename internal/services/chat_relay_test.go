package services

import (
	"collection-dashboard/internal/platform/obs"
	"collection-dashboard/internal/ports"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
	last  string
}

func (s *stubCompleter) Complete(ctx context.Context, userText string) (string, error) {
	s.calls++
	s.last = userText
	return s.reply, s.err
}

func TestChatRelayAsk(t *testing.T) {
	stub := &stubCompleter{reply: "Il y a 3 zones."}
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	relay := NewChatRelay(stub, metrics)

	got := relay.Ask(context.Background(), "  Combien de zones ?  ")
	assert.Equal(t, ChatReply{Question: "Combien de zones ?", Reply: "Il y a 3 zones."}, got)
	assert.Equal(t, "Combien de zones ?", stub.last)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ChatRequests.WithLabelValues("success")))
}

func TestChatRelayBlankQuestion(t *testing.T) {
	stub := &stubCompleter{}
	relay := NewChatRelay(stub, nil)

	assert.Equal(t, ChatReply{}, relay.Ask(context.Background(), " \n\t"))
	assert.Equal(t, 0, stub.calls)
}

func TestChatRelayFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"status", fmt.Errorf("complete: %w", ports.ErrChatStatus), ChatStatusFailure},
		{"transport", errors.New("dial tcp: i/o timeout"), ChatUnavailableFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := NewChatRelay(&stubCompleter{err: tt.err}, nil)
			got := relay.Ask(context.Background(), "bonjour")
			assert.Equal(t, "bonjour", got.Question)
			assert.Empty(t, got.Reply)
			assert.Equal(t, tt.want, got.Err)
		})
	}
}

func TestChatRelayUnconfigured(t *testing.T) {
	relay := NewChatRelay(nil, nil)
	assert.False(t, relay.Configured())
	assert.Equal(t, ChatUnavailableFailure, relay.Ask(context.Background(), "bonjour").Err)
}
