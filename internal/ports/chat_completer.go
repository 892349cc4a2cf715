package ports

import (
	"context"
	"errors"
)

// ErrChatStatus is matched by completer errors caused by a non-200 reply
// from the remote service, as opposed to transport or decoding failures.
var ErrChatStatus = errors.New("chat service returned a non-200 status")

// Contract for the conversational service behind the chat tab.
type ChatCompleter interface {
	// Send the user's text with the fixed persona and return the reply text.
	Complete(ctx context.Context, userText string) (string, error)
}
