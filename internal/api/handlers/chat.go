package handlers

import (
	"collection-dashboard/internal/api/dto"
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/services"
	"collection-dashboard/internal/web"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Questions longer than this are rejected before reaching the relay.
const maxChatBody = 16 << 10

type ChatAsker interface {
	Ask(ctx context.Context, text string) services.ChatReply
	Configured() bool
}

// ChatHandler serves the chat tab. Each question is independent; nothing
// is kept between requests.
type ChatHandler struct {
	Relay ChatAsker
	Data  DatasetProvider
}

func (h *ChatHandler) page(s *domain.Session) web.ChatPage {
	p := web.ChatPage{
		Page:       web.Page{Title: "Chatbot IA", Active: web.PageChat, Authenticated: s.Authenticated},
		Configured: h.Relay.Configured(),
	}
	if h.Data != nil {
		p.LoadedAt, _ = h.Data.LoadedAt()
	}
	return p
}

func (h *ChatHandler) Page(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	render(w, r, http.StatusOK, web.PageChat, h.page(s))
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBody)
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	reply := h.Relay.Ask(r.Context(), r.PostFormValue("message"))

	p := h.page(s)
	p.Question = reply.Question
	p.Reply = reply.Reply
	p.Error = reply.Err
	render(w, r, http.StatusOK, web.PageChat, p)
}

func (h *ChatHandler) APIAsk(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	var req dto.ChatRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	reply := h.Relay.Ask(r.Context(), req.Message)
	writeJSON(w, r, http.StatusOK, dto.ChatResponse{
		Question: reply.Question,
		Reply:    reply.Reply,
		Error:    reply.Err,
	})
}
