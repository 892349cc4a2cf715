package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Question string `json:"question"`
	Reply    string `json:"reply,omitempty"`
	Error    string `json:"error,omitempty"`
}
