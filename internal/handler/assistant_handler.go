package handler

import (
	"encoding/json"
	"net/http"

	"banking-assistant/internal/errors"
	"banking-assistant/internal/service"
)

type AssistantHandler struct {
	assistant *service.Assistant
}

func NewAssistantHandler(assistant *service.Assistant) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
	}
}

type AssistantRequest struct {
	AccountID  int64  `json:"account_id"`
	Utterance  string `json:"utterance"`
	Credential string `json:"credential,omitempty"`
}

// Process is the single conversational endpoint. Structurally invalid input
// is rejected here; everything past this point answers with an envelope.
func (h *AssistantHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	if req.AccountID <= 0 {
		writeError(w, errors.NewAppError(errors.InvalidInput, "account_id must be a positive integer"))
		return
	}
	if req.Utterance == "" {
		writeError(w, errors.NewAppError(errors.InvalidInput, "utterance must not be empty"))
		return
	}

	envelope := h.assistant.Handle(r.Context(), req.AccountID, req.Utterance, req.Credential)
	writeJSON(w, http.StatusOK, envelope)
}
