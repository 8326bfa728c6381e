package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"travelmaker/chatbot"
)

// FAQHandler returns the greeting and the canned FAQ list.
func FAQHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"greeting": chatbot.Greeting,
			"faq":      chatbot.FAQ,
		})
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// ChatHandler answers a free-text help message.
func ChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}

		answer, err := chatbot.Reply(req.Message)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, answer)
	}
}
