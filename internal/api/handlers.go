package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/demilade/chopbot/internal/chat"
)

func (a *API) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" || req.SessionID == "" {
		writeJSONError(w, http.StatusBadRequest, "Message and sessionId are required")
		return
	}

	response, err := a.engine.HandleMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		logrus.WithError(err).Error("failed to process chat message")
		writeJSONError(w, http.StatusInternalServerError, "Error processing your message")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"response": response,
	})
}

func (a *API) handlePaymentCallback(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		logrus.Error("payment callback without reference parameter")
		writePage(w, http.StatusBadRequest, missingReferencePage())
		return
	}

	receipt, err := a.engine.Reconcile(r.Context(), reference)
	if err == nil {
		writePage(w, http.StatusOK, paymentSuccessPage(receipt))
		return
	}

	var failed *chat.PaymentFailedError
	switch {
	case errors.As(err, &failed):
		writePage(w, http.StatusOK, paymentFailedPage(reference, failed.Status))
	case errors.Is(err, chat.ErrOrderNotFound):
		writePage(w, http.StatusNotFound, orderNotFoundPage(reference))
	case errors.Is(err, chat.ErrSessionNotFound):
		writePage(w, http.StatusNotFound, sessionNotFoundPage(reference))
	default:
		writePage(w, http.StatusInternalServerError, verificationErrorPage(err))
	}
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

func writePage(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(html))
}
