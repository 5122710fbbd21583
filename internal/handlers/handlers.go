package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func sendJSON(w http.ResponseWriter, status int, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(payload)
}

func (h SolveHandler) reply(w http.ResponseWriter, status int, v any) {
	if _, err := sendJSON(w, status, v); err != nil {
		h.logger.WithError(err).Error("unable to send response")
	}
}

func (h SolveHandler) replyError(w http.ResponseWriter, status int, e error) {
	h.reply(w, status, wrapError(e))
	h.logger.WithFields(logrus.Fields{
		"status": status,
		"error":  e,
	}).Debug("request rejected")
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
