package devserver

import (
	"encoding/json"
	"net/http"
)

// The dev server speaks the exact VY wire dialect the hosted backend
// does: flat JSON objects, errors as {"msg": ...}, and the attendance
// rejection shape {"msg": ..., "isApproved": ...}. No envelope.

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMsg(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, map[string]string{"msg": msg})
}

func writeMarkRejection(w http.ResponseWriter, msg string, isApproved bool) {
	writeJSON(w, http.StatusConflict, map[string]interface{}{
		"msg":        msg,
		"isApproved": isApproved,
	})
}
