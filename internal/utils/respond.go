package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON encodes data before touching the response, so an encoding
// failure becomes a 500 instead of a 200 with an empty body.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
