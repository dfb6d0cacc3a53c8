package utils

import (
	"encoding/json"
	"net/http"
)

func StrPtr(s string) *string {
	return &s
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
