package handlers

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/multiplaymat/mpm-server/internal/logger"
)

const maxBodyBytes = 1 << 20

// decodeBody fills dst from a JSON body, or from an urlencoded form using the
// given field setter. Any other content type is treated as JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fromForm func(get func(string) string)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		fromForm(r.PostForm.Get)
		return nil
	}

	return json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}
