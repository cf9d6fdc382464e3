package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/r2vault/internal/common"
	"github.com/dmitrijs2005/r2vault/internal/server/storage"
)

// userPayload is the public view of an account. The password hash is never
// part of any payload.
type userPayload struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// response is the single envelope for every JSON reply: either a success
// with an optional payload, or an error with a human-readable message.
type response struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Token   string               `json:"token,omitempty"`
	User    *userPayload         `json:"user,omitempty"`
	Buckets []storage.BucketInfo `json:"buckets,omitempty"`
	Objects []storage.ObjectInfo `json:"objects,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// statusForError maps the error taxonomy to an HTTP status and a client
// message. Unrecognized errors collapse to a generic 500; details stay in
// the server log only.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, "missing or invalid fields"
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest, "username is already taken"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorInvalidCredential):
		return http.StatusUnauthorized, "wrong password"
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := statusForError(err)
	writeJSON(w, status, response{Success: false, Message: msg})
}
