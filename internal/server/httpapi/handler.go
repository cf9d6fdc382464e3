package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/dmitrijs2005/r2vault/internal/common"
)

// maxUploadBytes bounds the multipart body read into memory per upload.
const maxUploadBytes = 32 << 20

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	account, err := s.auth.Register(r.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(r.Context(), "registration failed", "username", req.Username, "error", err)
		}
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "username", account.Username)
	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "registration successful",
		User:    &userPayload{Username: account.Username, Name: account.DisplayName},
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	token, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(r.Context(), "login failed", "username", req.Username, "error", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "login successful",
		Token:   token,
		User:    &userPayload{Username: req.Username},
	})
}

func (s *Server) pingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Success: true, Message: "OK"})
}

// uploadHandler stores a multipart payload: a binary "file" part, or a
// "textContent"/"jsonData" field stored as text/plain or application/json.
func (s *Server) uploadHandler(w http.ResponseWriter, r *http.Request) {

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	bucket := r.FormValue("bucketName")
	key := r.FormValue("key")
	if bucket == "" || key == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	body, contentType, err := readUploadPayload(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.Upload(r.Context(), bucket, key, body, contentType); err != nil {
		s.logger.Error(r.Context(), "upload failed", "bucket", bucket, "key", key, "error", err)
		writeError(w, err)
		return
	}

	subject, _ := SubjectFromContext(r.Context())
	s.logger.Info(r.Context(), "object uploaded", "bucket", bucket, "key", key, "size", len(body), "subject", subject)
	writeJSON(w, http.StatusOK, response{Success: true, Message: "upload successful"})
}

func readUploadPayload(r *http.Request) ([]byte, string, error) {

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		body, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, "", fmt.Errorf("read upload: %w", readErr)
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = r.FormValue("contentType")
		}
		return body, contentType, nil
	}

	if text := r.FormValue("textContent"); text != "" {
		return []byte(text), "text/plain", nil
	}

	if data := r.FormValue("jsonData"); data != "" {
		if !json.Valid([]byte(data)) {
			return nil, "", common.ErrorValidation
		}
		return []byte(data), "application/json", nil
	}

	return nil, "", common.ErrorValidation
}

// listHandler returns the bucket list, or the object list of the bucket
// named in the query.
func (s *Server) listHandler(w http.ResponseWriter, r *http.Request) {

	bucket := r.URL.Query().Get("bucket")

	if bucket == "" {
		buckets, err := s.store.ListBuckets(r.Context())
		if err != nil {
			s.logger.Error(r.Context(), "list buckets failed", "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, response{Success: true, Message: "bucket list", Buckets: buckets})
		return
	}

	objects, err := s.store.ListObjects(r.Context(), bucket)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(r.Context(), "list objects failed", "bucket", bucket, "error", err)
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "object list", Objects: objects})
}

// downloadHandler streams the object body back with its stored content
// type; download=true forces an attachment disposition.
func (s *Server) downloadHandler(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()
	bucket := query.Get("bucket")
	key := query.Get("key")
	if bucket == "" || key == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	obj, err := s.store.Download(r.Context(), bucket, key)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(r.Context(), "download failed", "bucket", bucket, "key", key, "error", err)
		}
		writeError(w, err)
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(obj.Body)))
	if query.Get("download") == "true" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(key)))
	}
	_, _ = w.Write(obj.Body)
}
