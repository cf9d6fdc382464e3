// Package httpapi exposes the JSON HTTP surface: the auth endpoints, the
// object storage passthrough endpoints, and the bearer-token gate in front
// of everything else.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/r2vault/internal/logging"
	"github.com/dmitrijs2005/r2vault/internal/server/models"
	"github.com/dmitrijs2005/r2vault/internal/server/storage"
)

// AuthService is what the HTTP layer needs from the users service.
type AuthService interface {
	Register(ctx context.Context, username, password, displayName string) (*models.Account, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// ObjectStore is what the HTTP layer needs from the storage client.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error
	Download(ctx context.Context, bucket, key string) (*storage.Object, error)
	ListBuckets(ctx context.Context) ([]storage.BucketInfo, error)
	ListObjects(ctx context.Context, bucket string) ([]storage.ObjectInfo, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	auth      AuthService
	store     ObjectStore
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, auth AuthService, store ObjectStore, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		auth:      auth,
		store:     store,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table with the auth gate wrapped around it.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.registerHandler)
	mux.HandleFunc("POST /api/auth/login", s.loginHandler)
	mux.HandleFunc("GET /api/ping", s.pingHandler)

	mux.HandleFunc("POST /api/r2/upload", s.uploadHandler)
	mux.HandleFunc("GET /api/r2/list", s.listHandler)
	mux.HandleFunc("GET /api/r2/download", s.downloadHandler)

	return s.authGate(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
