package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kasuboski/reelinfo/pkg/extractor"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/manager"
	"github.com/kasuboski/reelinfo/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Server houses all dependencies for the extraction server such as loggers and the manager
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.MediaManager
}

// New creates a new extraction server
func New(logger *zap.SugaredLogger, manager manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

// ExtractRequest is the body accepted by the extract endpoint
type ExtractRequest struct {
	Paths []string `json:"paths"`
}

// ExtractResponse reports how many paths were queued
type ExtractResponse struct {
	Queued int `json:"queued"`
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// errorStatus maps domain errors to a response status
func errorStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, manager.ErrNoPaths):
		return http.StatusBadRequest
	case errors.Is(err, extractor.ErrStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Router builds the handler for every route the server exposes
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/extract", s.Extract()).Methods(http.MethodPost)
	v1.HandleFunc("/parse", s.ParseFilename()).Methods(http.MethodGet)
	v1.HandleFunc("/results", s.GetResult()).Methods(http.MethodGet)

	v1.HandleFunc("/movie-files", s.ListMovieFiles()).Methods(http.MethodGet)
	v1.HandleFunc("/movie-files/{id}", s.GetMovieFile()).Methods(http.MethodGet)
	v1.HandleFunc("/movie-files/{id}", s.DeleteMovieFile()).Methods(http.MethodDelete)

	v1.HandleFunc("/library/scan", s.ScanLibrary()).Methods(http.MethodPost)
	v1.HandleFunc("/extractor", s.ExtractorStatus()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// Extract queues the submitted paths for extraction
func (s Server) Extract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("invalid request body", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		var request ExtractRequest
		err = json.Unmarshal(b, &request)
		if err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		queued, err := s.manager.SubmitPaths(r.Context(), request.Paths)
		if err != nil {
			writeErrorResponse(w, errorStatus(err), err)
			return
		}

		err = writeResponse(w, http.StatusAccepted, GenericResponse{Response: ExtractResponse{Queued: queued}})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ParseFilename extracts a single filename immediately without storing the result
func (s Server) ParseFilename() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		filename := r.URL.Query().Get("filename")

		result, err := s.manager.ParseFilename(r.Context(), filename)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: manager.NewFileInfo(result, extractor.ProviderName)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetResult returns the latest result for a path
func (s Server) GetResult() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		path := r.URL.Query().Get("path")
		if path == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("path is required"))
			return
		}

		result, err := s.manager.GetResult(r.Context(), path)
		if err != nil {
			writeErrorResponse(w, errorStatus(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: manager.NewFileInfo(result, extractor.ProviderName)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) ListMovieFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		qps := r.URL.Query()

		filter := manager.MovieFileFilter{
			Title: qps.Get("title"),
		}
		if v := qps.Get("parsed"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid parsed filter: %w", err))
				return
			}
			filter.Parsed = &parsed
		}

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		page, err := s.manager.ListMovieFiles(r.Context(), filter, params)
		if err != nil {
			log.Error("failed to list movie files", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: page})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) GetMovieFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id := mux.Vars(r)["id"]

		file, err := s.manager.GetMovieFile(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, errorStatus(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: file})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) DeleteMovieFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		err := s.manager.DeleteMovieFile(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, errorStatus(err), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ScanLibrary walks the movie library and queues every video file found
func (s Server) ScanLibrary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		result, err := s.manager.ScanLibrary(r.Context())
		if err != nil {
			log.Error("failed to scan library", zap.Error(err))
			writeErrorResponse(w, errorStatus(err), err)
			return
		}

		err = writeResponse(w, http.StatusAccepted, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) ExtractorStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Response: s.manager.Status()})
	}
}
