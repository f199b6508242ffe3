package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/finsight-ai/finsight/internal/advisor"
	"github.com/finsight-ai/finsight/internal/cache"
	"github.com/finsight-ai/finsight/internal/models"
	"github.com/finsight-ai/finsight/internal/storage"
	"github.com/finsight-ai/finsight/pkg/config"
)

const (
	agentName        = "finsight-ai"
	agentDescription = "FinSight AI Financial Advisor"
)

type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// Server exposes the advisory engine over HTTP.
type Server struct {
	cfg     config.ServerConfig
	advisor advisor.Advisor
	storage storage.Storage
	cache   cache.Cache
	limiter *RateLimiter
	logger  *zap.Logger

	httpServer *http.Server
}

func New(cfg config.ServerConfig, adv advisor.Advisor, store storage.Storage, responseCache cache.Cache, logger *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		advisor: adv,
		storage: store,
		cache:   responseCache,
		limiter: NewRateLimiter(cfg.RequestsPerMinute, time.Minute),
		logger:  logger,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/agent-info", s.handleAgentInfo)
	mux.Handle("/chat", RateLimitMiddleware(s.limiter, http.HandlerFunc(s.handleChat)))
	mux.HandleFunc("/history", s.handleHistory)

	return CORSMiddleware(LoggingMiddleware(s.logger, mux))
}

// Run starts the server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	s.limiter.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"agent":   agentName,
		"message": "FinSight AI server is running",
	})
}

func (s *Server) handleAgentInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        agentName,
		"description": agentDescription,
		"status":      "active",
		"capabilities": []string{
			"Loan guidance with EMI calculations",
			"Investment planning with age-based strategies",
			"Tax assistance",
			"Credit score improvement with timelines",
			"Budget planning with income analysis",
			"Scam detection",
			"Government schemes",
			"Credit card advice",
		},
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	ctx := r.Context()

	key := cache.Key(req.Message)
	if cached, ok := s.cache.Get(ctx, key); ok {
		s.logger.Debug("cache hit", zap.String("user_id", req.UserID))
		writeJSON(w, http.StatusOK, ChatResponse{Response: cached, Status: "success"})
		return
	}

	response, intent := s.advisor.Advise(ctx, req.Message)

	if err := s.cache.Set(ctx, key, response); err != nil {
		s.logger.Warn("failed to cache response", zap.Error(err))
	}

	record := &models.ChatRecord{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Message:   req.Message,
		Intent:    intent,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.storage.SaveChat(ctx, record); err != nil {
		s.logger.Error("failed to save chat",
			zap.Error(err),
			zap.String("chat_id", record.ID),
			zap.String("user_id", req.UserID))
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: response, Status: "success"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	chats, err := s.storage.GetUserChats(r.Context(), userID, limit)
	if err != nil {
		s.logger.Error("failed to load chat history",
			zap.Error(err),
			zap.String("user_id", userID))
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"chats":   chats,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
