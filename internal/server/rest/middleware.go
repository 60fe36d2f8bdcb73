package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mluksch/personboard/pkg/logger"
)

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		logMessage := fmt.Sprintf(
			"Received request [ID: %s] from [ClientIP: %s] to [Endpoint: %s] with [HTTP Method: %s]",
			requestID, getClientIP(r), r.URL.Path, r.Method,
		)
		logger.Info(logMessage)

		r = r.WithContext(context.WithValue(r.Context(), contextKeyReqID, requestID))

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			s.respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
			return
		}

		if err := s.tokenService.ValidateToken(tokenString); err != nil {
			s.respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getClientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}

	colonIndex := strings.Index(ip, ":")
	if colonIndex != -1 {
		ip = ip[:colonIndex]
	}
	return ip
}
