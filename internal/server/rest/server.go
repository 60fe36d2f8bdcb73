package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mluksch/personboard/internal/dto"
	"github.com/mluksch/personboard/internal/service"
	"github.com/mluksch/personboard/pkg/logger"
)

type contextKey string

const (
	// DefaultPort is the default port the server listens on.
	DefaultPort = 8000
	// DefaultAddress is the default address the server listens on.
	DefaultAddress = ""
	// DefaultWriteTimeout is the default write timeout for server responses.
	DefaultWriteTimeout = 15 * time.Second
	// DefaultReadTimeout is the default read timeout for incoming requests.
	DefaultReadTimeout = 15 * time.Second

	contextKeyReqID = contextKey("reqID")

	// ErrMsgUnauthorized is a http response body message for unauthorized status code.
	ErrMsgUnauthorized = "Unauthorized"
	// ErrMsgBadRequestInvalidRequestBody is a http response body message for bad request status code.
	ErrMsgBadRequestInvalidRequestBody = "Invalid request body"
	// ErrMsgNotFound is a http response body message for not found status code.
	ErrMsgNotFound = "Not found"
	// ErrMsgConflict is a http response body message for conflict status code.
	ErrMsgConflict = "Conflict"
	// ErrMsgInternalServerError is a http response body message for internal server error status code.
	ErrMsgInternalServerError = "Internal server error"
)

// Server represents a REST API server.
type Server struct {
	*http.Server
	personService service.PersonService
	postService   service.PostService
	userService   service.UserService
	tokenService  service.UserTokenService
}

// NewServer creates a new Server instance.
func NewServer(personService service.PersonService, postService service.PostService, userService service.UserService, tokenService service.UserTokenService, opts ...ServerOption) *Server {
	server := &Server{
		Server: &http.Server{
			Addr:         DefaultAddress,
			WriteTimeout: DefaultWriteTimeout,
			ReadTimeout:  DefaultReadTimeout,
		},
		personService: personService,
		postService:   postService,
		userService:   userService,
		tokenService:  tokenService,
	}

	for _, opt := range opts {
		opt(server)
	}

	server.initRoutes()

	return server
}

// ServerOption is a function signature for providing options to configure the Server.
type ServerOption func(*Server)

// WithAddress is an option to set the server address.
func WithAddress(addr string) ServerOption {
	return func(s *Server) {
		s.Addr = addr
	}
}

// WithReadTimeout is an option to set the read timeout for the server.
func WithReadTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.ReadTimeout = timeout
	}
}

// WithWriteTimeout is an option to set the write timeout for the server.
func WithWriteTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.WriteTimeout = timeout
	}
}

func (s *Server) initRoutes() {
	r := mux.NewRouter()

	r.Use(s.logMiddleware)

	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")

	r.HandleFunc("/persons", s.handleListPersons).Methods("GET")
	r.HandleFunc("/persons/{name}", s.handleGetPerson).Methods("GET")
	r.HandleFunc("/posts", s.handleListPosts).Methods("GET")
	r.HandleFunc("/posts/{id:[0-9]+}", s.handleGetPost).Methods("GET")

	r.Handle("/persons", s.authMiddleware(http.HandlerFunc(s.handleCreatePerson))).Methods("POST")
	r.Handle("/posts", s.authMiddleware(http.HandlerFunc(s.handleCreatePost))).Methods("POST")

	s.Handler = r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]any{
		"gruss":   "hallo",
		"service": "PersonBoard",
	})
}

func (s *Server) respondWithError(w http.ResponseWriter, errCode int, errMessage string) {
	s.respondWithJSON(w, errCode, dto.ErrorDTO{Error: errMessage})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to marshall response to JSON: %s ", err))

		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(ErrMsgInternalServerError)); err != nil {
			logger.Error(fmt.Sprintf("Failed to respond: %s", err))
		}

		return
	}

	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Error(fmt.Sprintf("Failed to respond: %s", err))
	}
}
