package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mluksch/personboard/internal/dto"
	"github.com/mluksch/personboard/internal/service"
	"github.com/mluksch/personboard/pkg/validation"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	registerDTO := &dto.UserRegisterDTO{}
	if err := json.NewDecoder(r.Body).Decode(registerDTO); err != nil {
		s.respondWithError(w, http.StatusBadRequest, ErrMsgBadRequestInvalidRequestBody)
		return
	}

	userDTO, err := s.userService.RegisterUser(r.Context(), registerDTO)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidUsername):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		case errors.Is(err, validation.ErrInvalidPassword):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		case errors.Is(err, service.ErrUserAlreadyExists):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		default:
			s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, userDTO)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	loginDTO := &dto.UserLoginDTO{}
	if err := json.NewDecoder(r.Body).Decode(loginDTO); err != nil {
		s.respondWithError(w, http.StatusBadRequest, ErrMsgBadRequestInvalidRequestBody)
		return
	}

	tokenDTO, err := s.userService.LoginUser(r.Context(), loginDTO)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			s.respondWithError(w, http.StatusUnauthorized, fmt.Sprintf("%s:%s", ErrMsgUnauthorized, err))
		default:
			s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, tokenDTO)
}
