package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mluksch/personboard/internal/dto"
	"github.com/mluksch/personboard/internal/service"
	"github.com/mluksch/personboard/pkg/validation"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	postDTOs, err := s.postService.ListPosts(r.Context())
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		return
	}

	s.respondWithJSON(w, http.StatusOK, postDTOs)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:post ID must be an integer", ErrMsgBadRequestInvalidRequestBody))
		return
	}

	postDTO, err := s.postService.GetPostByID(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			s.respondWithError(w, http.StatusNotFound, fmt.Sprintf("%s:%s", ErrMsgNotFound, err))
		default:
			s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, postDTO)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	createPostDTO := &dto.CreatePostDTO{}
	if err := json.NewDecoder(r.Body).Decode(createPostDTO); err != nil {
		s.respondWithError(w, http.StatusBadRequest, ErrMsgBadRequestInvalidRequestBody)
		return
	}

	postDTO, err := s.postService.CreatePost(r.Context(), createPostDTO)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidComment):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		case errors.Is(err, service.ErrAuthorNotFound):
			s.respondWithError(w, http.StatusNotFound, fmt.Sprintf("%s:%s", ErrMsgNotFound, err))
		default:
			s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, postDTO)
}
