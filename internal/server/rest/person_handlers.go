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

func (s *Server) handleListPersons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if limitParam := query.Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:limit must be a non-negative integer", ErrMsgBadRequestInvalidRequestBody))
			return
		}
		limit = parsed
	}

	personDTOs, err := s.personService.ListPersons(r.Context(), query.Get("filter"), limit, service.OrderBy(query.Get("orderby")))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderBy):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		default:
			s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, personDTOs)
}

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	personDTO, err := s.personService.GetPersonByName(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidPersonName):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		case errors.Is(err, service.ErrPersonNotFound):
			s.respondWithError(w, http.StatusNotFound, fmt.Sprintf("%s:%s", ErrMsgNotFound, err))
		default:
			s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, personDTO)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	createPersonDTO := &dto.CreatePersonDTO{}
	if err := json.NewDecoder(r.Body).Decode(createPersonDTO); err != nil {
		s.respondWithError(w, http.StatusBadRequest, ErrMsgBadRequestInvalidRequestBody)
		return
	}

	personDTO, err := s.personService.CreatePerson(r.Context(), createPersonDTO)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidPersonName):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		case errors.Is(err, service.ErrPersonAlreadyExists):
			s.respondWithError(w, http.StatusConflict, fmt.Sprintf("%s:%s", ErrMsgConflict, err))
		default:
			s.respondWithError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, personDTO)
}
