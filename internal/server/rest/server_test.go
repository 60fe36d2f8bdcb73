package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mluksch/personboard/internal/dto"
	"github.com/mluksch/personboard/internal/repository"
	"github.com/mluksch/personboard/internal/service"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	personRepository := repository.NewMockPersonRepository()
	tokenService := service.NewUserTokenService("testsecret123", time.Hour)

	return NewServer(
		service.NewPersonService(personRepository),
		service.NewPostService(repository.NewMockPostRepository(), personRepository),
		service.NewUserService(tokenService, repository.NewMockUserRepository()),
		tokenService,
	)
}

func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

func loginTestUser(t *testing.T, s *Server) string {
	t.Helper()

	rec := doRequest(t, s, http.MethodPost, "/register", "", dto.UserRegisterDTO{
		Username: "mluksch1",
		Password: "Valid123!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/login", "", dto.UserLoginDTO{
		Username: "mluksch1",
		Password: "Valid123!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	tokenDTO := dto.TokenDTO{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokenDTO))
	require.NotEmpty(t, tokenDTO.Token)
	return tokenDTO.Token
}

func createTestPerson(t *testing.T, s *Server, token, name string, age int) dto.PersonDTO {
	t.Helper()

	rec := doRequest(t, s, http.MethodPost, "/persons", token, dto.CreatePersonDTO{
		Name: name,
		Age:  &age,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	personDTO := dto.PersonDTO{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &personDTO))
	return personDTO
}

func TestIndex(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "hallo", body["gruss"])
}

func TestCreateAndGetPerson(t *testing.T) {
	s := newTestServer()
	token := loginTestUser(t, s)

	created := createTestPerson(t, s, token, "Max", 30)
	require.Equal(t, "Max", created.Name)
	require.Equal(t, 30, *created.Age)

	rec := doRequest(t, s, http.MethodGet, "/persons/Max", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	personDTO := dto.PersonDTO{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &personDTO))
	require.Equal(t, created.ID, personDTO.ID)
}

func TestCreatePersonUnauthorized(t *testing.T) {
	s := newTestServer()

	age := 30
	rec := doRequest(t, s, http.MethodPost, "/persons", "", dto.CreatePersonDTO{Name: "Max", Age: &age})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/persons", "notavalidtoken", dto.CreatePersonDTO{Name: "Max", Age: &age})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePersonConflict(t *testing.T) {
	s := newTestServer()
	token := loginTestUser(t, s)

	createTestPerson(t, s, token, "Max", 30)

	age := 31
	rec := doRequest(t, s, http.MethodPost, "/persons", token, dto.CreatePersonDTO{Name: "Max", Age: &age})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetPersonNotFound(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/persons/Nobody", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	errorDTO := dto.ErrorDTO{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorDTO))
	require.NotEmpty(t, errorDTO.Error)
}

func TestGetPersonInvalidName(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/persons/Jo", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPersons(t *testing.T) {
	s := newTestServer()
	token := loginTestUser(t, s)

	seed := []struct {
		name string
		age  int
	}{
		{"Judy", 10},
		{"Jeremy", 20},
		{"Max", 30},
		{"Jonas", 50},
	}
	for _, p := range seed {
		createTestPerson(t, s, token, p.name, p.age)
	}

	rec := doRequest(t, s, http.MethodGet, "/persons?filter=j&limit=2&orderby=age", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	persons := []dto.PersonDTO{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &persons))
	require.Len(t, persons, 2)
	require.Equal(t, "Judy", persons[0].Name)
	require.Equal(t, "Jeremy", persons[1].Name)

	rec = doRequest(t, s, http.MethodGet, "/persons?orderby=height", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/persons?limit=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAndGetPost(t *testing.T) {
	s := newTestServer()
	token := loginTestUser(t, s)

	createTestPerson(t, s, token, "Judy", 10)

	rec := doRequest(t, s, http.MethodPost, "/posts", token, dto.CreatePostDTO{
		Comment:    "Hello how are you?",
		AuthorName: "Judy",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	created := dto.PostDTO{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Hello how are you?", created.Comment)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/posts/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	posts := []dto.PostDTO{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	s := newTestServer()
	token := loginTestUser(t, s)

	rec := doRequest(t, s, http.MethodPost, "/posts", token, dto.CreatePostDTO{
		Comment:    "Hello how are you?",
		AuthorName: "Nobody",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPostNotFound(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/posts/999", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/register", "", dto.UserRegisterDTO{
		Username: "bad",
		Password: "Valid123!",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/login", "", dto.UserLoginDTO{
		Username: "nobody99",
		Password: "Valid123!",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
