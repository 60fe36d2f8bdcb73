package service

import (
	"context"
	"testing"

	"github.com/mluksch/personboard/internal/dto"
	"github.com/mluksch/personboard/internal/model"
	"github.com/mluksch/personboard/internal/repository"
	"github.com/mluksch/personboard/pkg/validation"
	"github.com/stretchr/testify/require"
)

func newTestPostService(t *testing.T) (*PostServiceImpl, *repository.MockPersonRepository) {
	t.Helper()

	personRepository := repository.NewMockPersonRepository()
	_, err := personRepository.AddPerson(context.Background(), &model.Person{Name: "Judy"})
	require.NoError(t, err)

	return NewPostService(repository.NewMockPostRepository(), personRepository), personRepository
}

func TestCreatePost(t *testing.T) {
	postService, _ := newTestPostService(t)

	postDTO, err := postService.CreatePost(context.Background(), &dto.CreatePostDTO{
		Comment:    "Hello how are you?",
		AuthorName: "Judy",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), postDTO.ID)
	require.Equal(t, "Hello how are you?", postDTO.Comment)
	require.Equal(t, int64(1), postDTO.AuthorID)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	postService, _ := newTestPostService(t)

	_, err := postService.CreatePost(context.Background(), &dto.CreatePostDTO{
		Comment:    "Hello how are you?",
		AuthorName: "Nobody",
	})
	require.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestCreatePostEmptyComment(t *testing.T) {
	postService, _ := newTestPostService(t)

	_, err := postService.CreatePost(context.Background(), &dto.CreatePostDTO{
		Comment:    "   ",
		AuthorName: "Judy",
	})
	require.ErrorIs(t, err, validation.ErrInvalidComment)
}

func TestGetPostByID(t *testing.T) {
	postService, _ := newTestPostService(t)

	created, err := postService.CreatePost(context.Background(), &dto.CreatePostDTO{
		Comment:    "Im fine",
		AuthorName: "Judy",
	})
	require.NoError(t, err)

	postDTO, err := postService.GetPostByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Comment, postDTO.Comment)

	_, err = postService.GetPostByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPosts(t *testing.T) {
	postService, _ := newTestPostService(t)

	comments := []string{"Hello how are you?", "Im fine", "Nice to meet you"}
	for _, comment := range comments {
		_, err := postService.CreatePost(context.Background(), &dto.CreatePostDTO{
			Comment:    comment,
			AuthorName: "Judy",
		})
		require.NoError(t, err)
	}

	posts, err := postService.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i, comment := range comments {
		require.Equal(t, comment, posts[i].Comment)
	}
}
