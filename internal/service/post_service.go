package service

import (
	"context"
	"errors"

	"github.com/mluksch/personboard/internal/dto"
	"github.com/mluksch/personboard/internal/model"
	"github.com/mluksch/personboard/internal/repository"
	"github.com/mluksch/personboard/pkg/validation"
)

var (
	// ErrPostNotFound is returned when no post with the provided ID exists.
	ErrPostNotFound = errors.New("post with the provided ID does not exist")
	// ErrAuthorNotFound is returned when the author of a new post does not exist.
	ErrAuthorNotFound = errors.New("person with the provided author name does not exist")
)

// PostService defines the interface for post-related operations.
type PostService interface {
	// CreatePost creates a new post authored by an existing person.
	CreatePost(context.Context, *dto.CreatePostDTO) (*dto.PostDTO, error)

	// GetPostByID retrieves a post by its ID.
	GetPostByID(ctx context.Context, postID int64) (*dto.PostDTO, error)

	// ListPosts lists all posts.
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
}

// PostServiceImpl implements the PostService interface.
type PostServiceImpl struct {
	postRepository   repository.PostRepository
	personRepository repository.PersonRepository
}

// NewPostService creates a new PostServiceImpl instance with the provided repositories.
func NewPostService(postRepository repository.PostRepository, personRepository repository.PersonRepository) *PostServiceImpl {
	return &PostServiceImpl{
		postRepository:   postRepository,
		personRepository: personRepository,
	}
}

func (ps *PostServiceImpl) CreatePost(ctx context.Context, createPost *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if err := validation.ValidateComment(createPost.Comment); err != nil {
		return nil, err
	}

	author, err := ps.personRepository.GetPersonByName(ctx, createPost.AuthorName)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	newPost, err := ps.postRepository.AddPost(ctx, &model.Post{
		Comment:  createPost.Comment,
		AuthorID: author.ID,
	})
	if err != nil {
		return nil, err
	}

	return newPostDTO(newPost), nil
}

func (ps *PostServiceImpl) GetPostByID(ctx context.Context, postID int64) (*dto.PostDTO, error) {
	post, err := ps.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return newPostDTO(post), nil
}

func (ps *PostServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := ps.postRepository.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	postDTOs := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTOs = append(postDTOs, newPostDTO(post))
	}

	return postDTOs, nil
}

func newPostDTO(post *model.Post) *dto.PostDTO {
	return &dto.PostDTO{
		ID:        int64(post.ID),
		Comment:   post.Comment,
		AuthorID:  int64(post.AuthorID),
		CreatedAt: post.CreatedAt,
	}
}
