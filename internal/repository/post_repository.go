package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mluksch/personboard/internal/model"
	"gorm.io/gorm"
)

// PostRepository is an interface that defines the methods required for post data management.
type PostRepository interface {
	// AddPost adds a new post to the database.
	AddPost(ctx context.Context, post *model.Post) (addedPost *model.Post, err error)

	// GetPostByID retrieves a post from the database by its postID.
	GetPostByID(ctx context.Context, postID int64) (post *model.Post, err error)

	// GetAllPosts retrieves all posts from the database in insertion order.
	GetAllPosts(ctx context.Context) (posts []*model.Post, err error)
}

// PostRepositoryImpl implements the PostRepository interface.
type PostRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepositoryImpl instance with the provided database.
func NewPostRepository(db *gorm.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{
		db: db,
	}
}

func (pr *PostRepositoryImpl) AddPost(ctx context.Context, post *model.Post) (*model.Post, error) {
	if err := pr.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to add post: %w", err)
	}

	return post, nil
}

func (pr *PostRepositoryImpl) GetPostByID(ctx context.Context, postID int64) (*model.Post, error) {
	var post model.Post
	err := pr.db.WithContext(ctx).First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return &post, nil
}

func (pr *PostRepositoryImpl) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	if err := pr.db.WithContext(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all posts: %w", err)
	}

	return posts, nil
}
