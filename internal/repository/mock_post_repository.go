package repository

import (
	"context"
	"sort"

	"github.com/mluksch/personboard/internal/model"
)

// MockPostRepository is a mock implementation of PostRepository for testing purposes.
type MockPostRepository struct {
	Posts          map[uint]*model.Post // Map to store posts by ID
	LastInsertedID uint                 // To simulate auto-increment behavior
}

// NewMockPostRepository creates a new instance of MockPostRepository.
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts: make(map[uint]*model.Post),
	}
}

// AddPost is a mock implementation of AddPost method.
func (m *MockPostRepository) AddPost(ctx context.Context, post *model.Post) (*model.Post, error) {
	m.LastInsertedID++
	post.ID = m.LastInsertedID
	m.Posts[post.ID] = post
	return post, nil
}

// GetPostByID is a mock implementation of GetPostByID method.
func (m *MockPostRepository) GetPostByID(ctx context.Context, postID int64) (*model.Post, error) {
	post, ok := m.Posts[uint(postID)]
	if !ok {
		return nil, nil
	}
	return post, nil
}

// GetAllPosts is a mock implementation of GetAllPosts method.
func (m *MockPostRepository) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	return posts, nil
}
