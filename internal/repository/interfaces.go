package repository

import (
	"context"
	"net/url"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca"
)

// API is the subset of pachca.Client the repositories need.
type API interface {
	Get(ctx context.Context, path string, query url.Values) (*pachca.Response, error)
	Post(ctx context.Context, path string, body any) (*pachca.Response, error)
	Put(ctx context.Context, path string, body any) (*pachca.Response, error)
}

// TagRepository - workspace tags
type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	// Create returns domain.ErrTagExists when the name is already taken.
	Create(ctx context.Context, name string) (*domain.Tag, error)
}

// UserRepository - workspace users
type UserRepository interface {
	ListPage(ctx context.Context, page, per int) ([]domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	UpdateTags(ctx context.Context, userID int64, tags []string) error
}
