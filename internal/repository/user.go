package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
)

type UserRepo struct {
	api    API
	logger *logger.Logger
}

func NewUserRepo(api API, logger *logger.Logger) *UserRepo {
	return &UserRepo{
		api:    api,
		logger: logger.Component("repository/users"),
	}
}

func (r *UserRepo) ListPage(ctx context.Context, page, per int) ([]domain.User, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per", strconv.Itoa(per))

	resp, err := r.api.Get(ctx, "/users", query)
	if err != nil {
		return nil, fmt.Errorf("list users page %d: %w", page, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("list users page %d: %w", page, resp.Err())
	}

	var users []domain.User
	if err := resp.Decode(&users); err != nil {
		return nil, fmt.Errorf("list users page %d: %w", page, err)
	}

	return users, nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	resp, err := r.api.Get(ctx, userPath(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("get user %d: %w", userID, resp.Err())
	}

	var user domain.User
	if err := resp.Decode(&user); err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	return &user, nil
}

func (r *UserRepo) UpdateTags(ctx context.Context, userID int64, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	body := map[string]any{
		"user": map[string]any{"list_tags": tags},
	}

	resp, err := r.api.Put(ctx, userPath(userID), body)
	if err != nil {
		return fmt.Errorf("update user tags: %w", err)
	}

	r.logger.Debug("update user tags",
		"user_id", userID,
		"status", resp.Status,
		"body", string(resp.Body),
	)

	if !resp.OK() {
		return fmt.Errorf("update user %d tags: %w", userID, resp.Err())
	}

	return nil
}

func userPath(userID int64) string {
	return "/users/" + strconv.FormatInt(userID, 10)
}
