package service

import (
	"context"
	"errors"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/repository"
)

// UsersPageSize is the per-page size used for every user listing.
const UsersPageSize = 100

type UserService struct {
	repo   repository.UserRepository
	logger *logger.Logger
}

func NewUserService(repo repository.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger.Component("service/users"),
	}
}

// ListAll pages through the directory from page 1. It stops at the first
// failing or empty page; users fetched before a failure are returned
// together with the error.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	var all []domain.User
	err := s.walk(ctx, func(page []domain.User) bool {
		all = append(all, page...)
		return true
	})
	if err != nil {
		s.logger.Warn("user listing stopped early", "fetched", len(all), "error", err)
		return all, err
	}

	s.logger.Info("users retrieved", "count", len(all))
	return all, nil
}

// FindByEmail returns the id of the first user whose email matches,
// ignoring case and surrounding whitespace. A listing failure is reported
// as domain.ErrUserNotFound joined with the cause.
func (s *UserService) FindByEmail(ctx context.Context, email string) (int64, error) {
	var (
		id    int64
		found bool
	)
	err := s.walk(ctx, func(page []domain.User) bool {
		for i := range page {
			if page[i].HasEmail(email) {
				id, found = page[i].ID, true
				return false
			}
		}
		return true
	})
	if found {
		return id, nil
	}
	if err != nil {
		return 0, errors.Join(domain.ErrUserNotFound, err)
	}
	return 0, domain.ErrUserNotFound
}

// walk calls fn for each non-empty page until fn returns false or paging ends.
func (s *UserService) walk(ctx context.Context, fn func([]domain.User) bool) error {
	for page := 1; ; page++ {
		users, err := s.repo.ListPage(ctx, page, UsersPageSize)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		if !fn(users) {
			return nil
		}
	}
}
