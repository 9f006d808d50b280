package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/repository"
)

type TagService struct {
	repo   repository.TagRepository
	logger *logger.Logger
}

func NewTagService(repo repository.TagRepository, logger *logger.Logger) *TagService {
	return &TagService{
		repo:   repo,
		logger: logger.Component("service/tags"),
	}
}

// List returns every workspace tag in api order.
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("tags retrieved", "count", len(tags))
	return tags, nil
}

// FetchExisting builds the name→id index. On failure the index is empty
// (never nil) and the error is returned alongside it.
func (s *TagService) FetchExisting(ctx context.Context) (domain.TagIndex, error) {
	tags, err := s.List(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch existing tags, treating all as new", "error", err)
		return domain.TagIndex{}, err
	}
	return domain.NewTagIndex(tags), nil
}

type TagOutcome int

const (
	TagCreated TagOutcome = iota
	TagAlreadyExists
	TagCreateFailed
)

type TagCreation struct {
	Name    string
	ID      int64
	Outcome TagOutcome
	Err     error
}

// Create creates a tag by name. A "name taken" conflict is not a failure:
// the id is then looked up by name, and left as domain.UnknownTagID when the
// lookup cannot find it.
func (s *TagService) Create(ctx context.Context, name string) TagCreation {
	tag, err := s.repo.Create(ctx, name)
	switch {
	case err == nil:
		return TagCreation{Name: name, ID: tag.ID, Outcome: TagCreated}

	case errors.Is(err, domain.ErrTagExists):
		id := s.lookupID(ctx, name)
		s.logger.Info("tag already exists", "name", name, "id", id)
		return TagCreation{Name: name, ID: id, Outcome: TagAlreadyExists}

	default:
		s.logger.Warn("tag creation failed", "name", name, "error", err)
		return TagCreation{Name: name, Outcome: TagCreateFailed, Err: fmt.Errorf("create tag %q: %w", name, err)}
	}
}

func (s *TagService) lookupID(ctx context.Context, name string) int64 {
	tags, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("tag id lookup failed", "name", name, "error", err)
		return domain.UnknownTagID
	}
	for _, t := range tags {
		if t.Name == name {
			return t.ID
		}
	}
	return domain.UnknownTagID
}
