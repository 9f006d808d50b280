package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
)

// takenMarker is what the api puts in a 422 body when a tag name is not unique.
const takenMarker = "taken"

type TagRepo struct {
	api    API
	logger *logger.Logger
}

func NewTagRepo(api API, logger *logger.Logger) *TagRepo {
	return &TagRepo{
		api:    api,
		logger: logger.Component("repository/tags"),
	}
}

func (r *TagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	resp, err := r.api.Get(ctx, "/group_tags", nil)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("list tags: %w", resp.Err())
	}

	var tags []domain.Tag
	if err := resp.Decode(&tags); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

func (r *TagRepo) Create(ctx context.Context, name string) (*domain.Tag, error) {
	body := map[string]any{
		"group_tag": map[string]string{"name": name},
	}

	resp, err := r.api.Post(ctx, "/group_tags", body)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	switch {
	case resp.Status == http.StatusOK || resp.Status == http.StatusCreated:
		var tag domain.Tag
		if err := resp.Decode(&tag); err != nil {
			return nil, fmt.Errorf("create tag: %w", err)
		}
		if tag.Name == "" {
			tag.Name = name
		}
		r.logger.Info("tag created", "name", name, "id", tag.ID)
		return &tag, nil

	case resp.Status == http.StatusUnprocessableEntity && strings.Contains(string(resp.Body), takenMarker):
		return nil, domain.ErrTagExists

	default:
		return nil, fmt.Errorf("create tag: %w", resp.Err())
	}
}
