package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/sheet"
)

type ExportService struct {
	tags   *TagService
	users  *UserService
	logger *logger.Logger
}

func NewExportService(tags *TagService, users *UserService, logger *logger.Logger) *ExportService {
	return &ExportService{
		tags:   tags,
		users:  users,
		logger: logger.Component("service/export"),
	}
}

// ExportTags writes every workspace tag to path and returns how many were written.
func (s *ExportService) ExportTags(ctx context.Context, path string) (int, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch tags: %w", err)
	}

	if err := sheet.WriteTags(path, tags); err != nil {
		return 0, err
	}

	s.logger.Info("tags exported", "path", path, "count", len(tags))
	return len(tags), nil
}

// ExportUsers writes every reachable user to path. Nothing is written when no
// user could be fetched; a listing that failed midway is still written.
func (s *ExportService) ExportUsers(ctx context.Context, path string) (int, error) {
	users, err := s.users.ListAll(ctx)
	if len(users) == 0 {
		return 0, errors.Join(domain.ErrNoUsers, err)
	}

	if err := sheet.WriteUsers(path, users); err != nil {
		return 0, err
	}

	s.logger.Info("users exported", "path", path, "count", len(users), "partial", err != nil)
	return len(users), nil
}

type TemplateResult struct {
	Users    int
	TagNames []string
}

// GenerateTemplate writes the assignment template prefilled with current
// users and their tags. A failed tag listing only drops the workspace tags
// row; a user listing that failed midway keeps the users fetched so far.
// When no user could be fetched the existing file is left untouched.
func (s *ExportService) GenerateTemplate(ctx context.Context, path string) (*TemplateResult, error) {
	users, err := s.users.ListAll(ctx)
	if len(users) == 0 && err != nil {
		return nil, errors.Join(domain.ErrNoUsers, err)
	}

	tags, err := s.tags.List(ctx)
	if err != nil {
		s.logger.Warn("template written without workspace tags", "error", err)
		tags = nil
	}

	if err := sheet.WriteTemplate(path, tags, users); err != nil {
		return nil, err
	}

	s.logger.Info("template generated", "path", path, "users", len(users), "tags", len(tags))
	return &TemplateResult{
		Users:    len(users),
		TagNames: domain.TagNames(tags),
	}, nil
}
