package service

import (
	"context"
	"fmt"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/repository"
	"github.com/ZertGraf/pachca-tags/internal/sheet"
)

type RowStatus int

const (
	RowApplied RowStatus = iota
	RowFailed
	RowSkipped
)

type RowResult struct {
	Row    domain.AssignmentRow
	Status RowStatus
	// Tags is the full set written (or attempted) for the user.
	Tags []string
	Err  error
}

// Reporter receives progress while an assignment file is processed.
type Reporter interface {
	TagsUnavailable(err error)
	TagProcessed(c TagCreation)
	RowProcessed(r RowResult)
}

type AssignSummary struct {
	Applied int
	Failed  int
	Skipped int
	Created int
}

type AssignService struct {
	tags     *TagService
	users    *UserService
	userRepo repository.UserRepository
	logger   *logger.Logger
}

func NewAssignService(
	tags *TagService,
	users *UserService,
	userRepo repository.UserRepository,
	logger *logger.Logger,
) *AssignService {
	return &AssignService{
		tags:     tags,
		users:    users,
		userRepo: userRepo,
		logger:   logger.Component("service/assign"),
	}
}

// AssignFromFile reads the assignment file and adds each row's tags to the
// matching user. Rows are processed in order and a failing row never stops
// the batch. An unreadable file aborts before any api call.
func (s *AssignService) AssignFromFile(ctx context.Context, path string, reporter Reporter) (*AssignSummary, error) {
	rows, err := sheet.ReadAssignments(path)
	if err != nil {
		return nil, err
	}
	return s.Assign(ctx, rows, reporter)
}

// Assign applies already parsed rows.
func (s *AssignService) Assign(ctx context.Context, rows []domain.AssignmentRow, reporter Reporter) (*AssignSummary, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}

	existing, err := s.tags.FetchExisting(ctx)
	if err != nil {
		reporter.TagsUnavailable(err)
	}

	summary := &AssignSummary{}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if err := row.Validate(); err != nil {
			summary.Skipped++
			s.logger.Debug("row skipped", "line", row.Line, "email", row.Email, "reason", err)
			continue
		}

		for _, name := range row.Tags {
			if existing.Has(name) {
				continue
			}
			c := s.tags.Create(ctx, name)
			// recorded whatever the outcome so each name is tried once per run
			existing[name] = c.ID
			if c.Outcome == TagCreated {
				summary.Created++
			}
			reporter.TagProcessed(c)
		}

		res := s.applyRow(ctx, row)
		switch res.Status {
		case RowApplied:
			summary.Applied++
		case RowFailed:
			summary.Failed++
		}
		reporter.RowProcessed(res)
	}

	s.logger.Info("bulk assignment finished",
		"applied", summary.Applied,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"tags_created", summary.Created,
	)
	return summary, nil
}

func (s *AssignService) applyRow(ctx context.Context, row domain.AssignmentRow) RowResult {
	res := RowResult{Row: row, Status: RowFailed}

	userID, err := s.users.FindByEmail(ctx, row.Email)
	if err != nil {
		res.Err = err
		return res
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		res.Err = fmt.Errorf("read current tags: %w", err)
		return res
	}

	res.Tags = domain.MergeTags(user.ListTags, row.Tags)
	if err := s.userRepo.UpdateTags(ctx, userID, res.Tags); err != nil {
		res.Err = err
		return res
	}

	s.logger.Info("tags assigned", "email", row.Email, "user_id", userID, "tags", res.Tags)
	res.Status = RowApplied
	return res
}

type nopReporter struct{}

func (nopReporter) TagsUnavailable(error) {}
func (nopReporter) TagProcessed(TagCreation) {}
func (nopReporter) RowProcessed(RowResult) {}
