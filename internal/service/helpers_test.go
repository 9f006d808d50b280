package service

import (
	"testing"
	"time"

	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca/pachcatest"
	"github.com/ZertGraf/pachca-tags/internal/repository"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	srv    *pachcatest.Server
	tags   *TagService
	users  *UserService
	export *ExportService
	assign *AssignService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	srv := pachcatest.New(t)
	api, err := pachca.New(logger.Nop(), &pachca.Config{
		BaseURL: srv.BaseURL(),
		Token:   pachcatest.Token,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	log := logger.Nop()
	tagRepo := repository.NewTagRepo(api, log)
	userRepo := repository.NewUserRepo(api, log)
	tags := NewTagService(tagRepo, log)
	users := NewUserService(userRepo, log)

	return &fixture{
		srv:    srv,
		tags:   tags,
		users:  users,
		export: NewExportService(tags, users, log),
		assign: NewAssignService(tags, users, userRepo, log),
	}
}

type recordingReporter struct {
	tagsErr error
	tags    []TagCreation
	rows    []RowResult
}

func (r *recordingReporter) TagsUnavailable(err error) { r.tagsErr = err }
func (r *recordingReporter) TagProcessed(c TagCreation) { r.tags = append(r.tags, c) }
func (r *recordingReporter) RowProcessed(res RowResult) { r.rows = append(r.rows, res) }
