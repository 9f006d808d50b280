package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca/pachcatest"
	"github.com/ZertGraf/pachca-tags/internal/repository"
	"github.com/ZertGraf/pachca-tags/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuFixture struct {
	srv   *pachcatest.Server
	paths Paths
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	dir := t.TempDir()
	return &menuFixture{
		srv: pachcatest.New(t),
		paths: Paths{
			TagsExport:  filepath.Join(dir, "tags_export.csv"),
			UsersExport: filepath.Join(dir, "users_export.csv"),
			UsersTags:   filepath.Join(dir, "users_tags.csv"),
		},
	}
}

func (f *menuFixture) newMenu(t *testing.T, in io.Reader, out io.Writer) *Menu {
	t.Helper()

	api, err := pachca.New(logger.Nop(), &pachca.Config{
		BaseURL: f.srv.BaseURL(),
		Token:   pachcatest.Token,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	log := logger.Nop()
	userRepo := repository.NewUserRepo(api, log)
	tags := service.NewTagService(repository.NewTagRepo(api, log), log)
	users := service.NewUserService(userRepo, log)

	return NewMenu(
		in,
		out,
		service.NewExportService(tags, users, log),
		service.NewAssignService(tags, users, userRepo, log),
		f.paths,
		log,
	)
}

func (f *menuFixture) run(t *testing.T, input string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := f.newMenu(t, strings.NewReader(input), &out).Run(t.Context())
	return out.String(), err
}

func TestMenu_InvalidChoiceThenExit(t *testing.T) {
	f := newMenuFixture(t)

	out, err := f.run(t, "9\n\n5\n1\n")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Enter 1, 2, 3, 4 or 5."))
	assert.Contains(t, out, "Exit.")
	assert.Equal(t, 3, strings.Count(out, "What would you like to do?"))
	assert.Empty(t, f.srv.Calls())
}

func TestMenu_EOFExits(t *testing.T) {
	f := newMenuFixture(t)

	out, err := f.run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Exit.")
}

func TestMenu_CancelledContext(t *testing.T) {
	f := newMenuFixture(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	// stdin that never yields a line
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	var out bytes.Buffer
	err := f.newMenu(t, pr, &out).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMenu_ExportsAndTemplate(t *testing.T) {
	f := newMenuFixture(t)
	f.srv.AddTag("qa")
	f.srv.AddTag("lead")
	f.srv.AddUser(domain.User{ID: 1, Email: "a@x.com", ListTags: domain.TagList{"qa"}})

	out, err := f.run(t, "2\n3\n4\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Tag list (2) saved to "+f.paths.TagsExport)
	assert.Contains(t, out, "User list (1) saved to "+f.paths.UsersExport)
	assert.Contains(t, out, "Template "+f.paths.UsersTags+" created for 1 users.")
	assert.Contains(t, out, "qa, lead")

	for _, p := range []string{f.paths.TagsExport, f.paths.UsersExport, f.paths.UsersTags} {
		assert.FileExists(t, p)
	}
}

func TestMenu_ExportFailuresKeepLooping(t *testing.T) {
	f := newMenuFixture(t)
	f.srv.TagsStatus = http.StatusInternalServerError
	f.srv.PageStatus[1] = http.StatusUnauthorized

	out, err := f.run(t, "2\n3\n4\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Error while fetching the tag list: API responded with status 500")
	assert.Contains(t, out, "Could not export users: could not fetch the user list")
	assert.Contains(t, out, "Could not create the template: could not fetch the user list")
	assert.Contains(t, out, "Exit.")
	assert.NoFileExists(t, f.paths.TagsExport)
	assert.NoFileExists(t, f.paths.UsersExport)
	assert.NoFileExists(t, f.paths.UsersTags)
}

func TestMenu_AssignFromFile(t *testing.T) {
	f := newMenuFixture(t)
	f.srv.AddTag("qa")
	f.srv.SetNextTagID(42)
	f.srv.AddUser(domain.User{ID: 1, Email: "a@x.com", ListTags: domain.TagList{"qa"}})

	content := "email,first_name,last_name,tags,comment\n" +
		"tags_from_workspace,,,qa,\n" +
		"a@x.com,,,backend;qa,\n" +
		"ghost@x.com,,,qa,\n"
	require.NoError(t, os.WriteFile(f.paths.UsersTags, []byte(content), 0o644))

	out, err := f.run(t, "1\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Tag 'backend' created.")
	assert.Contains(t, out, "[OK] a@x.com: tags assigned: qa, backend")
	assert.Contains(t, out, "[FAIL] User with email ghost@x.com not found.")
	assert.Contains(t, out, "Bulk tag assignment finished: 1 applied, 1 failed, 1 skipped, 1 tags created.")
}

func TestMenu_AssignMissingFile(t *testing.T) {
	f := newMenuFixture(t)

	out, err := f.run(t, "1\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Error: could not read "+f.paths.UsersTags)
	assert.Contains(t, out, "Exit.")
	assert.Empty(t, f.srv.Calls())
}
