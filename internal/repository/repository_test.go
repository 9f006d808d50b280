package repository

import (
	"net/http"
	"testing"
	"time"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca/pachcatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, srv *pachcatest.Server) *pachca.Client {
	t.Helper()
	c, err := pachca.New(logger.Nop(), &pachca.Config{
		BaseURL: srv.BaseURL(),
		Token:   pachcatest.Token,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestTagRepo_ListAndCreate(t *testing.T) {
	srv := pachcatest.New(t)
	srv.AddTag("qa")
	repo := NewTagRepo(newAPI(t, srv), logger.Nop())

	tags, err := repo.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.Tag{{ID: 1, Name: "qa"}}, tags)

	srv.SetNextTagID(42)
	tag, err := repo.Create(t.Context(), "lead")
	require.NoError(t, err)
	assert.Equal(t, &domain.Tag{ID: 42, Name: "lead"}, tag)
}

func TestTagRepo_CreateTaken(t *testing.T) {
	srv := pachcatest.New(t)
	srv.AddTag("qa")
	repo := NewTagRepo(newAPI(t, srv), logger.Nop())

	_, err := repo.Create(t.Context(), "qa")
	require.ErrorIs(t, err, domain.ErrTagExists)
}

func TestTagRepo_CreateOtherFailure(t *testing.T) {
	srv := pachcatest.New(t)
	srv.CreateStatus["bad"] = http.StatusUnprocessableEntity
	repo := NewTagRepo(newAPI(t, srv), logger.Nop())

	_, err := repo.Create(t.Context(), "bad")
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	require.NotErrorIs(t, err, domain.ErrTagExists)

	var se *pachca.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
}

func TestTagRepo_ListFailure(t *testing.T) {
	srv := pachcatest.New(t)
	srv.TagsStatus = http.StatusInternalServerError
	repo := NewTagRepo(newAPI(t, srv), logger.Nop())

	_, err := repo.List(t.Context())
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
}

func TestUserRepo_PageGetUpdate(t *testing.T) {
	srv := pachcatest.New(t)
	srv.AddUser(domain.User{ID: 7, Email: "a@x.com", ListTags: domain.TagList{"qa"}})
	repo := NewUserRepo(newAPI(t, srv), logger.Nop())

	users, err := repo.ListPage(t.Context(), 1, 100)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.com", users[0].Email)

	require.NoError(t, repo.UpdateTags(t.Context(), 7, []string{"qa", "backend"}))

	user, err := repo.GetByID(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.TagList{"qa", "backend"}, user.ListTags)
}

func TestUserRepo_Failures(t *testing.T) {
	srv := pachcatest.New(t)
	srv.AddUser(domain.User{ID: 7, Email: "a@x.com"})
	srv.UpdateStatus[7] = http.StatusForbidden
	srv.PageStatus[1] = http.StatusBadGateway
	repo := NewUserRepo(newAPI(t, srv), logger.Nop())

	_, err := repo.ListPage(t.Context(), 1, 100)
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)

	_, err = repo.GetByID(t.Context(), 99)
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)

	err = repo.UpdateTags(t.Context(), 7, []string{"qa"})
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
}
