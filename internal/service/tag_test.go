package service

import (
	"net/http"
	"testing"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_FetchExisting(t *testing.T) {
	f := newFixture(t)
	f.srv.AddTag("qa")
	f.srv.AddTag("backend")

	idx, err := f.tags.FetchExisting(t.Context())
	require.NoError(t, err)
	assert.Equal(t, domain.TagIndex{"qa": 1, "backend": 2}, idx)
}

func TestTagService_FetchExistingFailureGivesEmptyIndex(t *testing.T) {
	f := newFixture(t)
	f.srv.AddTag("qa")
	f.srv.TagsStatus = http.StatusInternalServerError

	idx, err := f.tags.FetchExisting(t.Context())
	require.Error(t, err)
	require.NotNil(t, idx)
	assert.Empty(t, idx)
}

func TestTagService_Create(t *testing.T) {
	f := newFixture(t)
	f.srv.SetNextTagID(42)

	c := f.tags.Create(t.Context(), "lead")
	assert.Equal(t, TagCreation{Name: "lead", ID: 42, Outcome: TagCreated}, c)
}

func TestTagService_CreateConflictResolvesID(t *testing.T) {
	f := newFixture(t)
	existing := f.srv.AddTag("qa")

	c := f.tags.Create(t.Context(), "qa")
	assert.Equal(t, TagAlreadyExists, c.Outcome)
	assert.Equal(t, existing.ID, c.ID)
	require.NoError(t, c.Err)
}

func TestTagService_CreateConflictWithoutLookup(t *testing.T) {
	f := newFixture(t)
	f.srv.AddTag("qa")
	f.srv.TagsStatus = http.StatusBadGateway

	c := f.tags.Create(t.Context(), "qa")
	assert.Equal(t, TagAlreadyExists, c.Outcome)
	assert.Equal(t, domain.UnknownTagID, c.ID)
}

func TestTagService_CreateFailure(t *testing.T) {
	f := newFixture(t)
	f.srv.CreateStatus["bad"] = http.StatusInternalServerError

	c := f.tags.Create(t.Context(), "bad")
	assert.Equal(t, TagCreateFailed, c.Outcome)
	require.ErrorIs(t, c.Err, domain.ErrUnexpectedStatus)
}
