package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca"
	"github.com/stretchr/testify/assert"
)

func TestDescribeError(t *testing.T) {
	statusErr := &pachca.StatusError{Status: 422, Body: `{"errors":["bad"]}`}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api status",
			err:  fmt.Errorf("update user 7 tags: %w", statusErr),
			want: `API responded with status 422: {"errors":["bad"]}`,
		},
		{
			name: "empty body",
			err:  &pachca.StatusError{Status: 500},
			want: "API responded with status 500: <empty body>",
		},
		{
			name: "no users with cause",
			err:  errors.Join(domain.ErrNoUsers, statusErr),
			want: `could not fetch the user list (API responded with status 422: {"errors":["bad"]})`,
		},
		{
			name: "no users",
			err:  errors.Join(domain.ErrNoUsers, nil),
			want: "could not fetch the user list",
		},
		{
			name: "not found",
			err:  domain.ErrUserNotFound,
			want: "user not found",
		},
		{
			name: "other",
			err:  errors.New("open users_tags.csv: no such file or directory"),
			want: "open users_tags.csv: no such file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(domain.ErrUserNotFound))
	assert.False(t, isNotFound(errors.Join(domain.ErrUserNotFound, &pachca.StatusError{Status: 502})))
	assert.False(t, isNotFound(errors.New("boom")))
}
