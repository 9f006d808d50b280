package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca"
)

// describeError turns an operation error into a one-line console message.
func describeError(err error) string {
	apiDetail := ""
	var statusErr *pachca.StatusError
	if errors.As(err, &statusErr) {
		body := statusErr.Body
		if body == "" {
			body = "<empty body>"
		}
		apiDetail = fmt.Sprintf("API responded with status %d: %s", statusErr.Status, body)
	}

	switch {
	case errors.Is(err, domain.ErrNoUsers):
		if apiDetail != "" {
			return "could not fetch the user list (" + apiDetail + ")"
		}
		return "could not fetch the user list"

	case apiDetail != "":
		return apiDetail

	case errors.Is(err, domain.ErrUserNotFound):
		return "user not found"

	default:
		return strings.ReplaceAll(err.Error(), "\n", "; ")
	}
}

// isNotFound reports a plain miss, as opposed to a listing that failed.
func isNotFound(err error) bool {
	var statusErr *pachca.StatusError
	return errors.Is(err, domain.ErrUserNotFound) && !errors.As(err, &statusErr)
}
