package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZertGraf/pachca-tags/internal/service"
)

// consoleReporter prints bulk assignment progress line by line.
type consoleReporter struct {
	out    io.Writer
	styles styles
}

func (r *consoleReporter) TagsUnavailable(err error) {
	fmt.Fprintln(r.out, r.styles.fail.Render("Failed to fetch the tag list: "+describeError(err)))
}

func (r *consoleReporter) TagProcessed(c service.TagCreation) {
	switch c.Outcome {
	case service.TagCreated:
		fmt.Fprintf(r.out, "Tag '%s' created.\n", c.Name)
	case service.TagAlreadyExists:
		fmt.Fprintf(r.out, "Tag '%s' already exists.\n", c.Name)
	default:
		fmt.Fprintln(r.out, r.styles.fail.Render(fmt.Sprintf("Failed to create tag '%s': %s", c.Name, describeError(c.Err))))
	}
}

func (r *consoleReporter) RowProcessed(res service.RowResult) {
	email := res.Row.Email
	tags := res.Tags
	if len(tags) == 0 {
		tags = res.Row.Tags
	}

	switch {
	case res.Status == service.RowApplied:
		fmt.Fprintf(r.out, "%s %s: tags assigned: %s\n",
			r.styles.ok.Render("[OK]"), email, strings.Join(tags, ", "))

	case isNotFound(res.Err):
		fmt.Fprintf(r.out, "%s User with email %s not found.\n", r.styles.fail.Render("[FAIL]"), email)

	default:
		fmt.Fprintf(r.out, "%s %s: could not assign tags (%s). %s\n",
			r.styles.fail.Render("[FAIL]"), email, strings.Join(tags, ", "), describeError(res.Err))
	}
}
