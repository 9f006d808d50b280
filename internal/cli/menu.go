package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/service"
)

type Paths struct {
	TagsExport  string
	UsersExport string
	UsersTags   string
}

// Menu is the interactive numbered prompt.
type Menu struct {
	in      io.Reader
	out     io.Writer
	exports *service.ExportService
	assign  *service.AssignService
	paths   Paths
	styles  styles
	logger  *logger.Logger
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	exports *service.ExportService,
	assign *service.AssignService,
	paths Paths,
	logger *logger.Logger,
) *Menu {
	return &Menu{
		in:      in,
		out:     out,
		exports: exports,
		assign:  assign,
		paths:   paths,
		styles:  newStyles(out),
		logger:  logger.Component("cli/menu"),
	}
}

// Run prompts until the operator picks exit, stdin ends or ctx is cancelled.
// Operation failures are printed and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	lines := m.readLines(ctx)

	for {
		m.printMenu()

		var choice string
		select {
		case <-ctx.Done():
			fmt.Fprintln(m.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(m.out, "\nExit.")
				return nil
			}
			choice = strings.TrimSpace(line)
		}

		m.logger.Debug("menu choice", "choice", choice)

		switch choice {
		case "1":
			m.assignTags(ctx)
		case "2":
			m.exportTags(ctx)
		case "3":
			m.exportUsers(ctx)
		case "4":
			m.generateTemplate(ctx)
		case "5":
			fmt.Fprintln(m.out, "Exit.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Enter 1, 2, 3, 4 or 5.")
		}
	}
}

// readLines feeds stdin lines to Run. Once Run returns the goroutine stays
// blocked in Scan until stdin closes or the process exits; it holds nothing
// but stdin.
func (m *Menu) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(m.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.title.Render("What would you like to do?"))
	fmt.Fprintf(m.out, "1. Bulk assign or update user tags from %s.\n", m.paths.UsersTags)
	fmt.Fprintf(m.out, "2. Export workspace tags to %s.\n", m.paths.TagsExport)
	fmt.Fprintf(m.out, "3. Export all workspace users to %s.\n", m.paths.UsersExport)
	fmt.Fprintf(m.out, "4. Generate %s from current workspace users.\n", m.paths.UsersTags)
	fmt.Fprintln(m.out, "5. Exit")
	fmt.Fprint(m.out, "> ")
}

func (m *Menu) assignTags(ctx context.Context) {
	reporter := &consoleReporter{out: m.out, styles: m.styles}

	summary, err := m.assign.AssignFromFile(ctx, m.paths.UsersTags, reporter)
	if err != nil && summary == nil {
		m.logger.Warn("assignment file unreadable", "path", m.paths.UsersTags, "error", err)
		fmt.Fprintln(m.out, m.styles.fail.Render(fmt.Sprintf(
			"Error: could not read %s. Check that the file exists and is valid. (%s)",
			m.paths.UsersTags, describeError(err))))
		return
	}
	if err != nil {
		fmt.Fprintln(m.out, m.styles.fail.Render("Bulk tag assignment interrupted: "+describeError(err)))
	}

	fmt.Fprintf(m.out, "Bulk tag assignment finished: %d applied, %d failed, %d skipped, %d tags created.\n",
		summary.Applied, summary.Failed, summary.Skipped, summary.Created)
}

func (m *Menu) exportTags(ctx context.Context) {
	n, err := m.exports.ExportTags(ctx, m.paths.TagsExport)
	if err != nil {
		fmt.Fprintln(m.out, m.styles.fail.Render("Error while fetching the tag list: "+describeError(err)))
		return
	}
	fmt.Fprintf(m.out, "Tag list (%d) saved to %s.\n", n, m.paths.TagsExport)
}

func (m *Menu) exportUsers(ctx context.Context) {
	n, err := m.exports.ExportUsers(ctx, m.paths.UsersExport)
	if err != nil {
		fmt.Fprintln(m.out, m.styles.fail.Render("Could not export users: "+describeError(err)))
		return
	}
	fmt.Fprintf(m.out, "User list (%d) saved to %s.\n", n, m.paths.UsersExport)
}

func (m *Menu) generateTemplate(ctx context.Context) {
	res, err := m.exports.GenerateTemplate(ctx, m.paths.UsersTags)
	if err != nil {
		fmt.Fprintln(m.out, m.styles.fail.Render("Could not create the template: "+describeError(err)))
		return
	}

	rule := m.styles.muted.Render("==============================")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, rule)
	fmt.Fprintf(m.out, "Template %s created for %d users. Fill in the tags column for each employee.\n",
		m.paths.UsersTags, res.Users)
	fmt.Fprintln(m.out, "Existing tags:")
	fmt.Fprintln(m.out, strings.Join(res.TagNames, ", "))
	fmt.Fprintln(m.out, rule)
}
