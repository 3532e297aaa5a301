package userinteraction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"formup/internal/application/port/output"

	"github.com/fatih/color"
)

var _ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)

type ConsoleUserInteraction struct {
	reader *bufio.Reader
	out    io.Writer
	target string
}

// NewConsoleUserInteraction reads triggers from in and renders to out.
// target names the page shown in the header.
func NewConsoleUserInteraction(in io.Reader, out io.Writer, target string) *ConsoleUserInteraction {
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(in),
		out:    out,
		target: target,
	}
}

// WaitForTrigger blocks until the user presses Enter. It returns false
// on q, quit or end of input.
func (u *ConsoleUserInteraction) WaitForTrigger(ctx context.Context) (bool, error) {
	fmt.Fprint(u.out, "Press Enter to fill the form, q to quit > ")

	line, err := u.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(u.out)
			return false, nil
		}
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return false, nil
	}
	return true, nil
}

func (u *ConsoleUserInteraction) ShowReady(ctx context.Context) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprint(u.out, "\n━━━ Form Filler ━━━\n")

	if u.target != "" {
		dim := color.New(color.Faint)
		dim.Fprintf(u.out, "   Page: %s\n", u.target)
	}
}

func (u *ConsoleUserInteraction) ShowBusy(ctx context.Context, message string) func() {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(u.out, "⏳ %s\n", message)

	return func() {}
}

// ShowResult renders text verbatim.
func (u *ConsoleUserInteraction) ShowResult(ctx context.Context, text string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Fprintf(u.out, "❌ %s\n", text)
		return
	}

	green := color.New(color.FgGreen)
	green.Fprintf(u.out, "✓ %s\n", text)
}
