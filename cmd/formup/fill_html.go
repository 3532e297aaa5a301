package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"formup/internal/infrastructure/browser/static"

	"github.com/spf13/cobra"
)

func newFillHTMLCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fill-html <file|url>",
		Short: "Fill the form of a static HTML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := setup(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			doc, err := static.Open(ctx, &http.Client{Timeout: c.Config.Timeout}, args[0])
			if err != nil {
				return err
			}

			summary, err := c.FormFiller(doc).Fill(ctx)
			if err != nil {
				return fmt.Errorf("fill form: %w", err)
			}
			c.Scheduler.Wait()

			switch out {
			case "":
			case "-":
				if err := doc.Render(cmd.OutOrStdout()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), summary.Message())
				return nil
			default:
				if err := writeDocument(out, doc.Render); err != nil {
					return err
				}
				c.Logger.Info("Filled document written", "path", out)
			}

			if c.Config.Verbose {
				printReport(cmd, summary)
			}
			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the filled HTML to a file, - for stdout")
	return cmd
}

func writeDocument(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
