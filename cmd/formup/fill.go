package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFillCmd() *cobra.Command {
	var (
		screenshot string
		keepOpen   bool
	)

	cmd := &cobra.Command{
		Use:   "fill <url>",
		Short: "Open a page in the browser and fill its form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := setup(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			browser, err := c.Browser(ctx)
			if err != nil {
				return err
			}

			if err := browser.Navigate(ctx, args[0]); err != nil {
				return err
			}
			c.Logger.Info("Page loaded", "url", browser.CurrentURL())

			summary, err := c.FormFiller(browser).Fill(ctx)
			if err != nil {
				return fmt.Errorf("fill form: %w", err)
			}
			c.Scheduler.Wait()

			if c.Config.Verbose {
				printReport(cmd, summary)
			}
			printSummary(cmd, summary)

			if screenshot != "" {
				shot, err := browser.Screenshot(ctx)
				if err != nil {
					return err
				}
				if err := os.WriteFile(screenshot, shot.Data, 0o644); err != nil {
					return fmt.Errorf("write screenshot: %w", err)
				}
				c.Logger.Info("Screenshot saved", "path", screenshot, "width", shot.Width, "height", shot.Height)
			}

			if keepOpen {
				fmt.Fprint(cmd.OutOrStdout(), "Press Enter to close the browser...")
				_, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&screenshot, "screenshot", "", "Save a JPEG screenshot after filling")
	cmd.Flags().BoolVar(&keepOpen, "keep-open", false, "Wait for Enter before closing the browser")
	return cmd
}
