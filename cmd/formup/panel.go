package main

import (
	"net/http"

	"formup/internal/application/port/output"
	"formup/internal/infrastructure/transport/httpapi"
	"formup/internal/infrastructure/transport/local"
	"formup/internal/infrastructure/userinteraction"
	"formup/internal/usecase/panel"

	"github.com/spf13/cobra"
)

func newPanelCmd() *cobra.Command {
	var pageURL string

	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Interactive panel that triggers fills on demand",
		Long: `Interactive panel that triggers fills on demand.

By default requests go to a running "formup serve" at --addr. With --url the
panel opens the page in its own browser and fills it in-process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := setup(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			var (
				transport output.TransportPort
				target    string
			)
			if pageURL != "" {
				browser, err := c.Browser(ctx)
				if err != nil {
					return err
				}
				if err := browser.Navigate(ctx, pageURL); err != nil {
					return err
				}
				transport = local.New(c.Dispatcher(browser))
				target = browser.CurrentURL()
			} else {
				transport = httpapi.NewClient(c.Config.Addr, &http.Client{})
				target = c.Config.Addr
			}

			ui := userinteraction.NewConsoleUserInteraction(cmd.InOrStdin(), cmd.OutOrStdout(), target)
			return panel.New(transport, ui, c.Logger).Run(ctx)
		},
	}

	cmd.Flags().String("addr", "127.0.0.1:8787", "Address of a running formup serve")
	cmd.Flags().StringVar(&pageURL, "url", "", "Open this page locally instead of using --addr")
	return cmd
}
