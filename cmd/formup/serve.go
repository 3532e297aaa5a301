package main

import (
	"formup/internal/infrastructure/transport/httpapi"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [url]",
		Short: "Open a page in the browser and accept fill requests over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			browser, err := c.Browser(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := browser.Navigate(cmd.Context(), args[0]); err != nil {
					return err
				}
				c.Logger.Info("Page loaded", "url", browser.CurrentURL())
			}

			serverCfg := httpapi.DefaultServerConfig()
			serverCfg.Addr = c.Config.Addr
			serverCfg.AccessLog = c.Config.AccessLog
			serverCfg.AccessLogJSON = c.Config.LogJSON
			server := httpapi.NewServer(c.Dispatcher(browser), c.Logger, serverCfg)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return server.ListenAndServe(ctx)
			})
			g.Go(func() error {
				<-ctx.Done()
				c.Logger.Info("Shutting down")
				c.Scheduler.Stop()
				return nil
			})
			return g.Wait()
		},
	}

	cmd.Flags().String("addr", "127.0.0.1:8787", "Listen address")
	cmd.Flags().Bool("access-log", true, "Log every HTTP request")
	return cmd
}
