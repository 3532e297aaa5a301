// Package panel drives the invoking side: it sends fill requests through a
// transport and renders whatever comes back.
package panel

import (
	"context"
	"fmt"

	"formup/internal/application/port/output"
	"formup/internal/domain/entity"
)

const (
	BusyMessage    = "Filling form..."
	NoDataMessage  = "No data received"
	transportError = "Error: "
)

type UseCase struct {
	transport output.TransportPort
	ui        output.UserInteractionPort
	logger    output.LoggerPort
}

func New(transport output.TransportPort, ui output.UserInteractionPort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		transport: transport,
		ui:        ui,
		logger:    logger,
	}
}

// Run shows the panel until the user quits or ctx is done.
func (uc *UseCase) Run(ctx context.Context) error {
	for {
		uc.ui.ShowReady(ctx)

		triggered, err := uc.ui.WaitForTrigger(ctx)
		if err != nil {
			return fmt.Errorf("wait for trigger: %w", err)
		}
		if !triggered || ctx.Err() != nil {
			return nil
		}

		uc.Trigger(ctx)
	}
}

// Trigger sends one fill request and renders the outcome. The returned
// text is what was shown.
func (uc *UseCase) Trigger(ctx context.Context) (text string, isError bool) {
	stop := uc.ui.ShowBusy(ctx, BusyMessage)
	resp, err := uc.transport.Send(ctx, entity.Message{Type: entity.MessageFillForm})
	stop()

	switch {
	case err != nil:
		uc.logger.Warn("Fill request failed", "error", err)
		text, isError = transportError+err.Error(), true
	case resp == nil || resp.Data == "":
		text = NoDataMessage
	default:
		text = resp.Data
	}

	uc.ui.ShowResult(ctx, text, isError)
	return text, isError
}
