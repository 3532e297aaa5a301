package output

import "context"

type UserInteractionPort interface {
	WaitForTrigger(ctx context.Context) (bool, error)

	ShowReady(ctx context.Context)
	ShowBusy(ctx context.Context, message string) (stop func())
	ShowResult(ctx context.Context, text string, isError bool)
}
