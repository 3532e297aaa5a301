package output

import "time"

type SchedulerPort interface {
	AfterFunc(delay time.Duration, task func())
}
