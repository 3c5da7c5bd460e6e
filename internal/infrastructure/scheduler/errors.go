package scheduler

import "errors"

var (
	// ErrSchedulerNotRunning is returned when a manual run is requested while stopped
	ErrSchedulerNotRunning = errors.New("scheduler is not running")

	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid scheduler configuration")
)
