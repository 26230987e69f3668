package usecase

import "time"

const (
	// DefaultTransferTimeout bounds a whole transfer, covering both lock
	// acquisitions and the commit. On expiry the unit of work aborts and the
	// failure surfaces as retryable.
	DefaultTransferTimeout = 1000 * time.Millisecond
)
