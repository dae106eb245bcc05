// Package scheduler runs periodic full rescans on a cron schedule.
//
// It wraps robfig/cron with standard 5-field expressions, validates the
// expression before scheduling, and stops cleanly on context cancellation.
package scheduler
