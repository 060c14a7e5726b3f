// Package lib groups helpers that do not belong to a single layer:
// background jobs and scheduling (asynq, cron), the Resend email client,
// token handling, the weather client, Prometheus metrics and date helpers.
package lib
