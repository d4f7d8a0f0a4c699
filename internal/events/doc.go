// Package events decouples services from background task creation. A service
// emits a TaskRequestEvent describing work to be done; a handler in the task
// package turns it into a queued task. Delivery is in-process and
// synchronous.
package events
