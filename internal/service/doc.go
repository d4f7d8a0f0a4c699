// Package service contains the application services that orchestrate the
// domain core (scheduler, answer validation) with persistence and background
// work. Services own transaction boundaries: multi-store writes run through
// store.RunInTransaction with tx-bound store copies.
package service
