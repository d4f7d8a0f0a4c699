// Package store defines the persistence interfaces the core consumes and the
// error taxonomy every implementation maps to. Implementations live in
// internal/platform/postgres. The due-card contract lives here: a card is due
// when next_review_at <= now, and due listings are ordered by next_review_at
// ascending (earliest-overdue first).
package store
