// Package postgres implements the store interfaces on PostgreSQL through
// database/sql with the pgx stdlib driver. All implementations map database
// errors to the store error taxonomy via MapError and honor the due-card
// ordering contract (next_review_at ascending) in SQL.
package postgres
