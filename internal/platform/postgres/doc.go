// Package postgres provides the PostgreSQL-backed implementation of the
// persistence collaborator (store.StateStore). It uses the pgx stdlib
// driver through database/sql and relies on goose-managed migrations for
// the schema.
package postgres
