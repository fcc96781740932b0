// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify looks at the SQLSTATE of a server error. Errors raised by the
// driver before anything reached the server are retryable too, since the
// upsert was never applied.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return NonRetryable
	case errors.As(err, &pgErr):
		return classifySQLState(pgErr.Code)
	case pgconn.SafeToRetry(err):
		return Retryable
	}
	return NonRetryable
}

// classifySQLState treats whole classes 08 (connection exception) and 40
// (transaction rollback) as transient. Of class 57 only the server restart
// codes qualify: a cancelled query stays cancelled.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifySQLState(code string) ErrorClassification {
	if pgerrcode.IsConnectionException(code) || pgerrcode.IsTransactionRollback(code) {
		return Retryable
	}

	switch code {
	case pgerrcode.AdminShutdown, pgerrcode.CrashShutdown, pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}
