// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
	"github.com/avast/retry-go/v4"
)

// retryDelays are the pauses between attempts of an operation whose error is
// classified as [Retryable].
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 900 * time.Millisecond}

// formRepository is the SQL implementation of [FormRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type formRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewFormRepository constructs a [FormRepository] backed by db.
func NewFormRepository(db *DB, logger *logger.Logger) FormRepository {
	logger.Debug().Msg("creating form repository")
	return &formRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

// SaveFields upserts fields in a single statement. Values are last writer
// wins per (form_id, name).
//
// Error handling:
//   - query build failure → [ErrBuildingSQLQuery].
//   - driver error → [ErrExecutingQuery], after retries for retryable errors.
//   - no rows returned → [ErrFieldsNotSaved].
func (r *formRepository) SaveFields(ctx context.Context, formID string, fields models.Fields) ([]models.StoredField, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertFieldsQuery(r.db.dialect, formID, fields, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*formRepository.SaveFields").Msg("error building upsert query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored []models.StoredField
	err = r.withRetry(ctx, func() error {
		stored, err = r.queryFields(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*formRepository.SaveFields").Str("form_id", formID).Msg("error saving fields")
		return nil, err
	}

	if len(stored) == 0 {
		return nil, ErrFieldsNotSaved
	}

	return stored, nil
}

// GetFields returns the stored fields of formID ordered by name.
func (r *formRepository) GetFields(ctx context.Context, formID string) ([]models.StoredField, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFieldsQuery(r.db.dialect, formID)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.GetFields").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored []models.StoredField
	err = r.withRetry(ctx, func() error {
		stored, err = r.queryFields(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*formRepository.GetFields").Str("form_id", formID).Msg("error loading fields")
		return nil, err
	}

	return stored, nil
}

func (r *formRepository) queryFields(ctx context.Context, query string, args ...any) ([]models.StoredField, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stored := make([]models.StoredField, 0)
	for rows.Next() {
		var (
			f         models.StoredField
			updatedAt any
		)
		if err = rows.Scan(&f.FormID, &f.Name, &f.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if f.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stored = append(stored, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stored, nil
}

// withRetry runs op and repeats it while the classifier reports a retryable
// error, up to len(retryDelays) extra attempts. A cancelled ctx stops the
// loop and is joined with the last driver error.
func (r *formRepository) withRetry(ctx context.Context, op func() error) error {
	var lastErr error
	err := retry.Do(
		func() error {
			lastErr = op()
			return lastErr
		},
		retry.Context(ctx),
		retry.RetryIf(r.retryable),
		retry.Attempts(uint(len(retryDelays)+1)),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return retryDelays[min(int(n), len(retryDelays)-1)]
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.FromContext(ctx).Warn().Err(err).Uint("attempt", n+1).Msg("retrying database operation")
		}),
		retry.LastErrorOnly(true),
	)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && lastErr != nil {
		return errors.Join(lastErr, ctxErr)
	}
	return err
}

func (r *formRepository) retryable(err error) bool {
	if r.db.errorClassificator == nil || errors.Is(err, sql.ErrConnDone) {
		return false
	}
	return r.db.errorClassificator.Classify(err) == Retryable
}

// sqliteTimeLayouts are the layouts go-sqlite3 writes time.Time values in.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// parseTimestamp converts a scanned updated_at value into time.Time. SQLite
// hands the column back as text when the declared type is lost (e.g. in a
// RETURNING clause).
func parseTimestamp(v any) (time.Time, error) {
	switch value := v.(type) {
	case time.Time:
		return value, nil
	case []byte:
		return parseTimestamp(string(value))
	case string:
		for _, layout := range sqliteTimeLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}
