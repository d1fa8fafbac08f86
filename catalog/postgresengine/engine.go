package postgresengine

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/postgresengine/internal/adapters"
)

const (
	dialectPostgres = "postgres"

	entityAuthor = "author"
	entityBook   = "book"

	operationGetByID      = "get_by_id"
	operationGetAll       = "get_all"
	operationAdd          = "add"
	operationUpdate       = "update"
	operationDelete       = "delete"
	operationCreateSchema = "create_schema"

	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "postgres repository operation: "
	logMsgOperationFailed     = "postgres repository operation failed"
	logMsgEntityNotFound      = "postgres repository entity not found"
	logMsgRetrying            = "retrying postgres repository operation"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrEntity             = "entity"
	logAttrOperation          = "operation"
	logAttrRows               = "rows"
	logAttrAttempt            = "attempt"
	logAttrAttempts           = "attempts"
	logAttrDelayMS            = "delay_ms"
	logAttrDurationMS         = "duration_ms"
	logAttrErrorType          = "error_type"
	errMsgInsertReturnedNoRow = "insert returned no identifier"
)

var postgres = goqu.Dialect(dialectPostgres)

var errInsertReturnedNoRow = errors.New(errMsgInsertReturnedNoRow)

// attemptBody performs one try of an operation and reports the number of rows it read or wrote.
type attemptBody func(ctx context.Context) (int, error)

// engine holds the parts shared by the author and book repositories.
type engine struct {
	db               adapters.DBAdapter
	tableName        string
	entity           string
	logger           catalog.Logger
	contextualLogger catalog.ContextualLogger
	metricsCollector catalog.MetricsCollector
	tracingCollector catalog.TracingCollector
	retry            retryConfig
}

func newEngine(db adapters.DBAdapter, entity string, defaultTableName string, options []Option) (*engine, error) {
	e := &engine{
		db:        db,
		tableName: defaultTableName,
		entity:    entity,
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// run executes body with retries and reports the outcome to the configured observability backends.
// A canceled context fails the attempt before any statement is sent.
func (e *engine) run(ctx context.Context, operation string, idempotent bool, body attemptBody) error {
	ctx, span := e.startSpan(ctx, operation)
	start := time.Now()

	var rows int

	attempts, err := e.retry.do(
		ctx,
		idempotent,
		func(ctx context.Context) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			var bodyErr error
			rows, bodyErr = body(ctx)

			return bodyErr
		},
		func(ctx context.Context, attempt int, delay time.Duration, err error) {
			e.recordRetry(ctx, operation, errorTypeOf(err))
			e.logWarn(ctx, logMsgRetrying,
				logAttrEntity, e.entity,
				logAttrOperation, operation,
				logAttrAttempt, attempt,
				logAttrDelayMS, toMilliseconds(delay),
				logAttrError, err.Error(),
			)
		},
	)

	duration := time.Since(start)
	status := statusOf(err)
	e.recordDuration(ctx, operation, status, duration)

	if err != nil {
		errorType := errorTypeOf(err)
		e.finishSpan(span, status, errorType, attempts, rows, duration)

		if status == statusNotFound {
			e.logInfo(ctx, logMsgEntityNotFound,
				logAttrEntity, e.entity,
				logAttrOperation, operation,
				logAttrError, err.Error(),
			)

			return err
		}

		e.recordError(ctx, operation, errorType)
		e.logError(ctx, logMsgOperationFailed,
			logAttrEntity, e.entity,
			logAttrOperation, operation,
			logAttrErrorType, errorType,
			logAttrAttempts, attempts,
			logAttrError, err.Error(),
		)

		return err
	}

	e.recordRows(ctx, operation, rows)
	e.finishSpan(span, status, "", attempts, rows, duration)
	e.logInfo(ctx, logMsgOperation+operation,
		logAttrEntity, e.entity,
		logAttrRows, rows,
		logAttrAttempts, attempts,
		logAttrDurationMS, toMilliseconds(duration),
	)

	return nil
}

// exec runs a statement and returns the number of affected rows.
func (e *engine) exec(ctx context.Context, sqlQuery string) (int64, error) {
	start := time.Now()

	result, err := e.db.Exec(ctx, sqlQuery)
	e.logQueryWithDuration(ctx, sqlQuery, time.Since(start))

	if err != nil {
		return 0, errors.Join(catalog.ErrExecutingFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Join(catalog.ErrGettingRowsAffectedFailed, err)
	}

	return rowsAffected, nil
}

// queryRows runs a query and scans every row with scan, the result is never nil.
func queryRows[T any](ctx context.Context, e *engine, sqlQuery string, scan func(adapters.DBRows) (T, error)) ([]T, error) {
	start := time.Now()

	rows, err := e.db.Query(ctx, sqlQuery)
	e.logQueryWithDuration(ctx, sqlQuery, time.Since(start))

	if err != nil {
		return nil, errors.Join(catalog.ErrQueryingFailed, err)
	}

	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			e.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}()

	result := make([]T, 0)

	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, errors.Join(catalog.ErrScanningDBRowFailed, scanErr)
		}

		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(catalog.ErrQueryingFailed, err)
	}

	return result, nil
}

// insertReturningID runs an INSERT ... RETURNING statement and returns the generated identifier.
func (e *engine) insertReturningID(ctx context.Context, sqlQuery string) (int64, error) {
	ids, err := queryRows(ctx, e, sqlQuery, scanID)
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, errors.Join(catalog.ErrQueryingFailed, errInsertReturnedNoRow)
	}

	return ids[0], nil
}

func scanID(rows adapters.DBRows) (int64, error) {
	var id int64
	err := rows.Scan(&id)

	return id, err
}

// createTable runs a CREATE TABLE IF NOT EXISTS statement.
func (e *engine) createTable(ctx context.Context, ddl string) error {
	return e.run(ctx, operationCreateSchema, true, func(ctx context.Context) (int, error) {
		if _, err := e.exec(ctx, ddl); err != nil {
			return 0, errors.Join(catalog.ErrCreatingSchemaFailed, err)
		}

		return 0, nil
	})
}
