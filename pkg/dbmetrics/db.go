package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-RoomOccupancy/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обертка над *sql.DB, измеряющая длительность запросов
type DB struct {
	*sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает соединение без сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{DB: db, metrics: m}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// Сбор останавливается при закрытии stop
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectStats(dbName, DefaultStatsInterval, stop)
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.DB.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.DB.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.DB.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(operation string, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (d *DB) collectStats(dbName string, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordStats(dbName)
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordStats(dbName string) {
	if d.metrics == nil {
		return
	}
	stats := d.DB.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(dbName).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(dbName).Set(float64(stats.Idle))
}
