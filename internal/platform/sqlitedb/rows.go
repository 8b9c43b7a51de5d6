package sqlitedb

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/metrics"
)

// ErrSkipRow rejects a row that scanned but is not a usable record.
var ErrSkipRow = errors.New("row skipped")

// EachRow calls scan once per row. A row whose scan fails is logged, counted
// and skipped; the remaining rows are still read. Only a failed iteration is
// returned. rows is closed.
func EachRow(rows *sql.Rows, log *logger.Logger, table string, scan func(*sql.Rows) error) error {
	defer rows.Close()
	if log == nil {
		log = logger.Nop()
	}
	for rows.Next() {
		if err := scan(rows); err != nil {
			metrics.SoftReadFailures.WithLabelValues(table + ".row").Inc()
			log.Warn("skipping malformed row", "table", table, "error", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s: %w", table, err)
	}
	return nil
}

// Int reads an integer cell scanned as text. SQLite type affinity lets any
// column hold text, so "12" and "12.0" parse while "n/a" does not.
func Int(v sql.NullString) (int, bool) {
	s := strings.TrimSpace(v.String)
	if !v.Valid || s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}
