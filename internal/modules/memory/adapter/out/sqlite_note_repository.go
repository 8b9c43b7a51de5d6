package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"missionctl/internal/modules/memory/domain"
	memoryout "missionctl/internal/modules/memory/port/out"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
)

type SQLiteNoteRepository struct {
	db  *sqlitedb.DB
	log *logger.Logger
}

func NewSQLiteNoteRepository(db *sqlitedb.DB, log *logger.Logger) memoryout.NoteRepository {
	return &SQLiteNoteRepository{db: db, log: log}
}

func (r *SQLiteNoteRepository) Recent(ctx context.Context, limit int) ([]domain.Note, error) {
	q := sqlitedb.Builder().
		Select("date", "content").
		From("daily_notes").
		OrderBy("date DESC").
		Limit(uint64(limit))
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list daily notes: %w", err)
	}
	out := make([]domain.Note, 0)
	err = sqlitedb.EachRow(rows, r.log, "daily_notes", func(rows *sql.Rows) error {
		var date, content sql.NullString
		if err := rows.Scan(&date, &content); err != nil {
			return err
		}
		if strings.TrimSpace(date.String) == "" {
			return fmt.Errorf("daily note has no date: %w", sqlitedb.ErrSkipRow)
		}
		out = append(out, domain.BuildNote(date.String, content.String))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
