package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"missionctl/internal/modules/lessons/domain"
	lessonsout "missionctl/internal/modules/lessons/port/out"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
)

const (
	kindLesson = "lesson"
	kindWin    = "win"
)

type SQLiteHighlightRepository struct {
	db  *sqlitedb.DB
	log *logger.Logger
}

func NewSQLiteHighlightRepository(db *sqlitedb.DB, log *logger.Logger) lessonsout.HighlightRepository {
	return &SQLiteHighlightRepository{db: db, log: log}
}

type highlight struct {
	text string
	date string
}

func (r *SQLiteHighlightRepository) list(ctx context.Context, kind string) ([]highlight, error) {
	q := sqlitedb.Builder().
		Select("text", "date").
		From("memory_highlights").
		Where(sq.Eq{"kind": kind}).
		OrderBy("COALESCE(date, '') DESC", "id DESC")
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list %s highlights: %w", kind, err)
	}
	out := make([]highlight, 0)
	err = sqlitedb.EachRow(rows, r.log, "memory_highlights", func(rows *sql.Rows) error {
		var text, date sql.NullString
		if err := rows.Scan(&text, &date); err != nil {
			return err
		}
		if strings.TrimSpace(text.String) == "" {
			return fmt.Errorf("empty %s highlight: %w", kind, sqlitedb.ErrSkipRow)
		}
		out = append(out, highlight{text: text.String, date: date.String})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteHighlightRepository) Lessons(ctx context.Context) ([]domain.Entry, error) {
	rows, err := r.list(ctx, kindLesson)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, h := range rows {
		if entry, ok := domain.ParseFreeform(h.text, h.date); ok {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *SQLiteHighlightRepository) Wins(ctx context.Context) ([]domain.Win, error) {
	rows, err := r.list(ctx, kindWin)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Win, 0, len(rows))
	for _, h := range rows {
		text, date := domain.SplitDate(h.text)
		if text == "" {
			continue
		}
		if h.date != "" {
			date = h.date
		}
		out = append(out, domain.Win{Text: text, Date: date})
	}
	return out, nil
}
