package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"missionctl/internal/modules/content/domain"
	contentout "missionctl/internal/modules/content/port/out"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
)

type SQLiteContentRepository struct {
	db  *sqlitedb.DB
	log *logger.Logger
}

func NewSQLiteContentRepository(db *sqlitedb.DB, log *logger.Logger) contentout.ContentRepository {
	return &SQLiteContentRepository{db: db, log: log}
}

func (r *SQLiteContentRepository) List(ctx context.Context) ([]domain.Item, error) {
	q := sqlitedb.Builder().
		Select("id", "title", "pillar", "stage", "word_count", "scheduled_date", "published_date", "performance").
		From("content_pipeline").
		OrderBy("COALESCE(scheduled_date, published_date, '') DESC", "title")
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	out := make([]domain.Item, 0)
	err = sqlitedb.EachRow(rows, r.log, "content_pipeline", func(rows *sql.Rows) error {
		var id, title, pillar, stage, words, scheduled, published, perform sql.NullString
		if err := rows.Scan(&id, &title, &pillar, &stage, &words, &scheduled, &published, &perform); err != nil {
			return err
		}
		if strings.TrimSpace(title.String) == "" {
			return fmt.Errorf("content %q has no title: %w", id.String, sqlitedb.ErrSkipRow)
		}
		out = append(out, domain.Item{
			ID:            id.String,
			Title:         title.String,
			Pillar:        pillar.String,
			Stage:         domain.StageFor(stage.String),
			WordCount:     domain.ParseWordCount(words.String),
			ScheduledDate: scheduled.String,
			PublishedDate: published.String,
			Performance:   perform.String,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
