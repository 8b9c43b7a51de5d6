package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"missionctl/internal/modules/tasks/domain"
	tasksout "missionctl/internal/modules/tasks/port/out"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
)

type SQLiteTaskRepository struct {
	db  *sqlitedb.DB
	log *logger.Logger
}

func NewSQLiteTaskRepository(db *sqlitedb.DB, log *logger.Logger) tasksout.TaskRepository {
	return &SQLiteTaskRepository{db: db, log: log}
}

func (r *SQLiteTaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	q := sqlitedb.Builder().
		Select("id", "title", "status", "priority", "source", "due_date").
		From("tasks").
		OrderBy("COALESCE(due_date, '9999-12-31')", "updated_at DESC")
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := make([]domain.Task, 0)
	err = sqlitedb.EachRow(rows, r.log, "tasks", func(rows *sql.Rows) error {
		var id, title, status, priority, source, due sql.NullString
		if err := rows.Scan(&id, &title, &status, &priority, &source, &due); err != nil {
			return err
		}
		if strings.TrimSpace(title.String) == "" {
			return fmt.Errorf("task %q has no title: %w", id.String, sqlitedb.ErrSkipRow)
		}
		out = append(out, domain.Task{
			ID:       id.String,
			Title:    title.String,
			Status:   domain.BucketFor(status.String),
			Priority: priority.String,
			Section:  source.String,
			DueDate:  due.String,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
