package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"missionctl/internal/modules/goals/domain"
	goalsout "missionctl/internal/modules/goals/port/out"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
)

type SQLiteGoalRepository struct {
	db  *sqlitedb.DB
	log *logger.Logger
}

func NewSQLiteGoalRepository(db *sqlitedb.DB, log *logger.Logger) goalsout.GoalRepository {
	return &SQLiteGoalRepository{db: db, log: log}
}

func (r *SQLiteGoalRepository) List(ctx context.Context) ([]domain.Goal, error) {
	q := sqlitedb.Builder().
		Select("category", "objective", "done", "position").
		From("goals").
		OrderBy("position", "id")
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	out := make([]domain.Goal, 0)
	err = sqlitedb.EachRow(rows, r.log, "goals", func(rows *sql.Rows) error {
		var category, objective, done, position sql.NullString
		if err := rows.Scan(&category, &objective, &done, &position); err != nil {
			return err
		}
		if strings.TrimSpace(objective.String) == "" {
			return fmt.Errorf("goal has no objective: %w", sqlitedb.ErrSkipRow)
		}
		flag, _ := sqlitedb.Int(done)
		pos, _ := sqlitedb.Int(position)
		out = append(out, domain.Goal{
			Category:  category.String,
			Objective: objective.String,
			Done:      flag != 0,
			Position:  pos,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Replace swaps the whole table in one transaction.
func (r *SQLiteGoalRepository) Replace(ctx context.Context, goals []domain.Goal) error {
	return r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		if err := sqlitedb.Exec(ctx, tx, sqlitedb.Builder().Delete("goals")); err != nil {
			return fmt.Errorf("reset goals: %w", err)
		}
		if len(goals) == 0 {
			return nil
		}
		insert := sqlitedb.Builder().Insert("goals").Columns("category", "objective", "done", "position")
		for _, g := range goals {
			done := 0
			if g.Done {
				done = 1
			}
			insert = insert.Values(g.Category, g.Objective, done, g.Position)
		}
		if err := sqlitedb.Exec(ctx, tx, insert); err != nil {
			return fmt.Errorf("insert goals: %w", err)
		}
		return nil
	})
}
