package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"missionctl/internal/modules/jobs/domain"
	jobsout "missionctl/internal/modules/jobs/port/out"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
)

type SQLiteJobRepository struct {
	db  *sqlitedb.DB
	log *logger.Logger
}

func NewSQLiteJobRepository(db *sqlitedb.DB, log *logger.Logger) jobsout.JobRepository {
	return &SQLiteJobRepository{db: db, log: log}
}

func (r *SQLiteJobRepository) List(ctx context.Context) ([]domain.Job, error) {
	q := sqlitedb.Builder().
		Select("id", "company", "role", "status", "ats_score", "next_action", "salary", "company_domain", "updated_at").
		From("job_pipeline").
		OrderBy("updated_at DESC", "company")
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	out := make([]domain.Job, 0)
	err = sqlitedb.EachRow(rows, r.log, "job_pipeline", func(rows *sql.Rows) error {
		var id, company, role, status, ats, next, salary, companyDomain, update sql.NullString
		if err := rows.Scan(&id, &company, &role, &status, &ats, &next, &salary, &companyDomain, &update); err != nil {
			return err
		}
		if strings.TrimSpace(company.String) == "" {
			return fmt.Errorf("job %q has no company: %w", id.String, sqlitedb.ErrSkipRow)
		}
		out = append(out, domain.Job{
			ID:            id.String,
			Company:       company.String,
			Role:          role.String,
			Status:        status.String,
			Column:        domain.ColumnFor(status.String),
			ATSScore:      domain.ParseATS(ats.String),
			NextAction:    next.String,
			Salary:        salary.String,
			CompanyDomain: companyDomain.String,
			UpdatedAt:     update.String,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteJobRepository) Replace(ctx context.Context, jobs []domain.Job) error {
	return r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		if err := sqlitedb.Exec(ctx, tx, sqlitedb.Builder().Delete("job_pipeline")); err != nil {
			return fmt.Errorf("reset jobs: %w", err)
		}
		if len(jobs) == 0 {
			return nil
		}
		insert := sqlitedb.Builder().Insert("job_pipeline").
			Columns("id", "company", "role", "status", "ats_score", "next_action", "salary", "company_domain", "updated_at")
		for _, j := range jobs {
			var ats any
			if j.ATSScore != nil {
				ats = *j.ATSScore
			}
			insert = insert.Values(j.ID, j.Company, j.Role, j.Status, ats, j.NextAction, j.Salary, j.CompanyDomain, j.UpdatedAt)
		}
		if err := sqlitedb.Exec(ctx, tx, insert); err != nil {
			return fmt.Errorf("insert jobs: %w", err)
		}
		return nil
	})
}

func (r *SQLiteJobRepository) CVHistory(ctx context.Context) ([]domain.ATSRecord, error) {
	q := sqlitedb.Builder().
		Select("company", "role", "ats_score", "created_at").
		From("cv_history").
		Where("ats_score IS NOT NULL").
		OrderBy("created_at", "id")
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list cv history: %w", err)
	}

	out := make([]domain.ATSRecord, 0)
	err = sqlitedb.EachRow(rows, r.log, "cv_history", func(rows *sql.Rows) error {
		var company, role, ats, date sql.NullString
		if err := rows.Scan(&company, &role, &ats, &date); err != nil {
			return err
		}
		if strings.TrimSpace(company.String) == "" {
			return fmt.Errorf("cv history row has no company: %w", sqlitedb.ErrSkipRow)
		}
		out = append(out, domain.ATSRecord{
			Company: company.String,
			Role:    role.String,
			Score:   domain.ParseATS(ats.String),
			Date:    date.String,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
