package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
	logger     *zap.Logger
}

func NewDB(dataSourceName string, logger *zap.Logger) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return NewDBFromConn(db, logger), nil
}

// NewDBFromConn wraps an already opened connection.
func NewDBFromConn(conn *sql.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{connection: conn, logger: logger}
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		db.logger.Warn("closing the database connection", zap.Error(err))
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
    id SERIAL PRIMARY KEY,
    job_code TEXT,
    title TEXT,
    department TEXT,
    created_date TEXT,
    closed_date TEXT,
    required_skills TEXT,
    status TEXT
);
CREATE TABLE IF NOT EXISTS candidates (
    id SERIAL PRIMARY KEY,
    name TEXT,
    email TEXT,
    phone TEXT,
    skills TEXT,
    stage TEXT,
    match_pct DOUBLE PRECISION,
    job_id INTEGER
);`

// Migrate creates the jobs and candidates tables when they are missing.
// job_id has no foreign key; candidates are guarded in recruit.Service.DeleteJob.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

func (db *DB) CreateJob(ctx context.Context, job *Job) error {
	query := `INSERT INTO jobs (job_code, title, department, created_date, closed_date, required_skills, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	return db.connection.QueryRowContext(ctx, query,
		job.JobCode,
		job.Title,
		job.Department,
		job.CreatedDate,
		job.ClosedDate,
		job.RequiredSkills,
		job.Status,
	).Scan(&job.ID)
}

const jobColumns = `id, job_code, title, department, created_date, closed_date, required_skills, status`

func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.connection.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.JobCode, &j.Title, &j.Department, &j.CreatedDate, &j.ClosedDate, &j.RequiredSkills, &j.Status); err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (db *DB) GetJob(ctx context.Context, id int64) (*Job, error) {
	j := &Job{}
	row := db.connection.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	err := row.Scan(&j.ID, &j.JobCode, &j.Title, &j.Department, &j.CreatedDate, &j.ClosedDate, &j.RequiredSkills, &j.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (db *DB) DeleteJob(ctx context.Context, id int64) error {
	res, err := db.connection.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountCandidates returns how many candidates reference the job.
func (db *DB) CountCandidates(ctx context.Context, jobID int64) (int, error) {
	var cnt int
	err := db.connection.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates WHERE job_id = $1`, jobID).Scan(&cnt)
	return cnt, err
}

func (db *DB) SaveCandidate(ctx context.Context, c *Candidate) error {
	query := `INSERT INTO candidates (name, email, phone, skills, stage, match_pct, job_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	return db.connection.QueryRowContext(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Skills,
		string(c.Stage),
		c.MatchPct,
		c.JobID,
	).Scan(&c.ID)
}

func (db *DB) ListCandidates(ctx context.Context, jobID int64) ([]Candidate, error) {
	query := `SELECT id, name, email, phone, skills, stage, match_pct, job_id
              FROM candidates WHERE job_id = $1 ORDER BY id`
	rows, err := db.connection.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Candidate
	for rows.Next() {
		var c Candidate
		var stage string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Skills, &stage, &c.MatchPct, &c.JobID); err != nil {
			return nil, err
		}
		c.Stage = Stage(stage)
		res = append(res, c)
	}
	return res, rows.Err()
}

// ListShortlist returns every Interview-stage candidate with its job code and title.
func (db *DB) ListShortlist(ctx context.Context) ([]ShortlistEntry, error) {
	query := `SELECT j.job_code, j.title, c.name, c.email, c.match_pct, c.skills
              FROM candidates c
              JOIN jobs j ON c.job_id = j.id
              WHERE c.stage = $1
              ORDER BY c.id`
	rows, err := db.connection.QueryContext(ctx, query, string(StageInterview))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []ShortlistEntry
	for rows.Next() {
		var e ShortlistEntry
		if err := rows.Scan(&e.JobCode, &e.Title, &e.Name, &e.Email, &e.MatchPct, &e.Skills); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
