package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ============================================================
// SQLite Repository
// ============================================================
//
// История генераций: что построили, куда положили файл и какие
// были предупреждения. История не участвует в самой генерации —
// чисто журнал для /generations.

// GenerationRecord — одна запись истории генерации.
type GenerationRecord struct {
	ID           string `json:"id"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url"`
	ElementCount int    `json:"element_count"`
	Created      string `json:"created_elements"`
	Warnings     string `json:"warnings"`
	CreatedAt    string `json:"created_at"`
}

// ErrNotFound возвращается, когда записи с таким id нет.
var ErrNotFound = errors.New("generation record not found")

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет миграции.
func (r *Repository) Init(migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := r.db.Exec(string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// Insert сохраняет запись истории.
func (r *Repository) Insert(ctx context.Context, rec GenerationRecord) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO generations (id, file_name, file_url, element_count, created_elements, warnings)
        VALUES (?, ?, ?, ?, ?, ?)
    `, rec.ID, rec.FileName, rec.FileURL, rec.ElementCount, rec.Created, rec.Warnings)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

// GetByID возвращает запись по идентификатору.
func (r *Repository) GetByID(ctx context.Context, id string) (*GenerationRecord, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, file_name, file_url, element_count, created_elements, warnings, created_at
        FROM generations
        WHERE id = ?
    `, id)

	var rec GenerationRecord
	if err := row.Scan(&rec.ID, &rec.FileName, &rec.FileURL, &rec.ElementCount,
		&rec.Created, &rec.Warnings, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List возвращает последние записи, новые первыми.
func (r *Repository) List(ctx context.Context, limit int) ([]GenerationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, file_name, file_url, element_count, created_elements, warnings, created_at
        FROM generations
        ORDER BY created_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.FileURL, &rec.ElementCount,
			&rec.Created, &rec.Warnings, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// JoinList упаковывает список строк в одно поле записи.
func JoinList(items []string) string {
	return strings.Join(items, "; ")
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
