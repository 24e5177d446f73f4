// Package storage persists harvested article records in SQLite.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/matsen/arxtab/internal/record"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectFields is the standard column list for SELECT queries.
const selectFields = `arxiv_id, updated_date, published_date, title, summary,
	authors_json, comment, categories_json,
	pages, figures, num_of_authors, title_length,
	pub_year, pub_month, pub_day`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS articles (
			arxiv_id TEXT PRIMARY KEY,
			updated_date TEXT NOT NULL,
			published_date TEXT NOT NULL,
			title TEXT NOT NULL,
			summary TEXT,
			authors_json TEXT NOT NULL,
			comment TEXT,
			categories_json TEXT NOT NULL,
			pages INTEGER,
			figures INTEGER,
			num_of_authors INTEGER NOT NULL,
			title_length INTEGER NOT NULL,
			pub_year INTEGER NOT NULL,
			pub_month INTEGER NOT NULL,
			pub_day INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_articles_pub_year ON articles(pub_year);
	`
	_, err := db.Exec(schema)
	return err
}

// Upsert inserts or replaces records keyed by arxiv_id. Returns the number
// of records written.
func (d *DB) Upsert(records []record.Record) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO articles (
			arxiv_id, updated_date, published_date, title, summary,
			authors_json, comment, categories_json,
			pages, figures, num_of_authors, title_length,
			pub_year, pub_month, pub_day
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, rec := range records {
		authorsJSON, err := json.Marshal(rec.Authors)
		if err != nil {
			return 0, fmt.Errorf("encoding authors for %s: %w", rec.ArXivID, err)
		}
		categoriesJSON, err := json.Marshal(rec.Categories)
		if err != nil {
			return 0, fmt.Errorf("encoding categories for %s: %w", rec.ArXivID, err)
		}

		_, err = stmt.Exec(
			rec.ArXivID, rec.UpdatedDate, rec.PublishedDate, rec.Title, rec.Summary,
			string(authorsJSON), rec.Comment, string(categoriesJSON),
			nullableInt(rec.Pages), nullableInt(rec.Figures), rec.NumAuthors, rec.TitleLength,
			rec.PubYear, rec.PubMonth, rec.PubDay,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting %s: %w", rec.ArXivID, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return written, nil
}

// SearchFilters narrows a stored-article query. Zero values mean no filter.
type SearchFilters struct {
	Title    string // substring match on title
	Author   string // substring match on any author name
	Category string // exact category code
	YearFrom int
	YearTo   int
}

// Search returns stored records matching the filters, newest first.
// A zero-valued filter returns everything.
func (d *DB) Search(filters SearchFilters, limit int) ([]record.Record, error) {
	var conds []string
	var args []interface{}

	if filters.Title != "" {
		conds = append(conds, "title LIKE ?")
		args = append(args, "%"+filters.Title+"%")
	}
	if filters.Author != "" {
		conds = append(conds, "authors_json LIKE ?")
		args = append(args, "%"+filters.Author+"%")
	}
	if filters.Category != "" {
		// categories_json is a JSON array of quoted codes
		conds = append(conds, "categories_json LIKE ?")
		args = append(args, "%\""+filters.Category+"\"%")
	}
	if filters.YearFrom > 0 {
		conds = append(conds, "pub_year >= ?")
		args = append(args, filters.YearFrom)
	}
	if filters.YearTo > 0 {
		conds = append(conds, "pub_year <= ?")
		args = append(args, filters.YearTo)
	}

	query := "SELECT " + selectFields + " FROM articles"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY updated_date DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListAll returns every stored record, newest first.
func (d *DB) ListAll() ([]record.Record, error) {
	return d.Search(SearchFilters{}, 0)
}

// GetByID returns the record with the given arxiv_id, or nil if absent.
func (d *DB) GetByID(arxivID string) (*record.Record, error) {
	rows, err := d.db.Query("SELECT "+selectFields+" FROM articles WHERE arxiv_id = ?", arxivID)
	if err != nil {
		return nil, fmt.Errorf("querying article: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Count returns the number of stored records.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return n, nil
}

func scanRecords(rows *sql.Rows) ([]record.Record, error) {
	var records []record.Record
	for rows.Next() {
		var rec record.Record
		var authorsJSON, categoriesJSON string
		var pages, figures sql.NullInt64

		err := rows.Scan(
			&rec.ArXivID, &rec.UpdatedDate, &rec.PublishedDate, &rec.Title, &rec.Summary,
			&authorsJSON, &rec.Comment, &categoriesJSON,
			&pages, &figures, &rec.NumAuthors, &rec.TitleLength,
			&rec.PubYear, &rec.PubMonth, &rec.PubDay,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if err := json.Unmarshal([]byte(authorsJSON), &rec.Authors); err != nil {
			return nil, fmt.Errorf("decoding authors for %s: %w", rec.ArXivID, err)
		}
		if err := json.Unmarshal([]byte(categoriesJSON), &rec.Categories); err != nil {
			return nil, fmt.Errorf("decoding categories for %s: %w", rec.ArXivID, err)
		}
		if pages.Valid {
			v := int(pages.Int64)
			rec.Pages = &v
		}
		if figures.Valid {
			v := int(figures.Int64)
			rec.Figures = &v
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
