package data

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/marcboeker/go-duckdb/v2"
)

var ErrBookNotFound = errors.New("book not found")

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id          VARCHAR PRIMARY KEY,
	seq         BIGINT NOT NULL,
	title       VARCHAR NOT NULL,
	author      VARCHAR NOT NULL,
	genre       VARCHAR NOT NULL DEFAULT '',
	published   INTEGER NOT NULL DEFAULT 0,
	borrowed    BOOLEAN NOT NULL DEFAULT false,
	borrowed_by VARCHAR NOT NULL DEFAULT '',
	borrow_date VARCHAR NOT NULL DEFAULT '',
	reserved    BOOLEAN NOT NULL DEFAULT false,
	reserved_by VARCHAR NOT NULL DEFAULT ''
)`

const bookColumns = `id, title, author, genre, published, borrowed, borrowed_by, borrow_date, reserved, reserved_by`

// InitDuckDB opens a DuckDB database and makes sure the schema exists. An
// empty path opens a private in-memory database.
func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// Repository holds the catalog for the lifetime of the process.
type Repository struct {
	db *sql.DB
	mu sync.Mutex
}

// NewDuckDBRepository returns a repository over a fresh in-memory database.
func NewDuckDBRepository() (*Repository, error) {
	db, err := InitDuckDB("")
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// AddBook appends book to the end of the catalog.
func (r *Repository) AddBook(book *Book) error {
	return r.AddBooks([]*Book{book})
}

// AddBooks appends books in order inside one transaction; on error none of
// them are stored.
func (r *Repository) AddBooks(books []*Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM books`).Scan(&seq); err != nil {
		return fmt.Errorf("failed to allocate position: %w", err)
	}

	for i, book := range books {
		_, err := tx.Exec(
			`INSERT INTO books (id, seq, title, author, genre, published, borrowed, borrowed_by, borrow_date, reserved, reserved_by)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			book.ID, seq+int64(i), book.Title, book.Author, book.Genre, book.Published,
			book.Borrowed, book.BorrowedBy, book.BorrowDate, book.Reserved, book.ReservedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to add book %s: %w", book.ID, err)
		}
	}
	return tx.Commit()
}

// SaveBook overwrites the stored copy of an existing book.
func (r *Repository) SaveBook(book *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(
		`UPDATE books SET title = ?, author = ?, genre = ?, published = ?, borrowed = ?,
		 borrowed_by = ?, borrow_date = ?, reserved = ?, reserved_by = ? WHERE id = ?`,
		book.Title, book.Author, book.Genre, book.Published, book.Borrowed,
		book.BorrowedBy, book.BorrowDate, book.Reserved, book.ReservedBy, book.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save book %s: %w", book.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookNotFound
	}
	return nil
}

// GetBook returns nil without an error when id is unknown.
func (r *Repository) GetBook(id string) (*Book, error) {
	row := r.db.QueryRow(`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)
	book, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// ListBooks returns the catalog in insertion order.
func (r *Repository) ListBooks() ([]*Book, error) {
	rows, err := r.db.Query(`SELECT ` + bookColumns + ` FROM books ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (*Book, error) {
	var b Book
	err := s.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Published,
		&b.Borrowed, &b.BorrowedBy, &b.BorrowDate, &b.Reserved, &b.ReservedBy)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
