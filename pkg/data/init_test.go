package data

import (
	"path/filepath"
	"testing"
)

func TestInitDuckDB(t *testing.T) {
	db, err := InitDuckDB("")
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	defer db.Close()

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'books'`).Scan(&tableCount)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	if tableCount != 1 {
		t.Errorf("Expected 1 table, got %d", tableCount)
	}
}

func TestInitDuckDBIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	db.Close()

	db, err = InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen DB: %v", err)
	}
	defer db.Close()
}

func TestNewDuckDBRepositoryIsPrivate(t *testing.T) {
	repo1, err := NewDuckDBRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo1.Close()

	repo2, err := NewDuckDBRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo2.Close()

	if err := repo1.AddBook(&Book{ID: "b1", Title: "T", Author: "A"}); err != nil {
		t.Fatalf("Failed to add book: %v", err)
	}

	books, err := repo2.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Expected an empty catalog in a new repository, got %d books", len(books))
	}
}
