package data

import (
	"errors"
	"fmt"
	"testing"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewDuckDBRepository()
	if err != nil {
		t.Fatalf("Failed to init DB: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAddAndGetBook(t *testing.T) {
	repo := setupTestRepo(t)

	book := &Book{
		ID:        "book-1",
		Title:     "The Hobbit",
		Author:    "J. R. R. Tolkien",
		Genre:     "Fantasy",
		Published: 1937,
	}

	if err := repo.AddBook(book); err != nil {
		t.Fatalf("Failed to add book: %v", err)
	}

	retrieved, err := repo.GetBook("book-1")
	if err != nil {
		t.Fatalf("Failed to get book: %v", err)
	}
	if retrieved == nil {
		t.Fatal("Expected book to be found")
	}
	if *retrieved != *book {
		t.Errorf("Expected %+v, got %+v", *book, *retrieved)
	}
}

func TestGetNonExistentBook(t *testing.T) {
	repo := setupTestRepo(t)

	book, err := repo.GetBook("non-existent")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if book != nil {
		t.Error("Expected book to be nil for non-existent ID")
	}
}

func TestAddDuplicateBook(t *testing.T) {
	repo := setupTestRepo(t)

	book := &Book{ID: "book-1", Title: "T", Author: "A"}
	if err := repo.AddBook(book); err != nil {
		t.Fatalf("Failed to add book: %v", err)
	}
	if err := repo.AddBook(book); err == nil {
		t.Error("Expected adding a duplicate id to fail")
	}
}

func TestListBooksKeepsInsertionOrder(t *testing.T) {
	repo := setupTestRepo(t)

	books, err := repo.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Expected 0 books, got %d", len(books))
	}

	// ids deliberately out of lexical order
	ids := []string{"z", "a", "m"}
	for i, id := range ids {
		book := &Book{ID: id, Title: fmt.Sprintf("Book %d", i), Author: "Author"}
		if err := repo.AddBook(book); err != nil {
			t.Fatalf("Failed to add book %s: %v", id, err)
		}
	}

	books, err = repo.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("Expected 3 books, got %d", len(books))
	}
	for i, id := range ids {
		if books[i].ID != id {
			t.Errorf("Expected book %d to be %s, got %s", i, id, books[i].ID)
		}
	}
}

func TestSaveBook(t *testing.T) {
	repo := setupTestRepo(t)

	book := &Book{ID: "book-1", Title: "Original", Author: "A"}
	if err := repo.AddBook(book); err != nil {
		t.Fatalf("Failed to add book: %v", err)
	}

	book.Title = "Updated"
	book.Borrowed = true
	book.BorrowedBy = "alice"
	book.BorrowDate = "2024-01-02"
	book.Reserved = true
	book.ReservedBy = "bob"
	if err := repo.SaveBook(book); err != nil {
		t.Fatalf("Failed to save book: %v", err)
	}

	retrieved, _ := repo.GetBook("book-1")
	if *retrieved != *book {
		t.Errorf("Expected %+v, got %+v", *book, *retrieved)
	}
}

func TestSaveUnknownBook(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.SaveBook(&Book{ID: "missing", Title: "T", Author: "A"})
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("Expected ErrBookNotFound, got %v", err)
	}
}

func TestAddBooksIsAllOrNothing(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.AddBooks([]*Book{
		{ID: "a", Title: "A", Author: "X"},
		{ID: "b", Title: "B", Author: "Y"},
		{ID: "a", Title: "A again", Author: "Z"},
	})
	if err == nil {
		t.Fatal("Expected error for duplicate id in batch")
	}

	books, err := repo.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("Expected empty catalog after failed batch, got %d books", len(books))
	}

	if err := repo.AddBooks([]*Book{{ID: "c", Title: "C", Author: "X"}, {ID: "d", Title: "D", Author: "Y"}}); err != nil {
		t.Fatalf("Failed to add batch: %v", err)
	}
	if err := repo.AddBook(&Book{ID: "e", Title: "E", Author: "Z"}); err != nil {
		t.Fatalf("Failed to add book: %v", err)
	}
	books, _ = repo.ListBooks()
	var ids []string
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	if fmt.Sprint(ids) != "[c d e]" {
		t.Errorf("Expected [c d e], got %v", ids)
	}
}
