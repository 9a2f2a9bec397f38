package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/services"
)

func views(titles ...string) []services.BookView {
	out := make([]services.BookView, len(titles))
	for i, title := range titles {
		out[i] = services.BookView{
			Book:   data.Book{ID: title, Title: title, Author: "Author"},
			Status: data.StatusAvailable,
		}
	}
	return out
}

func TestNewBookTable(t *testing.T) {
	list := NewBookTable()

	if list == nil {
		t.Fatal("Expected book table to be created")
	}
	if list.SelectedIndex() != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex())
	}
	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
	if list.Selected() != nil {
		t.Error("Expected no selection in an empty table")
	}
}

func TestBookTableSetItemsClampsSelection(t *testing.T) {
	list := NewBookTable()
	list.SetItems(views("a", "b", "c"))
	list.Next()
	list.Next()

	if list.SelectedIndex() != 2 {
		t.Fatalf("Expected SelectedIndex 2, got %d", list.SelectedIndex())
	}

	list.SetItems(views("a"))
	if list.SelectedIndex() != 0 {
		t.Errorf("Expected SelectedIndex to be clamped to 0, got %d", list.SelectedIndex())
	}

	list.SetItems(nil)
	list.SetItems(views("x", "y"))
	if got := list.Selected(); got == nil || got.ID != "x" {
		t.Errorf("Expected first book selected, got %+v", got)
	}
}

func TestBookTableNextPrevWrap(t *testing.T) {
	list := NewBookTable()
	list.SetItems(views("a", "b", "c"))

	list.Prev()
	if list.SelectedIndex() != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex())
	}

	list.Next()
	if list.SelectedIndex() != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex())
	}

	list.Next()
	if got := list.Selected(); got == nil || got.ID != "b" {
		t.Errorf("Expected b selected, got %+v", got)
	}
}

func TestBookTableEmptyNavigation(t *testing.T) {
	list := NewBookTable()

	list.Next()
	list.Prev()

	if list.SelectedIndex() != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex())
	}
	if !strings.Contains(list.View(), "No books to show") {
		t.Error("Expected empty message in view")
	}
}

func TestBookRow(t *testing.T) {
	row := BookRow(services.BookView{
		Book: data.Book{
			Title: "Dune", Author: "Herbert", Genre: "Science Fiction", Published: 1965,
			Borrowed: true, BorrowDate: "2024-01-01", ReservedBy: "stale",
		},
		Status: data.StatusBorrowed,
		Fine:   12,
	})

	want := []string{"Dune", "Herbert", "Science Fiction", "1965", "Borrowed", "-", "2024-01-01", "⚠ $12"}
	if len(row) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("Cell %d: expected %q, got %q", i, want[i], row[i])
		}
	}
}

func TestBookRowAvailable(t *testing.T) {
	row := BookRow(services.BookView{
		Book:   data.Book{Title: "T", Reserved: true, ReservedBy: "User1", BorrowDate: "2024-01-01"},
		Status: data.StatusReserved,
	})

	if row[5] != "User1" {
		t.Errorf("Expected reserver, got %q", row[5])
	}
	if row[6] != "-" {
		t.Errorf("Expected no borrow date for a book that is not borrowed, got %q", row[6])
	}
	if row[7] != "-" {
		t.Errorf("Expected no fine, got %q", row[7])
	}
}

func TestBookTableView(t *testing.T) {
	list := NewBookTable()
	list.SetItems(views("Dune", "Emma"))

	view := list.View()
	for _, s := range []string{"Title", "Dune", "Emma"} {
		if !strings.Contains(view, s) {
			t.Errorf("Expected view to contain %q", s)
		}
	}
}
