package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/services"
)

var bookColumns = []table.Column{
	{Title: "Title", Width: 24},
	{Title: "Author", Width: 18},
	{Title: "Genre", Width: 14},
	{Title: "Published", Width: 9},
	{Title: "Status", Width: 10},
	{Title: "Reserved By", Width: 12},
	{Title: "Borrow Date", Width: 11},
	{Title: "Fine", Width: 8},
}

// BookTable is a selectable table of books.
type BookTable struct {
	Items  []services.BookView
	table  table.Model
	Width  int
	Height int
}

func NewBookTable() *BookTable {
	t := table.New(
		table.WithColumns(bookColumns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(s)

	return &BookTable{
		Items:  []services.BookView{},
		table:  t,
		Width:  120,
		Height: 10,
	}
}

// BookRow renders the table cells for one book.
func BookRow(b services.BookView) table.Row {
	reservedBy := "-"
	if b.Reserved {
		reservedBy = b.ReservedBy
	}
	borrowDate := "-"
	if b.Borrowed {
		borrowDate = b.BorrowDate
	}
	return table.Row{
		b.Title,
		b.Author,
		b.Genre,
		strconv.Itoa(b.Published),
		string(b.Status),
		reservedBy,
		borrowDate,
		FineLabel(b.Fine),
	}
}

func FineLabel(fine int) string {
	if fine <= 0 {
		return "-"
	}
	return fmt.Sprintf("⚠ $%d", fine)
}

func (m *BookTable) SetItems(items []services.BookView) {
	cursor := m.table.Cursor()
	m.Items = items

	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = BookRow(item)
	}
	m.table.SetRows(rows)

	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.table.SetCursor(cursor)
}

func (m *BookTable) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)
}

func (m *BookTable) SelectedIndex() int {
	if len(m.Items) == 0 {
		return 0
	}
	return m.table.Cursor()
}

func (m *BookTable) Next() {
	if len(m.Items) == 0 {
		return
	}
	if m.table.Cursor() >= len(m.Items)-1 {
		m.table.SetCursor(0)
		return
	}
	m.table.MoveDown(1)
}

func (m *BookTable) Prev() {
	if len(m.Items) == 0 {
		return
	}
	if m.table.Cursor() <= 0 {
		m.table.SetCursor(len(m.Items) - 1)
		return
	}
	m.table.MoveUp(1)
}

func (m *BookTable) Selected() *services.BookView {
	i := m.SelectedIndex()
	if len(m.Items) == 0 || i < 0 || i >= len(m.Items) {
		return nil
	}
	return &m.Items[i]
}

func (m *BookTable) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No books to show")
		return lipgloss.Place(m.Width, 3, lipgloss.Center, lipgloss.Center, emptyMsg)
	}
	return m.table.View()
}
