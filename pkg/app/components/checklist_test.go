package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistToggle(t *testing.T) {
	c := NewChecklist("Genres")
	c.SetItems([]string{"Drama", "Fantasy", "Horror"})

	assert.Equal(t, "any", c.Summary())

	c.Toggle()
	c.Next()
	c.Next()
	c.Toggle()

	assert.Equal(t, []string{"Drama", "Horror"}, c.Checked())
	assert.Equal(t, "Drama, Horror", c.Summary())

	c.Toggle()
	assert.Equal(t, []string{"Drama"}, c.Checked())
}

func TestChecklistWrap(t *testing.T) {
	c := NewChecklist("Years")
	c.SetItems([]string{"1990", "2000"})

	c.Prev()
	assert.Equal(t, 1, c.Cursor)
	c.Next()
	assert.Equal(t, 0, c.Cursor)
}

func TestChecklistSetItemsKeepsSurvivingSelections(t *testing.T) {
	c := NewChecklist("Genres")
	c.SetItems([]string{"A", "B", "C"})
	c.Toggle()
	c.Next()
	c.Next()
	c.Toggle()

	c.SetItems([]string{"A", "B"})

	assert.Equal(t, []string{"A"}, c.Checked())
	assert.Equal(t, 1, c.Cursor)
}

func TestChecklistClear(t *testing.T) {
	c := NewChecklist("Genres")
	c.SetItems([]string{"A", "B"})
	c.Toggle()
	c.Clear()

	assert.Empty(t, c.Checked())
	assert.False(t, c.IsChecked("A"))
}

func TestChecklistEmpty(t *testing.T) {
	c := NewChecklist("Years")
	c.Next()
	c.Toggle()

	assert.Empty(t, c.Checked())
	assert.Contains(t, c.View(), "No options")
}

func TestChecklistViewWindow(t *testing.T) {
	c := NewChecklist("Numbers")
	items := make([]string, 20)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	c.SetItems(items)
	c.Toggle()

	view := c.View()
	assert.Contains(t, view, "[x] a")
	assert.Contains(t, view, "Showing 1-8 of 20")
	assert.False(t, strings.Contains(view, "[ ] t"))
}
