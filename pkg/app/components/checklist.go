package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/librarian/pkg/app/styles"
)

// Checklist is a multi-select list of string options.
type Checklist struct {
	Title   string
	Items   []string
	Cursor  int
	Visible int
	checked map[string]bool
}

func NewChecklist(title string) *Checklist {
	return &Checklist{
		Title:   title,
		Visible: 8,
		checked: map[string]bool{},
	}
}

// SetItems replaces the options, keeping the selections that still exist.
func (c *Checklist) SetItems(items []string) {
	c.Items = items
	keep := make(map[string]bool, len(c.checked))
	for _, item := range items {
		if c.checked[item] {
			keep[item] = true
		}
	}
	c.checked = keep
	if c.Cursor >= len(items) {
		c.Cursor = max(len(items)-1, 0)
	}
}

func (c *Checklist) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.Cursor = (c.Cursor + 1) % len(c.Items)
}

func (c *Checklist) Prev() {
	if len(c.Items) == 0 {
		return
	}
	c.Cursor--
	if c.Cursor < 0 {
		c.Cursor = len(c.Items) - 1
	}
}

func (c *Checklist) Toggle() {
	if len(c.Items) == 0 {
		return
	}
	item := c.Items[c.Cursor]
	if c.checked[item] {
		delete(c.checked, item)
	} else {
		c.checked[item] = true
	}
}

func (c *Checklist) IsChecked(item string) bool {
	return c.checked[item]
}

// Checked returns the selected options in list order.
func (c *Checklist) Checked() []string {
	var out []string
	for _, item := range c.Items {
		if c.checked[item] {
			out = append(out, item)
		}
	}
	return out
}

func (c *Checklist) Clear() {
	c.checked = map[string]bool{}
}

func (c *Checklist) Summary() string {
	checked := c.Checked()
	if len(checked) == 0 {
		return "any"
	}
	return strings.Join(checked, ", ")
}

func (c *Checklist) View() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(c.Title))
	b.WriteString("\n")

	if len(c.Items) == 0 {
		b.WriteString(styles.MutedStyle.Render("No options"))
		return b.String()
	}

	start, end := 0, len(c.Items)
	if c.Visible > 0 && end > c.Visible {
		start = c.Cursor - c.Visible/2
		if start < 0 {
			start = 0
		}
		end = start + c.Visible
		if end > len(c.Items) {
			end = len(c.Items)
			start = end - c.Visible
		}
	}

	for i := start; i < end; i++ {
		item := c.Items[i]
		box := "[ ]"
		if c.checked[item] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, item)
		if i == c.Cursor {
			line = styles.SelectedStyle.Render("> " + line)
		} else {
			line = styles.TextStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if end-start < len(c.Items) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(c.Items)),
		))
	}
	return b.String()
}
