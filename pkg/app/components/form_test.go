package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestFormFocusCycles(t *testing.T) {
	f := NewForm(NewField("Title", ""), NewField("Author", ""), NewField("Year", ""))

	assert.Equal(t, 0, f.Focused())
	assert.True(t, f.Fields[0].Input.Focused())

	f.Next()
	f.Next()
	assert.True(t, f.OnLast())
	assert.False(t, f.Fields[0].Input.Focused())

	f.Next()
	assert.Equal(t, 0, f.Focused())

	f.Prev()
	assert.Equal(t, 2, f.Focused())
}

func TestFormTypingGoesToFocusedField(t *testing.T) {
	f := NewForm(NewField("Title", ""), NewField("Author", ""))

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Dune")})
	f.Next()
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Herbert")})

	assert.Equal(t, []string{"Dune", "Herbert"}, f.Values())
}

func TestFormSetValuesAndReset(t *testing.T) {
	f := NewForm(NewField("Title", ""), NewPasswordField("Password"))
	f.SetValues("Emma", "secret", "ignored")

	assert.Equal(t, "Emma", f.Value(0))
	assert.Equal(t, "secret", f.Value(1))
	assert.NotContains(t, f.View(), "secret")

	f.Focus(1)
	f.Reset()
	assert.Equal(t, []string{"", ""}, f.Values())
	assert.Equal(t, 0, f.Focused())
}
