package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/librarian/pkg/app/styles"
)

type Field struct {
	Label string
	Input textinput.Model
}

func NewField(label, placeholder string) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40
	return Field{Label: label, Input: ti}
}

func NewPasswordField(label string) Field {
	f := NewField(label, "")
	f.Input.EchoMode = textinput.EchoPassword
	f.Input.EchoCharacter = '•'
	return f
}

// Form is a vertical stack of text inputs with a single focused field.
type Form struct {
	Fields []Field
	focus  int
}

func NewForm(fields ...Field) *Form {
	f := &Form{Fields: fields}
	f.Focus(0)
	return f
}

func (f *Form) Focused() int {
	return f.focus
}

func (f *Form) OnLast() bool {
	return f.focus == len(f.Fields)-1
}

func (f *Form) Focus(i int) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	i = (i + len(f.Fields)) % len(f.Fields)
	for j := range f.Fields {
		f.Fields[j].Input.Blur()
	}
	f.focus = i
	return f.Fields[i].Input.Focus()
}

func (f *Form) Next() tea.Cmd {
	return f.Focus(f.focus + 1)
}

func (f *Form) Prev() tea.Cmd {
	return f.Focus(f.focus - 1)
}

func (f *Form) Value(i int) string {
	return f.Fields[i].Input.Value()
}

func (f *Form) Values() []string {
	out := make([]string, len(f.Fields))
	for i := range f.Fields {
		out[i] = f.Fields[i].Input.Value()
	}
	return out
}

func (f *Form) SetValues(values ...string) {
	for i, v := range values {
		if i < len(f.Fields) {
			f.Fields[i].Input.SetValue(v)
		}
	}
}

func (f *Form) Reset() tea.Cmd {
	for i := range f.Fields {
		f.Fields[i].Input.Reset()
	}
	return f.Focus(0)
}

// Update forwards msg to the focused input.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.focus].Input, cmd = f.Fields[f.focus].Input.Update(msg)
	return cmd
}

func (f *Form) View() string {
	var b strings.Builder
	for i, field := range f.Fields {
		style := styles.InputStyle
		if i == f.focus {
			style = styles.FocusedInputStyle
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n",
			styles.LabelStyle.Render(field.Label),
			style.Render(field.Input.View()),
		))
	}
	return b.String()
}
