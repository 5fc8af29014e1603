package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestSelectModel(t *testing.T) {
	options := []SelectOption{
		{Label: "one", Value: "1"},
		{Label: "two", Value: "2"},
		{Label: "three", Value: "3"},
	}

	t.Run("moves and confirms", func(t *testing.T) {
		m := press(NewSelectModel("pick", options, 0),
			tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
			tea.KeyMsg{Type: tea.KeyEnter},
		).(SelectModel)
		require.True(t, m.Done)
		require.Equal(t, "3", m.Selected)
	})

	t.Run("wraps around", func(t *testing.T) {
		m := press(NewSelectModel("pick", options, 0),
			tea.KeyMsg{Type: tea.KeyUp},
			tea.KeyMsg{Type: tea.KeyEnter},
		).(SelectModel)
		require.Equal(t, "3", m.Selected)
	})

	t.Run("starts at the default index", func(t *testing.T) {
		m := NewSelectModel("pick", options, 1)
		require.Equal(t, 1, m.Cursor)
		require.Contains(t, m.View(), "two")

		m = NewSelectModel("pick", options, 9)
		require.Equal(t, 0, m.Cursor)
	})

	t.Run("cancels", func(t *testing.T) {
		m := press(NewSelectModel("pick", options, 0), tea.KeyMsg{Type: tea.KeyEsc}).(SelectModel)
		require.True(t, m.Done)
		require.Error(t, m.Err)
		require.Empty(t, m.Selected)
	})
}

func TestConfirmModel(t *testing.T) {
	m := press(confirmModel{prompt: "sure?"}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}).(confirmModel)
	require.True(t, m.done)
	require.True(t, m.choice)

	m = press(confirmModel{prompt: "sure?", choice: true}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}).(confirmModel)
	require.False(t, m.choice)

	m = press(confirmModel{prompt: "sure?", choice: true}, tea.KeyMsg{Type: tea.KeyEnter}).(confirmModel)
	require.True(t, m.choice)
}

func TestPromptsRefuseWhenDisabled(t *testing.T) {
	t.Setenv("GG_NO_INTERACTIVE", "1")

	_, err := PromptConfirm("sure?", false)
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = PromptSelect("pick", []SelectOption{{Label: "a", Value: "a"}}, 0)
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}
