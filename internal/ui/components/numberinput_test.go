package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linerhc/linerhc/internal/mix"
)

var testParam = mix.Param{Key: "X", Label: "Test", Min: 0, Max: 100, Default: 10}

func press(n NumberInput, s string) NumberInput {
	r := []rune(s)[0]
	n, _ = n.Update(tea.KeyPressMsg{Code: r, Text: s})
	return n
}

func backspace(n NumberInput) NumberInput {
	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	return n
}

func paste(n NumberInput, s string) NumberInput {
	n, _ = n.Update(tea.PasteMsg{Content: s})
	return n
}

func focused() NumberInput {
	n := NewNumberInput(testParam)
	n.Focus()
	return n
}

func TestNumberInput_StartsAtDefault(t *testing.T) {
	n := NewNumberInput(testParam)
	assert.Equal(t, 10.0, n.Value())
	assert.Equal(t, "10", n.Model.Value())
	assert.False(t, n.Focused())
	assert.False(t, n.OutOfRange())
}

func TestNumberInput_RejectsNonNumericKeys(t *testing.T) {
	n := focused()
	n = press(n, "a")
	n = press(n, "x")
	assert.Equal(t, "10", n.Model.Value())
}

func TestNumberInput_SingleDecimalPoint(t *testing.T) {
	n := focused()
	n = press(n, ".")
	n = press(n, "5")
	n = press(n, ".")
	assert.Equal(t, "10.5", n.Model.Value())
	assert.Equal(t, 10.5, n.Value())
}

func TestNumberInput_ClampsOutOfRange(t *testing.T) {
	n := focused()
	n = press(n, "5")
	assert.Equal(t, "105", n.Model.Value())
	assert.True(t, n.OutOfRange())
	assert.Equal(t, 100.0, n.Value())
	assert.Contains(t, n.View(), "100")

	n.Blur()
	assert.Equal(t, "100", n.Model.Value())
	assert.False(t, n.OutOfRange())
}

func TestNumberInput_Step(t *testing.T) {
	n := focused()
	n = press(n, "+")
	assert.Equal(t, 11.0, n.Value())

	n.SetValue(0)
	n = press(n, "-")
	assert.Equal(t, 0.0, n.Value())
}

func TestNumberInput_UnparsableKeepsLast(t *testing.T) {
	n := focused()
	n.Model.SetValue("")
	assert.Equal(t, 10.0, n.Value())
}

func TestNumberInput_RejectsSpace(t *testing.T) {
	n := focused()
	n.SetValue(12)
	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	n = press(n, "5")
	assert.Equal(t, "125", n.Model.Value())
	assert.Equal(t, 100.0, n.Value())
}

func TestNumberInput_RejectsMultiByteRunes(t *testing.T) {
	n := focused()
	n = press(n, "５")
	n = press(n, "é")
	assert.Equal(t, "10", n.Model.Value())
}

func TestNumberInput_Paste(t *testing.T) {
	n := focused()
	n = backspace(n)
	n = backspace(n)
	require.Equal(t, "", n.Model.Value())

	n = paste(n, "7x5")
	assert.Equal(t, "", n.Model.Value())

	n = paste(n, "1.5.")
	assert.Equal(t, "", n.Model.Value())

	n = paste(n, "42.5")
	assert.Equal(t, "42.5", n.Model.Value())
	assert.Equal(t, 42.5, n.Value())
	assert.False(t, n.OutOfRange())
}

func TestNumberInput_ClearedFieldUsesCommittedValue(t *testing.T) {
	n := focused()
	n = backspace(n)
	assert.Equal(t, 1.0, n.Value())
	n = backspace(n)

	assert.Equal(t, 10.0, n.Value())
	assert.True(t, n.OutOfRange())
	assert.Contains(t, n.View(), "→ 10")

	n.Blur()
	assert.Equal(t, "10", n.Model.Value())
	assert.False(t, n.Focused())
}
