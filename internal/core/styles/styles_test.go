package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"ansi", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.NotEmpty(t, p.Success)

	_, ok = GetPalette("neon")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() {
		p, _ := GetPalette(DefaultTheme)
		SetTheme(p)
	})

	p, _ := GetPalette("gruvbox")
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Error, ErrorStyle.GetForeground())
}

func TestRenderKeepsText(t *testing.T) {
	assert.Contains(t, Success("Todo added successfully!"), "Todo added successfully!")
	assert.Contains(t, Warning("No todo items available."), "No todo items available.")
	assert.Contains(t, Error("Todo not found!"), "Todo not found!")
}
