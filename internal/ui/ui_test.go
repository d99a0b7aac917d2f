package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTheme(t *testing.T) {
	theme := Plain()

	assert.Equal(t, "[OK]", theme.Mark(true))
	assert.Equal(t, "[!!]", theme.Mark(false))
	assert.Equal(t, "[??]", theme.WarnMark())
	assert.Equal(t, "Nodes", theme.Section.Render("Nodes"))
}

func TestStyledThemeKeepsText(t *testing.T) {
	theme := Styled()

	assert.Contains(t, theme.Mark(true), "[OK]")
	assert.Contains(t, theme.Title.Render("mwpack"), "mwpack")
	assert.True(t, theme.Title.GetBold())
}

func TestRegularFileIsNotTTY(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsInteractiveTTY(f))
	assert.Equal(t, "[OK]", ForFile(f).Mark(true))
}
