package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"SOLITAIRE_TOPOLOGY", "SOLITAIRE_SIZE", "SOLITAIRE_CONFIG", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(env, "")
	}

	var out strings.Builder
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &strings.Builder{}
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"marble-solitaire"}, args...))
	return out.String(), err
}

func TestEnglishQuit(t *testing.T) {
	out, err := runApp(t, "q", "english")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "    O O O\n    O O O\nO O O O O O O\nO O O _ O O O\n"), out)
	assert.Contains(t, out, "Game quit!")
	assert.Contains(t, out, "Score: 32")
}

func TestTriangleWithSizeAndHole(t *testing.T) {
	out, err := runApp(t, "q", "triangle", "--size", "4", "--hole", "3,2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "   O\n  O O\n O _ O\nO O O O\nScore: 9\n"), out)
}

func TestEuropeanSize(t *testing.T) {
	out, err := runApp(t, "q", "european", "--size", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 480")
}

func TestInvalidSize(t *testing.T) {
	_, err := runApp(t, "q", "english", "--size", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid size 4")
}

func TestInvalidHole(t *testing.T) {
	_, err := runApp(t, "q", "english", "--hole", "1,1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid empty cell position (0,0)")

	_, err = runApp(t, "q", "english", "--hole", "4")
	require.Error(t, err)
}

func TestDefaultCommandUsesConfig(t *testing.T) {
	out, err := runApp(t, "q")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 32")
}

func TestInputClosedIsNotAnError(t *testing.T) {
	out, err := runApp(t, "6 4 4 4", "english")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 31")
}
