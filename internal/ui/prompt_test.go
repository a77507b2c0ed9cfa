package ui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestPromptUsername(t *testing.T) {
	var out bytes.Buffer

	name, err := PromptUsername(&out, reader("hydra\n"))
	require.NoError(t, err)
	assert.Equal(t, "hydra", name)

	// Trailing newline is optional on the last line of a pipe.
	name, err = PromptUsername(&out, reader("hydra"))
	require.NoError(t, err)
	assert.Equal(t, "hydra", name)
}

func TestPromptUsernameSurfacesClosedInput(t *testing.T) {
	var out bytes.Buffer

	// Exhausted stdin must error out instead of yielding empty names forever.
	_, err := PromptUsername(&out, reader(""))
	assert.Error(t, err)

	r := reader("hydra\n")
	_, err = PromptUsername(&out, r)
	require.NoError(t, err)
	_, err = PromptUsername(&out, r)
	assert.Error(t, err)
}

func TestPromptMenu(t *testing.T) {
	var out bytes.Buffer

	assert.Equal(t, MenuModify, PromptMenu(&out, reader("m\n")))
	assert.Equal(t, MenuQuit, PromptMenu(&out, reader("q\n")))
	assert.Equal(t, MenuNewScan, PromptMenu(&out, reader("whatever\n")))
	assert.Equal(t, MenuQuit, PromptMenu(&out, reader("")))
}

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer

	assert.Equal(t, "new", PromptLine(&out, reader("new\n"), "Threads", "old"))
	assert.Equal(t, "old", PromptLine(&out, reader("\n"), "Threads", "old"))
	assert.Equal(t, "old", PromptLine(&out, reader(""), "Threads", "old"))
}