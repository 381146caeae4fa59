package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	assert := require.New(t)

	names := map[string]bool{}
	for _, cmd := range NewRootCmd().Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"serve", "search", "list", "run", "version"} {
		assert.True(names[expected], "missing command %s", expected)
	}
}

func TestRunCommandWithArgument(t *testing.T) {
	assert := require.New(t)

	output, err := executeCommand("run", "base64-encode", "hello world")
	assert.NoError(err)
	assert.Equal("aGVsbG8gd29ybGQ=\n", output)
}

func TestRunCommandReadsStdin(t *testing.T) {
	assert := require.New(t)

	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader("hello"))
	root.SetArgs([]string{"run", "base64-encode"})

	assert.NoError(root.Execute())
	assert.Equal("aGVsbG8=\n", buf.String())
}

func TestRunCommandUnknownTool(t *testing.T) {
	assert := require.New(t)

	_, err := executeCommand("run", "no-such-tool", "x")
	assert.Error(err)
	assert.Contains(err.Error(), "unknown tool")
}

func TestRunCommandTransformError(t *testing.T) {
	assert := require.New(t)

	_, err := executeCommand("run", "base64-decode", "not base64!!!")
	assert.Error(err)
}

func TestSearchCommand(t *testing.T) {
	assert := require.New(t)

	output, err := executeCommand("search", "base64")
	assert.NoError(err)
	assert.Contains(output, "base64-encode")
	assert.Contains(output, "SCORE")
}

func TestSearchCommandNoResults(t *testing.T) {
	assert := require.New(t)

	output, err := executeCommand("search", "zzzzzz")
	assert.NoError(err)
	assert.Contains(output, "no results")
}

func TestListCommand(t *testing.T) {
	assert := require.New(t)

	output, err := executeCommand("list")
	assert.NoError(err)
	assert.Contains(output, "encoding")
	assert.Contains(output, "ciphers")

	output, err = executeCommand("list", "ciphers")
	assert.NoError(err)
	assert.Contains(output, "rot13")

	_, err = executeCommand("list", "no-such-category")
	assert.Error(err)
}
