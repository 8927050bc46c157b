package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  hello world \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("lastline")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	origRead, origTTY := readPassword, isTerminal
	readPassword = func(int) ([]byte, error) { return pw, err }
	isTerminal = func(int) bool { return tty }
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTTY })
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("abcd1234"), nil)

	in := bufio.NewReader(strings.NewReader("next command\n"))
	var out bytes.Buffer
	pw, err := GetPassword(in, "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", string(pw))
	assert.Equal(t, "Enter password: \n", out.String())

	rest, err := in.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "next command\n", rest, "buffered input must stay for the REPL")
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("read failed"))

	var out bytes.Buffer
	_, err := GetPassword(bufio.NewReader(strings.NewReader("")), "Enter password", &out)
	require.Error(t, err)
}

func TestGetPassword_PipedStdinReadsFromReader(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	in := bufio.NewReader(strings.NewReader("abcd1234\r\nlist\n"))
	var out bytes.Buffer
	pw, err := GetPassword(in, "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", string(pw))

	rest, err := in.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "list\n", rest)

	_, err = GetPassword(bufio.NewReader(strings.NewReader("")), "Enter password", &out)
	require.ErrorIs(t, err, io.EOF)
}
