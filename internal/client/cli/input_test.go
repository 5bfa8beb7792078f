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
	t.Run("reads one trimmed line", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := bufio.NewReader(strings.NewReader("  eve.holt@reqres.in  \nnext\n"))

		got, err := GetSimpleText(r, "Email (required)", out)
		require.NoError(t, err)
		assert.Equal(t, "eve.holt@reqres.in", got)
		assert.Contains(t, out.String(), "Email (required)")
	})

	t.Run("partial line before EOF is returned", func(t *testing.T) {
		r := bufio.NewReader(strings.NewReader("no-newline"))

		got, err := GetSimpleText(r, "Email", io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "no-newline", got)
	})

	t.Run("empty input at EOF is an error", func(t *testing.T) {
		r := bufio.NewReader(strings.NewReader(""))

		_, err := GetSimpleText(r, "Email", io.Discard)
		require.Error(t, err)
	})
}

func TestGetPassword(t *testing.T) {
	t.Run("returns terminal input", func(t *testing.T) {
		orig := readPassword
		readPassword = func(fd int) ([]byte, error) { return []byte("cityslicka"), nil }
		t.Cleanup(func() { readPassword = orig })

		out := &bytes.Buffer{}
		pw, err := GetPassword(out)
		require.NoError(t, err)
		assert.Equal(t, "cityslicka", string(pw))
		assert.Contains(t, out.String(), "Password")
	})

	t.Run("propagates terminal errors", func(t *testing.T) {
		orig := readPassword
		readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
		t.Cleanup(func() { readPassword = orig })

		_, err := GetPassword(io.Discard)
		require.Error(t, err)
	})
}
