package textextract

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	t.Run(`txt passthrough check`, func(t *testing.T) {
		text, err := ExtractText("resume.txt", []byte("  Golang developer, 5 years\n"))
		require.Nil(t, err)
		require.Equal(t, "Golang developer, 5 years", text)
	})

	t.Run(`md passthrough check`, func(t *testing.T) {
		text, err := ExtractText("resume.MD", []byte("# Resume"))
		require.Nil(t, err)
		require.Equal(t, "# Resume", text)
	})

	t.Run(`unsupported format check`, func(t *testing.T) {
		_, err := ExtractText("resume.pdf", []byte("%PDF-1.4"))
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrUnsupportedFormat))
	})

	t.Run(`invalid utf8 check`, func(t *testing.T) {
		_, err := ExtractText("resume.txt", []byte{0xff, 0xfe, 0x00})
		require.NotNil(t, err)
	})
}
