package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryColorResolves(t *testing.T) {
	for _, name := range Supported() {
		th, err := New(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, th.TextClass(), name)
		// Same identifier, same token, every time.
		assert.Equal(t, th.TextClass(), th.TextClass())
	}
}

func TestPrimaryBlueMapsToBlue500(t *testing.T) {
	th, err := New("primary-blue")
	require.NoError(t, err)
	assert.Equal(t, "text-blue-500", th.TextClass())
}

func TestUnknownColorFailsConstruction(t *testing.T) {
	_, err := New("primary-chartreuse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary-chartreuse")
}

func TestTextClassNeverEmpty(t *testing.T) {
	// A nil or zero Theme still yields a usable class so templates never
	// render an empty token.
	var nilTheme *Theme
	assert.Equal(t, DefaultTextClass, nilTheme.TextClass())
	assert.Equal(t, DefaultTextClass, (&Theme{}).TextClass())
}

func TestSupportedIsSortedAndClosed(t *testing.T) {
	names := Supported()
	assert.Equal(t, []string{
		"primary-amber",
		"primary-blue",
		"primary-green",
		"primary-purple",
		"primary-rose",
	}, names)
}
