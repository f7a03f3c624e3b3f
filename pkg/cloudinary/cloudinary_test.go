package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712345678/KedaiJA/about-us/img_abc.jpg":       "KedaiJA/about-us/img_abc",
		"https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_1600,c_limit/KedaiJA/x/img.png": "KedaiJA/x/img",
		"https://res.cloudinary.com/demo/image/upload/sample.webp":                                    "sample",
	}
	for in, want := range cases {
		got, err := PublicIDFromURL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestPublicIDFromURLRejectsForeign(t *testing.T) {
	for _, in := range []string{
		"https://example.com/image/upload/x.jpg",
		"data:image/png;base64,AAAA",
		"https://res.cloudinary.com/demo/image/upload/",
	} {
		_, err := PublicIDFromURL(in)
		assert.ErrorIs(t, err, ErrNotCloudinaryURL, in)
	}
}
