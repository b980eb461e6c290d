package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers_ProduceCanonicalKeys(t *testing.T) {
	require.Equal(t, KeySlug, Slug("about").Key)
	require.Equal(t, "about", Slug("about").Value.String())
	require.Equal(t, KeyPath, Path("content/about.md").Key)
	require.Equal(t, KeyCount, Count(3).Key)
}

func TestError_NilError_ProducesEmptyValue(t *testing.T) {
	require.Equal(t, "", Error(nil).Value.String())
	require.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}
