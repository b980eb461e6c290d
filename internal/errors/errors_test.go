package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_WithCause_IncludesCategoryAndCause(t *testing.T) {
	err := Wrap(os.ErrPermission, CategoryFileSystem, "failed to write static file")

	require.Contains(t, err.Error(), "filesystem")
	require.Contains(t, err.Error(), "failed to write static file")
	require.True(t, stderrors.Is(err, os.ErrPermission))
}

func TestIsCategory_MatchingAndNonMatching(t *testing.T) {
	err := NotFound("content/missing.txt")

	require.True(t, IsCategory(err, CategoryNotFound))
	require.False(t, IsCategory(err, CategoryRoute))
	require.False(t, IsCategory(stderrors.New("plain"), CategoryNotFound))
}

func TestGetCategory_PlainError_FallsBackToInternal(t *testing.T) {
	require.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
	require.Equal(t, CategoryConfig, GetCategory(MalformedConfig(stderrors.New("bad"), "silkie.ini")))
}

func TestDuplicateRoute_CarriesSlugAndContext(t *testing.T) {
	err := DuplicateRoute("about").WithContext("source", "content/About.md")

	require.True(t, IsCategory(err, CategoryRoute))
	require.Contains(t, err.Error(), `"about"`)
	require.Equal(t, "content/About.md", err.Context["source"])
}
