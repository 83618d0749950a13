package workspace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ifml-editor-alpha/platformkit/workspace"
)

func caseFixture(t *testing.T) *workspace.Workspace {
	t.Helper()
	ws := workspace.NewMemory()
	require.NoError(t, ws.WriteFile("Project/Src/File.txt", strings.NewReader("x"), nil))
	require.NoError(t, ws.WriteFile("Project/readme.md", strings.NewReader("x"), nil))
	return ws
}

func TestMemberIgnoringCase(t *testing.T) {
	ws := caseFixture(t)

	tests := []struct {
		name   string
		dir    string
		member string
		want   string
		found  bool
	}{
		{"exact", "Project", "readme.md", "readme.md", true},
		{"variant", "Project", "README.MD", "readme.md", true},
		{"variant folder", ".", "project", "Project", true},
		{"missing", "Project", "nothing.txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := ws.MemberIgnoringCase(tt.dir, tt.member)
			require.NoError(t, err)
			require.Equal(t, tt.found, found)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFindCaseVariant(t *testing.T) {
	ws := caseFixture(t)

	got, found, err := ws.FindCaseVariant("project/src/file.txt", true)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Project/Src/File.txt", got)
}

func TestFindCaseVariant_ExactMatch(t *testing.T) {
	ws := caseFixture(t)

	// With acceptExact the existing path resolves to itself.
	got, found, err := ws.FindCaseVariant("Project/Src/File.txt", true)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Project/Src/File.txt", got)

	// Without it an exact match is not a variant.
	_, found, err = ws.FindCaseVariant("Project/Src/File.txt", false)
	require.NoError(t, err)
	require.False(t, found)
}

func TestFindCaseVariant_NoExistingVariant(t *testing.T) {
	ws := caseFixture(t)

	_, found, err := ws.FindCaseVariant("project/src/other.txt", true)
	require.NoError(t, err)
	require.False(t, found)
}

func TestExistingPaths(t *testing.T) {
	ws := caseFixture(t)

	paths, err := ws.ExistingPaths([]string{
		"Project/Src/File.txt",
		"Project/missing.txt",
		"Project/readme.md",
	}, false)

	require.NoError(t, err)
	require.Equal(t, []string{"Project/Src/File.txt", "Project/readme.md"}, paths)
}

func TestExistingPaths_IncludeAncestors(t *testing.T) {
	ws := caseFixture(t)

	paths, err := ws.ExistingPaths([]string{"Project/Src/File.txt"}, true)

	require.NoError(t, err)
	require.Equal(t, []string{"Project", "Project/Src", "Project/Src/File.txt"}, paths)
}

func TestExistingPaths_Deduplicates(t *testing.T) {
	ws := caseFixture(t)

	paths, err := ws.ExistingPaths([]string{
		"Project/readme.md",
		"Project/readme.md",
	}, false)

	require.NoError(t, err)
	require.Equal(t, []string{"Project/readme.md"}, paths)
}

func TestComparePaths(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "a/b", "a/b", 0},
		{"sibling order", "a/a", "a/b", -1},
		{"parent before child", "a", "a/b", -1},
		{"segment beats prefix", "a/bc", "a/b/c", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, workspace.ComparePaths(tt.a, tt.b))
			require.Equal(t, -tt.want, workspace.ComparePaths(tt.b, tt.a))
		})
	}
}

func TestSortPaths(t *testing.T) {
	paths := []string{"b", "a/c", "a", "a/b/d", "a/b"}

	workspace.SortPaths(paths)

	require.Equal(t, []string{"a", "a/b", "a/b/d", "a/c", "b"}, paths)
}
