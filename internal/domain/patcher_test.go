package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apkrepack.dev/pkg/apkrepack/internal/adapter"
	"apkrepack.dev/pkg/apkrepack/internal/domain"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path m.Path) string {
	t.Helper()

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)

	return string(data)
}

func newTestPatcher() domain.Patcher {
	return domain.NewPatcher(adapter.NewLocalWorkspaceFS())
}

func TestPatcher_LocateFiles_OnlyUnderPrefixedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "smali", "com", "pairip", "SignatureCheck.smali"), "a")
	writeFile(t, filepath.Join(root, "smali_classes2", "com", "demo", "Application.smali"), "b")
	writeFile(t, filepath.Join(root, "resources", "Application.smali"), "c")
	writeFile(t, filepath.Join(root, "SignatureCheck.smali"), "d")
	writeFile(t, filepath.Join(root, "smali", "Other.smali"), "e")

	files, err := newTestPatcher().LocateFiles(context.Background(), m.Path(root), "smali",
		[]string{"SignatureCheck.smali", "Application.smali"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []m.Path{
		m.Path(filepath.Join(root, "smali", "com", "pairip", "SignatureCheck.smali")),
		m.Path(filepath.Join(root, "smali_classes2", "com", "demo", "Application.smali")),
	}, files)
}

func TestPatcher_LocateFiles_EmptyPrefixSearchesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "AndroidManifest.xml"), "<manifest/>")
	writeFile(t, filepath.Join(root, "res", "AndroidManifest.xml"), "<manifest/>")

	files, err := newTestPatcher().LocateFiles(context.Background(), m.Path(root), "", []string{"AndroidManifest.xml"})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestPatcher_LocateFiles_MissingRoot(t *testing.T) {
	_, err := newTestPatcher().LocateFiles(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")), "smali", []string{"a"})
	assert.Error(t, err)
}

func TestPatcher_ApplyRules_NoFiles(t *testing.T) {
	result, err := newTestPatcher().ApplyRules(context.Background(), nil, []m.PatchRule{{Pattern: regexp.MustCompile("x")}}, m.JobState{})
	require.ErrorIs(t, err, m.ErrNoTargetFiles)
	assert.Empty(t, result.Modified())
}

func TestPatcher_ApplyRules_RulesOuterFilesInner(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "smali", "A.smali")
	second := filepath.Join(root, "smali", "B.smali")
	writeFile(t, first, "alpha")
	writeFile(t, second, "alpha")

	rules := []m.PatchRule{
		{Description: "alpha to beta", Pattern: regexp.MustCompile("alpha"), Replacement: "beta"},
		{Description: "beta to gamma", Pattern: regexp.MustCompile("beta"), Replacement: "gamma"},
	}

	result, err := newTestPatcher().ApplyRules(context.Background(), []m.Path{m.Path(first), m.Path(second)}, rules, m.JobState{})
	require.NoError(t, err)

	assert.Equal(t, "gamma", readFile(t, m.Path(first)))
	assert.Equal(t, "gamma", readFile(t, m.Path(second)))

	require.Len(t, result.Applied, 4)
	assert.Equal(t, []string{"alpha to beta", "alpha to beta", "beta to gamma", "beta to gamma"}, []string{
		result.Applied[0].Description,
		result.Applied[1].Description,
		result.Applied[2].Description,
		result.Applied[3].Description,
	})
	assert.Equal(t, []string{"A.smali", "B.smali"}, result.Modified())
}

func TestPatcher_ApplyRules_RespectsTargetsAndPredicates(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "smali", "VMRunner.smali")
	other := filepath.Join(root, "smali", "Application.smali")
	writeFile(t, target, "hook-here")
	writeFile(t, other, "hook-here")

	rules := []m.PatchRule{
		{
			Description:     "targeted",
			Pattern:         regexp.MustCompile("hook-here"),
			Replacement:     "hooked",
			TargetFileNames: []string{"VMRunner.smali"},
		},
		{
			Description: "gated",
			Pattern:     regexp.MustCompile("hook"),
			Replacement: "never",
			AppliesWhen: func(s m.JobState) bool { return s.IsFlutterApp },
		},
	}

	result, err := newTestPatcher().ApplyRules(context.Background(), []m.Path{m.Path(target), m.Path(other)}, rules, m.JobState{})
	require.NoError(t, err)

	assert.Equal(t, "hooked", readFile(t, m.Path(target)))
	assert.Equal(t, "hook-here", readFile(t, m.Path(other)))
	assert.Equal(t, []string{"VMRunner.smali"}, result.Modified())
}

func TestPatcher_ApplyRules_Idempotent(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "smali", "SignatureCheck.smali")
	writeFile(t, file, ".method a()V\n    .locals 1\n    invoke-static {}, LX;->check()V\n    return-void\n.end method\n")

	rules := []m.PatchRule{{
		Description: "empty body",
		Pattern:     regexp.MustCompile(`(\.method a\(\)V\n)(?:    [^\n]*\n)+?(\.end method)`),
		Replacement: "${1}    .locals 0\n    return-void\n${2}",
	}}

	p := newTestPatcher()
	files := []m.Path{m.Path(file)}

	first, err := p.ApplyRules(context.Background(), files, rules, m.JobState{})
	require.NoError(t, err)
	assert.Len(t, first.Applied, 1)

	patched := readFile(t, m.Path(file))

	second, err := p.ApplyRules(context.Background(), files, rules, m.JobState{})
	require.NoError(t, err)
	assert.Empty(t, second.Applied)
	assert.Equal(t, patched, readFile(t, m.Path(file)))
}

func TestPatcher_ApplyRules_WithDiff(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "AndroidManifest.xml")
	writeFile(t, file, "<a>\n<b split=\"x\"/>\n</a>\n")

	rules := []m.PatchRule{{
		Description: "drop split",
		Pattern:     regexp.MustCompile(` split="[^"]*"`),
	}}

	result, err := newTestPatcher().ApplyRules(context.Background(), []m.Path{m.Path(file)}, rules, m.JobState{}, domain.WithDiff())
	require.NoError(t, err)
	require.Len(t, result.Applied, 1)

	diff := result.Applied[0].Diff
	assert.Contains(t, diff, "--- a/AndroidManifest.xml")
	assert.Contains(t, diff, "+++ b/AndroidManifest.xml")
	assert.Contains(t, diff, "-<b split=\"x\"/>")
	assert.Contains(t, diff, "+<b/>")
}

func TestPatcher_ApplyRules_ReadErrorDoesNotStopOtherFiles(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "smali", "Good.smali")
	writeFile(t, good, "old")
	missing := filepath.Join(root, "smali", "Missing.smali")

	rules := []m.PatchRule{{Description: "old to new", Pattern: regexp.MustCompile("old"), Replacement: "new"}}

	result, err := newTestPatcher().ApplyRules(context.Background(), []m.Path{m.Path(missing), m.Path(good)}, rules, m.JobState{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, m.ErrNoTargetFiles)
	assert.Equal(t, "new", readFile(t, m.Path(good)))
	assert.Equal(t, []string{"Good.smali"}, result.Modified())
}

func TestPatcher_ApplyRules_Cancelled(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "A.smali")
	writeFile(t, file, "old")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rules := []m.PatchRule{{Pattern: regexp.MustCompile("old"), Replacement: "new"}}

	_, err := newTestPatcher().ApplyRules(ctx, []m.Path{m.Path(file)}, rules, m.JobState{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "old", readFile(t, m.Path(file)))
}
