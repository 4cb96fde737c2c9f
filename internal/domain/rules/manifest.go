package rules

import (
	"strings"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

var (
	extractNativeLibsAttr = mustCompile(`\s+android:extractNativeLibs="[^"]*"`)
	tagEnd                = mustCompile(`\s*/?>$`)
)

var manifestRules = []m.PatchRule{
	{
		Phase:       m.PhaseManifest,
		Description: "remove split type attributes",
		Pattern:     mustCompile(`\s+android:(splitTypes|requiredSplitTypes)="[^"]*?"`),
		Replacement: "",
	},
	{
		Phase:       m.PhaseManifest,
		Description: "clear isSplitRequired",
		Pattern:     mustCompile(`(isSplitRequired=)"true"`),
		Replacement: `${1}"false"`,
	},
	{
		Phase:       m.PhaseManifest,
		Description: "remove vending and stamp meta-data",
		Pattern:     mustCompile(`\s+<meta-data\s+[^>]*"com\.android\.(vending\.|stamp\.|dynamic\.apk\.)[^"]*"[^>]*/>`),
		Replacement: "",
	},
	{
		Phase:       m.PhaseManifest,
		Description: "remove license check declarations",
		Pattern:     mustCompile(`\s+<[^>]*"com\.(pairip\.licensecheck|android\.vending\.CHECK_LICENSE)[^"]*"[^>]*/>`),
		Replacement: "",
	},
	{
		Phase:       m.PhaseManifest,
		Description: "force extractNativeLibs",
		Pattern:     mustCompile(`<application\b[^>]*>`),
		Rewrite:     forceExtractNativeLibs,
		AppliesWhen: nativeLibsExtracted,
	},
}

// Manifest returns the manifest rules in application order.
func Manifest() []m.PatchRule {
	return append([]m.PatchRule(nil), manifestRules...)
}

// forceExtractNativeLibs rewrites an <application> start tag so it declares
// extractNativeLibs="true" exactly once, as the last attribute.
func forceExtractNativeLibs(tag string) string {
	cleaned := extractNativeLibsAttr.ReplaceAllString(tag, "")

	loc := tagEnd.FindStringIndex(cleaned)
	if loc == nil {
		return tag
	}

	closing := strings.TrimSpace(cleaned[loc[0]:])

	return cleaned[:loc[0]] + "\n\tandroid:extractNativeLibs=\"true\"" + closing
}
