package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apkrepack.dev/pkg/apkrepack/internal/domain"
)

func TestParseToolOp(t *testing.T) {
	tests := []struct {
		name    string
		want    domain.ToolOp
		wantErr bool
	}{
		{name: "decompile", want: domain.OpDecompile},
		{name: "d", want: domain.OpDecompile},
		{name: "Build", want: domain.OpBuild},
		{name: " m ", want: domain.OpMerge},
		{name: "refactor", want: domain.OpRefactor},
		{name: "p", want: domain.OpProtect},
		{name: "info", want: domain.OpInfo},
		{name: "sign", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseToolOp(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "decompile")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecompilerTool_Commands(t *testing.T) {
	tool := domain.DecompilerTool{Java: "java", Jar: "/opt/tools/APKEditor-1.4.2.jar"}

	assert.Equal(t, []string{"-version"}, tool.VersionCheck().Args)

	merge := tool.Merge("in.apks", "/w/in_merged.apk", false)
	assert.Equal(t, "java", merge.Name)
	assert.Equal(t, []string{"-jar", "/opt/tools/APKEditor-1.4.2.jar", "m", "-i", "in.apks", "-f", "-o", "/w/in_merged.apk"}, merge.Args)

	mergeHook := tool.Merge("in.apks", "/w/in_merged.apk", true)
	assert.Equal(t, []string{"-extractNativeLibs", "true"}, mergeHook.Args[len(mergeHook.Args)-2:])

	assert.Equal(t, "java -jar /opt/tools/APKEditor-1.4.2.jar info -package -i x.apk", tool.PackageInfo("x.apk").String())

	decompile := tool.Decompile("x.apk", "/w/x_decompiled")
	assert.Equal(t, []string{"-jar", "/opt/tools/APKEditor-1.4.2.jar", "d", "-i", "x.apk", "-o", "/w/x_decompiled", "-f", "-no-dex-debug", "-dex-lib", "jf"}, decompile.Args)

	build := tool.Build("/w/x_decompiled", "/out/x_Pairip.apk", true)
	assert.Equal(t, []string{"-jar", "/opt/tools/APKEditor-1.4.2.jar", "b", "-i", "/w/x_decompiled", "-o", "/out/x_Pairip.apk", "-f", "-dex-lib", "jf", "-extractNativeLibs", "true"}, build.Args)
}

func TestParsePackageName(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		ok     bool
	}{
		{name: "quoted", output: `package="com.example.app"`, want: "com.example.app", ok: true},
		{name: "quoted with log prefix", output: "I: Loading ...\npackage: \"com.demo.x\"\n", want: "com.demo.x", ok: true},
		{name: "bare token", output: "Package name: com.demo.bare\n", want: "com.demo.bare", ok: true},
		{name: "quoted garbage falls back", output: "\"not a package\"\npackage com.fallback.id", want: "com.fallback.id", ok: true},
		{name: "no package", output: "Exception in thread main", ok: false},
		{name: "single segment", output: `package="demo"`, ok: false},
		{name: "empty", output: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParsePackageName(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPackageID(t *testing.T) {
	assert.True(t, domain.IsPackageID("com.demo.x"))
	assert.True(t, domain.IsPackageID("a.b_c"))
	assert.False(t, domain.IsPackageID("com"))
	assert.False(t, domain.IsPackageID("1com.demo"))
	assert.False(t, domain.IsPackageID("com..demo"))
}

func TestToolOpNames(t *testing.T) {
	names := domain.ToolOpNames()
	assert.Contains(t, names, "decompile")
	assert.Contains(t, names, "info")
	assert.IsIncreasing(t, names)
}
