package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"apkrepack.dev/pkg/apkrepack/internal/adapter"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// ToolOp is a decompiler sub-command.
type ToolOp string

// Decompiler operations.
const (
	OpDecompile ToolOp = "d"
	OpBuild     ToolOp = "b"
	OpMerge     ToolOp = "m"
	OpRefactor  ToolOp = "x"
	OpProtect   ToolOp = "p"
	OpInfo      ToolOp = "info"
)

const dexBackend = "jf"

var toolOpAliases = map[string]ToolOp{
	"decompile": OpDecompile,
	"d":         OpDecompile,
	"build":     OpBuild,
	"b":         OpBuild,
	"merge":     OpMerge,
	"m":         OpMerge,
	"refactor":  OpRefactor,
	"x":         OpRefactor,
	"protect":   OpProtect,
	"p":         OpProtect,
	"info":      OpInfo,
}

// ParseToolOp accepts an operation name or its short alias.
func ParseToolOp(name string) (ToolOp, error) {
	op, ok := toolOpAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown operation %q (want one of %s)", name, strings.Join(ToolOpNames(), ", "))
	}

	return op, nil
}

// ToolOpNames lists the accepted operation names.
func ToolOpNames() []string {
	names := make([]string, 0, len(toolOpAliases))
	for name := range toolOpAliases {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

var packageIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)

// DecompilerTool builds command lines for the jar-packaged decompiler.
type DecompilerTool struct {
	Java string
	Jar  m.Path
}

// Command runs op with args through the java runtime.
func (t DecompilerTool) Command(op ToolOp, args ...string) adapter.Command {
	return adapter.Command{
		Name: t.Java,
		Args: append([]string{"-jar", string(t.Jar), string(op)}, args...),
	}
}

// VersionCheck asks the java runtime for its version.
func (t DecompilerTool) VersionCheck() adapter.Command {
	return adapter.Command{Name: t.Java, Args: []string{"-version"}}
}

// Merge combines split archives into one package.
func (t DecompilerTool) Merge(input, output m.Path, extractNativeLibs bool) adapter.Command {
	args := []string{"-i", string(input), "-f", "-o", string(output)}
	if extractNativeLibs {
		args = append(args, "-extractNativeLibs", "true")
	}

	return t.Command(OpMerge, args...)
}

// PackageInfo prints the package id of an archive.
func (t DecompilerTool) PackageInfo(input m.Path) adapter.Command {
	return t.Command(OpInfo, "-package", "-i", string(input))
}

// Decompile unpacks an archive into dir without debug line info.
func (t DecompilerTool) Decompile(input, dir m.Path) adapter.Command {
	return t.Command(OpDecompile, "-i", string(input), "-o", string(dir), "-f", "-no-dex-debug", "-dex-lib", dexBackend)
}

// Build packs dir into output.
func (t DecompilerTool) Build(dir, output m.Path, extractNativeLibs bool) adapter.Command {
	args := []string{"-i", string(dir), "-o", string(output), "-f", "-dex-lib", dexBackend}
	if extractNativeLibs {
		args = append(args, "-extractNativeLibs", "true")
	}

	return t.Command(OpBuild, args...)
}

// ParsePackageName extracts the package id from info output. The id is
// usually wrapped in double quotes; otherwise the last token of the first
// line mentioning "package" is used.
func ParsePackageName(output string) (string, bool) {
	if start := strings.IndexByte(output, '"'); start >= 0 {
		if end := strings.IndexByte(output[start+1:], '"'); end >= 0 {
			candidate := strings.TrimSpace(output[start+1 : start+1+end])
			if packageIDPattern.MatchString(candidate) {
				return candidate, true
			}
		}
	}

	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(strings.ToLower(line), "package") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '=' || r == ':' || r == '\''
		})
		if len(fields) == 0 {
			continue
		}

		candidate := fields[len(fields)-1]
		if packageIDPattern.MatchString(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// IsPackageID reports whether id looks like an Android package id.
func IsPackageID(id string) bool {
	return packageIDPattern.MatchString(id)
}
