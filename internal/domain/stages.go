package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"apkrepack.dev/pkg/apkrepack/internal/domain/rules"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const (
	hookArch          = "arm64-v8a"
	disguisedHookName = "libFirebaseCppApp.so"
	baseEntryName     = "base.apk"
)

func (r *run) dependencyCheck(ctx context.Context) m.StageResult {
	cmd := r.p.decomp.VersionCheck()

	result, err := r.p.runner.Run(ctx, cmd)
	if err != nil || result.ExitCode != 0 {
		r.emit(m.LevelError, "Java is not installed or not on PATH")
		r.emit(m.LevelInfo, "Install Java and run the command again in a new shell")

		if err != nil {
			return m.Fail(fmt.Sprintf("java runtime unavailable: %v", err))
		}

		return m.Fail(fmt.Sprintf("java runtime unavailable: exit code %d", result.ExitCode))
	}

	version := firstLine(result.Combined())
	if version != "" {
		r.emit(m.LevelDebug, "%s", version)
	}

	if !r.p.fs.Exists(r.job.InputArchivePath) {
		return m.Fail(fmt.Sprintf("input archive %s not found", r.job.InputArchivePath))
	}

	if err := r.p.fs.MkdirAll(r.p.cfg.WorkDir); err != nil {
		return m.Fail(fmt.Sprintf("create work dir: %v", err))
	}

	return m.Ok("java runtime available")
}

func (r *run) merge(ctx context.Context) m.StageResult {
	cmd := r.p.decomp.Merge(r.job.InputArchivePath, r.ws.MergedPath, r.job.UseNativeHook)
	return r.stream(ctx, cmd, "merge")
}

func (r *run) scan(ctx context.Context) m.StageResult {
	name, err := r.readPackageName(ctx)
	if err != nil {
		return m.Fail(err.Error())
	}

	r.packageName = name
	r.emit(m.LevelInfo, "Package: %s", name)

	flutter, err := r.p.inspector.ContainsFlutterLibrary(r.ws.MergedPath)
	if err != nil {
		r.emit(m.LevelWarn, "Could not list archive entries: %v", err)
	}

	r.state.IsFlutterApp = flutter
	if flutter {
		r.emit(m.LevelInfo, "Flutter app detected")
	}

	return m.Ok("package " + name)
}

// readPackageName asks the decompiler first and falls back to parsing the
// binary manifest.
func (r *run) readPackageName(ctx context.Context) (string, error) {
	result, err := r.p.runner.Run(ctx, r.p.decomp.PackageInfo(r.ws.MergedPath))
	if err == nil && result.ExitCode == 0 {
		if name, ok := ParsePackageName(result.Stdout); ok {
			return name, nil
		}
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	r.emit(m.LevelDebug, "info output not parseable, reading manifest directly")

	name, manifestErr := r.p.inspector.PackageName(r.ws.MergedPath)
	if manifestErr == nil && IsPackageID(name) {
		return name, nil
	}

	return "", fmt.Errorf("cannot determine package name: %w", errors.Join(err, manifestErr))
}

func (r *run) decompile(ctx context.Context) m.StageResult {
	if err := r.p.fs.RemoveAll(r.ws.DecompiledDir); err != nil {
		return m.Fail(fmt.Sprintf("clear %s: %v", r.ws.DecompiledDir, err))
	}

	result := r.stream(ctx, r.p.decomp.Decompile(r.ws.MergedPath, r.ws.DecompiledDir), "decompile")
	if !result.OK {
		if err := r.p.fs.RemoveAll(r.ws.DecompiledDir); err != nil {
			r.emit(m.LevelWarn, "Could not remove %s: %v", r.ws.DecompiledDir, err)
		}
	}

	return result
}

func (r *run) hookLibDir() m.Path {
	return r.ws.DecompiledDir.Join("root", "lib", hookArch)
}

func (r *run) hookCheck(_ context.Context) m.StageResult {
	libDir := r.hookLibDir()
	if !r.p.fs.IsDir(libDir) {
		return m.Fail(fmt.Sprintf("native hook supports only %s and the package has no such libraries", hookArch))
	}

	var present []string

	for _, name := range []string{r.p.tools.HookPayloadPath.Base(), disguisedHookName} {
		if r.p.fs.Exists(libDir.Join(name)) {
			present = append(present, name)
		}
	}

	if len(present) > 0 {
		return m.Fail("hook already present: " + strings.Join(present, ", "))
	}

	r.hookOK = true

	return m.Ok(hookArch + " libraries found")
}

func (r *run) hookInject(ctx context.Context) m.StageResult {
	entry, err := r.baseEntry()
	if err != nil {
		return m.Fail(fmt.Sprintf("inspect input archive: %v", err))
	}

	libDir := r.hookLibDir()
	disguised := libDir.Join(disguisedHookName)

	defer func() {
		if err := r.p.fs.RemoveAll(r.ws.HookScratchDir); err != nil {
			r.emit(m.LevelWarn, "Could not remove %s: %v", r.ws.HookScratchDir, err)
		}
	}()

	extracted, err := r.p.extractor.ExtractEntry(ctx, r.job.InputArchivePath, entry, r.ws.HookScratchDir)
	if err != nil {
		return m.Fail(fmt.Sprintf("extract %s: %v", entry, err))
	}

	r.emit(m.LevelInfo, "Extracted %s", entry)

	if err := r.p.fs.Move(extracted, disguised); err != nil {
		return m.Fail(fmt.Sprintf("move %s: %v", entry, err))
	}

	payload := libDir.Join(r.p.tools.HookPayloadPath.Base())
	if err := r.p.fs.CopyFile(r.p.tools.HookPayloadPath, payload); err != nil {
		_ = r.p.fs.RemoveAll(disguised)
		return m.Fail(fmt.Sprintf("copy hook payload: %v", err))
	}

	r.state.IsHookApplied = true
	r.emit(m.LevelInfo, "Hook %s -> %s", disguisedHookName, hookArch)
	r.emit(m.LevelInfo, "Hook %s -> %s", payload.Base(), hookArch)

	return m.Ok("hook injected")
}

// baseEntry picks the base package entry of the input archive.
func (r *run) baseEntry() (string, error) {
	ok, err := r.p.inspector.HasEntry(r.job.InputArchivePath, baseEntryName)
	if err != nil {
		return "", err
	}

	if ok {
		return baseEntryName, nil
	}

	return r.packageName + ".apk", nil
}

func (r *run) patchOptions() []PatchOption {
	if r.job.Verbose {
		return []PatchOption{WithDiff()}
	}

	return nil
}

func (r *run) reportPatches(result PatchResult) {
	for _, applied := range result.Applied {
		r.emit(m.LevelInfo, "Patch %s -> %s", applied.Description, applied.File)

		if applied.Diff == "" {
			continue
		}

		for _, line := range strings.Split(strings.TrimRight(applied.Diff, "\n"), "\n") {
			r.emit(m.LevelDebug, "%s", line)
		}
	}
}

func (r *run) manifestPatch(ctx context.Context) m.StageResult {
	manifest := r.ws.DecompiledDir.Join(rules.ManifestFileName)
	if !r.p.fs.Exists(manifest) {
		return m.Fail(rules.ManifestFileName + " not found")
	}

	result, err := r.p.patcher.ApplyRules(ctx, []m.Path{manifest}, rules.Manifest(), r.state, r.patchOptions()...)
	r.reportPatches(result)

	if err != nil {
		return m.Fail(fmt.Sprintf("patch %s: %v", rules.ManifestFileName, err))
	}

	return m.Ok(fmt.Sprintf("%d manifest rules applied", len(result.Applied)))
}

func (r *run) smaliPatch(ctx context.Context) m.StageResult {
	files, err := r.p.patcher.LocateFiles(ctx, r.ws.DecompiledDir, rules.SmaliDirPrefix, rules.SmaliTargets(r.state))
	if err != nil {
		return m.Fail(err.Error())
	}

	smali := rules.SmaliForHook(rules.LibraryName(r.p.tools.HookPayloadPath.Base()))

	result, err := r.p.patcher.ApplyRules(ctx, files, smali, r.state, r.patchOptions()...)
	r.reportPatches(result)

	switch {
	case errors.Is(err, m.ErrNoTargetFiles):
		return m.Fail(err.Error())
	case err != nil:
		return m.Fail(fmt.Sprintf("some patches failed: %v", err))
	}

	modified := result.Modified()
	if len(modified) == 0 {
		r.emit(m.LevelWarn, "No smali patches applied")
		return m.Ok("no changes needed")
	}

	return m.Ok("patched " + strings.Join(modified, ", "))
}

func (r *run) recompile(ctx context.Context) m.StageResult {
	cmd := r.p.decomp.Build(r.ws.DecompiledDir, r.ws.OutputPath, r.state.IsFlutterApp)

	result := r.stream(ctx, cmd, "build")
	if !result.OK {
		return result
	}

	if !r.p.fs.Exists(r.ws.OutputPath) {
		return m.Fail(fmt.Sprintf("build produced no file at %s", r.ws.OutputPath))
	}

	r.emit(m.LevelInfo, "Created %s", r.ws.OutputPath)

	return m.Ok("build succeeded")
}

// integritySkip reports the checksum of the rebuilt archive. No signature
// block is restored; the output must be signed separately.
func (r *run) integritySkip(_ context.Context) m.StageResult {
	if sum, err := r.p.fs.HashFile(r.ws.OutputPath); err == nil {
		r.emit(m.LevelInfo, "SHA-256 %s", sum)
	} else {
		r.emit(m.LevelDebug, "Could not hash output: %v", err)
	}

	signed, err := r.p.inspector.HasSignature(r.ws.OutputPath)
	switch {
	case err != nil:
		r.emit(m.LevelDebug, "Could not read signature block: %v", err)
	case signed:
		r.emit(m.LevelInfo, "Output carries a v1 signature block")
	default:
		r.emit(m.LevelInfo, "Output is unsigned")
	}

	return m.Ok("skipped, sign the output as a separate step")
}

func (r *run) cleanup(_ context.Context) m.StageResult {
	targets := []struct {
		path m.Path
		what string
	}{
		{r.ws.DecompiledDir, "decompiled directory"},
		{r.ws.MergedPath, "merged archive"},
		{r.ws.HookScratchDir, "hook scratch directory"},
	}

	for _, target := range targets {
		if target.path == "" || !r.p.fs.Exists(target.path) {
			continue
		}

		if err := r.p.fs.RemoveAll(target.path); err != nil {
			r.emit(m.LevelWarn, "Could not remove %s %s: %v", target.what, target.path, err)
			continue
		}

		r.emit(m.LevelInfo, "Removed %s", target.what)
	}

	return m.Ok("temporary files removed")
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}
