// Package rules declares the static text-rewrite tables applied to a
// decompiled package: manifest structural removals and smali protection
// bypasses. Rules are built once and never mutated.
package rules

import (
	"regexp"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const (
	// ManifestFileName is the decoded manifest at the root of a decompiled tree.
	ManifestFileName = "AndroidManifest.xml"
	// SmaliDirPrefix marks the directories holding bytecode disassembly.
	SmaliDirPrefix = "smali"
	// HookTargetFile is the class whose initializer loads the hook library.
	HookTargetFile = "VMRunner.smali"
	// HookLibraryName is the System.loadLibrary name of the default payload.
	HookLibraryName = "_Pairip_CoreX"
)

var baseSmaliTargets = []string{
	"SignatureCheck.smali",
	"LicenseClientV3.smali",
	"LicenseClient.smali",
	"Application.smali",
}

// SmaliTargets returns the class files the smali rules may touch for state.
func SmaliTargets(state m.JobState) []string {
	targets := append([]string(nil), baseSmaliTargets...)
	if state.HookActive() {
		targets = append(targets, HookTargetFile)
	}

	return targets
}

// All returns every rule, manifest rules first.
func All() []m.PatchRule {
	return append(Manifest(), Smali()...)
}

func hookActive(state m.JobState) bool {
	return state.HookActive()
}

func nativeLibsExtracted(state m.JobState) bool {
	return state.IsFlutterApp || state.HookActive()
}

func mustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}
