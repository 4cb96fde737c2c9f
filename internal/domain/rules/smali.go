package rules

import (
	"regexp"
	"strconv"
	"strings"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

var clinitHeader = mustCompile(`^(\.method [^<\n]*<clinit>\(\)V\s+\.locals )(\d+)`)

var smaliRules = []m.PatchRule{
	{
		Phase:       m.PhaseSmali,
		Description: "neutralize verifyIntegrity call site",
		Pattern:     mustCompile(`invoke-static \{[^\}]*\}, Lcom/pairip/SignatureCheck;->verifyIntegrity\(Landroid/content/Context;\)V`),
		Replacement: "# verifyIntegrity call removed",
	},
	emptyVoidMethod("empty verifyIntegrity body", `verifyIntegrity\(Landroid/content/Context;\)V`),
	{
		Phase:       m.PhaseSmali,
		Description: "force verifySignatureMatches to return true",
		Pattern:     mustCompile(`(\.method [^(]*verifySignatureMatches\(Ljava/lang/String;\)Z\s+\.locals \d+)[\s\S]*?(\s+return ([pv]\d+)\n\.end method)`),
		Replacement: "${1}\n    const/4 ${3}, 0x1${2}",
	},
	emptyVoidMethod("empty connectToLicensingService body", `connectToLicensingService\(\)V`),
	emptyVoidMethod("empty initializeLicenseCheck body", `initializeLicenseCheck\(\)V`),
	emptyVoidMethod("empty processResponse body", `processResponse\(ILandroid/os/Bundle;\)V`),
}

// Smali returns the smali rules in application order, loading the default
// hook library.
func Smali() []m.PatchRule {
	return SmaliForHook(HookLibraryName)
}

// SmaliForHook returns the smali rules with the static initializer loading
// library, the System.loadLibrary name of the hook payload.
func SmaliForHook(library string) []m.PatchRule {
	return append(append([]m.PatchRule(nil), smaliRules...), loadLibraryRule(library))
}

// LibraryName maps a payload file name such as lib_Pairip_CoreX.so to the
// name System.loadLibrary expects. Names it cannot map yield HookLibraryName.
func LibraryName(payloadFile string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(payloadFile, "lib"), ".so")
	if name == "" || name == "." || strings.ContainsAny(name, `/\"`) {
		return HookLibraryName
	}

	return name
}

func loadLibraryRule(library string) m.PatchRule {
	return m.PatchRule{
		Phase:       m.PhaseSmali,
		Description: "load hook library from static initializer",
		Pattern:     mustCompile(`\.method [^<\n]*<clinit>\(\)V\s+\.locals \d+`),
		Rewrite: func(header string) string {
			return injectLoadLibrary(header, library)
		},
		Unless:          mustCompile(`const-string v0, "` + regexp.QuoteMeta(library) + `"`),
		TargetFileNames: []string{HookTargetFile},
		AppliesWhen:     hookActive,
	}
}

// emptyVoidMethod drops everything between the .locals directive and the
// final return-void of the named method.
func emptyVoidMethod(description, signature string) m.PatchRule {
	return m.PatchRule{
		Phase:       m.PhaseSmali,
		Description: description,
		Pattern:     mustCompile(`(\.method [^(]*` + signature + `\s+\.locals \d+)[\s\S]*?(\s+return-void\n\.end method)`),
		Replacement: "${1}${2}",
	}
}

// injectLoadLibrary appends a loadLibrary call to a <clinit> header, reserving
// the v0 register it needs.
func injectLoadLibrary(header, library string) string {
	parts := clinitHeader.FindStringSubmatch(header)
	if parts == nil {
		return header
	}

	locals, err := strconv.Atoi(parts[2])
	if err != nil {
		return header
	}

	if locals < 1 {
		locals = 1
	}

	return parts[1] + strconv.Itoa(locals) +
		"\n    const-string v0, \"" + library + "\"" +
		"\n    invoke-static {v0}, Ljava/lang/System;->loadLibrary(Ljava/lang/String;)V"
}
