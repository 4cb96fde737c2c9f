package adapter

import (
	"archive/zip"
	"strings"

	"github.com/shogo82148/androidbinary/apk"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const (
	nativeLibPrefix  = "lib/"
	flutterLibSuffix = "libflutter.so"
	signatureDir     = "META-INF/"
)

var signatureExts = []string{".rsa", ".dsa", ".ec", ".sf"}

// ApkInspector reads metadata from an Android package without unpacking it.
type ApkInspector interface {
	// ContainsFlutterLibrary reports whether any native library entry is the
	// Flutter engine.
	ContainsFlutterLibrary(archive m.Path) (bool, error)

	// PackageName parses the binary manifest and returns the package id.
	PackageName(archive m.Path) (string, error)

	// HasSignature reports whether the archive carries a v1 signature block.
	HasSignature(archive m.Path) (bool, error)

	// HasEntry reports whether the archive contains an entry with this exact name.
	HasEntry(archive m.Path, name string) (bool, error)
}

// LocalApkInspector implements ApkInspector on top of archive/zip and
// androidbinary.
type LocalApkInspector struct{}

// NewLocalApkInspector constructs a LocalApkInspector.
func NewLocalApkInspector() *LocalApkInspector {
	return &LocalApkInspector{}
}

// ContainsFlutterLibrary implements ApkInspector.
func (LocalApkInspector) ContainsFlutterLibrary(archive m.Path) (bool, error) {
	return anyEntry(archive, func(name string) bool {
		return strings.HasPrefix(name, nativeLibPrefix) && strings.HasSuffix(name, flutterLibSuffix)
	})
}

// PackageName implements ApkInspector.
func (LocalApkInspector) PackageName(archive m.Path) (string, error) {
	pkg, err := apk.OpenFile(string(archive))
	if err != nil {
		return "", err
	}

	defer func() { _ = pkg.Close() }()

	return pkg.PackageName(), nil
}

// HasSignature implements ApkInspector.
func (LocalApkInspector) HasSignature(archive m.Path) (bool, error) {
	return anyEntry(archive, func(name string) bool {
		upper := strings.ToUpper(name)
		if !strings.HasPrefix(upper, signatureDir) {
			return false
		}

		lower := strings.ToLower(name)
		for _, ext := range signatureExts {
			if strings.HasSuffix(lower, ext) {
				return true
			}
		}

		return false
	})
}

// HasEntry implements ApkInspector.
func (LocalApkInspector) HasEntry(archive m.Path, name string) (bool, error) {
	return HasEntry(archive, name)
}

func anyEntry(archive m.Path, match func(name string) bool) (bool, error) {
	reader, err := zip.OpenReader(string(archive))
	if err != nil {
		return false, err
	}

	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		if match(file.Name) {
			return true, nil
		}
	}

	return false, nil
}
