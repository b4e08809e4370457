// asset resolves resource paths and loads images and fonts for a lesson
package asset

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvResourcePath overrides where the "res" directory is looked for
const EnvResourcePath = "LESSON_RES_PATH"

// Resolver turns a lesson's logical file names into paths on disk
type Resolver struct {
	// Root is the "res" directory
	Root string
}

// DefaultResolver finds the "res" directory next to the executable. If the
// executable lives in a "bin" directory, "res" is expected beside "bin".
func DefaultResolver() Resolver {
	if root := os.Getenv(EnvResourcePath); root != "" {
		return Resolver{Root: root}
	}
	exe, err := os.Executable()
	if err != nil {
		return Resolver{Root: "res"}
	}
	return Resolver{Root: resourceRoot(filepath.Dir(exe))}
}

func resourceRoot(exeDir string) string {
	if filepath.Base(exeDir) == "bin" {
		return filepath.Join(filepath.Dir(exeDir), "res")
	}
	return filepath.Join(exeDir, "res")
}

// Dir returns the resource directory of subDir with a trailing separator
func (r Resolver) Dir(subDir string) string {
	dir := filepath.Join(r.Root, subDir)
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return dir
}

// Resolve returns the path of name inside subDir
func (r Resolver) Resolve(subDir, name string) string {
	return filepath.Join(r.Root, subDir, name)
}
