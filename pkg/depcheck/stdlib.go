package depcheck

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed stdlib.txt
var stdlibList string

var stdlibPackages = sync.OnceValue(func() map[string]bool {
	return parsePackageList(stdlibList)
})

// StdlibResolver resolves standard library import paths from a list
// compiled into the binary, so it works on hosts without a Go toolchain.
type StdlibResolver struct {
	Packages map[string]bool // defaults to the embedded list
}

// Resolve reports whether name is a standard library package.
func (r *StdlibResolver) Resolve(name string) error {
	pkgs := r.Packages
	if pkgs == nil {
		pkgs = stdlibPackages()
	}
	if pkgs[name] {
		return nil
	}
	return fmt.Errorf("%s is not a standard library package", name)
}

// parsePackageList reads one import path per line. Blank lines and lines
// starting with # are skipped.
func parsePackageList(s string) map[string]bool {
	pkgs := make(map[string]bool)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pkgs[line] = true
	}
	return pkgs
}
