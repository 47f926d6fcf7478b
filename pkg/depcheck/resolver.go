package depcheck

import (
	"errors"
	"fmt"
	"go/build"
	"runtime/debug"
)

// Resolver attempts to locate one dependency in the current environment.
// A nil error means the dependency is present.
type Resolver interface {
	Resolve(name string) error
}

// GoPackageResolver resolves import paths with the go/build package lookup.
type GoPackageResolver struct {
	Context *build.Context // defaults to build.Default
	Dir     string         // directory imports are resolved from; "" for none
}

// Resolve loads the package named by an import path.
func (r *GoPackageResolver) Resolve(name string) error {
	ctxt := r.Context
	if ctxt == nil {
		ctxt = &build.Default
	}
	if _, err := ctxt.Import(name, r.Dir, 0); err != nil {
		return err
	}
	return nil
}

// BuildInfoReader returns the build information of the running binary.
type BuildInfoReader func() (*debug.BuildInfo, bool)

// BuildInfoResolver resolves module paths against the modules linked into
// the running binary.
type BuildInfoResolver struct {
	ReadBuildInfo BuildInfoReader // defaults to debug.ReadBuildInfo
}

// ErrNoBuildInfo is returned when the binary carries no module information.
var ErrNoBuildInfo = errors.New("build info not available")

// Resolve reports whether name is the main module or a linked dependency.
func (r *BuildInfoResolver) Resolve(name string) error {
	read := r.ReadBuildInfo
	if read == nil {
		read = debug.ReadBuildInfo
	}
	info, ok := read()
	if !ok || info == nil {
		return ErrNoBuildInfo
	}
	if info.Main.Path == name {
		return nil
	}
	for _, dep := range info.Deps {
		if dep == nil {
			continue
		}
		if dep.Path == name {
			return nil
		}
		if dep.Replace != nil && dep.Replace.Path == name {
			return nil
		}
	}
	return fmt.Errorf("module %s is not linked into %s", name, binaryName(info))
}

func binaryName(info *debug.BuildInfo) string {
	if info.Path != "" {
		return info.Path
	}
	return "this binary"
}

// AnyResolver succeeds if any resolver succeeds, trying them in order.
type AnyResolver []Resolver

// Resolve returns nil on the first success, or all failures joined.
func (a AnyResolver) Resolve(name string) error {
	if len(a) == 0 {
		return errors.New("no resolvers configured")
	}
	var errs []error
	for _, r := range a {
		err := r.Resolve(name)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
