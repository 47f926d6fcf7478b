package main

import "github.com/vertti/depgate/pkg/depcheck"

// checkConfig holds the dependency list, aliases and resolver for one run.
type checkConfig struct {
	Names    []string
	Aliases  map[string]string
	Resolver depcheck.Resolver
}

// requiredDependencies is the built-in list, in report order.
func requiredDependencies() []string {
	return []string{
		"math",
		"encoding/json",
		"go/build",
		"cobra",
		"zerolog",
		"github.com/jwalton/go-supportscolor",
	}
}

func dependencyAliases() map[string]string {
	return map[string]string{
		"cobra":   "github.com/spf13/cobra",
		"zerolog": "github.com/rs/zerolog",
	}
}

// defaultResolver tries the embedded standard library list, then modules
// linked into the binary, then the go/build package lookup.
func defaultResolver() depcheck.Resolver {
	return depcheck.AnyResolver{
		&depcheck.StdlibResolver{},
		&depcheck.BuildInfoResolver{},
		&depcheck.GoPackageResolver{},
	}
}

func defaultConfig() checkConfig {
	return checkConfig{
		Names:    requiredDependencies(),
		Aliases:  dependencyAliases(),
		Resolver: defaultResolver(),
	}
}
