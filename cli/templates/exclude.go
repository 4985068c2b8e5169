package templates

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DefaultExcludes is a set of patterns never copied from a template or processed
// by the substitutor: version control metadata, dependency caches, build output,
// lockfiles and local environment files.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	".next",
	"dist",
	"build",
	"out",
	"coverage",
	".turbo",
	".cache",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"bun.lockb",
	".env",
	".env.local",
	".env.*.local",
	".DS_Store",
}

// Exclusions matches template paths against gitignore-style patterns.
type Exclusions struct {
	patterns []string
	matcher  gitignore.Matcher
}

// NewExclusions creates exclusions from the default set extended with extra patterns.
// Empty lines and comments in extra patterns are ignored.
func NewExclusions(extra ...string) *Exclusions {
	patterns := make([]string, 0, len(DefaultExcludes)+len(extra))
	patterns = append(patterns, DefaultExcludes...)
	for _, pattern := range extra {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		patterns = append(patterns, pattern)
	}

	parsed := make([]gitignore.Pattern, 0, len(patterns))
	for _, pattern := range patterns {
		parsed = append(parsed, gitignore.ParsePattern(pattern, nil))
	}
	return &Exclusions{patterns: patterns, matcher: gitignore.NewMatcher(parsed)}
}

// Patterns returns all exclusion patterns.
func (excl *Exclusions) Patterns() []string {
	if excl == nil {
		return nil
	}
	return excl.patterns
}

// Match returns true if relPath (relative to the template root) is excluded.
func (excl *Exclusions) Match(relPath string, isDir bool) bool {
	if excl == nil || relPath == "" || relPath == "." {
		return false
	}
	components := strings.Split(filepath.ToSlash(relPath), "/")
	return excl.matcher.Match(components, isDir)
}

// matchUnder checks path located under root.
func (excl *Exclusions) matchUnder(root, path string, info os.FileInfo) bool {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return excl.Match(relPath, info.IsDir())
}
