package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
)

// TemplateSuffix marks files which are renamed after substitution.
const TemplateSuffix = ".template"

// textExtensions is a set of extensions of files eligible for substitution.
var textExtensions = map[string]struct{}{
	".js": {}, ".jsx": {}, ".mjs": {}, ".cjs": {}, ".ts": {}, ".tsx": {},
	".json": {}, ".html": {}, ".htm": {}, ".css": {}, ".scss": {}, ".sass": {},
	".less": {}, ".md": {}, ".mdx": {}, ".txt": {}, ".yml": {}, ".yaml": {},
	".toml": {}, ".xml": {}, ".svg": {}, ".vue": {}, ".svelte": {}, ".astro": {},
	".gitignore": {},
}

// textFileNames is a set of dot-files eligible for substitution.
var textFileNames = map[string]struct{}{
	".gitignore":    {},
	".npmrc":        {},
	".nvmrc":        {},
	".editorconfig": {},
	".env.example":  {},
}

// IsSubstitutable returns true if the file content is processed by the substitutor.
func IsSubstitutable(fileName string) bool {
	if strings.HasSuffix(fileName, TemplateSuffix) {
		return true
	}
	if _, found := textFileNames[fileName]; found {
		return true
	}
	_, found := textExtensions[strings.ToLower(filepath.Ext(fileName))]
	return found
}

// Report describes a result of substitution. All paths are relative to the root.
type Report struct {
	// Processed is a list of files the placeholders were looked up in.
	Processed []string
	// Renamed is a list of files created by stripping the template suffix.
	Renamed []string
	// Skipped is a list of files that could not be processed.
	Skipped []string
	// Unresolved is a sorted list of placeholder names without values.
	Unresolved []string
}

// Substitutor replaces placeholders in all eligible files of a directory tree.
type Substitutor struct {
	// Engine renders file contents.
	Engine TemplateEngine
	// Exclusions is a set of paths not descended into.
	Exclusions *Exclusions
}

// NewSubstitutor creates a substitutor using the default template engine.
func NewSubstitutor(excl *Exclusions) Substitutor {
	return Substitutor{Engine: NewDefaultEngine(), Exclusions: excl}
}

// substituteFile processes a single file. Returns a path of the resulting file.
func (s Substitutor) substituteFile(filePath string, vars map[string]string) (string,
	[]string, error,
) {
	resultPath := filePath
	if strings.HasSuffix(filePath, TemplateSuffix) {
		resultPath = strings.TrimSuffix(filePath, TemplateSuffix)
		if err := s.Engine.RenderFile(filePath, resultPath, vars); err != nil {
			return "", nil, err
		}
		if err := os.Remove(filePath); err != nil {
			return "", nil, fmt.Errorf("error removing %s: %s", filePath, err)
		}
	} else {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", nil, err
		}
		rendered, err := s.Engine.RenderText(string(content), vars)
		if err != nil {
			return "", nil, err
		}
		if !bytes.Equal(content, []byte(rendered)) {
			stat, err := os.Stat(filePath)
			if err != nil {
				return "", nil, err
			}
			if err = os.WriteFile(filePath, []byte(rendered), stat.Mode().Perm()); err != nil {
				return "", nil, err
			}
		}
	}

	content, err := os.ReadFile(resultPath)
	if err != nil {
		return "", nil, err
	}
	unresolved := []string{}
	for _, name := range Placeholders(string(content)) {
		if _, found := vars[name]; !found {
			unresolved = append(unresolved, name)
		}
	}
	return resultPath, unresolved, nil
}

// Substitute walks root depth-first and replaces `{{name}}` placeholders with vars
// values in every eligible file. Files with the template suffix are renamed to drop
// it. Files that cannot be processed are skipped and reported; unreadable root
// is an error.
func (s Substitutor) Substitute(root string, vars map[string]string) (Report, error) {
	report := Report{
		Processed:  []string{},
		Renamed:    []string{},
		Skipped:    []string{},
		Unresolved: []string{},
	}
	if _, err := os.ReadDir(root); err != nil {
		return report, fmt.Errorf("failed to read %s: %w", root, err)
	}

	unresolvedSet := map[string]struct{}{}
	relPath := func(path string) string {
		if rel, err := filepath.Rel(root, path); err == nil {
			return rel
		}
		return path
	}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warnf("Skipping %s: %s", path, err)
			report.Skipped = append(report.Skipped, relPath(path))
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		if s.Exclusions.Match(relPath(path), entry.IsDir()) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !entry.Type().IsRegular() || !IsSubstitutable(entry.Name()) {
			return nil
		}

		resultPath, unresolved, err := s.substituteFile(path, vars)
		if err != nil {
			log.Warnf("Skipping %s: %s", path, err)
			report.Skipped = append(report.Skipped, relPath(path))
			return nil
		}
		report.Processed = append(report.Processed, relPath(resultPath))
		if resultPath != path {
			report.Renamed = append(report.Renamed, relPath(resultPath))
		}
		for _, name := range unresolved {
			unresolvedSet[name] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to process %s: %w", root, err)
	}

	for name := range unresolvedSet {
		report.Unresolved = append(report.Unresolved, name)
	}
	sort.Strings(report.Unresolved)
	if len(report.Unresolved) > 0 {
		log.Debugf("Unresolved placeholders: %s", strings.Join(report.Unresolved, ", "))
	}
	return report, nil
}

// Substitute processes root with default exclusions.
func Substitute(root string, vars map[string]string) (Report, error) {
	return NewSubstitutor(NewExclusions()).Substitute(root, vars)
}
