// Package bootstrap generates a minimal starter project for templates which are
// not found on disk.
package bootstrap

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/launchkit/launchkit/cli/manifest"
	"github.com/launchkit/launchkit/cli/templates"
)

//go:embed all:starter
var starterFs embed.FS

const (
	starterDir    = "starter"
	gitIgnoreFile = ".gitignore.template"

	defaultDirPermissions  = os.FileMode(0755)
	defaultFilePermissions = os.FileMode(0644)
)

// GenericDescription is used for unknown template names.
const GenericDescription = "A Next.js starter project."

// TemplateDependencies contains runtime dependencies added for each template.
var TemplateDependencies = map[templates.Name][]manifest.Dependency{
	templates.Portfolio: {{Name: "framer-motion", Version: "^11.0.0"}},
	templates.Ecom: {
		{Name: "@stripe/stripe-js", Version: "^4.0.0"},
		{Name: "zustand", Version: "^4.5.0"},
	},
	templates.Dashboard: {
		{Name: "recharts", Version: "^2.12.0"},
		{Name: "@tanstack/react-table", Version: "^8.17.0"},
	},
	templates.Webapp: {
		{Name: "swr", Version: "^2.2.0"},
		{Name: "axios", Version: "^1.7.0"},
	},
}

// Description returns a human readable description of the template.
func Description(name templates.Name) string {
	if description, found := templates.Descriptions[name]; found {
		return description
	}
	return GenericDescription
}

// GitIgnore returns the standard ignore file content for generated projects.
func GitIgnore() []byte {
	content, err := starterFs.ReadFile(path.Join(starterDir, gitIgnoreFile))
	if err != nil {
		panic(err)
	}
	return content
}

// NewManifest creates a package manifest for the template. The package name is
// the project name placeholder.
func NewManifest(name templates.Name) (*manifest.Manifest, error) {
	packageManifest := manifest.NewBaseline("{{projectName}}")
	for _, dependency := range manifest.BaseDependencies {
		if _, err := packageManifest.AddDependency(dependency); err != nil {
			return nil, err
		}
	}
	for _, dependency := range TemplateDependencies[name] {
		if _, err := packageManifest.AddDependency(dependency); err != nil {
			return nil, err
		}
	}
	return packageManifest, nil
}

// Bootstrap writes a starter project for the template into targetDir. The output
// keeps `{{projectName}}` and `{{packageManager}}` placeholders the same way on-disk
// templates do.
func Bootstrap(targetDir string, name templates.Name) error {
	if err := os.MkdirAll(targetDir, defaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create %s: %s", targetDir, err)
	}

	packageManifest, err := NewManifest(name)
	if err != nil {
		return err
	}
	if err = packageManifest.Save(filepath.Join(targetDir, manifest.FileName)); err != nil {
		return fmt.Errorf("failed to write %s: %s", manifest.FileName, err)
	}

	engine := templates.NewDefaultEngine()
	starterVars := map[string]string{
		"templateName":        string(name),
		"templateDescription": Description(name),
	}

	return fs.WalkDir(starterFs, starterDir, func(filePath string, entry fs.DirEntry,
		err error,
	) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(starterDir, filepath.FromSlash(filePath))
		if err != nil {
			return err
		}
		dstPath := filepath.Join(targetDir, relPath)
		if entry.IsDir() {
			return os.MkdirAll(dstPath, defaultDirPermissions)
		}

		content, err := starterFs.ReadFile(filePath)
		if err != nil {
			return err
		}
		rendered, err := engine.RenderText(string(content), starterVars)
		if err != nil {
			return err
		}
		if err = os.WriteFile(dstPath, []byte(rendered), defaultFilePermissions); err != nil {
			return fmt.Errorf("failed to write %s: %s", dstPath, err)
		}
		return nil
	})
}
