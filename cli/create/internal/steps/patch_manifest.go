package steps

import (
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/manifest"
)

// PatchManifest represents a step of the package manifest update.
type PatchManifest struct{}

// features returns enabled project features.
func features(createCtx *create_ctx.CreateCtx) []manifest.Feature {
	enabled := []manifest.Feature{}
	if createCtx.TypeScript {
		enabled = append(enabled, manifest.TypeScript)
	}
	if createCtx.Tailwind {
		enabled = append(enabled, manifest.Tailwind)
	}
	return enabled
}

// Run updates package.json of the project. Errors are reported as warnings.
func (PatchManifest) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	manifestPath := filepath.Join(templateCtx.AppPath, manifest.FileName)
	if err := manifest.Patch(manifestPath, templateCtx.Vars, features(createCtx)); err != nil {
		log.Warnf("Failed to update %s: %s", manifest.FileName, err)
	}
	return nil
}
