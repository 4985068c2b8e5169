package create

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/launchkit/launchkit/cli/configure"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/create/internal/steps"
	"github.com/launchkit/launchkit/cli/manifest"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreateCtx(t *testing.T, projectName, templateName string) *create_ctx.CreateCtx {
	t.Helper()
	return &create_ctx.CreateCtx{
		ProjectName:         projectName,
		TemplateName:        templateName,
		WorkDir:             t.TempDir(),
		TemplateSearchPaths: []string{"testdata/templates"},
		NoInstall:           true,
		NoGit:               true,
		SilentMode:          true,
		CliOpts:             configure.GetDefaultCliOpts(),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(buf)
}

func TestRunPortfolio(t *testing.T) {
	createCtx := newCreateCtx(t, "my-site", "portfolio")
	createCtx.TypeScript = true
	var out bytes.Buffer

	require.NoError(t, Run(createCtx, Options{Writer: &out}))

	appDir := filepath.Join(createCtx.WorkDir, "my-site")
	assert.Equal(t, "# my-site\nTemplate: portfolio\n", readFile(t, filepath.Join(appDir, "README.md")))
	assert.FileExists(t, filepath.Join(appDir, "pages", "index.js"))
	assert.NoFileExists(t, filepath.Join(appDir, "pages", "index.js.template"))
	assert.Contains(t, readFile(t, filepath.Join(appDir, "pages", "index.js")), "<h1>my-site</h1>")

	packageManifest, err := manifest.Load(filepath.Join(appDir, manifest.FileName))
	require.NoError(t, err)
	assert.Equal(t, "my-site", packageManifest.Name())
	scripts, err := packageManifest.Scripts()
	require.NoError(t, err)
	assert.Equal(t, "next dev", scripts["dev"])
	assert.Equal(t, "next build", scripts["build"])
	devDependencies, err := packageManifest.DevDependencies()
	require.NoError(t, err)
	assert.Contains(t, devDependencies, "typescript")

	assert.Contains(t, out.String(), "Success!")
	assert.Contains(t, out.String(), "npm install")
}

func TestRunBootstrap(t *testing.T) {
	createCtx := newCreateCtx(t, "@acme/shop", "ecom")
	createCtx.TemplateSearchPaths = []string{t.TempDir()}

	require.NoError(t, Run(createCtx, Options{}))

	appDir := filepath.Join(createCtx.WorkDir, "shop")
	assert.Contains(t, readFile(t, filepath.Join(appDir, "README.md")), "# @acme/shop")
	assert.FileExists(t, filepath.Join(appDir, ".gitignore"))
	packageManifest, err := manifest.Load(filepath.Join(appDir, manifest.FileName))
	require.NoError(t, err)
	assert.Equal(t, "@acme/shop", packageManifest.Name())
	dependencies, err := packageManifest.Dependencies()
	require.NoError(t, err)
	assert.Contains(t, dependencies, "zustand")
}

func TestRunBootstrapPackageManager(t *testing.T) {
	createCtx := newCreateCtx(t, "shop", "ecom")
	createCtx.TemplateSearchPaths = []string{t.TempDir()}
	createCtx.PackageManager = "pnpm"

	require.NoError(t, Run(createCtx, Options{}))

	readme := readFile(t, filepath.Join(createCtx.WorkDir, "shop", "README.md"))
	assert.Contains(t, readme, "pnpm install\npnpm run dev\n")
	assert.NotContains(t, readme, "npm install\nnpm run dev")
	assert.NotContains(t, readme, "{{")
}

func TestRunNonEmptyTarget(t *testing.T) {
	createCtx := newCreateCtx(t, "my-site", "portfolio")
	appDir := filepath.Join(createCtx.WorkDir, "my-site")
	require.NoError(t, os.Mkdir(appDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "notes.txt"), []byte("mine"), 0644))

	err := Run(createCtx, Options{})
	assert.ErrorContains(t, err, "already exists and is not empty")

	entries, err := os.ReadDir(appDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mine", readFile(t, filepath.Join(appDir, "notes.txt")))
}

func TestRunInvalidName(t *testing.T) {
	createCtx := newCreateCtx(t, "My Site", "portfolio")
	var nameErr *steps.NameError
	assert.ErrorAs(t, Run(createCtx, Options{}), &nameErr)

	entries, err := os.ReadDir(createCtx.WorkDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunMissingTemplateChoice(t *testing.T) {
	createCtx := newCreateCtx(t, "my-site", "")
	var argError *util.ArgError
	assert.ErrorAs(t, Run(createCtx, Options{}), &argError)
	assert.NoDirExists(t, filepath.Join(createCtx.WorkDir, "my-site"))
}

func TestRunInstallFailureCompletes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported")
	}
	binDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "failpm"),
		[]byte("#!/bin/sh\necho 'registry is unreachable'\nexit 1\n"), 0755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	createCtx := newCreateCtx(t, "my-site", "webapp")
	createCtx.NoInstall = false
	createCtx.PackageManager = "failpm"
	var out bytes.Buffer

	require.NoError(t, Run(createCtx, Options{Writer: &out}))
	assert.FileExists(t, filepath.Join(createCtx.WorkDir, "my-site", "package.json"))
	assert.Contains(t, out.String(), "failpm install")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("write |1: broken pipe")
}

func TestRunFollowUpWriteFailureKeepsProject(t *testing.T) {
	createCtx := newCreateCtx(t, "my-site", "portfolio")

	require.NoError(t, Run(createCtx, Options{Writer: brokenWriter{}}))

	appDir := filepath.Join(createCtx.WorkDir, "my-site")
	assert.FileExists(t, filepath.Join(appDir, "README.md"))
	assert.FileExists(t, filepath.Join(appDir, manifest.FileName))
}

type failingStep struct{}

func (failingStep) Run(*create_ctx.CreateCtx, *steps.TemplateCtx) error {
	return errors.New("step failed")
}

func TestRunStepsRollback(t *testing.T) {
	createCtx := newCreateCtx(t, "my-site", "portfolio")
	appDir := filepath.Join(createCtx.WorkDir, "my-site")

	templateCtx, err := runSteps(createCtx, []steps.Step{
		steps.ValidateProjectName{},
		steps.ChooseTemplate{},
		steps.CheckTargetDirectory{},
		steps.CopyAppTemplate{},
		failingStep{},
	})
	assert.EqualError(t, err, "step failed")
	assert.Empty(t, templateCtx.AppPath)
	assert.NoDirExists(t, appDir)
}

func TestRunStepsNoRollbackBeforeAcquisition(t *testing.T) {
	createCtx := newCreateCtx(t, "my-site", "portfolio")
	appDir := filepath.Join(createCtx.WorkDir, "my-site")
	require.NoError(t, os.Mkdir(appDir, 0755))

	_, err := runSteps(createCtx, []steps.Step{
		steps.ValidateProjectName{},
		failingStep{},
	})
	assert.Error(t, err)
	assert.DirExists(t, appDir)
}

func TestFillCtx(t *testing.T) {
	createCtx := create_ctx.CreateCtx{}
	require.NoError(t, FillCtx(nil, &createCtx, []string{"my-site"}))
	assert.Equal(t, "my-site", createCtx.ProjectName)
	assert.NotEmpty(t, createCtx.WorkDir)
	assert.NotEmpty(t, createCtx.TemplateSearchPaths)
	assert.NotNil(t, createCtx.CliOpts)

	var argError *util.ArgError
	assert.ErrorAs(t, FillCtx(nil, &createCtx, []string{}), &argError)
	assert.ErrorAs(t, FillCtx(nil, &createCtx, []string{"a", "b"}), &argError)

	createCtx.DestinationDir = filepath.Join(t.TempDir(), "absent")
	assert.ErrorContains(t, FillCtx(nil, &createCtx, []string{"my-site"}), "does not exist")
}
