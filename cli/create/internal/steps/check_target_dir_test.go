package steps

import (
	"os"
	"path/filepath"
	"testing"

	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTargetDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	emptyDir := filepath.Join(tmpDir, "empty")
	require.NoError(t, os.Mkdir(emptyDir, 0755))

	for _, targetPath := range []string{filepath.Join(tmpDir, "absent"), emptyDir} {
		templateCtx := NewTemplateContext()
		templateCtx.TargetPath = targetPath
		require.NoError(t, CheckTargetDirectory{}.Run(&create_ctx.CreateCtx{}, &templateCtx))
		assert.Equal(t, targetPath, templateCtx.AppPath)
	}
}

func TestCheckTargetDirectoryErrors(t *testing.T) {
	tmpDir := t.TempDir()
	nonEmptyDir := filepath.Join(tmpDir, "non-empty")
	require.NoError(t, os.Mkdir(nonEmptyDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nonEmptyDir, "keep.txt"), []byte("x"), 0644))
	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		targetPath string
		errMsg     string
	}{
		{nonEmptyDir, "already exists and is not empty"},
		{file, "already exists and is not a directory"},
		{"", "project directory is not set"},
	}
	for _, tt := range tests {
		templateCtx := NewTemplateContext()
		templateCtx.TargetPath = tt.targetPath
		err := CheckTargetDirectory{}.Run(&create_ctx.CreateCtx{}, &templateCtx)
		assert.ErrorContains(t, err, tt.errMsg)
		assert.Empty(t, templateCtx.AppPath)
	}

	// Existing content is not touched.
	assert.FileExists(t, filepath.Join(nonEmptyDir, "keep.txt"))
}
