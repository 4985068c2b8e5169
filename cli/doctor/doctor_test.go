package doctor

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProber(versions map[string]string) Prober {
	return func(program string) (string, error) {
		if toolVersion, found := versions[program]; found {
			return toolVersion, nil
		}
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", program)
	}
}

func TestCheck(t *testing.T) {
	statuses := Check(fakeProber(map[string]string{
		"node": "v20.11.1",
		"npm":  "10.2.4",
		"git":  "git version 2.25.1",
	}))
	require.Len(t, statuses, len(Tools))

	byName := map[string]ToolStatus{}
	for _, status := range statuses {
		byName[status.Name] = status
	}
	assert.Equal(t, ToolStatus{Name: "node", Found: true, Version: "v20.11.1"}, byName["node"])
	assert.False(t, byName["bun"].Found)
	assert.Contains(t, byName["bun"].Note, "executable file not found")
	assert.True(t, byName["git"].Found)
	assert.Equal(t, "git 2.28 or newer is recommended", byName["git"].Note)
}

func TestCheckRecentGit(t *testing.T) {
	statuses := Check(fakeProber(map[string]string{"git": "git version 2.44.0.windows.1"}))
	for _, status := range statuses {
		if status.Name == "git" {
			assert.Empty(t, status.Note)
		}
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(&out, fakeProber(map[string]string{"node": "v20.11.1"})))
	assert.Contains(t, out.String(), "TOOL")
	assert.Contains(t, out.String(), "v20.11.1")
	assert.Contains(t, out.String(), "5 of 6 tools are not available")

	out.Reset()
	all := map[string]string{}
	for _, tool := range Tools {
		all[tool] = "1.0.0"
	}
	all["git"] = "git version 2.40.0"
	require.NoError(t, Run(&out, fakeProber(all)))
	assert.Contains(t, out.String(), "All tools are available.")
}
