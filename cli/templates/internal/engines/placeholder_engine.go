package engines

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// placeholderRe matches `{{identifier}}`. No nesting, no escaping.
var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// PlaceholderEngine replaces `{{name}}` placeholders with values from a
// map[string]string. Unknown names are kept verbatim.
type PlaceholderEngine struct {
}

// toVars converts template data to a variables map.
func toVars(data interface{}) (map[string]string, error) {
	switch vars := data.(type) {
	case nil:
		return map[string]string{}, nil
	case map[string]string:
		return vars, nil
	case *map[string]string:
		return *vars, nil
	}
	return nil, fmt.Errorf("unsupported template data type %T", data)
}

func render(in string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(in, func(placeholder string) string {
		name := placeholderRe.FindStringSubmatch(placeholder)[1]
		if value, found := vars[name]; found {
			return value
		}
		return placeholder
	})
}

// RenderText renders in text replacing known placeholders.
func (PlaceholderEngine) RenderText(in string, data interface{}) (string, error) {
	vars, err := toVars(data)
	if err != nil {
		return "", err
	}
	return render(in, vars), nil
}

// RenderFile renders srcPath to dstPath. Permissions of srcPath are kept.
func (PlaceholderEngine) RenderFile(srcPath string, dstPath string, data interface{}) error {
	vars, err := toVars(data)
	if err != nil {
		return err
	}

	stat, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("error getting file info %s: %s", srcPath, err)
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %s", srcPath, err)
	}

	if err = os.WriteFile(dstPath, []byte(render(string(content), vars)),
		stat.Mode().Perm()); err != nil {
		return fmt.Errorf("error writing %s: %s", dstPath, err)
	}
	return os.Chmod(dstPath, stat.Mode().Perm())
}

// Placeholders returns sorted unique placeholder names found in text.
func Placeholders(text string) []string {
	seen := map[string]struct{}{}
	names := []string{}
	for _, match := range placeholderRe.FindAllStringSubmatch(text, -1) {
		if _, found := seen[match[1]]; !found {
			seen[match[1]] = struct{}{}
			names = append(names, match[1])
		}
	}
	sort.Strings(names)
	return names
}
