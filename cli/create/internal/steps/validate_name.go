package steps

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	create_ctx "github.com/launchkit/launchkit/cli/create/context"
)

const maxPackageNameLength = 214

var (
	// scopedNameRe splits a package name into an optional scope and a name.
	scopedNameRe = regexp.MustCompile(`^(?:@([^/]+?)/)?([^/]+?)$`)
	// urlSafeRe matches strings that are kept as is by URL component encoding.
	urlSafeRe = regexp.MustCompile(`^[A-Za-z0-9\-_.!~*'()]+$`)

	blacklistedNames = []string{"node_modules", "favicon.ico"}
)

// NameError is returned if a project name is not a valid package name.
type NameError struct {
	Name     string
	Problems []string
}

// Error returns error message.
func (e *NameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, strings.Join(e.Problems, "; "))
}

// ValidatePackageName checks name against package naming rules. Returns unscoped
// part of the name, which is used as a project directory name.
func ValidatePackageName(name string) (string, error) {
	problems := []string{}
	if name == "" {
		return "", &NameError{name, []string{"name length must be greater than zero"}}
	}
	if strings.HasPrefix(name, ".") {
		problems = append(problems, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		problems = append(problems, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		problems = append(problems, "name cannot contain leading or trailing spaces")
	}
	for _, blacklisted := range blacklistedNames {
		if strings.ToLower(name) == blacklisted {
			problems = append(problems, fmt.Sprintf("%s is a blacklisted name", blacklisted))
		}
	}
	if len(name) > maxPackageNameLength {
		problems = append(problems,
			fmt.Sprintf("name cannot contain more than %d characters", maxPackageNameLength))
	}
	if strings.ToLower(name) != name {
		problems = append(problems, "name cannot contain capital letters")
	}
	if strings.ContainsAny(name, "~'!()*") {
		problems = append(problems, `name cannot contain special characters ("~'!()*")`)
	}

	dirName := ""
	if matches := scopedNameRe.FindStringSubmatch(name); matches != nil {
		scope, unscoped := matches[1], matches[2]
		if (matches[1] == "" && strings.HasPrefix(name, "@")) ||
			(scope != "" && !urlSafeRe.MatchString(scope)) || !urlSafeRe.MatchString(unscoped) {
			problems = append(problems, "name can only contain URL-friendly characters")
		}
		if scope != "" && (strings.HasPrefix(unscoped, ".") || strings.HasPrefix(unscoped, "_")) {
			problems = append(problems, "name cannot start with a period or an underscore")
		}
		dirName = unscoped
	} else {
		problems = append(problems, "name can only contain URL-friendly characters")
	}

	if len(problems) > 0 {
		return "", &NameError{name, problems}
	}
	return dirName, nil
}

// ValidateProjectName represents a step of the project name validation.
type ValidateProjectName struct{}

// Run validates project name and computes the project directory path.
func (ValidateProjectName) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	dirName, err := ValidatePackageName(createCtx.ProjectName)
	if err != nil {
		return err
	}

	baseDir := createCtx.DestinationDir
	if baseDir == "" {
		baseDir = createCtx.WorkDir
	}
	templateCtx.PackageName = createCtx.ProjectName
	templateCtx.TargetPath = filepath.Join(baseDir, dirName)
	return nil
}
