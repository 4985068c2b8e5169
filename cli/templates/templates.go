package templates

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/launchkit/launchkit/cli/templates/internal/engines"
	"github.com/launchkit/launchkit/cli/util"
)

// Name is a template identifier.
type Name string

const (
	Portfolio Name = "portfolio"
	Ecom      Name = "ecom"
	Dashboard Name = "dashboard"
	Webapp    Name = "webapp"
)

// Descriptions contains a short description of each known template.
var Descriptions = map[Name]string{
	Portfolio: "Personal portfolio with project showcase and animations",
	Ecom:      "E-commerce storefront with cart and checkout",
	Dashboard: "Admin dashboard with charts and data tables",
	Webapp:    "General purpose web application with data fetching",
}

// ErrTemplateNotFound is returned if a template is not found in any search path.
var ErrTemplateNotFound = errors.New("template is not found")

// Names returns all known template names in presentation order.
func Names() []Name {
	return []Name{Portfolio, Ecom, Dashboard, Webapp}
}

// Valid returns true if the name is a known template identifier.
func (name Name) Valid() bool {
	_, found := Descriptions[name]
	return found
}

// ParseName converts a string into a known template identifier.
func ParseName(name string) (Name, error) {
	templateName := Name(strings.ToLower(strings.TrimSpace(name)))
	if !templateName.Valid() {
		knownNames := make([]string, 0, len(Descriptions))
		for _, known := range Names() {
			knownNames = append(knownNames, string(known))
		}
		return "", fmt.Errorf("unknown template %q, expected one of: %s",
			name, strings.Join(knownNames, ", "))
	}
	return templateName, nil
}

// TemplateEngine is an interface to support to use for application template instantiation.
type TemplateEngine interface {
	// RenderFile applies data to the template from srcPath.
	// Instantiated template is saved as dstPath.
	RenderFile(srcPath, dstPath string, data interface{}) error

	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data interface{}) (string, error)
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return engines.PlaceholderEngine{}
}

// Placeholders returns sorted names of all `{{name}}` placeholders in text.
func Placeholders(text string) []string {
	return engines.Placeholders(text)
}

// Resolve returns the first `<searchPath>/<name>` directory. ErrTemplateNotFound is
// returned if none of search paths contains the template.
func Resolve(name Name, searchPaths []string) (string, error) {
	for _, searchPath := range searchPaths {
		if searchPath == "" {
			continue
		}
		templatePath := filepath.Join(searchPath, string(name))
		if util.IsDir(templatePath) {
			return templatePath, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}
