// Package manifest reads, patches and writes package.json files.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
)

const (
	// FileName is a package manifest file name.
	FileName = "package.json"
	// BaselineVersion is a version of the newly created package.
	BaselineVersion = "0.1.0"

	dependenciesKey    = "dependencies"
	devDependenciesKey = "devDependencies"
	scriptsKey         = "scripts"
)

// ErrMalformed is returned if package.json is not a valid JSON object.
var ErrMalformed = errors.New("failed to parse " + FileName)

// Feature is an optional project feature.
type Feature string

const (
	TypeScript Feature = "typescript"
	Tailwind   Feature = "tailwind"
)

// Script is a named package script.
type Script struct {
	Name    string
	Command string
}

// Dependency is a package with a version range.
type Dependency struct {
	Name    string
	Version string
}

// BaselineScripts are added to each manifest if missing.
var BaselineScripts = []Script{
	{"dev", "next dev"},
	{"build", "next build"},
	{"start", "next start"},
	{"lint", "next lint"},
}

// BaseDependencies are required by each generated project.
var BaseDependencies = []Dependency{
	{"next", "^14.2.0"},
	{"react", "^18.3.0"},
	{"react-dom", "^18.3.0"},
}

// FeatureDevDependencies contains development dependencies for each feature.
var FeatureDevDependencies = map[Feature][]Dependency{
	TypeScript: {
		{"typescript", "^5.4.0"},
		{"@types/react", "^18.3.0"},
		{"@types/react-dom", "^18.3.0"},
		{"@types/node", "^20.12.0"},
	},
	Tailwind: {
		{"tailwindcss", "^3.4.0"},
		{"postcss", "^8.4.0"},
		{"autoprefixer", "^10.4.0"},
	},
}

// Manifest is a package.json document. Unknown fields and key order are kept.
type Manifest struct {
	root *object
}

// New creates an empty manifest.
func New() *Manifest {
	return &Manifest{root: newObject()}
}

// NewBaseline creates a manifest for a new package.
func NewBaseline(name string) *Manifest {
	manifest := New()
	manifest.SetName(name)
	manifest.root.setValue("version", BaselineVersion)
	manifest.root.setValue("private", true)
	for _, script := range BaselineScripts {
		manifest.AddScript(script.Name, script.Command)
	}
	return manifest
}

// Parse parses package.json content.
func Parse(data []byte) (*Manifest, error) {
	root := newObject()
	if err := json.Unmarshal(bytes.TrimSpace(data), root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return &Manifest{root: root}, nil
}

// Load reads manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Marshal encodes manifest as a 2-space indented JSON with a trailing new line.
func (manifest *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes manifest to path.
func (manifest *Manifest) Save(path string) error {
	data, err := manifest.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Name returns package name.
func (manifest *Manifest) Name() string {
	name, _ := manifest.root.getString("name")
	return name
}

// SetName sets package name.
func (manifest *Manifest) SetName(name string) {
	manifest.root.setValue("name", name)
}

// Description returns package description.
func (manifest *Manifest) Description() string {
	description, _ := manifest.root.getString("description")
	return description
}

// SetDescription sets package description.
func (manifest *Manifest) SetDescription(description string) {
	manifest.root.setValue("description", description)
}

// Has returns true if the top-level key is present.
func (manifest *Manifest) Has(key string) bool {
	return manifest.root.has(key)
}

// stringMap returns a section of string values.
func (manifest *Manifest) stringMap(section string) (map[string]string, error) {
	sectionObj, err := manifest.root.getObject(section)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(sectionObj.keys))
	for _, key := range sectionObj.keys {
		value, _ := sectionObj.getString(key)
		values[key] = value
	}
	return values, nil
}

// addToSection adds value to section if the key is missing. Returns true if
// the value is added.
func (manifest *Manifest) addToSection(section, key, value string, sorted bool) (bool, error) {
	sectionObj, err := manifest.root.getObject(section)
	if err != nil {
		return false, err
	}
	if sectionObj.has(key) {
		return false, nil
	}
	if err = sectionObj.setValue(key, value); err != nil {
		return false, err
	}
	if sorted {
		sectionObj.sortKeys()
	}
	return true, manifest.root.setValue(section, sectionObj)
}

// Scripts returns package scripts.
func (manifest *Manifest) Scripts() (map[string]string, error) {
	return manifest.stringMap(scriptsKey)
}

// AddScript adds a script if there is no script with the same name.
func (manifest *Manifest) AddScript(name, command string) (bool, error) {
	return manifest.addToSection(scriptsKey, name, command, false)
}

// Dependencies returns runtime dependencies.
func (manifest *Manifest) Dependencies() (map[string]string, error) {
	return manifest.stringMap(dependenciesKey)
}

// DevDependencies returns development dependencies.
func (manifest *Manifest) DevDependencies() (map[string]string, error) {
	return manifest.stringMap(devDependenciesKey)
}

// AddDependency adds a runtime dependency if it is missing.
func (manifest *Manifest) AddDependency(dependency Dependency) (bool, error) {
	return manifest.addToSection(dependenciesKey, dependency.Name, dependency.Version, true)
}

// AddDevDependency adds a development dependency if it is missing.
func (manifest *Manifest) AddDevDependency(dependency Dependency) (bool, error) {
	return manifest.addToSection(devDependenciesKey, dependency.Name, dependency.Version, true)
}

// ApplyFeatures merges development dependencies of the features.
func (manifest *Manifest) ApplyFeatures(features []Feature) error {
	for _, feature := range features {
		dependencies, found := FeatureDevDependencies[feature]
		if !found {
			return fmt.Errorf("unknown feature %q", feature)
		}
		for _, dependency := range dependencies {
			if _, err := manifest.AddDevDependency(dependency); err != nil {
				return err
			}
		}
	}
	return nil
}

// Patch updates package.json at path: sets package name, adds missing baseline
// scripts and development dependencies of the enabled features. If the file does
// not exist or is malformed, a baseline manifest is created in its place.
func Patch(path string, vars map[string]string, features []Feature) error {
	manifest, err := Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		manifest = NewBaseline(vars["projectName"])
	case errors.Is(err, ErrMalformed):
		log.Warnf("%s, replacing it with a new one", err)
		manifest = NewBaseline(vars["projectName"])
	case err != nil:
		return err
	}

	if name, found := vars["projectName"]; found && name != "" {
		manifest.SetName(name)
	}
	if description := vars["description"]; description != "" && manifest.Description() == "" {
		manifest.SetDescription(description)
	}
	for _, script := range BaselineScripts {
		if _, err = manifest.AddScript(script.Name, script.Command); err != nil {
			return err
		}
	}
	if err = manifest.ApplyFeatures(features); err != nil {
		return err
	}

	return manifest.Save(path)
}
