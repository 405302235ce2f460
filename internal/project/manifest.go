package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the generation record written into every
// generated tree.
const ManifestFile = ".bowerbird.yml"

// Manifest records what a generated tree was built from, so later tooling
// (and a re-run of bowerbird itself) can recognize the tree.
type Manifest struct {
	Project   string          `yaml:"project"`
	Title     string          `yaml:"title"`
	Frontend  Variant         `yaml:"frontend"`
	Features  map[string]bool `yaml:"features"`
	Generator string          `yaml:"generator"`
}

// NewManifest builds a manifest for the given metadata and resolved features.
func NewManifest(meta Metadata, featureValues map[string]bool, version string) Manifest {
	return Manifest{
		Project:   meta.Name,
		Title:     meta.Title,
		Frontend:  meta.Frontend,
		Features:  featureValues,
		Generator: "bowerbird " + version,
	}
}

// Encode renders the manifest as YAML.
func (m Manifest) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// LoadManifest reads the manifest from a generated tree rooted at dir.
// os.IsNotExist holds on the returned error when dir is not a bowerbird
// project.
func LoadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return Manifest{}, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	return m, nil
}
