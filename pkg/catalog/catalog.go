// Package catalog provides version catalog management and criteria-based
// version selection.
package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/dnaka91/chronver/pkg/chronver"
	"github.com/dnaka91/chronver/pkg/serializer"
)

// CatalogKind is the kind value for catalog resources.
const CatalogKind = "versionCatalog"

// APIVersion is the API version for catalog and criteria resources.
const APIVersion = "chronver.org/v1alpha1"

// Catalog is a named collection of versions, kept sorted oldest first with
// no duplicates.
type Catalog struct {
	// Name identifies the catalog.
	Name string `json:"name" yaml:"name"`

	// Versions holds the catalog entries, oldest first.
	Versions chronver.Versions `json:"versions" yaml:"versions"`
}

// rawCatalogSpec holds the catalog payload with plain string version values.
type rawCatalogSpec struct {
	Versions []string `json:"versions" yaml:"versions"`
}

// rawCatalog is the on-disk envelope for catalog resources.
//
// Example:
//
//	kind: versionCatalog
//	apiVersion: chronver.org/v1alpha1
//	metadata:
//	  name: releases
//	spec:
//	  versions:
//	    - 2024.1.9.0
//	    - 2024.1.9.1-break
type rawCatalog struct {
	Kind       string `json:"kind" yaml:"kind"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Metadata   struct {
		Name string `json:"name" yaml:"name"`
	} `json:"metadata" yaml:"metadata"`
	Spec rawCatalogSpec `json:"spec" yaml:"spec"`
}

// New creates an empty catalog with the given name.
func New(name string) *Catalog {
	return &Catalog{
		Name: name,
	}
}

// LoadFromFile loads a catalog from a YAML or JSON file.
// The file format is auto-detected from the file extension.
// The catalog is rejected when any version fails to parse or when two
// entries compare equal.
func LoadFromFile(path string) (*Catalog, error) {
	raw, err := serializer.FromFile[rawCatalog](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog file: %w", err)
	}

	// Validate kind and apiVersion
	if raw.Kind != "" && raw.Kind != CatalogKind {
		return nil, fmt.Errorf("invalid kind %q, expected %q", raw.Kind, CatalogKind)
	}
	if raw.APIVersion != "" && raw.APIVersion != APIVersion {
		return nil, fmt.Errorf("invalid apiVersion %q, expected %q", raw.APIVersion, APIVersion)
	}

	c := New(raw.Metadata.Name)
	for _, in := range raw.Spec.Versions {
		v, err := chronver.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog %q: parsing %q: %w", path, in, err)
		}
		if err := c.Add(v); err != nil {
			return nil, fmt.Errorf("invalid catalog %q: %w", path, err)
		}
	}
	return c, nil
}

// Len returns the number of versions in the catalog.
func (c *Catalog) Len() int {
	return len(c.Versions)
}

// Add inserts a version into the catalog, keeping the list sorted.
// Returns an error when the version is invalid or when a version comparing
// equal is already present.
func (c *Catalog) Add(v chronver.Version) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("invalid version: %w", err)
	}
	if c.Versions.Contains(v) {
		return fmt.Errorf("version %s already in catalog", v)
	}
	c.Versions = append(c.Versions, v)
	c.Versions.Sort()
	return nil
}

// Latest returns the newest version in the catalog, or false when the
// catalog is empty.
func (c *Catalog) Latest() (chronver.Version, bool) {
	return c.Versions.Latest()
}

// Filter returns the versions matching the given criteria, oldest first.
// A nil criteria matches every version.
func (c *Catalog) Filter(criteria *Criteria) chronver.Versions {
	var matched chronver.Versions
	for _, v := range c.Versions {
		if criteria.Matches(v) {
			matched = append(matched, v)
		}
	}
	return matched
}

// Resolve returns the newest version matching the given criteria.
// A nil criteria resolves to the newest version overall.
func (c *Catalog) Resolve(criteria *Criteria) (chronver.Version, error) {
	if criteria == nil {
		criteria = NewCriteria()
	}

	matched := c.Filter(criteria)
	latest, ok := matched.Latest()
	if !ok {
		return chronver.Version{}, fmt.Errorf("no version in catalog %q matches %s", c.Name, criteria)
	}
	return latest, nil
}

// Merge adds all versions from the other catalog that are not already
// present. The receiver's name is kept.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	for _, v := range other.Versions {
		if !c.Versions.Contains(v) {
			c.Versions = append(c.Versions, v)
		}
	}
	c.Versions.Sort()
}

// Save writes the catalog to a file in its envelope form. The format is
// auto-detected from the file extension.
func (c *Catalog) Save(ctx context.Context, path string) error {
	env := rawCatalog{
		Kind:       CatalogKind,
		APIVersion: APIVersion,
		Spec: rawCatalogSpec{
			Versions: c.Versions.Strings(),
		},
	}
	env.Metadata.Name = c.Name

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}

	writer := serializer.NewWriter(serializer.FormatFromPath(path), file)
	if err := writer.Serialize(ctx, env); err != nil {
		file.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return file.Close()
}
