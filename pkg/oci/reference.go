package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	"github.com/dnaka91/chronver/pkg/chronver"
)

// URIScheme is the URI scheme for OCI registry references
// (e.g., "oci://ghcr.io/dnaka91/app:2024.1.9.0").
const URIScheme = "oci://"

// Reference represents a parsed OCI image reference.
type Reference struct {
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "dnaka91/app").
	Repository string
	// Tag is the image tag (e.g., "2024.1.9.0").
	// Empty string means no tag was specified.
	Tag string
}

// ParseReference parses an image reference string and extracts its components.
// The oci:// scheme prefix is accepted and stripped. Short references are
// normalized following Docker conventions (e.g., "app:2024.1.9.0" resolves
// to the docker.io registry).
//
// If no tag is specified, Tag will be empty; the caller is responsible for
// applying a default.
func ParseReference(target string) (*Reference, error) {
	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, fmt.Errorf("invalid image reference %q: %w", target, err)
	}

	r := &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		r.Tag = tagged.Tag()
	}
	return r, nil
}

// Version parses the reference tag as a chronologic version.
func (r *Reference) Version() (chronver.Version, error) {
	if r.Tag == "" {
		return chronver.Version{}, fmt.Errorf("reference %s has no tag", r)
	}
	return chronver.Parse(r.Tag)
}

// WithVersion returns a copy of the reference tagged with the canonical form
// of the given version.
func (r *Reference) WithVersion(v chronver.Version) *Reference {
	return r.WithTag(v.String())
}

// WithTag returns a copy of the reference with the specified tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}

// String returns the Docker-style image reference (without the oci:// scheme).
func (r *Reference) String() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}
