// Package oci binds chronologic versions to OCI image naming.
//
// Chronologic versions are valid image tags, so OCI registries are a natural
// distribution channel for artifacts versioned this way. This package parses
// versions out of image reference tags and carries versions in standard OCI
// manifest annotations. It performs no registry access.
//
// # Core Types
//
//   - Reference: a parsed image reference (registry, repository, tag)
//
// # Usage
//
// Parse a reference and read its version:
//
//	ref, err := oci.ParseReference("oci://ghcr.io/dnaka91/app:2024.1.9.0")
//	if err != nil {
//	    return err
//	}
//	v, err := ref.Version()
//
// Tag a reference with the next version:
//
//	next := ref.WithVersion(v.Next())
//
// # Annotations
//
// Annotations and VersionFromAnnotations map versions to the standard
// org.opencontainers.image.version manifest annotation, using the constants
// from github.com/opencontainers/image-spec.
package oci
