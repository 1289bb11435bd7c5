package oci

import (
	"fmt"
	"time"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/dnaka91/chronver/pkg/chronver"
)

// Annotations builds the standard OCI manifest annotations carrying a
// chronologic version and its creation time:
//
//   - org.opencontainers.image.version: the canonical version string
//   - org.opencontainers.image.created: the creation time in RFC 3339 UTC
func Annotations(v chronver.Version, created time.Time) map[string]string {
	return map[string]string{
		ociv1.AnnotationVersion: v.String(),
		ociv1.AnnotationCreated: created.UTC().Format(time.RFC3339),
	}
}

// VersionFromAnnotations extracts the chronologic version from manifest
// annotations.
func VersionFromAnnotations(annotations map[string]string) (chronver.Version, error) {
	raw, ok := annotations[ociv1.AnnotationVersion]
	if !ok {
		return chronver.Version{}, fmt.Errorf("annotation %s not present", ociv1.AnnotationVersion)
	}
	return chronver.Parse(raw)
}
