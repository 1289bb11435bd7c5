package oci

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dnaka91/chronver/pkg/chronver"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedReg  string
		expectedRepo string
		expectedTag  string
		wantErr      bool
	}{
		{
			name:         "with scheme and tag",
			input:        "oci://ghcr.io/dnaka91/app:2024.1.9.0",
			expectedReg:  "ghcr.io",
			expectedRepo: "dnaka91/app",
			expectedTag:  "2024.1.9.0",
		},
		{
			name:         "without scheme",
			input:        "ghcr.io/dnaka91/app:2024.1.9.0",
			expectedReg:  "ghcr.io",
			expectedRepo: "dnaka91/app",
			expectedTag:  "2024.1.9.0",
		},
		{
			name:         "labeled version tag",
			input:        "oci://ghcr.io/dnaka91/app:2024.1.9.0-beta.2",
			expectedReg:  "ghcr.io",
			expectedRepo: "dnaka91/app",
			expectedTag:  "2024.1.9.0-beta.2",
		},
		{
			name:         "without tag returns empty (caller applies default)",
			input:        "oci://ghcr.io/dnaka91/app",
			expectedReg:  "ghcr.io",
			expectedRepo: "dnaka91/app",
			expectedTag:  "",
		},
		{
			name:         "registry with port",
			input:        "oci://localhost:5000/test/app:2024.1.9.0",
			expectedReg:  "localhost:5000",
			expectedRepo: "test/app",
			expectedTag:  "2024.1.9.0",
		},
		{
			name:         "deeply nested repository",
			input:        "oci://ghcr.io/org/team/project/app:2024.1.9.0",
			expectedReg:  "ghcr.io",
			expectedRepo: "org/team/project/app",
			expectedTag:  "2024.1.9.0",
		},
		{
			name:         "short name normalizes to docker.io",
			input:        "app:2024.1.9.0",
			expectedReg:  "docker.io",
			expectedRepo: "library/app",
			expectedTag:  "2024.1.9.0",
		},
		{
			name:    "empty reference",
			input:   "oci://",
			wantErr: true,
		},
		{
			name:    "uppercase repository",
			input:   "oci://ghcr.io/INVALID/App:2024.1.9.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseReference(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReg, ref.Registry, "registry mismatch")
			assert.Equal(t, tt.expectedRepo, ref.Repository, "repository mismatch")
			assert.Equal(t, tt.expectedTag, ref.Tag, "tag mismatch")
		})
	}
}

func TestReference_Version(t *testing.T) {
	t.Run("plain tag", func(t *testing.T) {
		ref, err := ParseReference("ghcr.io/dnaka91/app:2023.5.17.3")
		assert.NoError(t, err)

		v, err := ref.Version()
		assert.NoError(t, err)
		assert.Equal(t, chronver.MustParse("2023.5.17.3"), v)
	})

	t.Run("labeled tag", func(t *testing.T) {
		ref, err := ParseReference("ghcr.io/dnaka91/app:2023.5.17.3-beta.2")
		assert.NoError(t, err)

		v, err := ref.Version()
		assert.NoError(t, err)
		assert.Equal(t, "beta.2", string(v.Label))
	})

	t.Run("tag with leading zeros", func(t *testing.T) {
		ref, err := ParseReference("ghcr.io/dnaka91/app:2024.01.09.00")
		assert.NoError(t, err)

		v, err := ref.Version()
		assert.NoError(t, err)
		assert.Equal(t, "2024.1.9.0", v.String())
	})

	t.Run("missing tag", func(t *testing.T) {
		ref, err := ParseReference("ghcr.io/dnaka91/app")
		assert.NoError(t, err)

		_, err = ref.Version()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "has no tag")
	})

	t.Run("non-chronologic tag", func(t *testing.T) {
		ref, err := ParseReference("ghcr.io/dnaka91/app:latest")
		assert.NoError(t, err)

		_, err = ref.Version()
		assert.ErrorIs(t, err, chronver.ErrStructural)
	})

	t.Run("calendar-invalid tag", func(t *testing.T) {
		ref, err := ParseReference("ghcr.io/dnaka91/app:2024.2.30.0")
		assert.NoError(t, err)

		_, err = ref.Version()
		assert.ErrorIs(t, err, chronver.ErrCalendarValidation)
	})
}

func TestReference_WithVersion(t *testing.T) {
	ref, err := ParseReference("ghcr.io/dnaka91/app:2024.1.9.0")
	assert.NoError(t, err)

	next := ref.WithVersion(chronver.MustParse("2024.01.10.00"))
	assert.Equal(t, "2024.1.10.0", next.Tag, "tag should be the canonical form")
	assert.Equal(t, ref.Registry, next.Registry)
	assert.Equal(t, ref.Repository, next.Repository)

	// Original is unchanged.
	assert.Equal(t, "2024.1.9.0", ref.Tag)
}

func TestReference_WithTag(t *testing.T) {
	ref := &Reference{
		Registry:   "ghcr.io",
		Repository: "dnaka91/app",
		Tag:        "2024.1.9.0",
	}

	retagged := ref.WithTag("2024.3.1.0")
	assert.Equal(t, "2024.3.1.0", retagged.Tag)
	assert.Equal(t, "2024.1.9.0", ref.Tag, "original should be unchanged")
}

func TestReference_String(t *testing.T) {
	tests := []struct {
		name     string
		ref      *Reference
		expected string
	}{
		{
			name: "with tag",
			ref: &Reference{
				Registry:   "ghcr.io",
				Repository: "dnaka91/app",
				Tag:        "2024.1.9.0",
			},
			expected: "ghcr.io/dnaka91/app:2024.1.9.0",
		},
		{
			name: "without tag",
			ref: &Reference{
				Registry:   "ghcr.io",
				Repository: "dnaka91/app",
			},
			expected: "ghcr.io/dnaka91/app",
		},
		{
			name: "registry with port",
			ref: &Reference{
				Registry:   "localhost:5000",
				Repository: "test/app",
				Tag:        "2024.1.9.0-rc.1",
			},
			expected: "localhost:5000/test/app:2024.1.9.0-rc.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.String())
		})
	}
}

func TestReference_StringRoundTrip(t *testing.T) {
	ref, err := ParseReference("oci://ghcr.io/dnaka91/app:2024.1.9.0")
	assert.NoError(t, err)

	reparsed, err := ParseReference(ref.String())
	assert.NoError(t, err)
	assert.Equal(t, ref, reparsed)
}
