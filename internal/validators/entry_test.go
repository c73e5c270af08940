package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		want        string
		expectError string
	}{
		{name: "simple", input: "petstore", want: "petstore"},
		{name: "with spaces", input: "Weather Service", want: "Weather Service"},
		{name: "mixed separators", input: "billing-api_v2.prod", want: "billing-api_v2.prod"},
		{name: "single character", input: "a", want: "a"},
		{name: "trimmed", input: "  petstore \n", want: "petstore"},
		{name: "empty", input: "", expectError: "cannot be empty"},
		{name: "only whitespace", input: "   ", expectError: "cannot be empty"},
		{name: "leading hyphen", input: "-petstore", expectError: "is invalid"},
		{name: "trailing dot", input: "petstore.", expectError: "is invalid"},
		{name: "slash", input: "pets/store", expectError: "is invalid"},
		{name: "too long", input: strings.Repeat("a", 256), expectError: "maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateName(tt.input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.False(t, IsValidName(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValidName(tt.input))
		})
	}
}

func TestValidateVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		want        string
		expectError string
	}{
		{name: "semver", input: "1.0.0", want: "1.0.0"},
		{name: "v prefix", input: "v2", want: "v2"},
		{name: "prerelease and build", input: "1.0.0-rc.1+build.5", want: "1.0.0-rc.1+build.5"},
		{name: "free form", input: "2024_q1", want: "2024_q1"},
		{name: "trimmed", input: " 1.1 ", want: "1.1"},
		{name: "empty", input: "", expectError: "cannot be empty"},
		{name: "inner space", input: "1 0", expectError: "is invalid"},
		{name: "slash", input: "1.0/2", expectError: "is invalid"},
		{name: "leading dot", input: ".1", expectError: "is invalid"},
		{name: "too long", input: strings.Repeat("1", 65), expectError: "maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateVersion(tt.input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
