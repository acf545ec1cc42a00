package phidget22

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryCandidatesOverrideFirst(t *testing.T) {
	t.Setenv(EnvLibrary, "/opt/custom/libphidget22.so")
	t.Setenv(EnvRoot, "")

	cands := libraryCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, "/opt/custom/libphidget22.so", cands[0])
}

func TestLibraryCandidatesRootBeforeDefaults(t *testing.T) {
	t.Setenv(EnvLibrary, "")
	t.Setenv(EnvRoot, "/opt/phidget22")

	cands := libraryCandidates()
	require.NotEmpty(t, cands)
	// Root-derived candidates come before the platform defaults.
	assert.Contains(t, cands[0], "/opt/phidget22")
}

func TestLibraryCandidatesDefaultsNonEmpty(t *testing.T) {
	t.Setenv(EnvLibrary, "")
	t.Setenv(EnvRoot, "")

	assert.NotEmpty(t, libraryCandidates())
}

func TestReadyFalseWithoutLoad(t *testing.T) {
	assert.False(t, Ready())
}
