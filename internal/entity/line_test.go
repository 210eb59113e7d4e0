package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	// Then: the catalog holds rows, columns and both diagonals in that order
	expected := []Line{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}

	require.Equal(t, expected, Lines)
}

func TestBuildLines_IsStable(t *testing.T) {
	// When: the catalog is rebuilt
	rebuilt := buildLines(Size)

	// Then: it matches the shared catalog
	require.Equal(t, Lines, rebuilt)
	require.Len(t, rebuilt, 2*Size+2)
}
