package bst_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, build(sample...).Render(&sb))

	want := strings.Join([]string{
		"       /------+ 70",
		"|------+ 50",
		"       |      /------+ 40",
		"       \\------+ 30",
		"              \\------+ 20",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestRender_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, build().Render(&sb))
	assert.Empty(t, sb.String())
}
