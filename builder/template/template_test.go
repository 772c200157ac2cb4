package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplateExists(t *testing.T) {
	assert.True(t, Exists(DefaultName))
}

func TestExists(t *testing.T) {
	assert.True(t, Exists("template7"))
	assert.True(t, Exists("template_tcs"))
	assert.False(t, Exists("template99"))
	assert.False(t, Exists(""))
}

func TestGet(t *testing.T) {
	meta, ok := Get("template_it_modern")
	require.True(t, ok)
	assert.Equal(t, "IT Modern One-Page", meta.Label)

	_, ok = Get("nope")
	assert.False(t, ok)
}

func TestCatalogIsCopy(t *testing.T) {
	first := Catalog()
	first[0].Label = "mutated"

	again := Catalog()
	assert.Equal(t, "Modern Professional", again[0].Label)
}
