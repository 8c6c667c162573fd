package category

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryMode(t *testing.T) {
	assert.Equal(t, Comprehensive, ParseQueryMode("comprehensive"))
	assert.Equal(t, Comprehensive, ParseQueryMode("COMPREHENSIVE"))
	assert.Equal(t, Simplified, ParseQueryMode("simplified"))
	assert.Equal(t, Simplified, ParseQueryMode(""))
	assert.Equal(t, Simplified, ParseQueryMode("whatever"))
}

func TestTemplate_EveryCategoryBothModes(t *testing.T) {
	for _, c := range All() {
		for _, mode := range []QueryMode{Simplified, Comprehensive} {
			tmpl := c.Template(mode)
			require.NotEmpty(t, tmpl, "%s has no %s template", c.Key, mode)
			assert.Contains(t, tmpl, "{radius}")
			assert.Contains(t, tmpl, "{lat}")
			assert.Contains(t, tmpl, "{lon}")
			assert.True(t, strings.HasSuffix(tmpl, "); out body;"), "%s %s template footer", c.Key, mode)
		}
	}
}

func TestBuildQuery_Substitution(t *testing.T) {
	c, ok := ByKey(Culinary)
	require.True(t, ok)

	q := BuildQuery(c, Simplified, -6.2, 106.816666, 100)
	assert.Contains(t, q, "(around:100,-6.2,106.816666)")
	assert.NotContains(t, q, "{radius}")
	assert.NotContains(t, q, "{lat}")
	assert.NotContains(t, q, "{lon}")
	assert.Contains(t, q, "[timeout:15]")
}

func TestBuildQuery_ComprehensiveTimeout(t *testing.T) {
	c, ok := ByKey(Education)
	require.True(t, ok)

	q := BuildQuery(c, Comprehensive, -6.2, 106.8, 200)
	assert.Contains(t, q, "[timeout:30]")
	assert.Contains(t, q, "(around:200,-6.2,106.8)")
}

func TestBuildCombinedQuery(t *testing.T) {
	q := BuildCombinedQuery(Simplified, -6.2, 106.8, 100)

	// One header, one footer, no leftover per-category framing.
	assert.Equal(t, 1, strings.Count(q, "[out:json]"))
	assert.Equal(t, 1, strings.Count(q, "out body;"))
	assert.True(t, strings.HasPrefix(q, "[out:json][timeout:15]; ("))
	assert.True(t, strings.HasSuffix(q, "); out body;"))
	assert.NotContains(t, q, "{radius}")

	// Filters from categories across the set survive the merge.
	assert.Contains(t, q, `"landuse"="residential"`)
	assert.Contains(t, q, "restaurant|cafe|food_court|fast_food")
	assert.Contains(t, q, "hospital|clinic|doctors|healthcare")
}
