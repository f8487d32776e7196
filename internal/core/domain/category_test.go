package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory("electronics")
	require.NoError(t, err)
	assert.Equal(t, CategoryElectronics, category)
}

func TestParseCategoryIsCaseInsensitive(t *testing.T) {
	category, err := ParseCategory("  Raw-Materials ")
	require.NoError(t, err)
	assert.Equal(t, CategoryRawMaterials, category)
}

func TestParseCategoryRejectsUnknownTags(t *testing.T) {
	_, err := ParseCategory("spaceships")
	assert.Error(t, err)

	_, err = ParseCategory("")
	assert.Error(t, err)
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Tools & Equipment", CategoryTools.DisplayName())
	assert.Equal(t, "Perishable Food", CategoryPerishables.DisplayName())
	assert.Equal(t, "Other", CategoryOther.DisplayName())
}

func TestEveryCategoryHasADisplayName(t *testing.T) {
	for category := range categoryNames {
		assert.True(t, category.Valid())
		assert.NotEmpty(t, category.DisplayName())
	}
}
