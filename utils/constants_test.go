package utils_test

import (
	"testing"

	"github.com/arkasoft/arka-portal/utils"
	"github.com/stretchr/testify/assert"
)

func TestToggleLocale(t *testing.T) {
	assert.Equal(t, utils.LocaleEnglish, utils.ToggleLocale(utils.LocalePersian))
	assert.Equal(t, utils.LocalePersian, utils.ToggleLocale(utils.LocaleEnglish))

	// Unknown values land on the site default
	assert.Equal(t, utils.LocalePersian, utils.ToggleLocale("de"))
	assert.Equal(t, utils.LocalePersian, utils.ToggleLocale(""))
}

func TestIsSupportedLocale(t *testing.T) {
	assert.True(t, utils.IsSupportedLocale(utils.LocalePersian))
	assert.True(t, utils.IsSupportedLocale(utils.LocaleEnglish))
	assert.False(t, utils.IsSupportedLocale("FA"))
	assert.False(t, utils.IsSupportedLocale("ar"))
}
