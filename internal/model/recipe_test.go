package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommaSeparatedListValue(t *testing.T) {
	list := CommaSeparatedList{"egg", "milk"}
	v, err := list.Value()
	assert.NoError(t, err)
	assert.Equal(t, "egg,milk", v)

	empty := CommaSeparatedList{}
	v, err = empty.Value()
	assert.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestCommaSeparatedListScan(t *testing.T) {
	var list CommaSeparatedList
	assert.NoError(t, list.Scan("egg, milk ,,  "))
	assert.Equal(t, CommaSeparatedList{"egg", "milk"}, list)

	assert.NoError(t, list.Scan(nil))
	assert.Equal(t, CommaSeparatedList{}, list)

	assert.NoError(t, list.Scan([]byte("flour")))
	assert.Equal(t, CommaSeparatedList{"flour"}, list)
}

func TestCommaSeparatedListRoundTrip(t *testing.T) {
	list := CommaSeparatedList{"egg", "milk", "flour"}
	v, err := list.Value()
	assert.NoError(t, err)

	var scanned CommaSeparatedList
	assert.NoError(t, scanned.Scan(v))
	assert.Equal(t, list, scanned)
}

func TestNormalizeDefaults(t *testing.T) {
	r := Recipe{Name: "  Soup  ", Category: "Fusion", Signature: "  "}
	r.Normalize()

	assert.Equal(t, "Soup", r.Name)
	assert.Equal(t, CategoryOther, r.Category)
	assert.Equal(t, DefaultSignature, r.Signature)
	assert.Equal(t, 0, r.PrepTime)
	assert.Equal(t, 0, r.CookTime)
	assert.NotNil(t, r.Ingredients)
}

func TestNormalizeIdempotent(t *testing.T) {
	r := Recipe{
		Name:      "Soup",
		Category:  "Casserole",
		Signature: "",
		PrepTime:  -5,
	}
	r.Normalize()
	once := r
	r.Normalize()

	assert.Equal(t, once, r)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryMacroFriendly))
	assert.True(t, ValidCategory(CategoryOther))
	assert.False(t, ValidCategory("Fusion"))
	assert.False(t, ValidCategory(""))
}
