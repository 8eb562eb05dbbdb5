package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleasedToLatestTagWins(t *testing.T) {
	ctx := &indexingContext{
		ReleaseTags: []releaseTag{
			{To: "Searchworks", What: "self", Release: true, Date: "2024-01-01T00:00:00Z"},
			{To: "Searchworks", What: "self", Release: false, Date: "2024-06-01T00:00:00Z"},
		},
	}

	doc := buildReleasableFields(testRequest(simpleObject(), ctx))

	assert.NotContains(t, doc, "released_to_ssim")
}

func TestReleasedToSelfOverridesCollection(t *testing.T) {
	ctx := &indexingContext{
		ReleaseTags: []releaseTag{
			{To: "Searchworks", What: "self", Release: true, Date: "2023-01-01"},
		},
		CollectionReleaseTags: map[string][]releaseTag{
			"druid:collection1": {
				{To: "Searchworks", What: "collection", Release: false, Date: "2024-01-01"},
				{To: "Earthworks", What: "collection", Release: true, Date: "2024-01-01"},
			},
		},
	}

	doc := buildReleasableFields(testRequest(simpleObject(), ctx))

	// a newer collection tag never overrides the object's own tag
	assert.Equal(t, []string{"Earthworks", "Searchworks"}, doc["released_to_ssim"])
}

func TestReleasedToUndatedSortsEarliest(t *testing.T) {
	ctx := &indexingContext{
		ReleaseTags: []releaseTag{
			{To: "Searchworks", What: "self", Release: true},
			{To: "Searchworks", What: "self", Release: false, Date: "2020-01-01"},
		},
	}

	doc := buildReleasableFields(testRequest(simpleObject(), ctx))

	assert.NotContains(t, doc, "released_to_ssim")
}

func TestReleasedToTieKeepsLaterDeclaration(t *testing.T) {
	ctx := &indexingContext{
		ReleaseTags: []releaseTag{
			{To: "Searchworks", What: "self", Release: false, Date: "2024-01-01"},
			{To: "Searchworks", What: "self", Release: true, Date: "2024-01-01"},
		},
	}

	doc := buildReleasableFields(testRequest(simpleObject(), ctx))

	assert.Equal(t, []string{"Searchworks"}, doc["released_to_ssim"])
}

func TestReleasedToIgnoresMistypedTags(t *testing.T) {
	ctx := &indexingContext{
		// a collection-typed tag in the object's own list does not count
		ReleaseTags: []releaseTag{
			{To: "Searchworks", What: "collection", Release: true, Date: "2024-01-01"},
		},
	}

	doc := buildReleasableFields(testRequest(simpleObject(), ctx))

	assert.NotContains(t, doc, "released_to_ssim")
}
