package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbargoFields(t *testing.T) {
	obj := &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Access: &access{
			View:    "citation-only",
			Embargo: &embargo{ReleaseDate: "2027-06-01T00:00:00-07:00"},
		},
	}

	doc := buildEmbargoFields(testRequest(obj, nil))

	assert.Equal(t, []string{"embargoed"}, doc["embargo_status_ssim"])
	assert.Equal(t, []string{"2027-06-01T07:00:00Z"}, doc["embargo_release_dtsim"])
}

func TestEmbargoDateOnlyRelease(t *testing.T) {
	obj := &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Access: &access{
			Embargo: &embargo{ReleaseDate: "2027-06-01"},
		},
	}

	doc := buildEmbargoFields(testRequest(obj, nil))

	assert.Equal(t, []string{"2027-06-01T00:00:00Z"}, doc["embargo_release_dtsim"])
}

func TestEmbargoUnparseableDatePassesThrough(t *testing.T) {
	assert.Equal(t, "sometime later", solrDate("sometime later"))
}

func TestNoEmbargoNoFields(t *testing.T) {
	obj := &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Access:             &access{View: "world", Download: "world"},
	}

	doc := buildEmbargoFields(testRequest(obj, nil))

	assert.Empty(t, doc)
}
