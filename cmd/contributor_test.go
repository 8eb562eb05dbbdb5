package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contributorObject(contributors ...descContributor) *cocinaObject {
	return &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Description:        &description{Contributor: contributors},
	}
}

func TestAuthorIsPrimaryContributor(t *testing.T) {
	doc := buildContributorFields(testRequest(contributorObject(
		descContributor{Name: []descValue{{Value: "Second, Person"}}},
		descContributor{Name: []descValue{{Value: "First, Person,"}}, Status: "primary"},
	), nil))

	assert.Equal(t, "First, Person,", doc["author_text_nostem_im"])
	assert.Equal(t, "First, Person", doc["author_display_ss"])
}

func TestAuthorFallsBackToFirstNamedContributor(t *testing.T) {
	doc := buildContributorFields(testRequest(contributorObject(
		descContributor{Role: []descValue{{Value: "editor"}}},
		descContributor{Name: []descValue{{Value: "Named, Person"}}},
	), nil))

	assert.Equal(t, "Named, Person", doc["author_text_nostem_im"])
}

func TestStructuredNameJoinsWithComma(t *testing.T) {
	doc := buildContributorFields(testRequest(contributorObject(
		descContributor{Name: []descValue{{
			StructuredValue: []descValue{
				{Value: "Austen", Type: "surname"},
				{Value: "Jane", Type: "forename"},
			},
		}}},
	), nil))

	assert.Equal(t, "Austen, Jane", doc["author_text_nostem_im"])
}

func TestContributorSearchFieldExpandsParallelNames(t *testing.T) {
	doc := buildContributorFields(testRequest(contributorObject(
		descContributor{Name: []descValue{{
			ParallelValue: []descValue{
				{Value: "Tolstoy, Leo", Status: "primary"},
				{Value: "Толстой, Лев"},
			},
		}}},
	), nil))

	// author takes the primary member; the search field takes both
	assert.Equal(t, "Tolstoy, Leo", doc["author_text_nostem_im"])
	assert.Equal(t, []string{"Tolstoy, Leo", "Толстой, Лев"}, doc["contributor_text_nostem_im"])
}

func TestGroupedNameUsesNamePart(t *testing.T) {
	got := contributorNameText(&descValue{
		GroupedValue: []descValue{
			{Value: "Twain, Mark", Type: "name"},
			{Value: "pseudonym", Type: "note"},
		},
	})

	assert.Equal(t, "Twain, Mark", got)
}

func TestOrcidNormalization(t *testing.T) {
	doc := buildContributorFields(testRequest(contributorObject(
		descContributor{
			Name: []descValue{{Value: "One, Author"}},
			Identifier: []descValue{
				{Value: "0000-0002-1825-0097", Type: "ORCID"},
			},
		},
		descContributor{
			Name: []descValue{{Value: "Two, Author"}},
			Identifier: []descValue{
				{URI: "http://orcid.org/0000-0001-5109-3700/", Source: &descSource{Code: "orcid"}},
			},
		},
	), nil))

	assert.Equal(t, []string{
		"https://orcid.org/0000-0002-1825-0097",
		"https://orcid.org/0000-0001-5109-3700",
	}, doc["contributor_orcids_ssim"])
}

func TestContributorWithoutOrcidEmitsNoOrcidField(t *testing.T) {
	doc := buildContributorFields(testRequest(contributorObject(
		descContributor{Name: []descValue{{Value: "Plain, Author"}}},
	), nil))

	assert.NotContains(t, doc, "contributor_orcids_ssim")
}
