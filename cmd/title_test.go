package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titleObject(titles ...descValue) *cocinaObject {
	return &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Description:        &description{Title: titles},
	}
}

func TestTitleParallelPrimaryWinsRegardlessOfOrder(t *testing.T) {
	parallel := []descValue{
		{Value: "Secondary title"},
		{Value: "Primary title", Status: "primary"},
	}

	forward := buildTitleFields(testRequest(titleObject(descValue{ParallelValue: parallel}), nil))

	reversed := []descValue{parallel[1], parallel[0]}
	backward := buildTitleFields(testRequest(titleObject(descValue{ParallelValue: reversed}), nil))

	assert.Equal(t, "Primary title", forward["main_title_tenim"])
	assert.Equal(t, forward["main_title_tenim"], backward["main_title_tenim"])
	assert.Equal(t, forward["display_title_ss"], backward["display_title_ss"])
}

func TestMainTitleNonsortingCount(t *testing.T) {
	title := descValue{
		StructuredValue: []descValue{
			{Value: "The", Type: "nonsorting characters"},
			{Value: "journey", Type: "main title"},
		},
		Note: []descValue{
			{Value: "4", Type: "nonsorting character count"},
		},
	}

	doc := buildTitleFields(testRequest(titleObject(title), nil))

	// count 4 pads "The" to four characters before the concatenation
	assert.Equal(t, "The journey", doc["main_title_tenim"])
}

func TestMainTitleNonsortingWithoutCount(t *testing.T) {
	title := descValue{
		StructuredValue: []descValue{
			{Value: "L'", Type: "nonsorting characters"},
			{Value: "autre monde", Type: "main title"},
		},
	}

	doc := buildTitleFields(testRequest(titleObject(title), nil))

	assert.Equal(t, "L'autre monde", doc["main_title_tenim"])
}

func TestFullTitleDeclaredOrderWithPunctuationStripped(t *testing.T) {
	title := descValue{
		StructuredValue: []descValue{
			{Value: "A portrait,", Type: "main title"},
			{Value: "in two parts;", Type: "subtitle"},
		},
	}

	doc := buildTitleFields(testRequest(titleObject(title), nil))

	assert.Equal(t, "A portrait in two parts", doc["full_title_tenim"])
}

func TestDisplayTitleCanonicalOrder(t *testing.T) {
	title := descValue{
		StructuredValue: []descValue{
			{Value: "2,", Type: "part number"},
			{Value: "main title,", Type: "main title"},
			{Value: "a subtitle;", Type: "subtitle"},
			{Value: "the sequel", Type: "part name"},
		},
	}

	doc := buildTitleFields(testRequest(titleObject(title), nil))

	assert.Equal(t, "main title : a subtitle. 2, the sequel", doc["display_title_ss"])
}

func TestDisplayTitleCatalogPartLabel(t *testing.T) {
	obj := titleObject(descValue{Value: "Collected works"})
	obj.Identification = &identification{
		CatalogLinks: []catalogLink{
			{Catalog: "folio", CatalogRecordID: "in0001", PartLabel: "Volume 2"},
		},
	}

	doc := buildTitleFields(testRequest(obj, nil))

	assert.Equal(t, "Collected works, Volume 2", doc["display_title_ss"])
}

func TestAdditionalTitles(t *testing.T) {
	doc := buildTitleFields(testRequest(titleObject(
		descValue{Value: "Main one", Status: "primary"},
		descValue{Value: "Translated one", Type: "translated"},
		descValue{Value: "Alternative one", Type: "alternative"},
	), nil))

	require.Contains(t, doc, "additional_titles_tenim")
	assert.ElementsMatch(t, []string{"Translated one", "Alternative one"}, doc["additional_titles_tenim"])
}

func TestAdditionalTitlesIncludeUnselectedParallelMembers(t *testing.T) {
	doc := buildTitleFields(testRequest(titleObject(descValue{
		ParallelValue: []descValue{
			{Value: "Selected", Status: "primary"},
			{Value: "Variant"},
		},
	}), nil))

	assert.Equal(t, []string{"Variant"}, doc["additional_titles_tenim"])
}

func TestUniformTitleExcludesAssociatedName(t *testing.T) {
	title := descValue{
		Type: "uniform",
		StructuredValue: []descValue{
			{Value: "Verdi, Giuseppe", Type: "name"},
			{Value: "Requiem", Type: "main title"},
		},
	}

	doc := buildTitleFields(testRequest(titleObject(title), nil))

	assert.Equal(t, "Requiem", doc["main_title_tenim"])
	assert.Equal(t, "Requiem", doc["full_title_tenim"])
	assert.Equal(t, "Requiem", doc["display_title_ss"])
}

func TestNoTitles(t *testing.T) {
	doc := buildTitleFields(testRequest(titleObject(), nil))
	assert.Empty(t, doc)
}
