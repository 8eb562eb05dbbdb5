package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rightsObject(a *access) *cocinaObject {
	return &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Access:             a,
	}
}

func TestRightsDescriptors(t *testing.T) {
	cases := []struct {
		access access
		want   []string
	}{
		{access{View: "world", Download: "world"}, []string{"world"}},
		{access{View: "world", Download: "none"}, []string{"world (no-download)"}},
		{access{View: "world", Download: "stanford"}, []string{"stanford", "world (no-download)"}},
		{access{View: "stanford", Download: "stanford"}, []string{"stanford"}},
		{access{View: "stanford", Download: "none"}, []string{"stanford (no-download)"}},
		{access{View: "citation-only", Download: "none"}, []string{"citation"}},
		{access{View: "dark", Download: "none"}, []string{"dark"}},
		{access{View: "location-based", Download: "location-based", Location: "spec"}, []string{"location: spec"}},
		{access{View: "world", Download: "location-based", Location: "music"}, []string{"location: music", "world (no-download)"}},
		{access{View: "location-based", Download: "none", Location: "spec"}, []string{"location: spec (no-download)"}},
		{access{View: "stanford", Download: "none", ControlledDigitalLending: true}, []string{"controlled digital lending"}},
	}

	for _, c := range cases {
		doc := buildRightsFields(testRequest(rightsObject(&c.access), nil))
		assert.Equal(t, c.want, doc["rights_descriptions_ssim"], "view=%s download=%s", c.access.View, c.access.Download)
	}
}

func TestRightsPrimaryIsFirstDescriptor(t *testing.T) {
	doc := buildRightsFields(testRequest(rightsObject(
		&access{View: "world", Download: "stanford"},
	), nil))

	assert.Equal(t, "stanford", doc["rights_primary_ssi"])
}

func TestRightsFileVariants(t *testing.T) {
	obj := rightsObject(&access{View: "world", Download: "none"})

	obj.Structural = &structural{
		Contains: []fileSet{
			{
				Structural: fileSetStructural{
					Contains: []objectFile{
						{Filename: "cover.jp2", Access: &access{View: "world", Download: "none"}},
						{Filename: "body.pdf", Access: &access{View: "stanford", Download: "none"}},
						{Filename: "body2.pdf", Access: &access{View: "stanford", Download: "none"}},
					},
				},
			},
		},
	}

	doc := buildRightsFields(testRequest(obj, nil))

	// the matching file contributes nothing; the variant pair dedupes to one
	assert.Equal(t, []string{"world (no-download)", "stanford (no-download) (file)"}, doc["rights_descriptions_ssim"])
}

func TestRightsStatementAndLicense(t *testing.T) {
	doc := buildRightsFields(testRequest(rightsObject(&access{
		View:                        "world",
		Download:                    "world",
		Copyright:                   "Copyright the authors",
		License:                     "https://creativecommons.org/licenses/by/4.0/legalcode",
		UseAndReproductionStatement: "Available for research use.",
	}), nil))

	assert.Equal(t, []string{"Available for research use."}, doc["use_statement_ssim"])
	assert.Equal(t, []string{"Copyright the authors"}, doc["copyright_ssim"])
	assert.Equal(t, "https://creativecommons.org/licenses/by/4.0/legalcode", doc["use_license_machine_ssi"])
}

func TestRightsNoAccessBlock(t *testing.T) {
	doc := buildRightsFields(testRequest(rightsObject(nil), nil))

	assert.Empty(t, doc)
}
