package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFields(t *testing.T) {
	obj := simpleObject()
	obj.Identification = &identification{
		SourceID: "sul:36105123456789",
		Barcode:  "36105123456789",
		DOI:      "10.25740/bc123df4567",
		CatalogLinks: []catalogLink{
			{Catalog: "previous symphony", CatalogRecordID: "a1234"},
			{Catalog: "folio", CatalogRecordID: "in00000011", Refresh: true},
		},
	}

	doc := buildIdentityFields(testRequest(obj, nil))

	assert.Equal(t, []string{"book"}, doc["objectType_ssim"])
	assert.Equal(t, "sul:36105123456789", doc["source_id_ssi"])
	assert.Equal(t, []string{"36105123456789"}, doc["barcode_id_ssim"])
	assert.Equal(t, []string{"10.25740/bc123df4567"}, doc["doi_ssim"])
	assert.Equal(t, []string{"in00000011"}, doc["folio_instance_hrid_ssim"])
	assert.Equal(t, "Folio", doc["metadata_source_ssi"])
}

func TestMetadataSourceDefaultsToDOR(t *testing.T) {
	obj := simpleObject()
	obj.Identification = &identification{SourceID: "sul:123"}

	doc := buildIdentityFields(testRequest(obj, nil))

	assert.Equal(t, "DOR", doc["metadata_source_ssi"])
}

func TestMetadataSourceNonRefreshableCatalogIsDOR(t *testing.T) {
	obj := simpleObject()
	obj.Identification = &identification{
		CatalogLinks: []catalogLink{
			{Catalog: "folio", CatalogRecordID: "in00000022", Refresh: false},
		},
	}

	doc := buildIdentityFields(testRequest(obj, nil))

	assert.Equal(t, []string{"in00000022"}, doc["folio_instance_hrid_ssim"])
	assert.Equal(t, "DOR", doc["metadata_source_ssi"])
}
