package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectFileFields(t *testing.T) {
	obj := &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Type:               "https://cocina.sul.stanford.edu/models/image",
		Structural: &structural{
			Contains: []fileSet{
				{
					Structural: fileSetStructural{
						Contains: []objectFile{
							{
								Filename:       "page1.jp2",
								Size:           1000,
								HasMimeType:    "image/jp2",
								Administrative: &fileAdministrative{Shelve: true, SdrPreserve: true},
							},
							{
								Filename:       "page1.xml",
								Size:           200,
								HasMimeType:    "application/xml",
								Administrative: &fileAdministrative{SdrPreserve: true},
							},
						},
					},
				},
				{
					Structural: fileSetStructural{
						Contains: []objectFile{
							{
								Filename:       "page2.jp2",
								Size:           1500,
								HasMimeType:    "image/jp2",
								Administrative: &fileAdministrative{Shelve: true, SdrPreserve: true},
							},
						},
					},
				},
			},
		},
	}

	doc := buildObjectFileFields(testRequest(obj, nil))

	assert.Equal(t, []string{"image"}, doc["content_type_ssim"])
	assert.Equal(t, 3, doc["content_file_count_itsi"])
	assert.Equal(t, 2, doc["shelved_content_file_count_itsi"])
	assert.Equal(t, 2, doc["resource_count_itsi"])
	assert.Equal(t, int64(2700), doc["preserved_size_dbtsi"])
	assert.Equal(t, []string{"image/jp2", "application/xml"}, doc["content_file_mimetypes_ssim"])
	assert.Equal(t, "page1.jp2", doc["first_shelved_image_ss"])
}

func TestObjectFileFieldsNoStructural(t *testing.T) {
	obj := &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Type:               "https://cocina.sul.stanford.edu/models/book",
	}

	doc := buildObjectFileFields(testRequest(obj, nil))

	assert.Equal(t, []string{"book"}, doc["content_type_ssim"])
	assert.NotContains(t, doc, "content_file_count_itsi")
}

func TestUnshelvedImageNotFirstShelvedImage(t *testing.T) {
	obj := &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Structural: &structural{
			Contains: []fileSet{
				{
					Structural: fileSetStructural{
						Contains: []objectFile{
							{Filename: "hidden.jp2", HasMimeType: "image/jp2", Administrative: &fileAdministrative{}},
							{Filename: "shown.jp2", HasMimeType: "image/jp2", Administrative: &fileAdministrative{Shelve: true}},
						},
					},
				},
			},
		},
	}

	doc := buildObjectFileFields(testRequest(obj, nil))

	assert.Equal(t, "shown.jp2", doc["first_shelved_image_ss"])
}
