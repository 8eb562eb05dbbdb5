package main

import (
	"strings"
)

// file/structural fields: content type, file and resource counts, preserved
// size, first shelved image.

func buildObjectFileFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	doc.setField("content_type_ssim", []string{r.obj.objectType()})

	if r.obj.Structural == nil {
		return doc
	}

	fileCount := 0
	shelvedCount := 0
	preservedSize := int64(0)
	firstShelvedImage := ""

	var mimetypes []string

	for i := range r.obj.Structural.Contains {
		files := r.obj.Structural.Contains[i].Structural.Contains

		for j := range files {
			f := &files[j]

			fileCount++

			if f.HasMimeType != "" {
				mimetypes = append(mimetypes, f.HasMimeType)
			}

			if f.Administrative != nil {
				if f.Administrative.SdrPreserve == true {
					preservedSize += f.Size
				}

				if f.Administrative.Shelve == true {
					shelvedCount++

					if firstShelvedImage == "" && isImageFile(f) == true {
						firstShelvedImage = f.Filename
					}
				}
			}
		}
	}

	if fileCount > 0 {
		doc.setField("content_file_count_itsi", fileCount)
		doc.setField("shelved_content_file_count_itsi", shelvedCount)
		doc.setField("resource_count_itsi", len(r.obj.Structural.Contains))
	}

	if preservedSize > 0 {
		doc.setField("preserved_size_dbtsi", preservedSize)
	}

	doc.setField("content_file_mimetypes_ssim", uniqueStrings(mimetypes))
	doc.setField("first_shelved_image_ss", firstShelvedImage)

	return doc
}

func isImageFile(f *objectFile) bool {
	if strings.HasPrefix(strings.ToLower(f.HasMimeType), "image/") == true {
		return true
	}

	name := strings.ToLower(f.Filename)

	for _, ext := range []string{".jp2", ".jpg", ".jpeg", ".png", ".tif", ".tiff"} {
		if strings.HasSuffix(name, ext) == true {
			return true
		}
	}

	return false
}
