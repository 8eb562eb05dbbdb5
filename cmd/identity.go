package main

import (
	"strings"
)

// identity fields from the identification block: source id, barcode, DOI,
// catalog links, and the derived metadata source.

const catalogPreviousPrefix = "previous "

func buildIdentityFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	doc.setField("objectType_ssim", []string{r.obj.objectType()})

	id := r.obj.Identification
	if id == nil {
		return doc
	}

	doc.setField("source_id_ssi", id.SourceID)
	doc.setField("barcode_id_ssim", []string{id.Barcode})
	doc.setField("doi_ssim", []string{id.DOI})

	var instanceIDs []string
	activeCatalog := ""

	for _, link := range id.CatalogLinks {
		if strings.HasPrefix(strings.ToLower(link.Catalog), catalogPreviousPrefix) == true {
			continue
		}

		instanceIDs = append(instanceIDs, link.CatalogRecordID)

		// only refreshable links from a current catalog count as an
		// active metadata source
		if link.Refresh == true && activeCatalog == "" {
			activeCatalog = link.Catalog
		}
	}

	doc.setField("folio_instance_hrid_ssim", instanceIDs)
	doc.setField("metadata_source_ssi", metadataSource(activeCatalog))

	return doc
}

// metadataSource names the active descriptive-metadata source: the current
// refreshable catalog if one exists, else the repository itself.
func metadataSource(catalog string) string {
	switch strings.ToLower(catalog) {
	case "folio":
		return "Folio"

	case "symphony":
		return "Symphony"

	case "":
		return "DOR"

	default:
		return catalog
	}
}
