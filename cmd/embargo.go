package main

import (
	"time"
)

// embargo fields, emitted whenever the object carries an embargo block.

func buildEmbargoFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	if r.obj.Access == nil || r.obj.Access.Embargo == nil {
		return doc
	}

	emb := r.obj.Access.Embargo

	doc.setField("embargo_status_ssim", []string{"embargoed"})
	doc.setField("embargo_release_dtsim", []string{solrDate(emb.ReleaseDate)})

	return doc
}

// solrDate normalizes a release date to solr's UTC Z-terminated form; values
// that do not parse pass through unchanged rather than dropping the field.
func solrDate(val string) string {
	if val == "" {
		return ""
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, val); err == nil {
			return t.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	return val
}
