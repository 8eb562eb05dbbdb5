package main

// language facet: display names, preferring a record-supplied name over a
// code lookup.  Unmapped codes drop without failing the document.

func buildLanguageFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	var names []string

	for _, lang := range r.obj.desc().Language {
		switch {
		case lang.Value != "":
			names = append(names, lang.Value)

		case lang.Code != "":
			if name := languageName(lang.Code); name != "" {
				names = append(names, name)
				continue
			}

			r.svc.lookupMiss(authorityISO639, lang.Code)
		}
	}

	doc.setField("language_ssim", uniqueStrings(names))

	return doc
}
