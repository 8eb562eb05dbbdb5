package main

// basic fields every document carries: identifier, label, version.

func buildBasicFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	doc.setField("id", r.obj.ExternalIdentifier)
	doc.setField("obj_label_tesim", []string{r.obj.Label})

	if r.obj.Version > 0 {
		doc.setField("current_version_isi", r.obj.Version)
	}

	if r.obj.Administrative != nil {
		doc.setField("apo_ssim", []string{r.obj.Administrative.HasAdminPolicy})
	}

	if r.obj.Structural != nil {
		doc.setField("collection_ssim", r.obj.Structural.IsMemberOf)
	}

	return doc
}
