package main

// rights descriptors: a small state machine over (view, download, location,
// CDL) at the object level, with file-level variances appended as "(file)"
// descriptors.

const (
	viewWorld         = "world"
	viewStanford      = "stanford"
	viewDark          = "dark"
	viewCitation      = "citation-only"
	viewLocationBased = "location-based"

	downloadNone = "none"
)

func buildRightsFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	objAccess := r.obj.Access
	if objAccess == nil {
		return doc
	}

	descriptors := accessDescriptors(objAccess)

	for _, fileAccess := range variantFileAccess(r.obj, objAccess) {
		for _, d := range accessDescriptors(fileAccess) {
			descriptors = append(descriptors, d+" (file)")
		}
	}

	descriptors = uniqueStrings(descriptors)

	doc.setField("rights_descriptions_ssim", descriptors)

	// legacy single-valued field kept during the field rename; the scalar
	// shape (vs the list above) is inconsistent on purpose, downstream
	// consumers still read it
	doc.setField("rights_primary_ssi", firstElementOf(descriptors))

	doc.setField("use_statement_ssim", []string{objAccess.UseAndReproductionStatement})
	doc.setField("copyright_ssim", []string{objAccess.Copyright})
	doc.setField("use_license_machine_ssi", objAccess.License)

	return doc
}

// accessDescriptors reduces one access block to its human-readable rights
// descriptors.
func accessDescriptors(a *access) []string {
	if a.ControlledDigitalLending == true {
		return []string{"controlled digital lending"}
	}

	switch a.View {
	case viewDark:
		return []string{"dark"}

	case viewCitation:
		return []string{"citation"}
	}

	switch a.Download {
	case viewWorld:
		return []string{"world"}

	case viewStanford:
		levels := []string{"stanford"}

		if a.View == viewWorld {
			levels = append(levels, "world (no-download)")
		}

		return levels

	case viewLocationBased:
		levels := []string{locationDescriptor(a)}

		if a.View == viewWorld {
			levels = append(levels, "world (no-download)")
		}

		if a.View == viewStanford {
			levels = append(levels, "stanford (no-download)")
		}

		return levels

	case downloadNone, "":
		switch a.View {
		case viewWorld:
			return []string{"world (no-download)"}

		case viewStanford:
			return []string{"stanford (no-download)"}

		case viewLocationBased:
			return []string{locationDescriptor(a) + " (no-download)"}
		}
	}

	return nil
}

func locationDescriptor(a *access) string {
	if a.Location == "" {
		return "location"
	}

	return "location: " + a.Location
}

// variantFileAccess returns the access blocks of files whose effective access
// differs from the object's, in document order, deduped by shape.
func variantFileAccess(obj *cocinaObject, objAccess *access) []*access {
	if obj.Structural == nil {
		return nil
	}

	var out []*access
	seen := make(map[string]bool)

	for i := range obj.Structural.Contains {
		files := obj.Structural.Contains[i].Structural.Contains

		for j := range files {
			fa := files[j].Access

			if fa == nil || sameAccess(fa, objAccess) == true {
				continue
			}

			key := fa.View + "|" + fa.Download + "|" + fa.Location
			if fa.ControlledDigitalLending == true {
				key += "|cdl"
			}

			if seen[key] == false {
				out = append(out, fa)
				seen[key] = true
			}
		}
	}

	return out
}

func sameAccess(a *access, b *access) bool {
	return a.View == b.View &&
		a.Download == b.Download &&
		a.Location == b.Location &&
		a.ControlledDigitalLending == b.ControlledDigitalLending
}
