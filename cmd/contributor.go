package main

import (
	"strings"
)

// contributor/name fields.  The primary contributor (status, else the first
// with a name) feeds the author fields; every contributor feeds the
// multi-valued search field and the ORCID facet.

func buildContributorFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	contributors := r.obj.desc().Contributor
	if len(contributors) == 0 {
		return doc
	}

	if primary := primaryContributor(contributors); primary != nil {
		name := contributorName(primary)
		doc.setField("author_text_nostem_im", name)
		doc.setField("author_display_ss", stripPunctuation(name))
	}

	var names []string
	var orcids []string

	for i := range contributors {
		c := &contributors[i]

		for _, member := range contributorNameValues(c) {
			if s := contributorNameText(member); s != "" {
				names = append(names, s)
			}
		}

		if orcid := contributorOrcid(c); orcid != "" {
			orcids = append(orcids, orcid)
		}
	}

	doc.setField("contributor_text_nostem_im", names)
	doc.setField("contributor_orcids_ssim", uniqueStrings(orcids))

	return doc
}

// primaryContributor returns the contributor with status primary, else the
// first one that has a name.
func primaryContributor(contributors []descContributor) *descContributor {
	for i := range contributors {
		if contributors[i].Status == statusPrimary && len(contributors[i].Name) > 0 {
			return &contributors[i]
		}
	}

	for i := range contributors {
		if len(contributors[i].Name) > 0 {
			return &contributors[i]
		}
	}

	return nil
}

// contributorName resolves one contributor to a single display name:
// preferred name (primary, else first), parallel sets reduced to their
// selected member, structured parts joined with ", ".
func contributorName(c *descContributor) string {
	name := primaryOrFirst(c.Name)
	if name == nil {
		return ""
	}

	return contributorNameText(resolveValue(name))
}

// contributorNameValues expands every name of a contributor, including all
// members of parallel sets, for the search field.
func contributorNameValues(c *descContributor) []*descValue {
	var out []*descValue

	for i := range c.Name {
		out = append(out, allValues(&c.Name[i])...)
	}

	return out
}

func contributorNameText(v *descValue) string {
	if v == nil {
		return ""
	}

	if v.Value != "" {
		return v.Value
	}

	// grouped names contribute only the part typed "name"
	if len(v.GroupedValue) > 0 {
		if name := groupedPart(v, "name"); name != nil {
			return contributorNameText(resolveValue(name))
		}
	}

	return flatValue(v, ", ")
}

// contributorOrcid returns the contributor's ORCID as a full https URI, or "".
func contributorOrcid(c *descContributor) string {
	for i := range c.Identifier {
		id := &c.Identifier[i]

		isOrcid := strings.EqualFold(id.Type, "ORCID") ||
			(id.Source != nil && strings.EqualFold(id.Source.Code, "orcid"))

		if isOrcid == false {
			continue
		}

		val := id.Value
		if val == "" {
			val = id.URI
		}

		if val == "" {
			continue
		}

		// normalize bare identifiers and http/https URI variants
		val = strings.TrimPrefix(val, "https://orcid.org/")
		val = strings.TrimPrefix(val, "http://orcid.org/")
		val = strings.Trim(val, "/")

		return "https://orcid.org/" + val
	}

	return ""
}
