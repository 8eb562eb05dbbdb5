package main

import (
	"strings"
)

// subject fields, split by facet: topic, geographic, temporal.  Each facet
// has a free-text variant (punctuation kept, not deduped) and a faceting
// variant (punctuation stripped before dedup).

const (
	subjectTypeTopic = "topic"
	subjectTypePlace = "place"
	subjectTypeTime  = "time"
)

// subject types that resolve as names and join the topic facet
var nameSubjectTypes = []string{"person", "organization", "conference", "family", "title", "occupation", "name"}

func buildSubjectFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	subjects := r.obj.desc().Subject
	if len(subjects) == 0 {
		return doc
	}

	var topicText, topicFacet, geo, temporal []string

	topicTypes := append([]string{subjectTypeTopic}, nameSubjectTypes...)

	for i := range subjects {
		s := &subjects[i]

		topicText = append(topicText, subjectLeaves(r, s, []string{subjectTypeTopic})...)
		topicFacet = append(topicFacet, subjectLeaves(r, s, topicTypes)...)
		geo = append(geo, subjectLeaves(r, s, []string{subjectTypePlace})...)
		temporal = append(temporal, subjectLeaves(r, s, []string{subjectTypeTime})...)
	}

	doc.setField("topic_tesim", topicText)
	doc.setField("topic_ssimdv", facetValues(topicFacet))
	doc.setField("subject_geographic_tesim", geo)
	doc.setField("sw_subject_geographic_ssim", facetValues(geo))
	doc.setField("subject_temporal_tesim", temporal)
	doc.setField("sw_subject_temporal_ssim", facetValues(temporal))

	return doc
}

// facetValues is the faceting variant: punctuation stripped, then deduped.
func facetValues(vals []string) []string {
	return uniqueStrings(stripPunctuationAll(vals))
}

// subjectLeaves walks one subject node and returns the resolved strings of
// every leaf whose type is in types, in declared order.  Parallel sets
// contribute all of their members; structured subjects recurse into their
// parts; name-typed nodes resolve to a single joined string.
func subjectLeaves(r *indexRequest, v *descValue, types []string) []string {
	if v == nil {
		return nil
	}

	if len(v.ParallelValue) > 0 {
		var out []string

		for i := range v.ParallelValue {
			out = append(out, subjectLeaves(r, &v.ParallelValue[i], types)...)
		}

		return out
	}

	if sliceContainsString(types, v.Type, true) == true {
		if sliceContainsString(nameSubjectTypes, v.Type, true) == true {
			return nonemptyValues([]string{nameSubjectText(v)})
		}

		if text := subjectLeafText(r, v); text != "" {
			return []string{text}
		}

		// typed wrapper around structured parts of the same facet
		var out []string

		for i := range v.StructuredValue {
			out = append(out, subjectLeaves(r, &v.StructuredValue[i], types)...)
		}

		return out
	}

	// mixed structured subject (e.g. topic + place + time parts)
	var out []string

	for i := range v.StructuredValue {
		out = append(out, subjectLeaves(r, &v.StructuredValue[i], types)...)
	}

	return out
}

// subjectLeafText resolves one leaf: its text value, else its authority code
// translated through the geographic vocabularies.  Unmapped codes drop
// without failing the document.
func subjectLeafText(r *indexRequest, v *descValue) string {
	if v.Value != "" {
		return v.Value
	}

	if v.Code == "" || v.Source == nil {
		return ""
	}

	switch strings.ToLower(v.Source.Code) {
	case authorityMarcGAC, authorityMarcCountry:
		if name := placeName(v.Code, v.Source.Code); name != "" {
			return name
		}

		r.svc.lookupMiss(v.Source.Code, v.Code)
	}

	return ""
}

// nameSubjectText joins the structured parts of a name subject with ", ",
// except consecutive same-typed parts (surname-surname, forename-forename)
// which join with a single space.
func nameSubjectText(v *descValue) string {
	v = resolveValue(v)

	if v.Value != "" {
		return v.Value
	}

	text := ""
	prevType := ""

	for i := range v.StructuredValue {
		part := resolveValue(&v.StructuredValue[i])

		if part.Value == "" {
			continue
		}

		switch {
		case text == "":
			text = part.Value

		case strings.EqualFold(part.Type, prevType) == true:
			text = text + " " + part.Value

		default:
			text = text + ", " + part.Value
		}

		prevType = part.Type
	}

	return text
}
