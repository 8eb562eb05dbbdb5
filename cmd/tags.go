package main

import (
	"fmt"
	"strings"
)

// administrative tag fields.  Tags are colon-delimited hierarchies; each one
// emits its raw form, an exploded prefix sequence for facet drill-down, and a
// depth-encoded hierarchical form for tree rendering.  Tags under the
// configured project buckets route to the project-specific pair.

var prefixedTagFields = map[string]string{
	"project":       "project_tag_ssim",
	"registered by": "registered_by_tag_ssim",
	"ticket":        "ticket_tag_ssim",
}

func buildTagFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	tags := r.ctx.AdministrativeTags
	if len(tags) == 0 {
		return doc
	}

	projectBuckets := r.svc.config.ProjectTagBuckets

	var raw []string
	var explodedProject, explodedGeneral []string
	var hierProject, hierGeneral []string

	prefixed := make(map[string][]string)

	for _, tag := range tags {
		segments := tagSegments(tag)
		if len(segments) == 0 {
			continue
		}

		normalized := strings.Join(segments, " : ")
		raw = append(raw, normalized)

		exploded := explodeTag(segments)
		hierarchical := hierarchicalTag(segments)

		if sliceContainsString(projectBuckets, segments[0], true) == true {
			explodedProject = append(explodedProject, exploded...)
			hierProject = append(hierProject, hierarchical...)
		} else {
			explodedGeneral = append(explodedGeneral, exploded...)
			hierGeneral = append(hierGeneral, hierarchical...)
		}

		if field := prefixedTagFields[strings.ToLower(segments[0])]; field != "" && len(segments) > 1 {
			prefixed[field] = append(prefixed[field], strings.Join(segments[1:], " : "))
		}
	}

	doc.setField("tag_ssim", raw)
	doc.setField("exploded_project_tag_ssim", uniqueStrings(explodedProject))
	doc.setField("exploded_nonproject_tag_ssim", uniqueStrings(explodedGeneral))
	doc.setField("hierarchical_project_tag_ssim", uniqueStrings(hierProject))
	doc.setField("hierarchical_nonproject_tag_ssim", uniqueStrings(hierGeneral))

	for field, vals := range prefixed {
		doc.setField(field, uniqueStrings(vals))
	}

	return doc
}

// tagSegments splits a tag on colons and normalizes segment whitespace.
func tagSegments(tag string) []string {
	var out []string

	for _, segment := range strings.Split(tag, ":") {
		if s := strings.TrimSpace(segment); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// explodeTag emits every prefix of the hierarchy, shallowest first.
func explodeTag(segments []string) []string {
	var out []string

	for i := 1; i <= len(segments); i++ {
		out = append(out, strings.Join(segments[:i], " : "))
	}

	return out
}

// hierarchicalTag pairs each prefix with its depth and a leaf marker: "+" for
// prefixes with children below, "-" for the full tag.
func hierarchicalTag(segments []string) []string {
	var out []string

	for i := 1; i <= len(segments); i++ {
		marker := "+"
		if i == len(segments) {
			marker = "-"
		}

		out = append(out, fmt.Sprintf("%d|%s|%s", i, strings.Join(segments[:i], " : "), marker))
	}

	return out
}
