package main

import (
	"strconv"
	"strings"
)

// title fields.  One title is selected as primary (status, else first); its
// text feeds the main/full/display fields, and every other resolved title
// value lands in additional_titles.

const (
	titlePartMain     = "main title"
	titlePartSubtitle = "subtitle"
	titlePartNonSort  = "nonsorting characters"
	titlePartNumber   = "part number"
	titlePartName     = "part name"
	titleNoteNonSort  = "nonsorting character count"
	titleTypeUniform  = "uniform"
)

func buildTitleFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	titles := r.obj.desc().Title
	if len(titles) == 0 {
		return doc
	}

	primary := primaryOrFirst(titles)
	selected := resolveValue(primary)

	doc.setField("main_title_tenim", mainTitleText(selected))
	doc.setField("full_title_tenim", fullTitleText(selected))
	doc.setField("display_title_ss", displayTitleText(selected, partLabelFor(r.obj)))
	doc.setField("additional_titles_tenim", additionalTitles(titles, selected))

	return doc
}

// firstPart returns the first structured part of the given type, or nil.
func firstPart(t *descValue, partType string) *descValue {
	parts := structuredParts(t, partType)

	if len(parts) == 0 {
		return nil
	}

	return parts[0]
}

// nonsortCount returns the declared nonsorting character count, or 0.
func nonsortCount(t *descValue) int {
	val := noteValue(t.Note, titleNoteNonSort)

	if val == "" {
		return 0
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}

	return count
}

// titleParts returns the structured parts of the given types, excluding the
// associated-name part of a uniform title (the author name is carried by the
// contributor fields, not the title).
func titleParts(t *descValue, types ...string) []*descValue {
	var out []*descValue

	for _, part := range structuredParts(t, types...) {
		if strings.EqualFold(t.Type, titleTypeUniform) && strings.EqualFold(part.Type, "name") {
			continue
		}

		out = append(out, part)
	}

	return out
}

// mainTitleText reconstructs the main title: nonsorting characters plus the
// main-title part.  With no count note the two concatenate directly (sources
// embed their own trailing space); a count note pads the nonsorting segment
// out to the declared width first.
func mainTitleText(t *descValue) string {
	if t == nil {
		return ""
	}

	if t.Value != "" {
		return t.Value
	}

	main := firstPart(t, titlePartMain)
	if main == nil {
		return flatValue(t, " ")
	}

	text := resolveValue(main).Value

	if nonSort := firstPart(t, titlePartNonSort); nonSort != nil {
		ns := resolveValue(nonSort).Value

		if count := nonsortCount(t); count > len(ns) {
			ns += strings.Repeat(" ", count-len(ns))
		}

		text = ns + text
	}

	return text
}

// fullTitleText joins all structured parts in declared order with single
// spaces, stripping each part's terminal punctuation.
func fullTitleText(t *descValue) string {
	if t == nil {
		return ""
	}

	if t.Value != "" {
		return stripPunctuation(t.Value)
	}

	var parts []string

	for i := range t.StructuredValue {
		part := resolveValue(&t.StructuredValue[i])

		if strings.EqualFold(t.Type, titleTypeUniform) && strings.EqualFold(part.Type, "name") {
			continue
		}

		if s := stripPunctuation(part.Value); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return stripPunctuation(flatValue(t, " "))
	}

	return strings.Join(parts, " ")
}

// displayTitleText reorders structured parts into canonical display order:
// nonsorting+main, " : " subtitle, ". " part number, ", " part name.  A
// catalog-link part label, when present, is appended last.
func displayTitleText(t *descValue, partLabel string) string {
	if t == nil {
		return ""
	}

	text := stripPunctuation(mainTitleText(t))

	for _, sub := range titleParts(t, titlePartSubtitle) {
		if s := stripPunctuation(resolveValue(sub).Value); s != "" {
			text = text + " : " + s
		}
	}

	var partBits []string

	for _, part := range titleParts(t, titlePartNumber, titlePartName) {
		if s := stripPunctuation(resolveValue(part).Value); s != "" {
			partBits = append(partBits, s)
		}
	}

	if len(partBits) > 0 {
		text = text + ". " + strings.Join(partBits, ", ")
	}

	if partLabel != "" {
		text = text + ", " + partLabel
	}

	return text
}

// partLabelFor returns the part label of the first catalog link carrying one.
func partLabelFor(obj *cocinaObject) string {
	if obj.Identification == nil {
		return ""
	}

	for _, link := range obj.Identification.CatalogLinks {
		if link.PartLabel != "" {
			return link.PartLabel
		}
	}

	return ""
}

// additionalTitles resolves every title value other than the selected one,
// including the unselected members of parallel sets.  Punctuation is kept;
// these are search fields.
func additionalTitles(titles []descValue, selected *descValue) []string {
	var out []string

	for i := range titles {
		for _, member := range allValues(&titles[i]) {
			if member == selected {
				continue
			}

			if s := titleSearchText(member); s != "" && s != titleSearchText(selected) {
				out = append(out, s)
			}
		}
	}

	return out
}

// titleSearchText flattens one resolved title for free-text search: all
// structured parts in declared order, punctuation preserved.
func titleSearchText(t *descValue) string {
	if t == nil {
		return ""
	}

	if t.Value != "" {
		return t.Value
	}

	return strings.Join(nonemptyValues(leafValues(t)), " ")
}
