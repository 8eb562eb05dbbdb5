package main

import (
	"strings"
)

// form fields: genre, MODS resource type, and the derived format facet.

const (
	formTypeGenre        = "genre"
	formTypeResourceType = "resource type"

	sourceModsResourceTypes = "MODS resource types"
)

// genre terms that trigger an additional synonym value alongside the original
var genreSynonyms = map[string]string{
	"thesis":                 "Thesis/Dissertation",
	"conference publication": "Conference proceedings",
	"government publication": "Government document",
	"technical report":       "Technical report",
	"archived website":       "Archived website",
}

// resource-type literals that signal structural/genre attributes rather than
// an actual resource type; suppressed from the typeOfResource field
var suppressedResourceTypes = []string{"collection", "manuscript"}

func buildFormFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	desc := r.obj.desc()
	if len(desc.Form) == 0 {
		return doc
	}

	genres := formValues(desc.Form, formTypeGenre)
	resourceTypes := resourceTypeValues(desc.Form)

	doc.setField("sw_genre_ssim", withGenreSynonyms(genres))
	doc.setField("mods_typeOfResource_ssim", typeOfResourceValues(resourceTypes))
	doc.setField("sw_format_ssim", formatValues(resourceTypes, genres, issuanceNotes(desc.Event)))

	return doc
}

// formValues collects every leaf value of forms of the given type, parallel
// and grouped members included.
func formValues(forms []descValue, formType string) []string {
	var out []string

	for i := range forms {
		if strings.EqualFold(forms[i].Type, formType) == false {
			continue
		}

		out = append(out, leafValues(&forms[i])...)
	}

	return nonemptyValues(out)
}

// resourceTypeValues collects resource-type form values, whether typed
// "resource type" or sourced from the MODS resource-type vocabulary.
func resourceTypeValues(forms []descValue) []string {
	var out []string

	for i := range forms {
		f := &forms[i]

		typed := strings.EqualFold(f.Type, formTypeResourceType)
		sourced := f.Source != nil && strings.EqualFold(f.Source.Value, sourceModsResourceTypes)

		if typed == false && sourced == false {
			continue
		}

		out = append(out, leafValues(f)...)
	}

	return nonemptyValues(out)
}

// withGenreSynonyms passes genres through verbatim, appending the well-known
// synonym alongside any recognized term.
func withGenreSynonyms(genres []string) []string {
	var out []string

	for _, genre := range genres {
		out = append(out, genre)

		if synonym := genreSynonyms[strings.ToLower(genre)]; synonym != "" && synonym != genre {
			out = append(out, synonym)
		}
	}

	return uniqueStrings(out)
}

// typeOfResourceValues passes resource types through verbatim, minus the
// structural/genre literals.
func typeOfResourceValues(resourceTypes []string) []string {
	var out []string

	for _, val := range resourceTypes {
		if sliceContainsString(suppressedResourceTypes, val, true) == true {
			continue
		}

		out = append(out, val)
	}

	return out
}

// issuanceNotes gathers issuance and frequency note values from all events.
func issuanceNotes(events []descEvent) []string {
	var out []string

	for _, event := range preferredEvents(events) {
		for i := range event.Note {
			note := &event.Note[i]

			if strings.EqualFold(note.Type, "issuance") || strings.EqualFold(note.Type, "frequency") {
				if note.Value != "" {
					out = append(out, strings.ToLower(note.Type)+":"+strings.ToLower(note.Value))
				}
			}
		}
	}

	return out
}

func hasIssuance(notes []string, value string) bool {
	return sliceContainsString(notes, "issuance:"+value, true)
}

func hasFrequency(notes []string) bool {
	return hasAnyPrefixInSlice(notes, "frequency:")
}

func hasAnyPrefixInSlice(vals []string, prefix string) bool {
	for _, v := range vals {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}

	return false
}

// formatValues derives the format facet from resource types, genres, and
// issuance/frequency notes.  Every independent match contributes; results
// dedupe in the fixed category order below.
func formatValues(resourceTypes []string, genres []string, notes []string) []string {
	var out []string

	lcTypes := lowered(resourceTypes)
	lcGenres := lowered(genres)

	hasType := func(t string) bool { return sliceContainsString(lcTypes, t, false) }
	hasGenre := func(g string) bool { return sliceContainsString(lcGenres, g, false) }

	if hasGenre("dataset") {
		out = append(out, "Dataset")
	}

	if hasType("manuscript") || hasType("mixed material") {
		out = append(out, "Archive/Manuscript")
	}

	if hasType("cartographic") {
		out = append(out, "Map")
	}

	if hasType("moving image") {
		out = append(out, "Video")
	}

	if hasType("notated music") {
		out = append(out, "Music score")
	}

	// software yields to cartographic data and datasets delivered as software
	if hasType("software, multimedia") && hasType("cartographic") == false && hasGenre("dataset") == false {
		out = append(out, "Software/Multimedia")
	}

	if hasType("sound recording-musical") {
		out = append(out, "Music recording")
	}

	if hasType("sound recording-nonmusical") || hasType("sound recording") {
		out = append(out, "Sound recording")
	}

	if hasType("still image") {
		out = append(out, "Image")
	}

	if hasType("text") {
		switch {
		case hasGenre("archived website"):
			out = append(out, "Archived website")

		case hasIssuance(notes, "monographic"):
			out = append(out, "Book")

		case hasIssuance(notes, "continuing") || hasIssuance(notes, "serial") || hasFrequency(notes):
			out = append(out, "Journal/Periodical")

		case hasType("manuscript"):
			// already covered by Archive/Manuscript above

		default:
			out = append(out, "Book")
		}
	}

	if hasType("three dimensional object") {
		out = append(out, "Object")
	}

	return uniqueStrings(out)
}

func lowered(vals []string) []string {
	var out []string

	for _, v := range vals {
		out = append(out, strings.ToLower(v))
	}

	return out
}
