package main

import (
	"regexp"
	"strconv"
	"strings"
)

// event fields: dates, publishers, places of publication.  The date-selection
// precedence chain here mirrors search-quality expectations exactly; change it
// only with fixture coverage.

const (
	eventTypeCreation    = "creation"
	eventTypePublication = "publication"
	eventTypeCapture     = "capture"

	rolePublisher = "publisher"
)

var yearRE = regexp.MustCompile(`\d{4}`)

func buildEventFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	events := preferredEvents(r.obj.desc().Event)
	if len(events) == 0 {
		return doc
	}

	dates := collectDates(events)

	doc.setField("originInfo_date_created_tesim", selectDate(dates, eventTypeCreation))
	doc.setField("originInfo_date_published_tesim", selectDate(dates, eventTypePublication))

	if year := publicationYear(dates); year != "" {
		doc.setField("sw_pub_date_facet_ssi", year)

		if n, err := strconv.Atoi(year); err == nil {
			doc.setField("publication_year_isi", n)
		}
	}

	var publishers []string
	var places []string

	for _, event := range events {
		if pub := eventPublisher(r, event); pub != "" {
			publishers = append(publishers, pub)
		}

		if place := eventPlace(r, event); place != "" {
			places = append(places, place)
		}
	}

	doc.setField("originInfo_publisher_tesim", uniqueStrings(publishers))
	doc.setField("originInfo_place_placeTerm_tesim", uniqueStrings(places))

	return doc
}

// preferredEvents flattens parallelEvent wrappers to their preferred branch:
// the member with status primary, else the first.
func preferredEvents(events []descEvent) []*descEvent {
	var out []*descEvent

	for i := range events {
		event := &events[i]

		if len(event.ParallelEvent) > 0 {
			selected := &event.ParallelEvent[0]

			for j := range event.ParallelEvent {
				if event.ParallelEvent[j].Status == statusPrimary {
					selected = &event.ParallelEvent[j]
					break
				}
			}

			out = append(out, selected)
			continue
		}

		out = append(out, event)
	}

	return out
}

// eventDate pairs a resolved date node with its owning event.
type eventDate struct {
	event *descEvent
	date  *descValue
}

// collectDates resolves every date of every event in document order.
// Parallel date sets reduce to their preferred member before the selection
// precedence runs.
func collectDates(events []*descEvent) []eventDate {
	var out []eventDate

	for _, event := range events {
		for i := range event.Date {
			date := resolveValue(&event.Date[i])

			if date != nil && dateText(date) != "" {
				out = append(out, eventDate{event: event, date: date})
			}
		}
	}

	return out
}

// dateText reduces one date node to its resolved string; ranges contribute
// their start value.
func dateText(d *descValue) string {
	if d.Value != "" {
		return d.Value
	}

	if start := firstPart(d, "start"); start != nil {
		return resolveValue(start).Value
	}

	if len(d.StructuredValue) > 0 {
		return resolveValue(&d.StructuredValue[0]).Value
	}

	return ""
}

// selectDate applies the date precedence chain for one target type:
// primary-status match first, then the date's own type, then the owning
// event's type.
func selectDate(dates []eventDate, target string) string {
	for _, d := range dates {
		if d.date.Status == statusPrimary && strings.EqualFold(d.date.Type, target) {
			return dateText(d.date)
		}
	}

	for _, d := range dates {
		if strings.EqualFold(d.date.Type, target) {
			return dateText(d.date)
		}
	}

	for _, d := range dates {
		if strings.EqualFold(d.event.Type, target) {
			return dateText(d.date)
		}
	}

	return ""
}

// publicationYear falls through publication, creation and capture dates, then
// the earliest date of any kind, and reduces the winner to a 4-digit year.
func publicationYear(dates []eventDate) string {
	for _, d := range dates {
		if d.date.Status == statusPrimary {
			if year := extractYear(dateText(d.date)); year != "" {
				return year
			}
		}
	}

	for _, target := range []string{eventTypePublication, eventTypeCreation, eventTypeCapture} {
		if year := extractYear(selectDate(dates, target)); year != "" {
			return year
		}
	}

	// last resort: earliest year among all dates
	best := ""

	for _, d := range dates {
		year := extractYear(dateText(d.date))

		if year == "" {
			continue
		}

		if best == "" || year < best {
			best = year
		}
	}

	return best
}

// extractYear pulls the first 4-digit year out of a date string.
func extractYear(val string) string {
	return yearRE.FindString(val)
}

// eventPublisher selects the publisher display for one event: the primary
// publisher-role contributor if marked, else every candidate joined with
// " : " in document order.  Structured names join their parts with ". ".
func eventPublisher(r *indexRequest, event *descEvent) string {
	var candidates []string

	for i := range event.Contributor {
		c := &event.Contributor[i]

		if hasRole(c, rolePublisher) == false {
			continue
		}

		name := primaryOrFirst(c.Name)
		if name == nil {
			continue
		}

		text := flatValue(name, ". ")
		if text == "" {
			continue
		}

		if c.Status == statusPrimary {
			return text
		}

		candidates = append(candidates, text)
	}

	return strings.Join(candidates, " : ")
}

func hasRole(c *descContributor, role string) bool {
	for i := range c.Role {
		if strings.EqualFold(flatValue(&c.Role[i], " "), role) {
			return true
		}
	}

	return false
}

// eventPlace selects the place display for one event: primary wins, else all
// resolvable places joined with " : ".  Codes resolve through the recognized
// country/area-code vocabularies only; unmapped codes drop silently.
func eventPlace(r *indexRequest, event *descEvent) string {
	var candidates []string

	for i := range event.Location {
		loc := resolveValue(&event.Location[i])

		text := placeText(r, loc)
		if text == "" {
			continue
		}

		if loc.Status == statusPrimary {
			return text
		}

		candidates = append(candidates, text)
	}

	return strings.Join(candidates, " : ")
}

// placeText resolves one location node: a text value wins outright; a bare
// code is translated when its source is a recognized vocabulary.
func placeText(r *indexRequest, loc *descValue) string {
	if loc == nil {
		return ""
	}

	if loc.Value != "" {
		return loc.Value
	}

	if len(loc.StructuredValue) > 0 {
		return flatValue(loc, ", ")
	}

	if loc.Code == "" || loc.Source == nil {
		return ""
	}

	switch strings.ToLower(loc.Source.Code) {
	case authorityMarcCountry, authorityMarcGAC:
		if name := placeName(loc.Code, loc.Source.Code); name != "" {
			return name
		}

		r.svc.lookupMiss(loc.Source.Code, loc.Code)
	}

	return ""
}
