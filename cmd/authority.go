package main

import (
	"log"
	"strings"
)

// read-only authority lookups.  The underlying maps are package-level data
// initialized at load time and never mutated, so concurrent indexing calls
// can share them freely.

const (
	authorityMarcCountry = "marccountry"
	authorityMarcGAC     = "marcgac"
	authorityISO639      = "iso639-2b"
)

// languageName maps a language code to its display name, trying MARC/ISO
// 639-2b codes.  Empty string on a miss.
func languageName(code string) string {
	return marcLanguages[strings.ToLower(strings.TrimSpace(code))]
}

// placeName resolves a geographic authority code.  Only the recognized
// country-code and geographic-area-code vocabularies are consulted; codes
// under any other (or no) authority are dropped by the callers.
func placeName(code string, authority string) string {
	code = strings.TrimSpace(code)

	switch strings.ToLower(authority) {
	case authorityMarcCountry:
		return marcCountries[strings.ToLower(code)]

	case authorityMarcGAC:
		// GAC codes are padded with trailing hyphens in the wild
		return marcGeographicAreas[strings.TrimRight(strings.ToLower(code), "-")]
	}

	return ""
}

// lookupMiss records an unmapped authority code.  Misses are expected in
// production data and never fail the document; they are logged and counted so
// data-quality reports can find them.
func (s *serviceContext) lookupMiss(authority string, code string) {
	log.Printf("[AUTHORITY] unmapped %s code: [%s]", authority, code)

	if s.metrics.lookupMisses != nil {
		s.metrics.lookupMisses.WithLabelValues(authority).Inc()
	}
}
