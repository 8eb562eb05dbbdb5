package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func languageObject(languages ...descLanguage) *cocinaObject {
	return &cocinaObject{
		ExternalIdentifier: "druid:bc123df4567",
		Description:        &description{Language: languages},
	}
}

func TestLanguageValueWinsOverCode(t *testing.T) {
	doc := buildLanguageFields(testRequest(languageObject(
		descLanguage{Value: "Middle English", Code: "enm"},
	), nil))

	assert.Equal(t, []string{"Middle English"}, doc["language_ssim"])
}

func TestLanguageCodeResolves(t *testing.T) {
	doc := buildLanguageFields(testRequest(languageObject(
		descLanguage{Code: "eng"},
		descLanguage{Code: "fre"},
	), nil))

	assert.Equal(t, []string{"English", "French"}, doc["language_ssim"])
}

func TestLanguageUnmappedCodeDrops(t *testing.T) {
	doc := buildLanguageFields(testRequest(languageObject(
		descLanguage{Code: "zz9"},
		descLanguage{Code: "ger"},
	), nil))

	assert.Equal(t, []string{"German"}, doc["language_ssim"])
}

func TestLanguageDedupes(t *testing.T) {
	doc := buildLanguageFields(testRequest(languageObject(
		descLanguage{Value: "English"},
		descLanguage{Code: "eng"},
	), nil))

	assert.Equal(t, []string{"English"}, doc["language_ssim"])
}
