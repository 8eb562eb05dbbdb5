package tests

import (
	"fmt"
	"net/http"
	"testing"
)

//
// index endpoint tests
//

func indexPayload() map[string]interface{} {
	return map[string]interface{}{
		"cocina": map[string]interface{}{
			"type":               "https://cocina.sul.stanford.edu/models/book",
			"externalIdentifier": "druid:bc123df4567",
			"label":              "Endpoint test object",
			"version":            1,
			"description": map[string]interface{}{
				"title": []map[string]interface{}{
					{"value": "Endpoint test title"},
				},
			},
		},
		"context": map[string]interface{}{
			"administrativeTags": []string{"Project : Testing"},
		},
	}
}

func TestIndexDocument(t *testing.T) {
	expected := http.StatusOK

	var doc map[string]interface{}

	status := postJSON(fmt.Sprintf("%s/api/index", cfg.Endpoint), indexPayload(), &doc)
	if status != expected {
		t.Fatalf("Expected %v, got %v\n", expected, status)
	}

	if doc["id"] != "druid:bc123df4567" {
		t.Fatalf("Expected id field in document, got %v\n", doc["id"])
	}

	if doc["main_title_tenim"] == nil {
		t.Fatalf("Expected title field in document\n")
	}
}

func TestIndexMissingCocina(t *testing.T) {
	expected := http.StatusBadRequest

	payload := map[string]interface{}{
		"context": map[string]interface{}{},
	}

	status := postJSON(fmt.Sprintf("%s/api/index", cfg.Endpoint), payload, nil)
	if status != expected {
		t.Fatalf("Expected %v, got %v\n", expected, status)
	}
}

func TestIndexBatch(t *testing.T) {
	expected := http.StatusOK

	payload := []map[string]interface{}{
		indexPayload(),
		indexPayload(),
	}

	var results []map[string]interface{}

	status := postJSON(fmt.Sprintf("%s/api/index/batch", cfg.Endpoint), payload, &results)
	if status != expected {
		t.Fatalf("Expected %v, got %v\n", expected, status)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d\n", len(results))
	}
}

//
// end of file
//
