package tests

import (
	"fmt"
	"net/http"
	"testing"
)

//
// version tests
//

func TestVersionCheck(t *testing.T) {
	expected := http.StatusOK

	var version struct {
		Build string `json:"build"`
	}

	status := getJSON(fmt.Sprintf("%s/version", cfg.Endpoint), &version)
	if status != expected {
		t.Fatalf("Expected %v, got %v\n", expected, status)
	}

	if len(version.Build) == 0 {
		t.Fatalf("Expected non-zero length build string\n")
	}
}

//
// healthcheck tests
//

func TestHealthCheck(t *testing.T) {
	expected := http.StatusOK

	var hc map[string]struct {
		Healthy bool `json:"healthy"`
	}

	status := getJSON(fmt.Sprintf("%s/healthcheck", cfg.Endpoint), &hc)
	if status != expected {
		t.Fatalf("Expected %v, got %v\n", expected, status)
	}

	if hc["indexer"].Healthy == false {
		t.Fatalf("Expected healthy indexer\n")
	}
}

//
// end of file
//
