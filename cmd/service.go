package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// git commit used for this build; supplied at compile time
var gitCommit string

type serviceVersion struct {
	BuildVersion string `json:"build,omitempty"`
	GoVersion    string `json:"go_version,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
}

type serviceMetrics struct {
	documentsBuilt *prometheus.CounterVec
	lookupMisses   *prometheus.CounterVec
}

type serviceContext struct {
	randomSource *rand.Rand
	config       *serviceConfig
	version      serviceVersion
	indexers     []fieldIndexer
	fieldAliases map[string][]string
	metrics      serviceMetrics
}

func buildVersion() string {
	files, _ := filepath.Glob("buildtag.*")
	if len(files) == 1 {
		return strings.Replace(files[0], "buildtag.", "", 1)
	}

	return "unknown"
}

func (s *serviceContext) initVersion() {
	s.version = serviceVersion{
		BuildVersion: buildVersion(),
		GoVersion:    fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
		GitCommit:    gitCommit,
	}

	log.Printf("[SERVICE] version.BuildVersion = [%s]", s.version.BuildVersion)
	log.Printf("[SERVICE] version.GoVersion    = [%s]", s.version.GoVersion)
	log.Printf("[SERVICE] version.GitCommit    = [%s]", s.version.GitCommit)
}

func (s *serviceContext) initMetrics() {
	s.metrics.documentsBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_documents_built_total",
			Help: "Number of solr documents built, by outcome.",
		},
		[]string{"outcome"},
	)

	s.metrics.lookupMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_authority_lookup_misses_total",
			Help: "Number of unmapped authority code lookups, by vocabulary.",
		},
		[]string{"vocabulary"},
	)

	prometheus.MustRegister(s.metrics.documentsBuilt)
	prometheus.MustRegister(s.metrics.lookupMisses)
}

// initFieldAliases merges configured alias mappings over the defaults.  The
// alias table implements dual emission for fields mid-rename; aliases receive
// the same value as their source field at document-assembly time.
func (s *serviceContext) initFieldAliases() {
	s.fieldAliases = map[string][]string{
		// suffix-convention migration in progress
		"sw_genre_ssim":         {"genre_ssim"},
		"sw_format_ssim":        {"format_main_ssim"},
		"sw_pub_date_facet_ssi": {"pub_year_ssi"},
	}

	for field, aliases := range s.config.FieldAliases {
		s.fieldAliases[field] = append(s.fieldAliases[field], aliases...)
	}

	for field, aliases := range s.fieldAliases {
		log.Printf("[SERVICE] field alias: [%s] => %v", field, aliases)
	}
}

func (s *serviceContext) validateConfig() {
	invalid := false

	validator := stringValidator{}

	validator.requireValue(s.config.Service.Port, "service port")

	if validator.Invalid() == true {
		invalid = true
	}

	if invalid == true {
		log.Printf("[SERVICE] exiting due to missing configuration above")
		os.Exit(1)
	}
}

func initializeService(cfg *serviceConfig) *serviceContext {
	s := serviceContext{}

	s.config = cfg
	s.randomSource = rand.New(rand.NewSource(time.Now().UnixNano()))

	s.validateConfig()
	s.initVersion()
	s.initMetrics()
	s.initFieldAliases()

	s.indexers = defaultIndexers()

	log.Printf("[SERVICE] initialized with %d field indexers", len(s.indexers))

	return &s
}
