package main

import (
	"fmt"
	"reflect"
)

// the indexer pipeline: an ordered list of field indexers, each a pure
// function from one object (plus request context) to a partial solr document.
// the composite merges their contributions and applies the field alias table.

// solrDoc maps solr field names to a scalar or an ordered list of scalars.
// built documents never contain nulls or empty collections; keys are omitted
// instead.
type solrDoc map[string]interface{}

// releaseTag is one release directive for the object or its collection.
type releaseTag struct {
	To      string `json:"to,omitempty" mapstructure:"to"`
	Release bool   `json:"release,omitempty" mapstructure:"release"`
	What    string `json:"what,omitempty" mapstructure:"what"`
	Date    string `json:"date,omitempty" mapstructure:"date"`
	Who     string `json:"who,omitempty" mapstructure:"who"`
}

// indexingContext carries the narrow external context an indexing request
// arrives with.  Everything here is supplied by the caller; the pipeline
// performs no lookups of its own.
type indexingContext struct {
	AdministrativeTags    []string                `json:"administrativeTags,omitempty" mapstructure:"administrativeTags"`
	ReleaseTags           []releaseTag            `json:"releaseTags,omitempty" mapstructure:"releaseTags"`
	CollectionReleaseTags map[string][]releaseTag `json:"collectionReleaseTags,omitempty" mapstructure:"collectionReleaseTags"`
	Workflows             map[string]string       `json:"workflows,omitempty" mapstructure:"workflows"`
	WorkflowTemplates     map[string][]string     `json:"workflowTemplates,omitempty" mapstructure:"workflowTemplates"`
}

// indexRequest is the unit of work handed to each field indexer.
type indexRequest struct {
	svc *serviceContext
	obj *cocinaObject
	ctx *indexingContext
}

type fieldIndexer struct {
	name  string
	build func(r *indexRequest) solrDoc
}

// setField adds a field to the document, dropping empty strings, empty
// slices, and slices reduced to nothing after empty-member removal.
func (d solrDoc) setField(key string, value interface{}) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return
		}
		d[key] = v

	case []string:
		vals := nonemptyValues(v)
		if len(vals) == 0 {
			return
		}
		d[key] = vals

	case nil:
		return

	default:
		d[key] = v
	}
}

// buildDocument runs every configured field indexer against one object and
// merges the partial documents.  Two indexers emitting the same field with
// different values is a pipeline misconfiguration and fails the call.
func (s *serviceContext) buildDocument(obj *cocinaObject, ctx *indexingContext) (solrDoc, error) {
	if obj == nil {
		return nil, fmt.Errorf("no object to index")
	}

	if ctx == nil {
		ctx = &indexingContext{}
	}

	r := indexRequest{svc: s, obj: obj, ctx: ctx}

	doc := solrDoc{}
	owners := make(map[string]string)

	for _, indexer := range s.indexers {
		partial := indexer.build(&r)

		for field, value := range partial {
			if existing, ok := doc[field]; ok == true {
				if reflect.DeepEqual(existing, value) == true {
					continue
				}

				return nil, fmt.Errorf("field collision: [%s] emitted by both [%s] and [%s]", field, owners[field], indexer.name)
			}

			doc[field] = value
			owners[field] = indexer.name
		}
	}

	// dual emission for fields mid-migration between suffix conventions
	for field, aliases := range s.fieldAliases {
		value, ok := doc[field]
		if ok == false {
			continue
		}

		for _, alias := range aliases {
			if _, taken := doc[alias]; taken == false {
				doc[alias] = value
			}
		}
	}

	return doc, nil
}

// defaultIndexers is the full pipeline, in emission order.
func defaultIndexers() []fieldIndexer {
	return []fieldIndexer{
		{name: "basic", build: buildBasicFields},
		{name: "identity", build: buildIdentityFields},
		{name: "title", build: buildTitleFields},
		{name: "contributor", build: buildContributorFields},
		{name: "event", build: buildEventFields},
		{name: "form", build: buildFormFields},
		{name: "language", build: buildLanguageFields},
		{name: "subject", build: buildSubjectFields},
		{name: "rights", build: buildRightsFields},
		{name: "embargo", build: buildEmbargoFields},
		{name: "object-files", build: buildObjectFileFields},
		{name: "releasable", build: buildReleasableFields},
		{name: "administrative-tags", build: buildTagFields},
		{name: "workflows", build: buildWorkflowFields},
	}
}
