package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
)

// indexPayload is one indexing request: the cocina object plus the loosely
// typed context blob supplied by the caller (tags, release tags, workflow
// documents and templates).
type indexPayload struct {
	Cocina  *cocinaObject          `json:"cocina"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func decodeIndexingContext(raw map[string]interface{}) (*indexingContext, error) {
	ctx := indexingContext{}

	if len(raw) == 0 {
		return &ctx, nil
	}

	// unknown context keys are tolerated; callers send more than we read
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &ctx,
	})

	if err != nil {
		return nil, err
	}

	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid context: %s", err.Error())
	}

	return &ctx, nil
}

func (s *serviceContext) buildFromPayload(payload *indexPayload) (solrDoc, int, error) {
	if payload.Cocina == nil || payload.Cocina.ExternalIdentifier == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("missing cocina object")
	}

	ctx, err := decodeIndexingContext(payload.Context)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	doc, err := s.buildDocument(payload.Cocina, ctx)
	if err != nil {
		// field collisions indicate pipeline misconfiguration, not bad input
		return nil, http.StatusInternalServerError, err
	}

	return doc, http.StatusOK, nil
}

func (s *serviceContext) indexHandler(c *gin.Context) {
	cl := clientContext{}
	cl.init(s, c)
	cl.logRequest()

	var payload indexPayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		cl.logResponse(http.StatusBadRequest, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, status, err := s.buildFromPayload(&payload)

	if err != nil {
		s.metrics.documentsBuilt.WithLabelValues("error").Inc()
		cl.logResponse(status, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	s.metrics.documentsBuilt.WithLabelValues("success").Inc()
	cl.logResponse(status, nil)
	c.JSON(status, doc)
}

type batchResult struct {
	ID       string  `json:"id,omitempty"`
	Document solrDoc `json:"document,omitempty"`
	Error    string  `json:"error,omitempty"`
}

func (s *serviceContext) batchHandler(c *gin.Context) {
	cl := clientContext{}
	cl.init(s, c)
	cl.logRequest()

	var payloads []indexPayload

	if err := c.ShouldBindJSON(&payloads); err != nil {
		cl.logResponse(http.StatusBadRequest, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]batchResult, 0, len(payloads))

	for i := range payloads {
		result := batchResult{}

		if payloads[i].Cocina != nil {
			result.ID = payloads[i].Cocina.ExternalIdentifier
		}

		doc, _, err := s.buildFromPayload(&payloads[i])

		if err != nil {
			// one bad record does not fail the batch
			s.metrics.documentsBuilt.WithLabelValues("error").Inc()
			result.Error = err.Error()
		} else {
			s.metrics.documentsBuilt.WithLabelValues("success").Inc()
			result.Document = doc
		}

		results = append(results, result)
	}

	cl.logResponse(http.StatusOK, nil)
	c.JSON(http.StatusOK, results)
}

func (s *serviceContext) ignoreHandler(c *gin.Context) {
}

func (s *serviceContext) versionHandler(c *gin.Context) {
	cl := clientContext{}
	cl.init(s, c)

	c.JSON(http.StatusOK, s.version)
}

func (s *serviceContext) healthCheckHandler(c *gin.Context) {
	cl := clientContext{}
	cl.init(s, c)

	type hcResp struct {
		Healthy bool   `json:"healthy"`
		Message string `json:"message,omitempty"`
	}

	// the pipeline has no runtime dependencies; healthy means initialized
	hcMap := make(map[string]hcResp)
	hcMap["indexer"] = hcResp{Healthy: len(s.indexers) > 0}

	c.JSON(http.StatusOK, hcMap)
}
