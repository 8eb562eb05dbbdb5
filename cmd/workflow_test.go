package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const accessionWFDoc = `<workflow id="accessionWF" objectId="druid:bc123df4567">
  <process name="start-accession" status="completed" datetime="2024-04-01T10:00:00Z"/>
  <process name="descriptive-metadata" status="completed" datetime="2024-04-01T10:01:00Z"/>
  <process name="publish" status="waiting"/>
  <process name="end-accession" status="waiting"/>
</workflow>`

func accessionContext() *indexingContext {
	return &indexingContext{
		Workflows: map[string]string{"accessionWF": accessionWFDoc},
		WorkflowTemplates: map[string][]string{
			"accessionWF": {"start-accession", "descriptive-metadata", "publish", "end-accession"},
		},
	}
}

func TestWorkflowStatusActiveUntilAllStepsDone(t *testing.T) {
	doc := buildWorkflowFields(testRequest(simpleObject(), accessionContext()))

	assert.Equal(t, []string{"accessionWF"}, doc["wf_ssim"])
	assert.Equal(t, []string{"accessionWF|active|0"}, doc["workflow_status_ssim"])
}

func TestWorkflowStatusCompleted(t *testing.T) {
	ctx := &indexingContext{
		Workflows: map[string]string{
			"accessionWF": `<workflow id="accessionWF">
  <process name="start-accession" status="completed"/>
  <process name="publish" status="skipped"/>
</workflow>`,
		},
	}

	doc := buildWorkflowFields(testRequest(simpleObject(), ctx))

	assert.Equal(t, []string{"accessionWF|completed|0"}, doc["workflow_status_ssim"])
}

func TestWorkflowStepPermutations(t *testing.T) {
	doc := buildWorkflowFields(testRequest(simpleObject(), accessionContext()))

	assert.Contains(t, doc["wf_wps_ssim"], "accessionWF")
	assert.Contains(t, doc["wf_wps_ssim"], "accessionWF:publish")
	assert.Contains(t, doc["wf_wps_ssim"], "accessionWF:publish:waiting")
	assert.Contains(t, doc["wf_wsp_ssim"], "accessionWF:active")
	assert.Contains(t, doc["wf_wsp_ssim"], "accessionWF:waiting:publish")
	assert.Contains(t, doc["wf_swp_ssim"], "active:accessionWF")
	assert.Contains(t, doc["wf_swp_ssim"], "waiting:accessionWF:publish")
}

func TestWorkflowTemplateOrdersSteps(t *testing.T) {
	wf, err := parseWorkflow(`<workflow id="wasCrawlPreassemblyWF">
  <process name="end-preassembly" status="waiting"/>
  <process name="start" status="completed"/>
  <process name="extra-step" status="completed"/>
</workflow>`)
	assert.NoError(t, err)

	steps := orderedSteps(wf, []string{"start", "end-preassembly"})

	// template order first, unlisted processes after in document order
	assert.Equal(t, []workflowStep{
		{name: "start", status: "completed"},
		{name: "end-preassembly", status: "waiting"},
		{name: "extra-step", status: "completed"},
	}, steps)
}

func TestWorkflowErrorsCountedAndEmitted(t *testing.T) {
	ctx := &indexingContext{
		Workflows: map[string]string{
			"accessionWF": `<workflow id="accessionWF">
  <process name="publish" status="error" errorMessage="connection refused"/>
  <process name="shelve" status="waiting"/>
</workflow>`,
		},
	}

	doc := buildWorkflowFields(testRequest(simpleObject(), ctx))

	assert.Equal(t, []string{"accessionWF|active|1"}, doc["workflow_status_ssim"])
	assert.Equal(t, []string{"accessionWF:publish:connection refused"}, doc["wf_error_ssim"])
}

func TestWorkflowUndecodableDocumentSkipped(t *testing.T) {
	ctx := &indexingContext{
		Workflows: map[string]string{
			"badWF":       `<workflow`,
			"accessionWF": `<workflow id="accessionWF"><process name="publish" status="completed"/></workflow>`,
		},
	}

	doc := buildWorkflowFields(testRequest(simpleObject(), ctx))

	assert.Equal(t, []string{"accessionWF"}, doc["wf_ssim"])
}
