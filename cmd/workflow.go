package main

import (
	"encoding/xml"
	"fmt"
	"log"
	"sort"
)

// workflow status fields.  Step order follows the per-workflow template from
// the workflow service, not the XML document order; statuses and errors come
// from the live workflow document.

const (
	statusCompleted = "completed"
	statusSkipped   = "skipped"
	statusError     = "error"

	workflowStatusActive    = "active"
	workflowStatusCompleted = "completed"

	// solr rejects field values over 32766 bytes; leave room for the
	// workflow:step prefix
	maxWorkflowErrorLength = 32000
)

type workflowProcessXML struct {
	Name         string `xml:"name,attr"`
	Status       string `xml:"status,attr"`
	Datetime     string `xml:"datetime,attr"`
	ErrorMessage string `xml:"errorMessage,attr"`
}

type workflowXML struct {
	XMLName   xml.Name             `xml:"workflow"`
	ID        string               `xml:"id,attr"`
	ObjectID  string               `xml:"objectId,attr"`
	Processes []workflowProcessXML `xml:"process"`
}

func buildWorkflowFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	if len(r.ctx.Workflows) == 0 {
		return doc
	}

	var names []string
	var wps, wsp, swp, statuses, errors []string

	for _, name := range sortedWorkflowNames(r.ctx.Workflows) {
		wf, err := parseWorkflow(r.ctx.Workflows[name])
		if err != nil {
			log.Printf("[WORKFLOW] skipping undecodable document [%s]: %s", name, err.Error())
			continue
		}

		if wf.ID != "" {
			name = wf.ID
		}

		steps := orderedSteps(wf, r.ctx.WorkflowTemplates[name])
		status := workflowStatus(steps)
		errorCount := 0

		names = append(names, name)

		wps = append(wps, name)
		wsp = append(wsp, name, name+":"+status)
		swp = append(swp, status, status+":"+name)

		for _, step := range steps {
			wps = append(wps, name+":"+step.name)
			if step.status != "" {
				wps = append(wps, name+":"+step.name+":"+step.status)
				wsp = append(wsp, name+":"+step.status+":"+step.name)
				swp = append(swp, step.status+":"+name+":"+step.name)
			}

			if step.status == statusError {
				errorCount++

				if step.message != "" {
					msg := truncateString(step.message, maxWorkflowErrorLength)
					errors = append(errors, name+":"+step.name+":"+msg)
				}
			}
		}

		statuses = append(statuses, fmt.Sprintf("%s|%s|%d", name, status, errorCount))
	}

	doc.setField("wf_ssim", uniqueStrings(names))
	doc.setField("wf_wps_ssim", uniqueStrings(wps))
	doc.setField("wf_wsp_ssim", uniqueStrings(wsp))
	doc.setField("wf_swp_ssim", uniqueStrings(swp))
	doc.setField("workflow_status_ssim", statuses)
	doc.setField("wf_error_ssim", uniqueStrings(errors))

	return doc
}

func sortedWorkflowNames(workflows map[string]string) []string {
	var names []string

	for name := range workflows {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func parseWorkflow(document string) (*workflowXML, error) {
	var wf workflowXML

	if err := xml.Unmarshal([]byte(document), &wf); err != nil {
		return nil, err
	}

	return &wf, nil
}

type workflowStep struct {
	name    string
	status  string
	message string
}

// orderedSteps arranges the workflow's steps in template order, appending any
// process the template does not know about in document order.
func orderedSteps(wf *workflowXML, template []string) []workflowStep {
	byName := make(map[string]*workflowProcessXML)

	for i := range wf.Processes {
		p := &wf.Processes[i]

		if _, ok := byName[p.Name]; ok == false {
			byName[p.Name] = p
		}
	}

	var steps []workflowStep
	covered := make(map[string]bool)

	for _, name := range template {
		step := workflowStep{name: name}

		if p := byName[name]; p != nil {
			step.status = p.Status
			step.message = p.ErrorMessage
		}

		steps = append(steps, step)
		covered[name] = true
	}

	for i := range wf.Processes {
		p := &wf.Processes[i]

		if covered[p.Name] == false {
			steps = append(steps, workflowStep{name: p.Name, status: p.Status, message: p.ErrorMessage})
			covered[p.Name] = true
		}
	}

	return steps
}

// workflowStatus is active while any step remains neither completed nor
// skipped.
func workflowStatus(steps []workflowStep) string {
	for _, step := range steps {
		if step.status != statusCompleted && step.status != statusSkipped {
			return workflowStatusActive
		}
	}

	return workflowStatusCompleted
}
