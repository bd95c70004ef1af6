package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
)

// runCustomFields extracts values for the configured custom fields. The
// stage is virtual: it carries no workflow tag, so a re-run costs only
// the fields still unset. Fields are processed independently; one
// field's failure does not block the rest.
func (o *Orchestrator) runCustomFields(ctx context.Context, doc *dms.Document, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	selected := o.selectedFields(ctx, result)
	if result.Error != "" {
		return statusError
	}
	if len(selected) == 0 {
		return statusContinue
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeStepStart, doc.ID).
		WithStep(string(models.StageCustomFields)))

	set := make(map[int]bool, len(doc.CustomFields))
	for _, v := range doc.CustomFields {
		set[v.FieldID] = true
	}

	values := append([]dms.CustomFieldValue(nil), doc.CustomFields...)
	pending := 0
	wrote := 0
	for _, field := range selected {
		if set[field.ID] {
			continue
		}

		outcome, err := o.confirmValue(ctx, doc.ID, o.fieldSpec(doc, field))
		if err != nil {
			result.Error = err.Error()
			return statusError
		}
		if !outcome.Converged {
			if strings.TrimSpace(outcome.Analysis.Suggestion) == "" {
				// The document simply has no value for this field.
				continue
			}
			if status := o.enqueueFieldReview(ctx, doc, field, outcome, result); status != statusContinue {
				return status
			}
			pending++
			continue
		}

		encoded, err := encodeFieldValue(field, outcome.Analysis.Suggestion)
		if err != nil {
			// Validation inside the loop should have caught this; drop the
			// value rather than fail the document.
			o.logger.Warn("Dropping unencodable field value",
				"doc_id", doc.ID, "field", field.Name, "value", outcome.Analysis.Suggestion, "error", err)
			continue
		}
		values = append(values, dms.CustomFieldValue{FieldID: field.ID, Value: encoded})
		wrote++
	}

	if wrote > 0 {
		if err := o.dms.UpdateDocument(ctx, doc.ID, dms.DocumentUpdate{CustomFields: values}); err != nil {
			result.Error = fmt.Sprintf("failed to write custom fields: %v", err)
			return statusError
		}
		doc.CustomFields = values
	}

	if pending > 0 {
		o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeNeedsReview, doc.ID).
			WithStep(string(models.StageCustomFields)).
			WithData(map[string]any{"kind": models.ReviewKindCustomField, "count": pending}))
		return statusNeedsReview
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeStepComplete, doc.ID).
		WithStep(string(models.StageCustomFields)))
	o.recorder.Record(ctx, doc.ID, string(models.StageCustomFields), "completed",
		map[string]any{"fields_written": wrote})
	return statusContinue
}

// selectedFields resolves the configured field names against the DMS
// field definitions. Documentlink fields belong to the link stage and
// are never selected here.
func (o *Orchestrator) selectedFields(ctx context.Context, result *models.PipelineResult) []dms.CustomField {
	if len(o.cfg.Pipeline.CustomFieldSelection) == 0 {
		return nil
	}

	defs, err := o.dms.CustomFields(ctx)
	if err != nil {
		result.Error = fmt.Sprintf("failed to list custom fields: %v", err)
		return nil
	}

	wanted := make(map[string]bool, len(o.cfg.Pipeline.CustomFieldSelection))
	for _, name := range o.cfg.Pipeline.CustomFieldSelection {
		wanted[strings.ToLower(name)] = true
	}

	var selected []dms.CustomField
	for _, def := range defs {
		if !wanted[strings.ToLower(def.Name)] {
			continue
		}
		if def.DataType == "documentlink" {
			continue
		}
		selected = append(selected, def)
	}
	return selected
}

// fieldSpec builds the confirmation-loop spec for one custom field.
func (o *Orchestrator) fieldSpec(doc *dms.Document, field dms.CustomField) StageSpec {
	allowed := selectLabels(field)
	return StageSpec{
		Name:       string(models.StageCustomFields) + ":" + field.Name,
		Kind:       models.ReviewKindCustomField,
		PromptName: "custom_field",
		Vars: func(feedback string) prompt.Vars {
			return prompt.Vars{
				DocumentContent: doc.Content,
				DocumentTitle:   doc.Title,
				FieldName:       field.Name,
				FieldType:       field.DataType,
				AllowedValues:   allowed,
				Feedback:        feedback,
			}
		},
		Validate: func(suggestion string) error {
			return validateFieldValue(field, suggestion)
		},
	}
}

// enqueueFieldReview queues one non-converged field value.
func (o *Orchestrator) enqueueFieldReview(ctx context.Context, doc *dms.Document, field dms.CustomField, outcome Outcome, result *models.PipelineResult) stageStatus {
	req := models.AddReviewRequest{
		DocID:      doc.ID,
		DocTitle:   doc.Title,
		Kind:       models.ReviewKindCustomField,
		Suggestion: outcome.Analysis.Suggestion,
		Reasoning:  outcome.Analysis.Reasoning,
		Attempts:   outcome.Analysis.AttemptsUsed,
		Metadata: map[string]any{
			"field_id":   field.ID,
			"field_name": field.Name,
			"field_type": field.DataType,
		},
	}
	if outcome.LastFeedback != "" {
		req.LastFeedback = &outcome.LastFeedback
	}
	if _, err := o.reviews.Add(ctx, req); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// validateFieldValue checks a proposed value against the field's data
// type. The error text is written as loop feedback for the analyst.
func validateFieldValue(field dms.CustomField, value string) error {
	value = strings.TrimSpace(value)
	switch field.DataType {
	case "string":
		return nil
	case "url":
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("the value %q is not a valid http(s) URL", value)
		}
	case "date":
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("the value %q is not a date in YYYY-MM-DD format", value)
		}
	case "boolean":
		if _, err := strconv.ParseBool(strings.ToLower(value)); err != nil {
			return fmt.Errorf("the value %q is not true or false", value)
		}
	case "integer":
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("the value %q is not an integer", value)
		}
	case "float":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("the value %q is not a number", value)
		}
	case "monetary":
		// Paperless stores monetary values as strings like "EUR123.45";
		// a bare number is also accepted.
		if !monetaryPattern(value) {
			return fmt.Errorf("the value %q is not a monetary amount like EUR123.45 or 123.45", value)
		}
	case "select":
		if _, ok := matchSelectOption(field, value); !ok {
			return fmt.Errorf("the value %q is not one of the allowed options: %s",
				value, strings.Join(selectLabels(field), ", "))
		}
	default:
		return fmt.Errorf("field type %q cannot be filled automatically", field.DataType)
	}
	return nil
}

// encodeFieldValue converts a validated string value into the JSON shape
// the DMS expects for the field's data type.
func encodeFieldValue(field dms.CustomField, value string) (json.RawMessage, error) {
	value = strings.TrimSpace(value)
	if err := validateFieldValue(field, value); err != nil {
		return nil, err
	}

	switch field.DataType {
	case "boolean":
		b, _ := strconv.ParseBool(strings.ToLower(value))
		return json.Marshal(b)
	case "integer":
		n, _ := strconv.Atoi(value)
		return json.Marshal(n)
	case "float":
		f, _ := strconv.ParseFloat(value, 64)
		return json.Marshal(f)
	case "select":
		id, _ := matchSelectOption(field, value)
		return json.Marshal(id)
	default:
		return json.Marshal(value)
	}
}

func selectLabels(field dms.CustomField) []string {
	labels := make([]string, 0, len(field.ExtraData.SelectOptions))
	for _, opt := range field.ExtraData.SelectOptions {
		labels = append(labels, opt.Label)
	}
	return labels
}

// matchSelectOption resolves a label to its option id, case-insensitively.
func matchSelectOption(field dms.CustomField, value string) (string, bool) {
	for _, opt := range field.ExtraData.SelectOptions {
		if strings.EqualFold(opt.Label, value) {
			return opt.ID, true
		}
	}
	return "", false
}

// monetaryPattern accepts an optional 3-letter uppercase currency prefix
// followed by a decimal amount.
func monetaryPattern(value string) bool {
	rest := value
	if len(rest) > 3 && isUpperAlpha(rest[:3]) {
		rest = rest[3:]
	}
	if rest == "" {
		return false
	}
	_, err := strconv.ParseFloat(rest, 64)
	return err == nil
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
