package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/models"
)

// Applier writes approved review values back to the DMS and advances the
// document's workflow tag so the pipeline resumes. It is constructed
// independently of the orchestrator so the review service can be wired
// before stage code exists.
type Applier struct {
	cfg    *config.Config
	dms    *dms.Client
	logger *slog.Logger
}

// NewApplier creates an applier.
func NewApplier(cfg *config.Config, client *dms.Client, logger *slog.Logger) *Applier {
	return &Applier{
		cfg:    cfg,
		dms:    client,
		logger: logger.With("component", "applier"),
	}
}

// Apply writes an approved value for the given queue item, then applies
// the item's next tag so the document re-enters the pipeline past the
// stage that escalated.
func (a *Applier) Apply(ctx context.Context, item *ent.PendingReview, value string) error {
	var err error
	switch string(item.Kind) {
	case models.ReviewKindTitle:
		err = a.dms.UpdateDocument(ctx, item.DocID, dms.DocumentUpdate{Title: &value})
	case models.ReviewKindCorrespondent:
		err = a.applyCorrespondent(ctx, item.DocID, value)
	case models.ReviewKindDocumentType:
		err = a.applyDocumentType(ctx, item.DocID, value)
	case models.ReviewKindTag:
		err = a.applyTag(ctx, item.DocID, value)
	case models.ReviewKindCustomField:
		err = a.applyCustomField(ctx, item, value)
	case models.ReviewKindDocumentLink:
		err = a.applyDocumentLink(ctx, item, value)
	case models.ReviewKindSchemaSuggestion:
		err = a.applySchemaSuggestion(ctx, item, value)
	default:
		err = fmt.Errorf("unknown review kind %q", item.Kind)
	}
	if err != nil {
		return err
	}

	if item.NextTag != nil && *item.NextTag != "" {
		if err := a.advance(ctx, item.DocID, *item.NextTag); err != nil {
			return err
		}
	}
	a.logger.Info("Applied approved value",
		"doc_id", item.DocID, "kind", item.Kind, "value", value)
	return nil
}

// MarkManualReview adds the manual-review tag without touching the
// stage tag, so a human can resume the document by removing it.
func (a *Applier) MarkManualReview(ctx context.Context, docID int) error {
	return a.dms.TransitionTag(ctx, docID, "", a.cfg.Tags.ManualReview)
}

func (a *Applier) applyCorrespondent(ctx context.Context, docID int, name string) error {
	c, err := a.dms.EnsureCorrespondent(ctx, name)
	if err != nil {
		return err
	}
	return a.dms.UpdateDocument(ctx, docID, dms.DocumentUpdate{CorrespondentID: &c.ID})
}

func (a *Applier) applyDocumentType(ctx context.Context, docID int, name string) error {
	dt, err := a.dms.EnsureDocumentType(ctx, name)
	if err != nil {
		return err
	}
	return a.dms.UpdateDocument(ctx, docID, dms.DocumentUpdate{DocumentTypeID: &dt.ID})
}

func (a *Applier) applyTag(ctx context.Context, docID int, name string) error {
	tag, err := a.dms.EnsureTag(ctx, name)
	if err != nil {
		return err
	}
	return a.dms.ModifyTags(ctx, docID, []int{tag.ID}, nil)
}

// applyCustomField re-resolves the field definition so the approved
// value is validated and encoded against the current field type.
func (a *Applier) applyCustomField(ctx context.Context, item *ent.PendingReview, value string) error {
	fieldID, ok := metadataInt(item.Metadata, "field_id")
	if !ok {
		return fmt.Errorf("review item %s has no field_id", item.ID)
	}

	defs, err := a.dms.CustomFields(ctx)
	if err != nil {
		return err
	}
	var field *dms.CustomField
	for i := range defs {
		if defs[i].ID == fieldID {
			field = &defs[i]
			break
		}
	}
	if field == nil {
		return fmt.Errorf("custom field %d no longer exists", fieldID)
	}

	encoded, err := encodeFieldValue(*field, value)
	if err != nil {
		return fmt.Errorf("approved value is invalid for field %q: %w", field.Name, err)
	}

	doc, err := a.dms.Document(ctx, item.DocID)
	if err != nil {
		return err
	}
	values := append([]dms.CustomFieldValue(nil), doc.CustomFields...)
	replaced := false
	for i, v := range values {
		if v.FieldID == fieldID {
			values[i].Value = encoded
			replaced = true
			break
		}
	}
	if !replaced {
		values = append(values, dms.CustomFieldValue{FieldID: fieldID, Value: encoded})
	}
	return a.dms.UpdateDocument(ctx, item.DocID, dms.DocumentUpdate{CustomFields: values})
}

func (a *Applier) applyDocumentLink(ctx context.Context, item *ent.PendingReview, value string) error {
	target, err := parseLinkTarget(value)
	if err != nil {
		return err
	}
	fieldID, ok := metadataInt(item.Metadata, "field_id")
	if !ok {
		return fmt.Errorf("review item %s has no field_id", item.ID)
	}

	doc, err := a.dms.Document(ctx, item.DocID)
	if err != nil {
		return err
	}
	return writeDocumentLink(ctx, a.dms, doc, dms.CustomField{ID: fieldID, DataType: "documentlink"}, target)
}

// applySchemaSuggestion creates the approved entity. When the item was
// escalated from a value stage (apply_to=document) the entity is also
// set on the document.
func (a *Applier) applySchemaSuggestion(ctx context.Context, item *ent.PendingReview, value string) error {
	kind, _ := item.Metadata["entity_kind"].(string)
	applyTo, _ := item.Metadata["apply_to"].(string)

	switch kind {
	case "tag":
		tag, err := a.dms.EnsureTag(ctx, value)
		if err != nil {
			return err
		}
		if applyTo == "document" {
			return a.dms.ModifyTags(ctx, item.DocID, []int{tag.ID}, nil)
		}
	case "correspondent":
		c, err := a.dms.EnsureCorrespondent(ctx, value)
		if err != nil {
			return err
		}
		if applyTo == "document" {
			return a.dms.UpdateDocument(ctx, item.DocID, dms.DocumentUpdate{CorrespondentID: &c.ID})
		}
	case "document_type":
		dt, err := a.dms.EnsureDocumentType(ctx, value)
		if err != nil {
			return err
		}
		if applyTo == "document" {
			return a.dms.UpdateDocument(ctx, item.DocID, dms.DocumentUpdate{DocumentTypeID: &dt.ID})
		}
	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}
	return nil
}

// advance moves the document to nextTag, consuming whichever workflow
// tag it currently carries, including a schema-review or manual-review
// hold.
func (a *Applier) advance(ctx context.Context, docID int, nextTag string) error {
	doc, err := a.dms.Document(ctx, docID)
	if err != nil {
		return err
	}

	tags := a.cfg.Tags
	present := make(map[string]bool)
	for _, id := range doc.TagIDs {
		if name, ok := a.dms.TagName(id); ok {
			present[name] = true
		}
	}

	from := ""
	if present[tags.SchemaReviewTag()] {
		from = tags.SchemaReviewTag()
	} else {
		stage := stageFromPresent(present, tags)
		from = currentTag(stage, tags)
	}
	if err := a.dms.TransitionTag(ctx, docID, from, nextTag); err != nil {
		return err
	}

	if present[tags.ManualReview] {
		if hold, ok := a.dms.TagByName(tags.ManualReview); ok {
			if err := a.dms.ModifyTags(ctx, docID, nil, []int{hold.ID}); err != nil {
				return fmt.Errorf("failed to lift manual-review hold: %w", err)
			}
		}
	}
	return nil
}

func stageFromPresent(present map[string]bool, tags *config.TagConfig) models.Stage {
	names := make([]string, 0, len(present))
	for name := range present {
		names = append(names, name)
	}
	return StageFromTags(names, tags)
}

// metadataInt reads an integer out of JSON-decoded metadata, where
// numbers arrive as float64.
func metadataInt(metadata map[string]any, key string) (int, bool) {
	switch v := metadata[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
