package prompt

// englishTemplates is the complete English template set. Every analysis
// template has a <name>_confirmation counterpart rendered for the
// reviewer model.
var englishTemplates = map[string]string{
	"system_analyst": `You are a document analysis assistant for a document management system. You read document text and propose precise, conservative metadata. You respond with a single JSON object and nothing else.`,

	"system_reviewer": `You are a strict metadata reviewer for a document management system. You check one proposed value against the document and answer briefly. Start your answer with "yes" if the value is correct, otherwise start with "no" and explain what is wrong in one or two sentences.`,

	"title": `Determine the best title for the following document.

## Document content
{{.DocumentContent}}

{{if .Feedback}}## Reviewer feedback on your previous suggestion
{{.Feedback}}

{{end}}## Rules
- The title must be short, specific, and in the document's language
- Use sender, subject, and date information when present
- Do not invent information that is not in the document

CRITICAL INSTRUCTION: Respond with ONLY a JSON object:
{"suggestion": "<title>", "reasoning": "<one sentence>", "confidence": <0..1>, "alternatives": ["<other title>", ...]}`,

	"title_confirmation": `A document should receive the title below. Verify it against the document content.

## Proposed title
{{.SuggestedValue}}

## Reasoning given
{{.Reasoning}}

## Document content
{{.DocumentContent}}

Is this title accurate and specific for this document? Answer "yes" or "no" with a short explanation.`,

	"summary": `Summarize the following document in 3 to 5 sentences. Preserve names, dates, amounts, and reference numbers. Write in the document's language.

## Document content
{{.DocumentContent}}

Respond with only the summary text.`,

	"schema_analysis": `Review the document and decide whether the document archive is missing any entity this document needs: a correspondent, a document type, or a tag.

## Document content
{{.DocumentContent}}

## Existing correspondents, document types, and tags
{{range .ExistingEntities}}- {{.}}
{{end}}

Only suggest an entity when nothing in the existing lists fits. When an existing entry is close, name it in similar_to_existing instead of suggesting a duplicate.

CRITICAL INSTRUCTION: Respond with ONLY a JSON object:
{"suggestions": [{"entity_kind": "correspondent|document_type|tag", "suggested_name": "<name>", "confidence": <0..1>, "similar_to_existing": "<existing name or empty>"}]}
Return {"suggestions": []} when nothing is missing.`,

	"correspondent": `Determine the correspondent (sender organization or person) of the following document.

## Document content
{{.DocumentContent}}

## Existing correspondents
{{range .ExistingEntities}}- {{.}}
{{end}}

{{if .Feedback}}## Reviewer feedback on your previous suggestion
{{.Feedback}}

{{end}}## Rules
- Prefer an existing correspondent when one matches
- Use the canonical organization name, not an address line
- An empty suggestion means the correspondent cannot be determined

CRITICAL INSTRUCTION: Respond with ONLY a JSON object:
{"suggestion": "<correspondent>", "reasoning": "<one sentence>", "confidence": <0..1>, "alternatives": []}`,

	"correspondent_confirmation": `A document should be filed under the correspondent below. Verify it against the document content.

## Proposed correspondent
{{.SuggestedValue}}

## Document content
{{.DocumentContent}}

Is this the sender of the document? Answer "yes" or "no" with a short explanation.`,

	"document_type": `Determine the document type of the following document.

## Document content
{{.DocumentContent}}

## Existing document types
{{range .ExistingEntities}}- {{.}}
{{end}}

{{if .Feedback}}## Reviewer feedback on your previous suggestion
{{.Feedback}}

{{end}}## Rules
- Prefer an existing document type when one fits
- Choose the most specific fitting type

CRITICAL INSTRUCTION: Respond with ONLY a JSON object:
{"suggestion": "<document type>", "reasoning": "<one sentence>", "confidence": <0..1>, "alternatives": []}`,

	"document_type_confirmation": `A document should be classified with the document type below. Verify it against the document content.

## Proposed document type
{{.SuggestedValue}}

## Document content
{{.DocumentContent}}

Is this classification correct? Answer "yes" or "no" with a short explanation.`,

	"tags": `Determine which tags the following document should carry.

## Document content
{{.DocumentContent}}

## Current document tags
{{range .CandidateTitles}}- {{.}}
{{end}}

## Existing tags in the archive
{{range .ExistingEntities}}- {{.}}
{{end}}

{{if .Feedback}}## Reviewer feedback on your previous suggestion
{{.Feedback}}

{{end}}## Rules
- Prefer existing tags; suggest a new tag only when clearly warranted
- Propose the delta, not the full set
- Never touch workflow or system tags

CRITICAL INSTRUCTION: Respond with ONLY a JSON object:
{"to_add": ["<tag>", ...], "to_remove": ["<tag>", ...], "reasoning": "<one sentence>", "confidence": <0..1>}`,

	"tags_confirmation": `A document's tags should change as listed below. Verify the change against the document content.

## Proposed change
{{.SuggestedValue}}

## Document content
{{.DocumentContent}}

Is this tag change appropriate? Answer "yes" or "no" with a short explanation.`,

	"custom_field": `Extract the value of one custom field from the following document.

## Field
Name: {{.FieldName}}
Type: {{.FieldType}}
{{if .AllowedValues}}Allowed values:
{{range .AllowedValues}}- {{.}}
{{end}}{{end}}

## Document content
{{.DocumentContent}}

{{if .Feedback}}## Reviewer feedback on your previous suggestion
{{.Feedback}}

{{end}}## Rules
- The value must appear in or follow directly from the document
- Dates as YYYY-MM-DD, booleans as true/false, monetary values as a plain decimal number
- An empty suggestion means the field has no value in this document

CRITICAL INSTRUCTION: Respond with ONLY a JSON object:
{"suggestion": "<value>", "reasoning": "<one sentence>", "confidence": <0..1>}`,

	"custom_field_confirmation": `A custom field of a document should be set as below. Verify the value against the document content.

## Field
{{.FieldName}} ({{.FieldType}})

## Proposed value
{{.SuggestedValue}}

## Document content
{{.DocumentContent}}

Is this value supported by the document? Answer "yes" or "no" with a short explanation.`,

	"document_link": `Decide which of the candidate documents are genuinely related to the current document (same case, same contract, follow-up, invoice for an order, and so on).

## Current document
Title: {{.DocumentTitle}}
{{.DocumentContent}}

## Candidate documents
{{range .CandidateTitles}}- {{.}}
{{end}}

CRITICAL INSTRUCTION: Respond with ONLY a JSON object:
{"suggestion": "<exact candidate title or empty>", "reasoning": "<one sentence>", "confidence": <0..1>, "alternatives": ["<other related candidate>", ...]}`,

	"document_link_confirmation": `Two documents are proposed to be linked. Verify they are genuinely related.

## Current document
Title: {{.DocumentTitle}}
{{.DocumentContent}}

## Proposed linked document
{{.SuggestedValue}}

Are these documents related? Answer "yes" or "no" with a short explanation.`,

	"entity_description": `Write a one-sentence description of the following {{.EntityKind}} as used in a document archive.

## Name
{{.EntityName}}

Respond with only the description text.`,
}

// languageSets holds non-English template sets. Sets may be partial;
// missing names render from the English set.
var languageSets = map[string]map[string]string{
	"de": germanTemplates,
}
