package prompt

// germanTemplates is a partial German set. Names not present here fall
// back to the English templates.
var germanTemplates = map[string]string{
	"title": `Bestimme den besten Titel für das folgende Dokument.

## Dokumentinhalt
{{.DocumentContent}}

{{if .Feedback}}## Rückmeldung des Prüfers zu deinem letzten Vorschlag
{{.Feedback}}

{{end}}## Regeln
- Der Titel muss kurz, präzise und in der Sprache des Dokuments sein
- Nutze Absender, Betreff und Datum, sofern vorhanden
- Erfinde keine Informationen, die nicht im Dokument stehen

WICHTIG: Antworte NUR mit einem JSON-Objekt:
{"suggestion": "<Titel>", "reasoning": "<ein Satz>", "confidence": <0..1>, "alternatives": ["<anderer Titel>", ...]}`,

	"title_confirmation": `Ein Dokument soll den folgenden Titel erhalten. Prüfe ihn gegen den Dokumentinhalt.

## Vorgeschlagener Titel
{{.SuggestedValue}}

## Begründung
{{.Reasoning}}

## Dokumentinhalt
{{.DocumentContent}}

Ist dieser Titel zutreffend und präzise? Antworte mit "yes" oder "no" und einer kurzen Begründung.`,

	"summary": `Fasse das folgende Dokument in 3 bis 5 Sätzen zusammen. Erhalte Namen, Daten, Beträge und Aktenzeichen. Schreibe in der Sprache des Dokuments.

## Dokumentinhalt
{{.DocumentContent}}

Antworte nur mit dem Zusammenfassungstext.`,
}
