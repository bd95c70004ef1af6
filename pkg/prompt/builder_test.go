package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_English(t *testing.T) {
	b, err := NewBuilder("en")
	require.NoError(t, err)

	out, err := b.Render("title", Vars{DocumentContent: "Rechnung Nr. 4711"})
	require.NoError(t, err)
	assert.Contains(t, out, "Rechnung Nr. 4711")
	// No feedback given, so the feedback section is absent.
	assert.NotContains(t, out, "Reviewer feedback")

	out, err = b.Render("title", Vars{DocumentContent: "x", Feedback: "too vague"})
	require.NoError(t, err)
	assert.Contains(t, out, "too vague")
}

func TestRender_GermanWithEnglishFallback(t *testing.T) {
	b, err := NewBuilder("de")
	require.NoError(t, err)
	assert.Equal(t, "de", b.Language())

	// "title" exists in the German set.
	out, err := b.Render("title", Vars{DocumentContent: "Rechnung"})
	require.NoError(t, err)
	assert.Contains(t, out, "Rechnung")

	// "tags" does not; it must render from the English set instead of
	// failing.
	out, err = b.Render("tags", Vars{DocumentContent: "Rechnung"})
	require.NoError(t, err)
	assert.Contains(t, out, "Rechnung")
}

func TestRender_UnknownLanguageFallsBack(t *testing.T) {
	b, err := NewBuilder("fr")
	require.NoError(t, err)

	out, err := b.Render("title", Vars{DocumentContent: "facture"})
	require.NoError(t, err)
	assert.Contains(t, out, "facture")
}

func TestRender_UnknownTemplate(t *testing.T) {
	b, err := NewBuilder("en")
	require.NoError(t, err)

	_, err = b.Render("no_such_template", Vars{})
	assert.Error(t, err)
}

func TestConfirmationName(t *testing.T) {
	assert.Equal(t, "title_confirmation", ConfirmationName("title"))
	assert.Equal(t, "tags_confirmation", ConfirmationName("tags"))
}
