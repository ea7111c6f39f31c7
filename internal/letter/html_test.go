package letter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLContainsLetterParts(t *testing.T) {
	renderer := NewRenderer("")
	formatted := FormattedLetter{
		Salutation: "Liefste Emma,",
		Paragraphs: []string{"Wat een mooie tekening.", "Piet hangt ze op."},
	}

	html, err := renderer.RenderHTML(formatted)
	require.NoError(t, err)

	assert.Contains(t, html, "Liefste Emma,")
	assert.Contains(t, html, "Wat een mooie tekening.")
	assert.Contains(t, html, "Piet hangt ze op.")
	assert.Contains(t, html, ClosingLine)
	assert.Contains(t, html, SignatureLine)
	assert.Contains(t, html, SignatureName)
}

func TestRenderHTMLNumbersParagraphsFromOne(t *testing.T) {
	renderer := NewRenderer("")
	html, err := renderer.RenderHTML(FormattedLetter{
		Salutation: "Dag Emma!",
		Paragraphs: []string{"Eerste alinea.", "Tweede alinea."},
	})
	require.NoError(t, err)

	assert.Contains(t, html, `class="paragraph-1"`)
	assert.Contains(t, html, `class="paragraph-2"`)
	assert.NotContains(t, html, `class="paragraph-0"`)
}

func TestRenderHTMLWithoutBackgroundUsesFallbackColor(t *testing.T) {
	renderer := NewRenderer("")
	html, err := renderer.RenderHTML(FormattedLetter{Salutation: "Dag Emma!"})
	require.NoError(t, err)

	assert.Contains(t, html, "background-color: #f6ecd5")
	assert.NotContains(t, html, "background-image")
}

func TestRenderHTMLMissingBackgroundFileIsNotAnError(t *testing.T) {
	renderer := NewRenderer("/nonexistent/briefpapier.png")
	html, err := renderer.RenderHTML(FormattedLetter{Salutation: "Dag Emma!"})
	require.NoError(t, err)
	assert.Contains(t, html, "Dag Emma!")
}

func TestRenderHTMLEscapesMarkup(t *testing.T) {
	renderer := NewRenderer("")
	html, err := renderer.RenderHTML(FormattedLetter{
		Salutation: "Dag <script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderHTMLOmitsEmptySalutation(t *testing.T) {
	renderer := NewRenderer("")
	html, err := renderer.RenderHTML(FormattedLetter{Paragraphs: []string{"Alleen tekst."}})
	require.NoError(t, err)
	assert.NotContains(t, html, `class="greeting"`)
	assert.Contains(t, html, "Alleen tekst.")
}
