package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sint-message-service/internal/letter"
)

func TestGenerateLetterPDF(t *testing.T) {
	service := NewPDFService()

	pdfData, err := service.GenerateLetterPDF(&letter.FormattedLetter{
		Salutation: "Liefste Emma,",
		Paragraphs: []string{
			"Wat fijn dat je zo mooi gezongen hebt bij de schouw.",
			"Piet heeft het allemaal genoteerd in het grote boek. Eet je mandarijntjes op, hé?",
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdfData)
	assert.Equal(t, "%PDF", string(pdfData[:4]))
}

func TestGenerateLetterPDFHandlesAccentedCharacters(t *testing.T) {
	service := NewPDFService()

	pdfData, err := service.GenerateLetterPDF(&letter.FormattedLetter{
		Salutation: "Dag Noé,",
		Paragraphs: []string{"Dat zal smaken, éh? Eén ding is zeker: je bent flink geweest."},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfData)
}

func TestGenerateLetterPDFRejectsNil(t *testing.T) {
	service := NewPDFService()

	_, err := service.GenerateLetterPDF(nil)
	assert.Error(t, err)
}

func TestGenerateLetterPDFRejectsEmptyLetter(t *testing.T) {
	service := NewPDFService()

	_, err := service.GenerateLetterPDF(&letter.FormattedLetter{})
	assert.Error(t, err)
}
