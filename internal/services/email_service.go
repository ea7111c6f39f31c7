package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"sint-message-service/internal/config"
	"sint-message-service/internal/letter"
)

// EmailService handles email sending via SendGrid
type EmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	client    *sendgrid.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg config.EmailConfig) *EmailService {
	client := sendgrid.NewSendClient(cfg.APIKey)
	return &EmailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		client:    client,
	}
}

// SendLetterEmail sends a generated letter with the PDF and, when present,
// the narration audio attached
func (s *EmailService) SendLetterEmail(toEmail string, formatted *letter.FormattedLetter, pdfData []byte, audioData []byte) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "Een brief van Sinterklaas"

	htmlContent := s.buildLetterEmailHTML(formatted)
	plainTextContent := s.buildLetterEmailText(formatted)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	if len(pdfData) > 0 {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(pdfData))
		attachment.SetType("application/pdf")
		attachment.SetFilename(fmt.Sprintf("brief-van-sinterklaas-%s.pdf", time.Now().Format("2006-01-02")))
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	if len(audioData) > 0 {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(audioData))
		attachment.SetType("audio/mpeg")
		attachment.SetFilename("boodschap-van-sinterklaas.mp3")
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}

// buildLetterEmailHTML builds the HTML content for the letter email
func (s *EmailService) buildLetterEmailHTML(formatted *letter.FormattedLetter) string {
	var html bytes.Buffer

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Georgia, serif; line-height: 1.6; color: #3c2a21; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f7f0e1; }
        .header { background-color: #8b0000; color: #f7f0e1; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background-color: #fffaf0; padding: 25px; border-radius: 0 0 8px 8px; }
        .salutation { color: #8b0000; font-size: 18px; font-weight: bold; }
        .signature { color: #8b0000; font-size: 22px; font-style: italic; }
        .footer { text-align: center; color: #8a7866; font-size: 12px; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0d5c0; }
    </style>
</head>
<body>
    <div class="header">
        <h1 style="margin: 0;">Een brief van Sinterklaas</h1>
    </div>
    <div class="content">`)

	if formatted != nil && formatted.Salutation != "" {
		html.WriteString(`
        <p class="salutation">` + formatted.Salutation + `</p>`)
	}
	if formatted != nil {
		for _, paragraph := range formatted.Paragraphs {
			html.WriteString(`
        <p>` + paragraph + `</p>`)
		}
	}

	html.WriteString(`
        <p>` + letter.ClosingLine + `,<br>` + letter.SignatureLine + `,</p>
        <p class="signature">` + letter.SignatureName + `</p>
        <p>De volledige brief zit als PDF in de bijlage.</p>
    </div>
    <div class="footer">
        <p>Dit is een automatische e-mail uit Spanje.</p>
    </div>
</body>
</html>`)

	return html.String()
}

// buildLetterEmailText builds the plain text content for the letter email
func (s *EmailService) buildLetterEmailText(formatted *letter.FormattedLetter) string {
	var text bytes.Buffer

	text.WriteString("Een brief van Sinterklaas\n\n")

	if formatted != nil && formatted.Salutation != "" {
		text.WriteString(formatted.Salutation + "\n\n")
	}
	if formatted != nil {
		for _, paragraph := range formatted.Paragraphs {
			text.WriteString(paragraph + "\n\n")
		}
	}

	text.WriteString(letter.ClosingLine + ",\n" + letter.SignatureLine + ",\n" + letter.SignatureName + "\n\n---\nDe volledige brief zit als PDF in de bijlage.")

	return text.String()
}
