package letter

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"time"
)

// Renderer produces the parchment HTML version of a letter
type Renderer struct {
	backgroundImagePath string
	tmpl                *template.Template
}

// NewRenderer creates a renderer. backgroundImagePath may be empty; the
// letter then renders on a plain parchment color instead of the scanned
// briefpapier image.
func NewRenderer(backgroundImagePath string) *Renderer {
	tmpl := template.New("letter").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	})
	return &Renderer{
		backgroundImagePath: backgroundImagePath,
		tmpl:                template.Must(tmpl.Parse(letterTemplate)),
	}
}

type letterTemplateData struct {
	Date          string
	Background    template.URL
	Letter        FormattedLetter
	ClosingLine   string
	SignatureLine string
	SignatureName string
}

// RenderHTML renders the letter as a self-contained HTML fragment
func (r *Renderer) RenderHTML(l FormattedLetter) (string, error) {
	data := letterTemplateData{
		Date:          DutchDate(time.Now()),
		Background:    template.URL(r.backgroundDataURL()),
		Letter:        l,
		ClosingLine:   ClosingLine,
		SignatureLine: SignatureLine,
		SignatureName: SignatureName,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render letter template: %w", err)
	}
	return buf.String(), nil
}

// backgroundDataURL inlines the background image so the fragment needs no
// asset hosting. A missing file is not an error; the letter just renders
// without the image.
func (r *Renderer) backgroundDataURL() string {
	if r.backgroundImagePath == "" {
		return ""
	}
	data, err := os.ReadFile(r.backgroundImagePath)
	if err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// DutchDate formats a date the way the letter header expects, e.g. "05 december 2026"
func DutchDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), dutchMonths[t.Month()-1], t.Year())
}

const letterTemplate = `<style>
@import url('https://fonts.googleapis.com/css2?family=Pinyon+Script&family=Herr+Von+Muellerhoff&display=swap');
.letter-container {
    {{if .Background}}background-image: url('{{.Background}}');{{else}}background-color: #f6ecd5;{{end}}
    background-size: 100% 100%;
    background-repeat: no-repeat;
    background-position: center;
    width: min(1696px, 100%);
    aspect-ratio: 1696 / 2528;
    padding: 200px 80px 60px 80px;
    color: #3b2f2f;
    font-family: 'Pinyon Script', cursive;
    font-size: 24px;
    line-height: 1.4;
    position: relative;
    box-shadow: 0 4px 6px rgba(0,0,0,0.3);
    border-radius: 2px;
    margin: 2rem auto;
    box-sizing: border-box;
    overflow: hidden;
    display: flex;
    flex-direction: column;
}
.letter-container p { margin-bottom: 0.8em; text-align: justify; flex-shrink: 0; }
.letter-date {
    position: absolute;
    top: 120px;
    right: 80px;
    font-size: 18px;
}
.greeting { margin-bottom: 1.5em; }
.closing { margin-top: 2em; margin-bottom: 0.5em; }
.signature-line { margin-bottom: 0.3em; text-align: right; }
.signature-name {
    margin-bottom: 0;
    text-align: right;
    font-family: 'Herr Von Muellerhoff', cursive;
    font-size: 36px;
    color: #8B0000;
}
</style>
<div class="letter-container">
    <div class="letter-date">{{.Date}}</div>
{{- if .Letter.Salutation}}
    <p class="greeting">{{.Letter.Salutation}}</p>
{{- end}}
{{- range $i, $p := .Letter.Paragraphs}}
    <p class="paragraph-{{inc $i}}">{{$p}}</p>
{{- end}}
    <p class="closing">{{.ClosingLine}}</p>
    <p class="signature-line">{{.SignatureLine}}</p>
    <p class="signature-name">{{.SignatureName}}</p>
</div>
`
