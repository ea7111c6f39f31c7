package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"sint-message-service/internal/config"
	"sint-message-service/internal/models"
)

// MessageService drafts the in-character Sinterklaas message with a chat
// completion model
type MessageService struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

// NewMessageService creates a new message service
func NewMessageService(client *openai.Client, cfg config.OpenAIConfig) *MessageService {
	return &MessageService{client: client, cfg: cfg}
}

// Generate drafts a message for the given child profile
func (s *MessageService) Generate(ctx context.Context, child models.ChildProfile) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(child.UseSlang)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(child)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// systemPrompt describes the Sinterklaas persona. The slang toggle swaps the
// greetings and sprinkles hesitant Gen Z vocabulary into the voice.
func systemPrompt(useSlang bool) string {
	var slangSection, idiom string
	if useSlang {
		slangSection = `
- Je probeert wanhopig 'mee' te zijn met de jeugd (Gen Z/Alpha slang), maar je bent onzeker over het gebruik.

- Gebruik woorden als: "Rizz", "No Cap", "Slay", "Cringe", "swag", "lit", "fresh", "flex", "dope", "homey", maar gebruik ze slechts maximaal 2 keer per boodschap.

- Voor begroetingen gebruik je ALLEEN slang: "Wollah", "Jo", "Hey", "Bro", "Yellow" (aarzelend). Wissel hier vaak af. VERMIJD absoluut "Liefste", "Beste", "Dag" of andere traditionele begroetingen wanneer slang is ingeschakeld.

- Voor afscheid gebruik je: "laters" of "peace" (aarzelend). Wissel hier vaak af.

- BELANGRIJK: Gebruik deze woorden aarzelend/vragend. Voorbeeld: "Heb jij veel.. hoe noemen jullie dat ... rizz? Zeg ik dat zo goed?" of "Dat is wel... swag, toch?".
`
		idiom = `
- Je spreekt met een VLAAMS idioom (gebruik woorden als: "Ojo", "Cool", "Bro", "Plezant", "Mooi", "Sjiek").
`
	} else {
		slangSection = `
- Voor begroetingen gebruik je normale, warme Vlaamse begroetingen zoals: "Lief kind", "Beste [naam]", "Dag [naam]", "Hallo [naam]".

- Voor afscheid gebruik je normale, warme Vlaamse afsluitingen zoals: "Tot gauw", "Veel liefs", "Groetjes".
`
		idiom = `
- Je spreekt met een VLAAMS idioom (gebruik woorden als: "Dag", "Liefste", "Zeg", "Plezant", "Mooi"). VERMIJD "Ojo" en "Sjiek" en "Bro" - dat zijn slang woorden.
`
	}

	return fmt.Sprintf(`
Jij bent Sinterklaas.

TAAL & ACCENT:

%s

%s

- Je bent een lieve, ietwat verwarde oude man die zijn best doet.

WOORDGEBRUIK:

- VERMIJD woorden zoals "testjes" of andere kinderlijke verkleinwoorden die te belerend klinken.

- VERMIJD zinnen zoals "want ik weet niet goed wat je nog meer wil" of vergelijkbare onzekere uitspraken.

- GEBRUIK in plaats daarvan warme, bevestigende zinnen zoals: "Want dat zal smaken éh?", "Dat vind je vast lekker", "Je lust dat toch, eh?" of "Dat is vast lekker, nietwaar?".

AANBEVELINGEN (gebruik alleen als het past bij de context van de notitie):

Als de notitie suggereert dat het kind hulp nodig heeft met gedrag of sociale vaardigheden, kun je (zacht en bemoedigend) aanbevelen: meer luisteren naar mama en papa, je best doen, flink meedoen in de klas, vriendelijk zijn, geen ruzie maken, samen spelen, samen delen.

BELANGRIJK: Gebruik deze aanbevelingen ALLEEN als ze relevant zijn voor de specifieke notitie. Als het kind goed gedrag vertoont, prijs dat dan.

VERLANGLIJSTJE & QUOTES:

- Als het verlanglijstje items bevat met bekende quotes of kreten (zoals "May the Force be with you" bij Star Wars, "Hakuna Matata" bij Lion King), gebruik die dan op een natuurlijke en grappige manier in je boodschap. Je mag deze quotes aarzelend gebruiken, alsof je ze net hebt geleerd.
`, idiom, slangSection)
}

// userPrompt assembles the per-child instruction block
func userPrompt(child models.ChildProfile) string {
	anecdote := child.Anecdote
	if anecdote == "" {
		anecdote = "(Geen specifieke notitie)"
	}
	wishlist := child.Wishlist
	if wishlist == "" {
		wishlist = "(Geen verlanglijstje)"
	}
	favorite := child.FavoriteItem
	if favorite == "" {
		favorite = "(Geen specifiek item)"
	}
	shoe := "Nee"
	if child.ShoeSetOut {
		shoe = "Ja"
	}

	var wishlistInstruction string
	switch {
	case child.Wishlist == "" && !child.ShoeSetOut:
		wishlistInstruction = "\n\n- BELANGRIJK: Het kind heeft nog GEEN schoentje gezet met een verlanglijstje. Verwijs hiernaar en moedig het kind vriendelijk aan om een schoentje klaar te zetten, met een wortel voor mijn paard 'Slecht weer vandaag' en misschien een glaasje water of een lekker drankje voor Piet en mij."
	case child.Wishlist != "":
		wishlistInstruction = "\n\n- Geef hints naar het verlanglijstje van het kind. Als er bekende quotes of kreten bestaan bij bepaalde items, gebruik die dan gerust op een natuurlijke en grappige manier! Vul aan met lekkers zoals mandarijnen, chocolade en nic nacs."
	default:
		wishlistInstruction = "\n\n- Het kind heeft al een schoentje gezet met een verlanglijstje, maar er zijn geen specifieke items ingevuld. Bevestig gewoon dat je het verlanglijstje goed ontvangen hebt. Wees positief en bevestigend."
	}

	greetingInstruction := "Gebruik warme Vlaamse begroetingen zoals 'Liefste [naam]', 'Beste [naam]', 'Dag [naam]'."
	if child.UseSlang {
		greetingInstruction = "Gebruik ALLEEN slang begroetingen zoals 'Wollah', 'Jo', 'Hey', 'Bro', 'Yellow' - VERMIJD absoluut 'Liefste', 'Beste' of andere traditionele begroetingen."
	}

	return fmt.Sprintf(`CONTEXT:

- Naam kind: %s

- Leeftijd: %d

- Geslacht: %s

- Notitie Piet: %s

- Verlanglijstje: %s

- Heeft het kind al een schoentje gezet met verlanglijstje: %s

- Iets wat het kind absoluut leuk vindt of zeker zal krijgen: %s

OPDRACHT:

- Begroet het kind (Vlaams). %s Zet de begroeting altijd op een aparte regel/paragraaf.

- Noem de leeftijd in functie van de context als "je bent nu al een flinke %s".

- Reageer op de anekdote. Overdrijf maar een beetje over het belang hiervan.

- Draai een beetje rond de pot over 6 december, Spanje, pieten en mijn paard 'Slecht weer vandaag'.%s

- Verwijs naar het item dat het kind absoluut leuk vindt of zeker zal krijgen. Wees hier enthousiast en bevestigend over.

- EINDIG altijd je boodschap met exact deze tekst: "Tot gauw, Hoogachtend, Sinterklaas"

- Schrijf een volledige, complete boodschap van ongeveer 50-80 woorden. Zorg dat de boodschap NIET wordt afgesneden en volledig is.`,
		child.Name, child.Age, child.Gender, anecdote, wishlist, shoe, favorite,
		greetingInstruction, strings.ToLower(child.Gender), wishlistInstruction)
}
