package ai

import (
	"fmt"
	"strings"

	"github.com/nexus-connecte/nexus/backend/internal/model/intake"
)

// Prompt texts stay in French to match the site's voice.

const thankYouSystemPrompt = "Tu es une IA qui crée un message personnalisé, stylé, chaleureux et inspirant, dans un univers Nexus futuriste."

const assistantSystemPrompt = `Tu es l'Assistant IA du Nexus, un chatbot futuriste et chaleureux.

Style de communication :
- Ton immersif et thématique ("Nexus", "Chevalier du Code", "Bugs Ancestraux")
- Utilise des emojis adaptés (🌐, 🛡️, ⚡, 🚀, etc.)
- Reste concis (2-4 phrases max par réponse)
- Sois utile et positif

Tu peux aider avec :
- Questions sur le projet Nexus
- Navigation du site
- Explication des missions (contact, don, bénévolat, info)
- Support général

Contexte : Le Nexus est un projet/organisation futuriste qui cherche à renforcer ses défenses contre les "Bugs Ancestraux" avec l'aide de ses membres.`

const defaultVisitorName = "utilisateur inconnu"

// buildThankYouQuery lays out the submission fields as the user block of the
// generation prompt.
func buildThankYouQuery(sub intake.Submission, year int) string {
	name := strings.TrimSpace(sub.Nom)
	if name == "" {
		name = defaultVisitorName
	}

	amount := strings.TrimSpace(string(sub.Amount))
	if amount == "" {
		amount = "N/A"
	}

	recurrence := strings.TrimSpace(sub.Recurrence)
	if recurrence == "" {
		recurrence = "N/A"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Nom: %s\n", name)
	fmt.Fprintf(&b, "Mission: %s\n", sub.Mission)
	fmt.Fprintf(&b, "Message de l'utilisateur: %s\n", sub.Message)
	fmt.Fprintf(&b, "Montant: %s\n", amount)
	fmt.Fprintf(&b, "Récurrence: %s\n", recurrence)
	if skills := strings.TrimSpace(sub.Skills); skills != "" {
		fmt.Fprintf(&b, "Compétences: %s\n", skills)
	}
	if availability := strings.TrimSpace(sub.Availability); availability != "" {
		fmt.Fprintf(&b, "Disponibilités: %s\n", availability)
	}
	fmt.Fprintf(&b, "Année: %d\n\n", year)

	b.WriteString(`Génère un message unique en style 'Nexus futuriste', avec :
- salutation personnalisée
- référence claire à la mission (contact, don, bénévole ou info)
- mention de l'année
- remerciement spécial
- ton immersif, positif, et héroïque (Chevalier du Code, Nexus, Bugs Ancestraux…)`)

	return b.String()
}
