package mission

import "strings"

// Mission identifiers used by the form, the prompt and the confirmation page.
const (
	Contact  = "contact"
	Don      = "don"
	Benevole = "benevole"
	Info     = "info"
	Soutien  = "soutien"
)

// Mission is an intake category together with its confirmation copy. The
// copy may contain a {name} token substituted at render time.
type Mission struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Describe renders the confirmation copy for the given visitor name.
func (m Mission) Describe(name string) string {
	return strings.ReplaceAll(m.Description, "{name}", name)
}

// Seed provides the mission catalog of the Nexus site. Soutien is the
// fallback used when the requested mission is unknown.
func Seed() []Mission {
	return []Mission{
		{
			ID:          Contact,
			Label:       "Contact",
			Description: `Ton message a bien été acheminé vers nos serveurs centraux 📡. Nos "Agents de Support" 🕵️ te répondront sous peu.`,
		},
		{
			ID:          Don,
			Label:       "Don de Ressources",
			Description: `Un immense "GG", {name} ! 🏆 Ton "Don de Ressources" 💎 est une bénédiction pour notre cause 🙏.`,
		},
		{
			ID:          Benevole,
			Label:       "Guilde des Bénévoles",
			Description: "Ta volonté de rejoindre la Guilde des Bénévoles 🛡️ renforce notre front face aux Bugs Ancestraux 🐛.",
		},
		{
			ID:          Info,
			Label:       "Demande d'informations",
			Description: "Ta demande d’informations a été transmise à nos archivistes du Nexus 📚.",
		},
		{
			ID:          Soutien,
			Label:       "Soutien",
			Description: "Ta contribution renforce le Nexus et protège nos Soutiens Essentiels ❤️.",
		},
	}
}
