// ABOUTME: Prebuilt voice and style catalogue
// ABOUTME: Lists the voices and delivery styles accepted by the speech service
package vocalforge

// Voice is a prebuilt speaker offered by the speech service
type Voice struct {
	// Name is the label shown to users
	Name string
	// ID is the identifier sent to the service
	ID          string
	Description string
}

// Style is a delivery style label passed to the speech service
type Style string

// Delivery styles
const (
	StyleProfessional Style = "Profesyonel & Net"
	StyleEmotional    Style = "Duygusal & Vurgulu"
	StyleEnergetic    Style = "Heyecanlı & Hızlı"
	StyleCalm         Style = "Sakin & Güven Verici"
	StyleCinematic    Style = "Sinematik & Epik"
)

// DefaultVoiceID and DefaultStyle preselect the first entries of the catalogue
const (
	DefaultVoiceID = "Kore"
	DefaultStyle   = StyleProfessional
)

// PrebuiltVoices is the voice catalogue, in display order
var PrebuiltVoices = []Voice{
	{Name: "Kadın - Soft Premium (Kore)", ID: "Kore", Description: "Soft Premium, Calm Storyteller, Luxury Commercial"},
	{Name: "Kadın - High Energy (Zephyr)", ID: "Zephyr", Description: "Social Media, High-Energy, Confident"},
	{Name: "Erkek - Warm Corporate (Puck)", ID: "Puck", Description: "Warm Corporate, Conversational, Friendly"},
	{Name: "Erkek - Deep Cinematic (Fenrir)", ID: "Fenrir", Description: "Deep Cinematic, Movie Trailer, Epic"},
}

// Styles is the style catalogue, in display order
var Styles = []Style{
	StyleProfessional,
	StyleEmotional,
	StyleEnergetic,
	StyleCalm,
	StyleCinematic,
}

// LookupVoice finds a prebuilt voice by ID
func LookupVoice(id string) (Voice, bool) {
	for _, v := range PrebuiltVoices {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

// ValidStyle reports whether s is in the style catalogue
func ValidStyle(s Style) bool {
	for _, known := range Styles {
		if known == s {
			return true
		}
	}
	return false
}
