// config_features.go - Anzeige- und Provider-Konfiguration
//
// Dieses Modul enthaelt:
// - Provider und Listengroesse
// - Theme, Umbruchbreite und Pager
package envconfig

// =============================================================================
// Provider
// =============================================================================

var (
	// Provider waehlt die Quelle fuer neue Kapitel
	Provider = StringWithDefault("RANOBE_PROVIDER", "readlightnovel")

	// Size setzt die Anzahl sichtbarer Eintraege im Selector
	Size = Uint("RANOBE_SIZE", 20)
)

// =============================================================================
// Anzeige
// =============================================================================

var (
	// Theme waehlt das Selector-Theme (plain, colorful)
	Theme = StringWithDefault("RANOBE_THEME", "colorful")

	// Wrap begrenzt die Textbreite im Pager
	Wrap = Uint("RANOBE_WRAP", 80)

	// Pager ist das Programm zum Anzeigen der Kapitel
	Pager = StringWithDefault("RANOBE_PAGER", "glow")

	// NoColor schaltet Farben ab (https://no-color.org)
	NoColor = Bool("NO_COLOR")
)
