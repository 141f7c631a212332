package models

// RoleVocabulary maps a sport to the player roles it allows. It is static
// configuration injected into signup validation rather than consulted as
// global state.
type RoleVocabulary map[string][]string

// DefaultRoleVocabulary lists every supported sport and its role options.
var DefaultRoleVocabulary = RoleVocabulary{
	"Cricket":    {"Batter", "Bowler", "All-rounder", "Wicket-keeper"},
	"Football":   {"Goalkeeper", "Defender", "Midfielder", "Forward"},
	"Basketball": {"Point Guard", "Shooting Guard", "Small Forward", "Power Forward", "Center"},
	"Volleyball": {"Setter", "Libero", "Outside Hitter", "Middle Blocker", "Opposite Hitter"},
	"Hockey":     {"Goalkeeper", "Defender", "Midfielder", "Forward"},
	"Badminton":  {"Singles", "Doubles", "Mixed Doubles"},
	"Tennis":     {"Singles", "Doubles"},
	"Kabaddi":    {"Raider", "Defender", "All-rounder"},
	"Baseball":   {"Pitcher", "Catcher", "Infielder", "Outfielder"},
	"Athletics":  {"Sprinter", "Long-distance", "Thrower", "Jumper"},
}

// KnownSport reports whether the vocabulary has an entry for the sport.
func (v RoleVocabulary) KnownSport(sport string) bool {
	_, ok := v[sport]
	return ok
}

// AllowsRole reports whether sportRole is valid for the sport. An empty
// sportRole is always allowed; the field is optional.
func (v RoleVocabulary) AllowsRole(sport, sportRole string) bool {
	if sportRole == "" {
		return true
	}
	for _, r := range v[sport] {
		if r == sportRole {
			return true
		}
	}
	return false
}
