package story

import (
	"image/color"
	"sort"
)

// Personality drives default moods and how a character reacts to the time of day.
type Personality string

const (
	Energetic  Personality = "energetic"
	Relaxed    Personality = "relaxed"
	Organized  Personality = "organized"
	Cynical    Personality = "cynical"
	Creative   Personality = "creative"
	Harmonious Personality = "harmonious"
	Humorous   Personality = "humorous"
	Cranky     Personality = "cranky"
	Diplomatic Personality = "diplomatic"
	Nurturing  Personality = "nurturing"
)

// Profile is the static roster entry for a neighbor.
type Profile struct {
	Name        string
	Description string
	Personality Personality
	Color       color.RGBA // clothes
	Hair        color.RGBA
	Skin        color.RGBA
	Traits      string
	Catchphrase string
	Emotes      []string
}

var (
	skinLight  = color.RGBA{R: 0xFF, G: 0xE0, B: 0xBD, A: 0xFF}
	skinMedium = color.RGBA{R: 0xF1, G: 0xC2, B: 0x7D, A: 0xFF}
	skinDark   = color.RGBA{R: 0xC6, G: 0x86, B: 0x42, A: 0xFF}

	hairBlack  = color.RGBA{R: 0x09, G: 0x08, B: 0x06, A: 0xFF}
	hairBrown  = color.RGBA{R: 0xA5, G: 0x6B, B: 0x46, A: 0xFF}
	hairBlonde = color.RGBA{R: 0xD8, G: 0xC0, B: 0x78, A: 0xFF}
	hairAuburn = color.RGBA{R: 0xB5, G: 0x52, B: 0x39, A: 0xFF}
	hairGrey   = color.RGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xFF}
}

// Roster holds every neighbor that can appear on stage, keyed by name.
var Roster = map[string]Profile{
	"Fitness Fiona": {
		Name:        "Fitness Fiona",
		Description: "An overly enthusiastic fitness instructor who turns everything into a workout opportunity.",
		Personality: Energetic,
		Color:       rgb(0x51cf66),
		Hair:        hairBlonde,
		Skin:        skinMedium,
		Traits:      "Enthusiastic, Morning Person, Health Obsessed",
		Catchphrase: "Feel the BURN of SUCCESS!",
		Emotes:      []string{"!!", "*flex*", "GO!", "100%"},
	},
	"Lazy Larry": {
		Name:        "Lazy Larry",
		Description: "A perpetually sleepy neighbor who believes life is best enjoyed horizontally.",
		Personality: Relaxed,
		Color:       rgb(0x748ffc),
		Hair:        hairBrown,
		Skin:        skinLight,
		Traits:      "Sleepy, Relaxed, Procrastinator",
		Catchphrase: "That sounds like tomorrow's problem...",
		Emotes:      []string{"zzz", "*yawn*", "...", "☼"},
	},
	"Office Olivia": {
		Name:        "Office Olivia",
		Description: "A busy professional who schedules every minute of her day and lives by her calendar app.",
		Personality: Organized,
		Color:       rgb(0x9775fa),
		Hair:        hairBlack,
		Skin:        skinDark,
		Traits:      "Punctual, Practical, Overworked",
		Catchphrase: "Let me check if I have time for this...",
		Emotes:      []string{"9:00", "*tap*", "?", "TODO"},
	},
	"Skeptical Sam": {
		Name:        "Skeptical Sam",
		Description: "A cynical neighbor who questions everything and believes most neighborhood initiatives are doomed to fail.",
		Personality: Cynical,
		Color:       rgb(0xffa94d),
		Hair:        hairAuburn,
		Skin:        skinLight,
		Traits:      "Doubtful, Analytical, Sarcastic",
		Catchphrase: "Yeah, we'll see how long THAT lasts.",
		Emotes:      []string{"?!", "*sigh*", "hmm", "o_O"},
	},
	"Artistic Andy": {
		Name:        "Artistic Andy",
		Description: "A creative soul who sees the world as his canvas and finds inspiration in everything.",
		Personality: Creative,
		Color:       rgb(0xff8787),
		Hair:        hairBrown,
		Skin:        skinMedium,
		Traits:      "Creative, Sensitive, Expressive",
		Catchphrase: "Life is art, and we are all masterpieces!",
		Emotes:      []string{"*", "~art~", "♦", "wow"},
	},
	"Musical Maria": {
		Name:        "Musical Maria",
		Description: "A talented musician who communicates better through melody than words.",
		Personality: Harmonious,
		Color:       rgb(0xda77f2),
		Hair:        hairBlack,
		Skin:        skinMedium,
		Traits:      "Melodic, Passionate, Perfectionist",
		Catchphrase: "Everything sounds better with the right soundtrack.",
		Emotes:      []string{"♪", "♫", "la la", "♪♫"},
	},
	"Comedy Carl": {
		Name:        "Comedy Carl",
		Description: "A would-be comedian who finds humor in everything and never misses a chance for a punchline.",
		Personality: Humorous,
		Color:       rgb(0x66d9e8),
		Hair:        hairAuburn,
		Skin:        skinDark,
		Traits:      "Funny, Quick-witted, Attention-seeking",
		Catchphrase: "Life's too short not to laugh at it!",
		Emotes:      []string{"HA!", "*wink*", "ba-dum", "☺"},
	},
	"Grumpy Greg": {
		Name:        "Grumpy Greg",
		Description: "A grouchy neighbor who values peace, quiet, and his perfectly manicured lawn.",
		Personality: Cranky,
		Color:       rgb(0x868e96),
		Hair:        hairGrey,
		Skin:        skinLight,
		Traits:      "Irritable, Private, Orderly",
		Catchphrase: "Back in MY day, neighbors respected BOUNDARIES!",
		Emotes:      []string{"#@!", "HMPH", "grr", "SHH"},
	},
	"Mediator Mike": {
		Name:        "Mediator Mike",
		Description: "The neighborhood peacekeeper who's always trying to find the middle ground in any conflict.",
		Personality: Diplomatic,
		Color:       rgb(0x4dabf7),
		Hair:        hairBlack,
		Skin:        skinMedium,
		Traits:      "Calm, Reasonable, Diplomatic",
		Catchphrase: "I think we can all find a solution that works for everyone.",
		Emotes:      []string{"=", "*nod*", "ok", "peace"},
	},
	"Peacemaker Penny": {
		Name:        "Peacemaker Penny",
		Description: "A sweet and empathetic neighbor who just wants everyone to get along.",
		Personality: Nurturing,
		Color:       rgb(0xf783ac),
		Hair:        hairBlonde,
		Skin:        skinDark,
		Traits:      "Kind, Understanding, Supportive",
		Catchphrase: "Let's take a deep breath and talk this through.",
		Emotes:      []string{"♥", "<3", "*hug*", "☺"},
	},
}

// Lookup returns the profile for name.
func Lookup(name string) (Profile, bool) {
	p, ok := Roster[name]
	return p, ok
}

// Names returns every roster name in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(Roster))
	for name := range Roster {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
