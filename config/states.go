package config

// MoodID is a character's emotional state; it drives the face drawn on the body.
type MoodID int

const (
	MoodNeutral MoodID = iota
	MoodHappy
	MoodSad
	MoodAngry
	MoodExcited
	MoodSurprised
)

var moodNames = map[MoodID]string{
	MoodNeutral:   "neutral",
	MoodHappy:     "happy",
	MoodSad:       "sad",
	MoodAngry:     "angry",
	MoodExcited:   "excited",
	MoodSurprised: "surprised",
}

func (m MoodID) String() string {
	if name, ok := moodNames[m]; ok {
		return name
	}
	return "unknown"
}

// TimeOfDay is the scene setting; it selects the sky palette and mood rules.
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
	Night
)

var settingNames = map[string]TimeOfDay{
	"morning":   Morning,
	"afternoon": Afternoon,
	"evening":   Evening,
	"night":     Night,
}

// ParseTimeOfDay maps a setting label to a TimeOfDay. Unknown labels fall back to afternoon.
func ParseTimeOfDay(label string) TimeOfDay {
	if tod, ok := settingNames[label]; ok {
		return tod
	}
	return Afternoon
}

func (t TimeOfDay) String() string {
	for name, tod := range settingNames {
		if tod == t {
			return name
		}
	}
	return "afternoon"
}
