package story

import cfg "github.com/automoto/neighbors/config"

// InitialMood is the mood a character walks on stage with.
func InitialMood(p Personality) cfg.MoodID {
	switch p {
	case Energetic:
		return cfg.MoodExcited
	case Creative, Harmonious, Humorous, Nurturing:
		return cfg.MoodHappy
	case Cranky:
		return cfg.MoodAngry
	default:
		return cfg.MoodNeutral
	}
}

// SettingMood returns the mood a character adopts when the scene moves to the
// given time of day. The second result is false when the setting leaves the
// current mood untouched.
func SettingMood(tod cfg.TimeOfDay, p Personality) (cfg.MoodID, bool) {
	switch tod {
	case cfg.Morning:
		switch p {
		case Energetic:
			return cfg.MoodExcited, true
		case Relaxed, Cranky:
			// Not morning people
			return cfg.MoodAngry, true
		}
	case cfg.Afternoon:
		switch p {
		case Energetic:
			return cfg.MoodExcited, true
		case Creative, Harmonious, Nurturing:
			return cfg.MoodHappy, true
		case Cranky:
			return cfg.MoodAngry, true
		default:
			return cfg.MoodNeutral, true
		}
	case cfg.Evening:
		switch p {
		case Relaxed:
			return cfg.MoodHappy, true
		case Energetic:
			return cfg.MoodNeutral, true
		}
	case cfg.Night:
		switch p {
		case Relaxed, Cranky:
			return cfg.MoodHappy, true
		case Energetic:
			return cfg.MoodNeutral, true
		}
	}
	return cfg.MoodNeutral, false
}
