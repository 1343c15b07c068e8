package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = 0

// CharacterConfig contains all character-related configuration values
type CharacterConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed       float64 // pixels per tick while walking toward a target
	StepForward float64 // pixels a speaker steps toward the audience

	// Idle animation
	BouncePeriodMs  float64
	BounceAmplitude float64
	BreathePeriodMs float64
	BreatheAmount   float64

	// Squash/stretch decay per tick (multiplier)
	SquashDecay float64

	// Walk cycle
	WalkAnimation AnimationDef

	// Feet line for freshly spawned characters, measured from stage bottom
	GroundOffset float64
}

// BubbleConfig contains speech and thought bubble layout values
type BubbleConfig struct {
	Width        float64
	Padding      float64
	LineHeight   float64
	TailHeight   float64
	CornerRadius float64
	OffsetY      float64 // gap between head and bubble bottom

	SpeechFill    color.RGBA
	SpeechStroke  color.RGBA
	ThoughtFill   color.RGBA
	ThoughtStroke color.RGBA
	TextColor     color.RGBA
}

// ScriptConfig contains sequencer timing, in seconds unless noted
type ScriptConfig struct {
	RevealDelay  float64 // pause before a line starts typing
	TypeInterval float64 // time per revealed rune
	HoldTime     float64 // time the full line stays before the speaker steps back
	GapTime      float64 // pause after stepping back before the next line
	ThoughtTime  float64 // default duration of a thought step
	MoveTime     float64 // default duration of a movement step
}

// StageConfig contains stage placement values
type StageConfig struct {
	LeftMark   float64 // fraction of stage width
	CenterMark float64
	RightMark  float64
	EmoteRise  float64 // pixels an emote floats up
	EmoteTime  float64 // seconds an emote stays on screen
}

// EnvironmentConfig contains background values
type EnvironmentConfig struct {
	CloudCount      int
	BorderItemCount int
	GroundHeight    float64
	GrassSpacing    float64
	GrassHeight     float64
	GrassSway       float64
}

// InteractionConfig contains pointer interaction values
type InteractionConfig struct {
	TapSlop          float64 // max pointer travel (px) for a press/release to count as a tap
	ReactionDuration int     // frames a reaction bubble stays visible
	ReactionSquash   float64
	ReactionStretch  float64
	SpaceCellSize    int
}

// SkyPalette is a two-stop vertical gradient plus ambient tint for a time of day
type SkyPalette struct {
	Top    color.RGBA
	Bottom color.RGBA
	Ground color.RGBA
	Grass  color.RGBA
	Shade  color.RGBA // overlay drawn over the finished frame
}

// HUDConfig contains overlay text layout
type HUDConfig struct {
	Margin       float64
	TextColor    color.RGBA
	PanelColor   color.RGBA
	ControlsHint string
}

type Config struct {
	Width        int
	Height       int
	TPS          int
	Title        string
	ControlBarH  int // bottom strip reserved for the control bar
	StageHeight  int
	DefaultMood  MoodID
	StartEpisode string
}

var C *Config
var Character CharacterConfig
var Bubble BubbleConfig
var Script ScriptConfig
var Stage StageConfig
var Environment EnvironmentConfig
var Interaction InteractionConfig
var Sky map[TimeOfDay]SkyPalette
var HUD HUDConfig
var Debug DebugConfig

type DebugConfig struct {
	ShowHitboxes bool // Outline resolv objects and stage marks
	SkipMenu     bool // Go straight to the theater with the last played episode
}

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Ink          = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	BubbleBlue   = color.RGBA{R: 74, G: 144, B: 226, A: 255}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 50}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:        960,
		Height:       540,
		TPS:          60,
		Title:        "Neighbors",
		ControlBarH:  40,
		DefaultMood:  MoodNeutral,
		StartEpisode: "fitnessChallenge",
	}
	C.StageHeight = C.Height - C.ControlBarH

	Character = CharacterConfig{
		Width:       60,
		Height:      120,
		Speed:       2,
		StepForward: 15,

		BouncePeriodMs:  500,
		BounceAmplitude: 2,
		BreathePeriodMs: 1000,
		BreatheAmount:   0.05,

		SquashDecay: 0.9,

		// 4 frames, advancing every 5 ticks
		WalkAnimation: AnimationDef{First: 0, Last: 3, Step: 1, Speed: 4},

		GroundOffset: 30,
	}

	Bubble = BubbleConfig{
		Width:        200,
		Padding:      10,
		LineHeight:   20,
		TailHeight:   10,
		CornerRadius: 10,
		OffsetY:      20,

		SpeechFill:    White,
		SpeechStroke:  BubbleBlue,
		ThoughtFill:   color.RGBA{R: 245, G: 245, B: 250, A: 255},
		ThoughtStroke: color.RGBA{R: 150, G: 150, B: 170, A: 255},
		TextColor:     Ink,
	}

	Script = ScriptConfig{
		RevealDelay:  0.5,
		TypeInterval: 0.05,
		HoldTime:     1.5,
		GapTime:      2.0,
		ThoughtTime:  3.0,
		MoveTime:     2.0,
	}

	Stage = StageConfig{
		LeftMark:   0.2,
		CenterMark: 0.5,
		RightMark:  0.8,
		EmoteRise:  40,
		EmoteTime:  2.0,
	}

	Environment = EnvironmentConfig{
		CloudCount:      5,
		BorderItemCount: 20,
		GroundHeight:    100,
		GrassSpacing:    15,
		GrassHeight:     10,
		GrassSway:       5,
	}

	Interaction = InteractionConfig{
		TapSlop:          4,
		ReactionDuration: 120,
		ReactionSquash:   0.2,
		ReactionStretch:  0.15,
		SpaceCellSize:    32,
	}

	Sky = map[TimeOfDay]SkyPalette{
		Morning: {
			Top:    color.RGBA{R: 255, G: 204, B: 153, A: 255},
			Bottom: color.RGBA{R: 224, G: 247, B: 250, A: 255},
			Ground: color.RGBA{R: 144, G: 238, B: 144, A: 255},
			Grass:  color.RGBA{R: 50, G: 205, B: 50, A: 255},
		},
		Afternoon: {
			Top:    color.RGBA{R: 135, G: 206, B: 235, A: 255},
			Bottom: color.RGBA{R: 224, G: 247, B: 250, A: 255},
			Ground: color.RGBA{R: 144, G: 238, B: 144, A: 255},
			Grass:  color.RGBA{R: 50, G: 205, B: 50, A: 255},
		},
		Evening: {
			Top:    color.RGBA{R: 255, G: 126, B: 95, A: 255},
			Bottom: color.RGBA{R: 254, G: 180, B: 123, A: 255},
			Ground: color.RGBA{R: 110, G: 190, B: 110, A: 255},
			Grass:  color.RGBA{R: 40, G: 160, B: 40, A: 255},
			Shade:  color.RGBA{R: 30, G: 10, B: 20, A: 40},
		},
		Night: {
			Top:    color.RGBA{R: 12, G: 20, B: 69, A: 255},
			Bottom: color.RGBA{R: 48, G: 63, B: 159, A: 255},
			Ground: color.RGBA{R: 34, G: 85, B: 34, A: 255},
			Grass:  color.RGBA{R: 20, G: 100, B: 20, A: 255},
			Shade:  color.RGBA{R: 0, G: 0, B: 40, A: 90},
		},
	}

	HUD = HUDConfig{
		Margin:       10,
		TextColor:    White,
		PanelColor:   color.RGBA{R: 0, G: 0, B: 0, A: 120},
		ControlsHint: "SPACE play/pause   N next scene   R restart   ESC menu",
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		SkipMenu:     false,
	}
}
