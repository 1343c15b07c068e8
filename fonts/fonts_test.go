package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	for _, name := range []FontName{Regular, Bold, Title, Small, Emote} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown font")
		}
	}()
	FontName("nope").Get()
}
