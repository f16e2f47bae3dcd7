package core

import (
	"strings"
	"testing"
)

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '#', ColorRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v, expected '#' in red", cell)
	}

	// Out of bounds writes are ignored, reads return blank.
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(10, 0, 'X', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(NewRect(0, 0, 4, 4), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		if row := s.Row(y); row != "    " {
			t.Errorf("row %d after Clear = %q", y, row)
		}
	}

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize: got %dx%d, expected 6x2", s.Width(), s.Height())
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "Score", ColorYellow)

	if s.Row(0) != "     Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if s.GetCell(5, 0).Color != ColorYellow {
		t.Error("text should keep its colour")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "★★", ColorDefault)

	if s.Get(4, 0) != '★' || s.Get(5, 0) != '★' {
		t.Errorf("centred text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorWhite)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"└───┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox output:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestSeedColorWraps(t *testing.T) {
	if SeedColor(0) != SeedColor(PaletteSize()) {
		t.Error("SeedColor should cycle through the palette")
	}
	if SeedColor(-1) != SeedColor(1) {
		t.Error("negative seeds should map like their absolute value")
	}
}
