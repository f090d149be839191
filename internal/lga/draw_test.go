package lga

import (
	"bytes"
	"testing"
)

func TestDrawHex(t *testing.T) {
	a, err := New(4, 2, Periodic, Identity(), func(x, y int) State { return State(y*4 + x + 9) % NumStates })
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := a.Draw(&buf); err != nil {
		t.Fatal(err)
	}
	want := "9abc\ndef0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestDrawGlyph(t *testing.T) {
	row := []State{Empty, Up, Right, Down, Left, Up | Down, Full}
	a, err := New(len(row), 1, Closed, HPP(), func(x, y int) State { return row[x] }, WithFormat(FormatGlyph))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := a.Draw(&buf); err != nil {
		t.Fatal(err)
	}
	if want := ".^>v<24\n"; buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestDrawStableAndReadOnly(t *testing.T) {
	a, _ := New(11, 7, Periodic, HPP(), randomInit(11, 7, 4))
	var first, second bytes.Buffer
	_ = a.Draw(&first)
	_ = a.Draw(&second)
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("draw output differs between calls")
	}
	if a.Generation() != 0 {
		t.Fatal("draw advanced the automaton")
	}

	b, _ := New(11, 7, Periodic, HPP(), randomInit(11, 7, 4))
	var third bytes.Buffer
	_ = b.Draw(&third)
	if !bytes.Equal(first.Bytes(), third.Bytes()) {
		t.Fatal("identical grids drew differently")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatHex, FormatGlyph} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Fatalf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFormat("png"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
