package text

import (
	"slices"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

func inputOf(s string) shaping.Input {
	runes := []rune(s)
	return shaping.Input{Text: runes, RunStart: 0, RunEnd: len(runes)}
}

func TestIsRTLBase(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"hello", false},
		{"123 ...", false},
		{"שלום", true},
		{"مرحبا abc", true},
		{"abc مرحبا", false},
		{"  123 שלום", true},
	}

	for _, tt := range tests {
		if got := isRTLBase([]rune(tt.in)); got != tt.want {
			t.Errorf("isRTLBase(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitBidi(t *testing.T) {
	t.Run("ltr only", func(t *testing.T) {
		segs := splitBidi(inputOf("hello world"))
		if len(segs) != 1 {
			t.Fatalf("got %d segments, want 1", len(segs))
		}
		if segs[0].level != 0 || segs[0].input.Direction != di.DirectionLTR {
			t.Errorf("got level %d direction %v, want 0 LTR", segs[0].level, segs[0].input.Direction)
		}
		if segs[0].input.RunStart != 0 || segs[0].input.RunEnd != 11 {
			t.Errorf("got run [%d, %d), want [0, 11)", segs[0].input.RunStart, segs[0].input.RunEnd)
		}
	})

	t.Run("embedded rtl", func(t *testing.T) {
		segs := splitBidi(inputOf("abc אבג def"))
		if len(segs) < 2 {
			t.Fatalf("got %d segments, want at least 2", len(segs))
		}
		var rtl int
		covered := 0
		for _, s := range segs {
			covered += s.input.RunEnd - s.input.RunStart
			if s.input.Direction == di.DirectionRTL {
				rtl++
				if s.level != 1 {
					t.Errorf("rtl segment level = %d, want 1", s.level)
				}
				if got := string(s.input.Text[s.input.RunStart:s.input.RunEnd]); got != "אבג" {
					t.Errorf("rtl segment = %q, want %q", got, "אבג")
				}
			}
		}
		if rtl != 1 {
			t.Errorf("got %d rtl segments, want 1", rtl)
		}
		if covered != 11 {
			t.Errorf("segments cover %d runes, want 11", covered)
		}
	})

	t.Run("rtl base", func(t *testing.T) {
		for _, s := range splitBidi(inputOf("שלום abc")) {
			if s.input.Direction == di.DirectionLTR && s.level != 2 {
				t.Errorf("ltr segment in rtl line has level %d, want 2", s.level)
			}
		}
	})
}

func TestSplitByScript(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		scripts []language.Script
	}{
		{"hello", []string{"hello"}, []language.Script{language.Latin}},
		{"123 abc", []string{"123 abc"}, []language.Script{language.Latin}},
		{"abc 日本", []string{"abc ", "日本"}, []language.Script{language.Latin, language.Han}},
		{"...", []string{"..."}, []language.Script{language.Latin}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			runs := splitByScript(inputOf(tt.in))
			var got []string
			var scripts []language.Script
			for _, r := range runs {
				got = append(got, string(r.Text[r.RunStart:r.RunEnd]))
				scripts = append(scripts, r.Script)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("runs = %q, want %q", got, tt.want)
			}
			if !slices.Equal(scripts, tt.scripts) {
				t.Errorf("scripts = %v, want %v", scripts, tt.scripts)
			}
		})
	}
}

func TestVisualOrder(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		want   []int
	}{
		{"empty", nil, []int{}},
		{"ltr", []int{0, 0, 0}, []int{0, 1, 2}},
		{"rtl inside ltr", []int{0, 1, 1, 0}, []int{0, 2, 1, 3}},
		{"rtl only", []int{1, 1}, []int{1, 0}},
		{"ltr inside rtl", []int{1, 2, 2, 1}, []int{3, 1, 2, 0}},
		{"alternating rtl base", []int{2, 1, 2}, []int{2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visualOrder(tt.levels); !slices.Equal(got, tt.want) {
				t.Errorf("visualOrder(%v) = %v, want %v", tt.levels, got, tt.want)
			}
		})
	}
}
