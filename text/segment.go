package text

import (
	"slices"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// segment is a shaping input together with its resolved bidi level.
type segment struct {
	input shaping.Input
	level int
}

// isRTLBase reports whether the first strong character of runes is
// right-to-left. Lines without strong characters are left-to-right.
func isRTLBase(runes []rune) bool {
	for _, r := range runes {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

// splitBidi splits input into directional runs, in logical order.
// Left-to-right runs get level 0 in a left-to-right line and level 2
// in a right-to-left line; right-to-left runs get level 1.
func splitBidi(input shaping.Input) []segment {
	rtl := isRTLBase(input.Text)
	def, base := bidi.LeftToRight, 0
	if rtl {
		def, base = bidi.RightToLeft, 1
	}

	whole := func() []segment {
		in := input
		in.Direction = di.DirectionLTR
		if rtl {
			in.Direction = di.DirectionRTL
		}
		return []segment{{input: in, level: base}}
	}

	var p bidi.Paragraph
	if _, err := p.SetString(string(input.Text[input.RunStart:input.RunEnd]), bidi.DefaultDirection(def)); err != nil {
		return whole()
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole()
	}

	segments := make([]segment, 0, ordering.NumRuns())
	for i := range ordering.NumRuns() {
		run := ordering.Run(i)
		start, end := run.Pos()

		in := input
		in.RunStart = input.RunStart + start
		in.RunEnd = input.RunStart + end + 1

		level := 0
		if run.Direction() == bidi.RightToLeft {
			in.Direction = di.DirectionRTL
			level = 1
		} else {
			in.Direction = di.DirectionLTR
			if rtl {
				level = 2
			}
		}
		segments = append(segments, segment{input: in, level: level})
	}
	return segments
}

// splitByScript splits input into runs of a single script. Common and
// Inherited runes join the run before them, or the one after them at the
// start of the input.
func splitByScript(input shaping.Input) []shaping.Input {
	scripts := make([]language.Script, 0, input.RunEnd-input.RunStart)
	for _, r := range input.Text[input.RunStart:input.RunEnd] {
		scripts = append(scripts, language.LookupScript(r))
	}
	resolveScripts(scripts)

	var out []shaping.Input
	start := 0
	for i := 1; i <= len(scripts); i++ {
		if i < len(scripts) && scripts[i] == scripts[start] {
			continue
		}
		in := input
		in.RunStart = input.RunStart + start
		in.RunEnd = input.RunStart + i
		in.Script = scripts[start]
		out = append(out, in)
		start = i
	}
	return out
}

// resolveScripts replaces Common and Inherited scripts in place.
func resolveScripts(scripts []language.Script) {
	last := language.Common
	for i, s := range scripts {
		if s.Strong() {
			last = s
			continue
		}
		scripts[i] = last
	}

	// Leading weak runes take the first strong script.
	first := slices.IndexFunc(scripts, func(s language.Script) bool { return s != language.Common })
	if first <= 0 {
		if first < 0 {
			for i := range scripts {
				scripts[i] = language.Latin
			}
		}
		return
	}
	for i := range first {
		scripts[i] = scripts[first]
	}
}

// visualOrder returns the display order of items with the given bidi
// levels: from the highest level down to the lowest odd level, every
// maximal sequence at or above that level is reversed.
func visualOrder(levels []int) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}

	highest, lowestOdd := 0, -1
	for _, l := range levels {
		highest = max(highest, l)
		if l%2 == 1 && (lowestOdd < 0 || l < lowestOdd) {
			lowestOdd = l
		}
	}
	if lowestOdd < 0 {
		return order
	}

	for level := highest; level >= lowestOdd; level-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < level {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= level {
				j++
			}
			slices.Reverse(order[i:j])
			i = j
		}
	}
	return order
}
