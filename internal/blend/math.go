package blend

// div255 divides x by 255, rounding down, without integer division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for every product of two
// bytes and for every sum s*a + d*(255-a).
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns a*b/255 rounded down.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b))) //nolint:gosec // result is at most 255
}
