package render

// densityChars are intensity variants ordered lowest to highest, used for
// point brightness; compatible with plain 256-color terminals
var densityChars = [4]rune{
	'░', // ░ light shade
	'▒', // ▒ medium shade
	'▓', // ▓ dark shade
	'█', // █ full block
}

// starChars render the backdrop, dimmest first
var starChars = [3]rune{'·', '•', '*'}

// densityFor maps a 0..1 intensity to a block rune
func densityFor(intensity float64) rune {
	switch {
	case intensity < 0.3:
		return densityChars[0]
	case intensity < 0.55:
		return densityChars[1]
	case intensity < 0.8:
		return densityChars[2]
	default:
		return densityChars[3]
	}
}
