package font

// Block is the built-in font. It covers A–Z (lowercase letters alias
// uppercase), 0–9 and common ASCII punctuation.
var Block = MustNew("block", blockGlyphs)

var blockGlyphs = map[rune][]string{
	'A': {"XXX", "X X", "XXX", "X X", "X X"},
	'B': {"XX ", "X X", "XX ", "X X", "XX "},
	'C': {"XXX", "X  ", "X  ", "X  ", "XXX"},
	'D': {"XX ", "X X", "X X", "X X", "XX "},
	'E': {"XXX", "X  ", "XX ", "X  ", "XXX"},
	'F': {"XXX", "X  ", "XX ", "X  ", "X  "},
	'G': {"XXX", "X  ", "X X", "X X", "XXX"},
	'H': {"X X", "X X", "XXX", "X X", "X X"},
	'I': {"XXX", " X ", " X ", " X ", "XXX"},
	'J': {" XX", "  X", "  X", "X X", "XX "},
	'K': {"X X", "X X", "X  ", "X X", "X X"},
	'L': {"X  ", "X  ", "X  ", "X  ", "XXX"},
	'M': {"X   X", "XX XX", "X X X", "X   X", "X   X"},
	'N': {"X   X", "XX  X", "X X X", "X  XX", "X   X"},
	'O': {"XXX", "X X", "X X", "X X", "XXX"},
	'P': {"XXX", "X X", "XXX", "X  ", "X  "},
	'Q': {"XXX", "X X", "X X", "X X", " XX"},
	'R': {"XXX", "X X", "XX ", "X X", "X X"},
	'S': {"XXX", "X  ", "XXX", "  X", "XXX"},
	'T': {"XXX", " X ", " X ", " X ", " X "},
	'U': {"X X", "X X", "X X", "X X", "XXX"},
	'V': {"X X", "X X", "X X", " X ", " X "},
	'W': {"X   X", "X   X", "X X X", "X X X", " X X "},
	'X': {"X X", " X ", " X ", " X ", "X X"},
	'Y': {"X X", "X X", " X ", " X ", " X "},
	'Z': {"XXX", "  X", " X ", "X  ", "XXX"},

	'0': {"XXX", "X X", "X X", "X X", "XXX"},
	'1': {" X ", "XX ", " X ", " X ", "XXX"},
	'2': {"XXX", "  X", "XXX", "X  ", "XXX"},
	'3': {"XXX", "  X", "XXX", "  X", "XXX"},
	'4': {"X X", "X X", "XXX", "  X", "  X"},
	'5': {"XXX", "X  ", "XXX", "  X", "XXX"},
	'6': {"XXX", "X  ", "XXX", "X X", "XXX"},
	'7': {"XXX", "  X", "  X", " X ", " X "},
	'8': {"XXX", "X X", "XXX", "X X", "XXX"},
	'9': {"XXX", "X X", "XXX", "  X", "XXX"},

	' ':  {"   ", "   ", "   ", "   ", "   "},
	'!':  {"X", "X", "X", " ", "X"},
	'.':  {" ", " ", " ", " ", "X"},
	'?':  {"XXX", "  X", " XX", "   ", " X "},
	'+':  {"   ", " X ", "XXX", " X ", "   "},
	'-':  {"   ", "   ", "XXX", "   ", "   "},
	'=':  {"   ", "XXX", "   ", "XXX", "   "},
	':':  {" ", "X", " ", "X", " "},
	';':  {" ", "X", " ", "X", " "},
	'"':  {"X X", "X X", "   ", "   ", "   "},
	'\'': {"X", "X", " ", " ", " "},
	'/':  {"  X", " X ", " X ", " X ", "X  "},
	'\\': {"X  ", " X ", " X ", " X ", "  X"},
	'_':  {"   ", "   ", "   ", "   ", "XXX"},
	'<':  {" X", "X ", "X ", "X ", " X"},
	'>':  {"X ", " X", " X", " X", "X "},
	'(':  {" X", "X ", "X ", "X ", " X"},
	')':  {"X ", " X", " X", " X", "X "},
	'*':  {"   ", "X X", " X ", "X X", "   "},
	'#':  {" X ", "XXX", " X ", "XXX", " X "},
	'@':  {"XXX", "X X", "XX ", "X  ", "XXX"},
	'$':  {" X ", "XXX", "X X", "XXX", " X "},
	'%':  {"X X", "  X", " X ", "X  ", "X X"},
	'^':  {" X ", "X X", "   ", "   ", "   "},
	'&':  {"XX ", "X X", "XX ", "X X", "XX "},
	'|':  {"X", "X", "X", "X", "X"},
	'~':  {"X X", " X ", "   ", "   ", "   "},
}
