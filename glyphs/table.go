package glyphs

// The stroke table. Shapes are skeletal single-line letterforms: uppercase
// letters span y 0..10, lowercase bodies y 3..10 with ascenders to 0 and
// descenders to 13, digits y 0..10. Coordinates stay within the glyph cell.
var table = map[rune][]Path{
	// Uppercase.
	'A': {{{0, 10}, {4, 0}, {8, 10}}, {{2, 6}, {6, 6}}},
	'B': {{{0, 0}, {0, 10}}, {{0, 0}, {6, 0}, {7, 1}, {7, 3}, {6, 4}, {0, 4}}, {{0, 4}, {6, 4}, {8, 6}, {8, 8}, {6, 10}, {0, 10}}},
	'C': {{{8, 2}, {6, 0}, {2, 0}, {0, 2}, {0, 8}, {2, 10}, {6, 10}, {8, 8}}},
	'D': {{{0, 0}, {0, 10}}, {{0, 0}, {5, 0}, {8, 3}, {8, 7}, {5, 10}, {0, 10}}},
	'E': {{{8, 0}, {0, 0}, {0, 10}, {8, 10}}, {{0, 5}, {6, 5}}},
	'F': {{{8, 0}, {0, 0}, {0, 10}}, {{0, 5}, {6, 5}}},
	'G': {{{8, 2}, {6, 0}, {2, 0}, {0, 2}, {0, 8}, {2, 10}, {6, 10}, {8, 8}, {8, 6}, {5, 6}}},
	'H': {{{0, 0}, {0, 10}}, {{8, 0}, {8, 10}}, {{0, 5}, {8, 5}}},
	'I': {{{2, 0}, {6, 0}}, {{4, 0}, {4, 10}}, {{2, 10}, {6, 10}}},
	'J': {{{6, 0}, {6, 8}, {5, 10}, {2, 10}, {0, 8}}},
	'K': {{{0, 0}, {0, 10}}, {{8, 0}, {0, 5}, {8, 10}}},
	'L': {{{0, 0}, {0, 10}, {8, 10}}},
	'M': {{{0, 10}, {0, 0}, {4, 6}, {8, 0}, {8, 10}}},
	'N': {{{0, 10}, {0, 0}, {8, 10}, {8, 0}}},
	'O': {{{2, 0}, {6, 0}, {8, 2}, {8, 8}, {6, 10}, {2, 10}, {0, 8}, {0, 2}, {2, 0}}},
	'P': {{{0, 10}, {0, 0}, {6, 0}, {8, 2}, {8, 4}, {6, 6}, {0, 6}}},
	'Q': {{{2, 0}, {6, 0}, {8, 2}, {8, 8}, {6, 10}, {2, 10}, {0, 8}, {0, 2}, {2, 0}}, {{5, 7}, {9, 11}}},
	'R': {{{0, 10}, {0, 0}, {6, 0}, {8, 2}, {8, 4}, {6, 6}, {0, 6}}, {{3, 6}, {8, 10}}},
	'S': {{{8, 1}, {6, 0}, {2, 0}, {0, 2}, {2, 5}, {6, 5}, {8, 7}, {6, 10}, {2, 10}, {0, 9}}},
	'T': {{{0, 0}, {8, 0}}, {{4, 0}, {4, 10}}},
	'U': {{{0, 0}, {0, 8}, {2, 10}, {6, 10}, {8, 8}, {8, 0}}},
	'V': {{{0, 0}, {4, 10}, {8, 0}}},
	'W': {{{0, 0}, {2, 10}, {4, 4}, {6, 10}, {8, 0}}},
	'X': {{{0, 0}, {8, 10}}, {{8, 0}, {0, 10}}},
	'Y': {{{0, 0}, {4, 5}, {8, 0}}, {{4, 5}, {4, 10}}},
	'Z': {{{0, 0}, {8, 0}, {0, 10}, {8, 10}}},

	// Lowercase.
	'a': {{{7, 4}, {5, 3}, {2, 3}, {0, 5}, {0, 8}, {2, 10}, {5, 10}, {7, 8}}, {{7, 3}, {7, 10}}},
	'b': {{{0, 0}, {0, 10}}, {{0, 4}, {4, 3}, {7, 5}, {7, 8}, {4, 10}, {0, 9}}},
	'c': {{{7, 4}, {5, 3}, {2, 3}, {0, 5}, {0, 8}, {2, 10}, {5, 10}, {7, 9}}},
	'd': {{{7, 0}, {7, 10}}, {{7, 4}, {5, 3}, {2, 3}, {0, 5}, {0, 8}, {2, 10}, {5, 10}, {7, 8}}},
	'e': {{{0, 7}, {7, 7}, {7, 5}, {5, 3}, {2, 3}, {0, 5}, {0, 8}, {2, 10}, {6, 10}}},
	'f': {{{6, 1}, {4, 0}, {3, 1}, {3, 10}}, {{1, 4}, {5, 4}}},
	'g': {{{7, 4}, {5, 3}, {2, 3}, {0, 5}, {0, 8}, {2, 10}, {5, 10}, {7, 8}}, {{7, 3}, {7, 12}, {5, 13}, {2, 13}, {0, 12}}},
	'h': {{{0, 0}, {0, 10}}, {{0, 5}, {2, 3}, {5, 3}, {7, 5}, {7, 10}}},
	'i': {{{3, 3}, {3, 10}}, {{3, 1}}},
	'j': {{{4, 3}, {4, 12}, {2, 13}, {0, 12}}, {{4, 1}}},
	'k': {{{0, 0}, {0, 10}}, {{6, 3}, {0, 7}, {6, 10}}},
	'l': {{{3, 0}, {3, 9}, {4, 10}}},
	'm': {{{0, 3}, {0, 10}}, {{0, 5}, {1, 3}, {3, 3}, {4, 5}, {4, 10}}, {{4, 5}, {5, 3}, {7, 3}, {8, 5}, {8, 10}}},
	'n': {{{0, 3}, {0, 10}}, {{0, 5}, {2, 3}, {5, 3}, {7, 5}, {7, 10}}},
	'o': {{{2, 3}, {5, 3}, {7, 5}, {7, 8}, {5, 10}, {2, 10}, {0, 8}, {0, 5}, {2, 3}}},
	'p': {{{0, 3}, {0, 13}}, {{0, 4}, {4, 3}, {7, 5}, {7, 8}, {4, 10}, {0, 9}}},
	'q': {{{7, 3}, {7, 13}}, {{7, 4}, {5, 3}, {2, 3}, {0, 5}, {0, 8}, {2, 10}, {5, 10}, {7, 8}}},
	'r': {{{0, 3}, {0, 10}}, {{0, 5}, {2, 3}, {5, 3}, {6, 4}}},
	's': {{{6, 4}, {4, 3}, {1, 3}, {0, 4}, {1, 6}, {5, 7}, {6, 8}, {5, 10}, {1, 10}, {0, 9}}},
	't': {{{3, 0}, {3, 9}, {4, 10}, {6, 9}}, {{1, 3}, {5, 3}}},
	'u': {{{0, 3}, {0, 8}, {2, 10}, {5, 10}, {7, 8}}, {{7, 3}, {7, 10}}},
	'v': {{{0, 3}, {3, 10}, {6, 3}}},
	'w': {{{0, 3}, {1, 10}, {3, 5}, {5, 10}, {6, 3}}},
	'x': {{{0, 3}, {6, 10}}, {{6, 3}, {0, 10}}},
	'y': {{{0, 3}, {3, 10}}, {{6, 3}, {0, 13}}},
	'z': {{{0, 3}, {6, 3}, {0, 10}, {6, 10}}},

	// Digits.
	'0': {{{2, 0}, {6, 0}, {8, 2}, {8, 8}, {6, 10}, {2, 10}, {0, 8}, {0, 2}, {2, 0}}, {{6, 2}, {2, 8}}},
	'1': {{{2, 2}, {4, 0}, {4, 10}}, {{2, 10}, {6, 10}}},
	'2': {{{0, 2}, {2, 0}, {6, 0}, {8, 2}, {8, 4}, {0, 10}, {8, 10}}},
	'3': {{{0, 1}, {2, 0}, {6, 0}, {8, 2}, {8, 3}, {6, 5}, {3, 5}}, {{6, 5}, {8, 7}, {8, 8}, {6, 10}, {2, 10}, {0, 9}}},
	'4': {{{6, 0}, {0, 7}, {8, 7}}, {{6, 0}, {6, 10}}},
	'5': {{{8, 0}, {0, 0}, {0, 5}, {5, 5}, {8, 7}, {8, 8}, {5, 10}, {1, 10}, {0, 9}}},
	'6': {{{7, 1}, {5, 0}, {2, 0}, {0, 3}, {0, 8}, {2, 10}, {5, 10}, {7, 8}, {7, 6}, {5, 5}, {0, 6}}},
	'7': {{{0, 0}, {8, 0}, {3, 10}}},
	'8': {{{4, 0}, {1, 1}, {1, 4}, {4, 5}, {7, 6}, {7, 9}, {4, 10}, {1, 9}, {1, 6}, {4, 5}, {7, 4}, {7, 1}, {4, 0}}},
	'9': {{{1, 9}, {3, 10}, {6, 10}, {8, 7}, {8, 2}, {6, 0}, {3, 0}, {1, 2}, {1, 4}, {3, 5}, {8, 4}}},

	// Punctuation and symbols.
	'.':  {{{4, 10}}},
	',':  {{{4, 10}, {3, 12}}},
	':':  {{{4, 5}}, {{4, 10}}},
	';':  {{{4, 5}}, {{4, 10}, {3, 12}}},
	'!':  {{{4, 0}, {4, 7}}, {{4, 10}}},
	'?':  {{{0, 2}, {2, 0}, {6, 0}, {8, 2}, {8, 4}, {4, 6}, {4, 7}}, {{4, 10}}},
	'\'': {{{4, 0}, {4, 2}}},
	'"':  {{{3, 0}, {3, 2}}, {{5, 0}, {5, 2}}},
	'`':  {{{3, 0}, {5, 2}}},
	'(':  {{{5, 0}, {3, 3}, {3, 7}, {5, 10}}},
	')':  {{{3, 0}, {5, 3}, {5, 7}, {3, 10}}},
	'[':  {{{5, 0}, {3, 0}, {3, 10}, {5, 10}}},
	']':  {{{3, 0}, {5, 0}, {5, 10}, {3, 10}}},
	'{':  {{{6, 0}, {4, 1}, {4, 4}, {2, 5}, {4, 6}, {4, 9}, {6, 10}}},
	'}':  {{{2, 0}, {4, 1}, {4, 4}, {6, 5}, {4, 6}, {4, 9}, {2, 10}}},
	'+':  {{{4, 3}, {4, 9}}, {{1, 6}, {7, 6}}},
	'-':  {{{1, 6}, {7, 6}}},
	'*':  {{{4, 2}, {4, 8}}, {{1, 3}, {7, 7}}, {{7, 3}, {1, 7}}},
	'/':  {{{6, 0}, {2, 10}}},
	'\\': {{{2, 0}, {6, 10}}},
	'=':  {{{1, 4}, {7, 4}}, {{1, 8}, {7, 8}}},
	'<':  {{{7, 2}, {1, 6}, {7, 10}}},
	'>':  {{{1, 2}, {7, 6}, {1, 10}}},
	'_':  {{{0, 12}, {8, 12}}},
	'#':  {{{3, 2}, {2, 10}}, {{6, 2}, {5, 10}}, {{1, 4}, {8, 4}}, {{1, 8}, {8, 8}}},
	'@':  {{{6, 4}, {4, 3}, {2, 4}, {2, 7}, {4, 8}, {6, 7}, {6, 3}}, {{6, 3}, {8, 5}, {7, 2}, {5, 1}, {3, 1}, {1, 3}, {1, 8}, {3, 10}, {6, 10}}},
	'&':  {{{7, 10}, {1, 3}, {2, 1}, {4, 1}, {5, 3}, {1, 6}, {1, 9}, {3, 10}, {6, 9}, {7, 7}}},
	'|':  {{{4, 0}, {4, 13}}},
	'^':  {{{2, 3}, {4, 0}, {6, 3}}},
	'~':  {{{0, 7}, {2, 5}, {5, 7}, {7, 5}}},
	'%':  {{{1, 0}, {3, 0}, {3, 2}, {1, 2}, {1, 0}}, {{7, 0}, {1, 10}}, {{5, 8}, {7, 8}, {7, 10}, {5, 10}, {5, 8}}},
	'$':  {{{8, 1}, {6, 0}, {2, 0}, {0, 2}, {2, 5}, {6, 5}, {8, 7}, {6, 10}, {2, 10}, {0, 9}}, {{4, 0}, {4, 10}}},
}
