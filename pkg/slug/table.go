package slug

// Entry maps one source character (or short sequence) to its ASCII
// replacement. An empty To removes the source.
type Entry struct {
	From string
	To   string
}

// baseEntries is the locale independent transliteration table.
var baseEntries = []Entry{
	// Latin-1 Supplement
	{"ª", "a"}, {"º", "o"}, {"À", "A"}, {"Á", "A"},
	{"Â", "A"}, {"Ã", "A"}, {"Ä", "A"}, {"Å", "A"},
	{"Æ", "AE"}, {"Ç", "C"}, {"È", "E"}, {"É", "E"},
	{"Ê", "E"}, {"Ë", "E"}, {"Ì", "I"}, {"Í", "I"},
	{"Î", "I"}, {"Ï", "I"}, {"Ð", "D"}, {"Ñ", "N"},
	{"Ò", "O"}, {"Ó", "O"}, {"Ô", "O"}, {"Õ", "O"},
	{"Ö", "O"}, {"Ù", "U"}, {"Ú", "U"}, {"Û", "U"},
	{"Ü", "U"}, {"Ý", "Y"}, {"Þ", "TH"}, {"ß", "s"},
	{"à", "a"}, {"á", "a"}, {"â", "a"}, {"ã", "a"},
	{"ä", "a"}, {"å", "a"}, {"æ", "ae"}, {"ç", "c"},
	{"è", "e"}, {"é", "e"}, {"ê", "e"}, {"ë", "e"},
	{"ì", "i"}, {"í", "i"}, {"î", "i"}, {"ï", "i"},
	{"ð", "d"}, {"ñ", "n"}, {"ò", "o"}, {"ó", "o"},
	{"ô", "o"}, {"õ", "o"}, {"ö", "o"}, {"ø", "o"},
	{"ù", "u"}, {"ú", "u"}, {"û", "u"}, {"ü", "u"},
	{"ý", "y"}, {"þ", "th"}, {"ÿ", "y"}, {"Ø", "O"},
	// Latin Extended-A
	{"Ā", "A"}, {"ā", "a"}, {"Ă", "A"}, {"ă", "a"},
	{"Ą", "A"}, {"ą", "a"}, {"Ć", "C"}, {"ć", "c"},
	{"Ĉ", "C"}, {"ĉ", "c"}, {"Ċ", "C"}, {"ċ", "c"},
	{"Č", "C"}, {"č", "c"}, {"Ď", "D"}, {"ď", "d"},
	{"Đ", "D"}, {"đ", "d"}, {"Ē", "E"}, {"ē", "e"},
	{"Ĕ", "E"}, {"ĕ", "e"}, {"Ė", "E"}, {"ė", "e"},
	{"Ę", "E"}, {"ę", "e"}, {"Ě", "E"}, {"ě", "e"},
	{"Ĝ", "G"}, {"ĝ", "g"}, {"Ğ", "G"}, {"ğ", "g"},
	{"Ġ", "G"}, {"ġ", "g"}, {"Ģ", "G"}, {"ģ", "g"},
	{"Ĥ", "H"}, {"ĥ", "h"}, {"Ħ", "H"}, {"ħ", "h"},
	{"Ĩ", "I"}, {"ĩ", "i"}, {"Ī", "I"}, {"ī", "i"},
	{"Ĭ", "I"}, {"ĭ", "i"}, {"Į", "I"}, {"į", "i"},
	{"İ", "I"}, {"ı", "i"}, {"Ĳ", "IJ"}, {"ĳ", "ij"},
	{"Ĵ", "J"}, {"ĵ", "j"}, {"Ķ", "K"}, {"ķ", "k"},
	{"ĸ", "k"}, {"Ĺ", "L"}, {"ĺ", "l"}, {"Ļ", "L"},
	{"ļ", "l"}, {"Ľ", "L"}, {"ľ", "l"}, {"Ŀ", "L"},
	{"ŀ", "l"}, {"Ł", "L"}, {"ł", "l"}, {"Ń", "N"},
	{"ń", "n"}, {"Ņ", "N"}, {"ņ", "n"}, {"Ň", "N"},
	{"ň", "n"}, {"ŉ", "n"}, {"Ŋ", "N"}, {"ŋ", "n"},
	{"Ō", "O"}, {"ō", "o"}, {"Ŏ", "O"}, {"ŏ", "o"},
	{"Ő", "O"}, {"ő", "o"}, {"Œ", "OE"}, {"œ", "oe"},
	{"Ŕ", "R"}, {"ŕ", "r"}, {"Ŗ", "R"}, {"ŗ", "r"},
	{"Ř", "R"}, {"ř", "r"}, {"Ś", "S"}, {"ś", "s"},
	{"Ŝ", "S"}, {"ŝ", "s"}, {"Ş", "S"}, {"ş", "s"},
	{"Š", "S"}, {"š", "s"}, {"Ţ", "T"}, {"ţ", "t"},
	{"Ť", "T"}, {"ť", "t"}, {"Ŧ", "T"}, {"ŧ", "t"},
	{"Ũ", "U"}, {"ũ", "u"}, {"Ū", "U"}, {"ū", "u"},
	{"Ŭ", "U"}, {"ŭ", "u"}, {"Ů", "U"}, {"ů", "u"},
	{"Ű", "U"}, {"ű", "u"}, {"Ų", "U"}, {"ų", "u"},
	{"Ŵ", "W"}, {"ŵ", "w"}, {"Ŷ", "Y"}, {"ŷ", "y"},
	{"Ÿ", "Y"}, {"Ź", "Z"}, {"ź", "z"}, {"Ż", "Z"},
	{"ż", "z"}, {"Ž", "Z"}, {"ž", "z"}, {"ſ", "s"},
	// Latin Extended-B
	{"Ș", "S"}, {"ș", "s"}, {"Ț", "T"}, {"ț", "t"},
	// Currency
	{"€", "E"}, {"£", ""},
	// Vietnamese vowels
	{"Ơ", "O"}, {"ơ", "o"}, {"Ư", "U"}, {"ư", "u"},
	// Vietnamese, grave
	{"Ầ", "A"}, {"ầ", "a"}, {"Ằ", "A"}, {"ằ", "a"},
	{"Ề", "E"}, {"ề", "e"}, {"Ồ", "O"}, {"ồ", "o"},
	{"Ờ", "O"}, {"ờ", "o"}, {"Ừ", "U"}, {"ừ", "u"},
	{"Ỳ", "Y"}, {"ỳ", "y"},
	// Vietnamese, hook above
	{"Ả", "A"}, {"ả", "a"}, {"Ẩ", "A"}, {"ẩ", "a"},
	{"Ẳ", "A"}, {"ẳ", "a"}, {"Ẻ", "E"}, {"ẻ", "e"},
	{"Ể", "E"}, {"ể", "e"}, {"Ỉ", "I"}, {"ỉ", "i"},
	{"Ỏ", "O"}, {"ỏ", "o"}, {"Ổ", "O"}, {"ổ", "o"},
	{"Ở", "O"}, {"ở", "o"}, {"Ủ", "U"}, {"ủ", "u"},
	{"Ử", "U"}, {"ử", "u"}, {"Ỷ", "Y"}, {"ỷ", "y"},
	// Vietnamese, tilde
	{"Ẫ", "A"}, {"ẫ", "a"}, {"Ẵ", "A"}, {"ẵ", "a"},
	{"Ẽ", "E"}, {"ẽ", "e"}, {"Ễ", "E"}, {"ễ", "e"},
	{"Ỗ", "O"}, {"ỗ", "o"}, {"Ỡ", "O"}, {"ỡ", "o"},
	{"Ữ", "U"}, {"ữ", "u"}, {"Ỹ", "Y"}, {"ỹ", "y"},
	// Vietnamese, acute
	{"Ấ", "A"}, {"ấ", "a"}, {"Ắ", "A"}, {"ắ", "a"},
	{"Ế", "E"}, {"ế", "e"}, {"Ố", "O"}, {"ố", "o"},
	{"Ớ", "O"}, {"ớ", "o"}, {"Ứ", "U"}, {"ứ", "u"},
	// Vietnamese, dot below
	{"Ạ", "A"}, {"ạ", "a"}, {"Ậ", "A"}, {"ậ", "a"},
	{"Ặ", "A"}, {"ặ", "a"}, {"Ẹ", "E"}, {"ẹ", "e"},
	{"Ệ", "E"}, {"ệ", "e"}, {"Ị", "I"}, {"ị", "i"},
	{"Ọ", "O"}, {"ọ", "o"}, {"Ộ", "O"}, {"ộ", "o"},
	{"Ợ", "O"}, {"ợ", "o"}, {"Ụ", "U"}, {"ụ", "u"},
	{"Ự", "U"}, {"ự", "u"}, {"Ỵ", "Y"}, {"ỵ", "y"},
	// Hanyu Pinyin
	{"ɑ", "a"},
	// Pinyin, macron
	{"Ǖ", "U"}, {"ǖ", "u"},
	// Pinyin, acute
	{"Ǘ", "U"}, {"ǘ", "u"},
	// Pinyin, caron
	{"Ǎ", "A"}, {"ǎ", "a"}, {"Ǐ", "I"}, {"ǐ", "i"},
	{"Ǒ", "O"}, {"ǒ", "o"}, {"Ǔ", "U"}, {"ǔ", "u"},
	{"Ǚ", "U"}, {"ǚ", "u"},
	// Pinyin, grave
	{"Ǜ", "U"}, {"ǜ", "u"},
}

// Single-byte replacements for input that is not UTF-8. The byte values
// follow Windows-1252 / ISO-8859-1.
var legacySingle = [256]byte{
	0x80: 'E', 0x83: 'f', 0x8A: 'S', 0x8E: 'Z', 0x9A: 's', 0x9E: 'z',
	0x9F: 'Y', 0xA2: 'c', 0xA5: 'Y', 0xB5: 'u', 0xC0: 'A', 0xC1: 'A',
	0xC2: 'A', 0xC3: 'A', 0xC4: 'A', 0xC5: 'A', 0xC7: 'C', 0xC8: 'E',
	0xC9: 'E', 0xCA: 'E', 0xCB: 'E', 0xCC: 'I', 0xCD: 'I', 0xCE: 'I',
	0xCF: 'I', 0xD1: 'N', 0xD2: 'O', 0xD3: 'O', 0xD4: 'O', 0xD5: 'O',
	0xD6: 'O', 0xD8: 'O', 0xD9: 'U', 0xDA: 'U', 0xDB: 'U', 0xDC: 'U',
	0xDD: 'Y', 0xE0: 'a', 0xE1: 'a', 0xE2: 'a', 0xE3: 'a', 0xE4: 'a',
	0xE5: 'a', 0xE7: 'c', 0xE8: 'e', 0xE9: 'e', 0xEA: 'e', 0xEB: 'e',
	0xEC: 'i', 0xED: 'i', 0xEE: 'i', 0xEF: 'i', 0xF1: 'n', 0xF2: 'o',
	0xF3: 'o', 0xF4: 'o', 0xF5: 'o', 0xF6: 'o', 0xF8: 'o', 0xF9: 'u',
	0xFA: 'u', 0xFB: 'u', 0xFC: 'u', 0xFD: 'y', 0xFF: 'y',
}

// Single bytes that expand to two ASCII letters. Consulted after legacySingle.
var legacyDouble = map[byte]string{
	0x8C: "OE", 0x9C: "oe", 0xC6: "AE", 0xD0: "DH", 0xDE: "TH",
	0xDF: "ss", 0xE6: "ae", 0xF0: "dh", 0xFE: "th",
}
