package palette

import "github.com/ironsheep/anybitmap/internal/pixel"

// known is sorted by name. Aliases that share a value (Aqua and Cyan,
// Fuchsia and Magenta) both appear; the first wins in a reverse lookup.
var known = []entry{
	{"AliceBlue", pixel.Color{A: 0xFF, R: 0xF0, G: 0xF8, B: 0xFF}},
	{"AntiqueWhite", pixel.Color{A: 0xFF, R: 0xFA, G: 0xEB, B: 0xD7}},
	{"Aqua", pixel.Color{A: 0xFF, R: 0x00, G: 0xFF, B: 0xFF}},
	{"Aquamarine", pixel.Color{A: 0xFF, R: 0x7F, G: 0xFF, B: 0xD4}},
	{"Azure", pixel.Color{A: 0xFF, R: 0xF0, G: 0xFF, B: 0xFF}},
	{"Beige", pixel.Color{A: 0xFF, R: 0xF5, G: 0xF5, B: 0xDC}},
	{"Bisque", pixel.Color{A: 0xFF, R: 0xFF, G: 0xE4, B: 0xC4}},
	{"Black", pixel.Color{A: 0xFF, R: 0x00, G: 0x00, B: 0x00}},
	{"BlanchedAlmond", pixel.Color{A: 0xFF, R: 0xFF, G: 0xEB, B: 0xCD}},
	{"Blue", pixel.Color{A: 0xFF, R: 0x00, G: 0x00, B: 0xFF}},
	{"BlueViolet", pixel.Color{A: 0xFF, R: 0x8A, G: 0x2B, B: 0xE2}},
	{"Brown", pixel.Color{A: 0xFF, R: 0xA5, G: 0x2A, B: 0x2A}},
	{"BurlyWood", pixel.Color{A: 0xFF, R: 0xDE, G: 0xB8, B: 0x87}},
	{"CadetBlue", pixel.Color{A: 0xFF, R: 0x5F, G: 0x9E, B: 0xA0}},
	{"Chartreuse", pixel.Color{A: 0xFF, R: 0x7F, G: 0xFF, B: 0x00}},
	{"Chocolate", pixel.Color{A: 0xFF, R: 0xD2, G: 0x69, B: 0x1E}},
	{"Coral", pixel.Color{A: 0xFF, R: 0xFF, G: 0x7F, B: 0x50}},
	{"CornflowerBlue", pixel.Color{A: 0xFF, R: 0x64, G: 0x95, B: 0xED}},
	{"Cornsilk", pixel.Color{A: 0xFF, R: 0xFF, G: 0xF8, B: 0xDC}},
	{"Crimson", pixel.Color{A: 0xFF, R: 0xDC, G: 0x14, B: 0x3C}},
	{"Cyan", pixel.Color{A: 0xFF, R: 0x00, G: 0xFF, B: 0xFF}},
	{"DarkBlue", pixel.Color{A: 0xFF, R: 0x00, G: 0x00, B: 0x8B}},
	{"DarkCyan", pixel.Color{A: 0xFF, R: 0x00, G: 0x8B, B: 0x8B}},
	{"DarkGoldenrod", pixel.Color{A: 0xFF, R: 0xB8, G: 0x86, B: 0x0B}},
	{"DarkGray", pixel.Color{A: 0xFF, R: 0xA9, G: 0xA9, B: 0xA9}},
	{"DarkGreen", pixel.Color{A: 0xFF, R: 0x00, G: 0x64, B: 0x00}},
	{"DarkKhaki", pixel.Color{A: 0xFF, R: 0xBD, G: 0xB7, B: 0x6B}},
	{"DarkMagenta", pixel.Color{A: 0xFF, R: 0x8B, G: 0x00, B: 0x8B}},
	{"DarkOliveGreen", pixel.Color{A: 0xFF, R: 0x55, G: 0x6B, B: 0x2F}},
	{"DarkOrange", pixel.Color{A: 0xFF, R: 0xFF, G: 0x8C, B: 0x00}},
	{"DarkOrchid", pixel.Color{A: 0xFF, R: 0x99, G: 0x32, B: 0xCC}},
	{"DarkRed", pixel.Color{A: 0xFF, R: 0x8B, G: 0x00, B: 0x00}},
	{"DarkSalmon", pixel.Color{A: 0xFF, R: 0xE9, G: 0x96, B: 0x7A}},
	{"DarkSeaGreen", pixel.Color{A: 0xFF, R: 0x8F, G: 0xBC, B: 0x8B}},
	{"DarkSlateBlue", pixel.Color{A: 0xFF, R: 0x48, G: 0x3D, B: 0x8B}},
	{"DarkSlateGray", pixel.Color{A: 0xFF, R: 0x2F, G: 0x4F, B: 0x4F}},
	{"DarkTurquoise", pixel.Color{A: 0xFF, R: 0x00, G: 0xCE, B: 0xD1}},
	{"DarkViolet", pixel.Color{A: 0xFF, R: 0x94, G: 0x00, B: 0xD3}},
	{"DeepPink", pixel.Color{A: 0xFF, R: 0xFF, G: 0x14, B: 0x93}},
	{"DeepSkyBlue", pixel.Color{A: 0xFF, R: 0x00, G: 0xBF, B: 0xFF}},
	{"DimGray", pixel.Color{A: 0xFF, R: 0x69, G: 0x69, B: 0x69}},
	{"DodgerBlue", pixel.Color{A: 0xFF, R: 0x1E, G: 0x90, B: 0xFF}},
	{"Firebrick", pixel.Color{A: 0xFF, R: 0xB2, G: 0x22, B: 0x22}},
	{"FloralWhite", pixel.Color{A: 0xFF, R: 0xFF, G: 0xFA, B: 0xF0}},
	{"ForestGreen", pixel.Color{A: 0xFF, R: 0x22, G: 0x8B, B: 0x22}},
	{"Fuchsia", pixel.Color{A: 0xFF, R: 0xFF, G: 0x00, B: 0xFF}},
	{"Gainsboro", pixel.Color{A: 0xFF, R: 0xDC, G: 0xDC, B: 0xDC}},
	{"GhostWhite", pixel.Color{A: 0xFF, R: 0xF8, G: 0xF8, B: 0xFF}},
	{"Gold", pixel.Color{A: 0xFF, R: 0xFF, G: 0xD7, B: 0x00}},
	{"Goldenrod", pixel.Color{A: 0xFF, R: 0xDA, G: 0xA5, B: 0x20}},
	{"Gray", pixel.Color{A: 0xFF, R: 0x80, G: 0x80, B: 0x80}},
	{"Green", pixel.Color{A: 0xFF, R: 0x00, G: 0x80, B: 0x00}},
	{"GreenYellow", pixel.Color{A: 0xFF, R: 0xAD, G: 0xFF, B: 0x2F}},
	{"Honeydew", pixel.Color{A: 0xFF, R: 0xF0, G: 0xFF, B: 0xF0}},
	{"HotPink", pixel.Color{A: 0xFF, R: 0xFF, G: 0x69, B: 0xB4}},
	{"IndianRed", pixel.Color{A: 0xFF, R: 0xCD, G: 0x5C, B: 0x5C}},
	{"Indigo", pixel.Color{A: 0xFF, R: 0x4B, G: 0x00, B: 0x82}},
	{"Ivory", pixel.Color{A: 0xFF, R: 0xFF, G: 0xFF, B: 0xF0}},
	{"Khaki", pixel.Color{A: 0xFF, R: 0xF0, G: 0xE6, B: 0x8C}},
	{"Lavender", pixel.Color{A: 0xFF, R: 0xE6, G: 0xE6, B: 0xFA}},
	{"LavenderBlush", pixel.Color{A: 0xFF, R: 0xFF, G: 0xF0, B: 0xF5}},
	{"LawnGreen", pixel.Color{A: 0xFF, R: 0x7C, G: 0xFC, B: 0x00}},
	{"LemonChiffon", pixel.Color{A: 0xFF, R: 0xFF, G: 0xFA, B: 0xCD}},
	{"LightBlue", pixel.Color{A: 0xFF, R: 0xAD, G: 0xD8, B: 0xE6}},
	{"LightCoral", pixel.Color{A: 0xFF, R: 0xF0, G: 0x80, B: 0x80}},
	{"LightCyan", pixel.Color{A: 0xFF, R: 0xE0, G: 0xFF, B: 0xFF}},
	{"LightGoldenrodYellow", pixel.Color{A: 0xFF, R: 0xFA, G: 0xFA, B: 0xD2}},
	{"LightGray", pixel.Color{A: 0xFF, R: 0xD3, G: 0xD3, B: 0xD3}},
	{"LightGreen", pixel.Color{A: 0xFF, R: 0x90, G: 0xEE, B: 0x90}},
	{"LightPink", pixel.Color{A: 0xFF, R: 0xFF, G: 0xB6, B: 0xC1}},
	{"LightSalmon", pixel.Color{A: 0xFF, R: 0xFF, G: 0xA0, B: 0x7A}},
	{"LightSeaGreen", pixel.Color{A: 0xFF, R: 0x20, G: 0xB2, B: 0xAA}},
	{"LightSkyBlue", pixel.Color{A: 0xFF, R: 0x87, G: 0xCE, B: 0xFA}},
	{"LightSlateGray", pixel.Color{A: 0xFF, R: 0x77, G: 0x88, B: 0x99}},
	{"LightSteelBlue", pixel.Color{A: 0xFF, R: 0xB0, G: 0xC4, B: 0xDE}},
	{"LightYellow", pixel.Color{A: 0xFF, R: 0xFF, G: 0xFF, B: 0xE0}},
	{"Lime", pixel.Color{A: 0xFF, R: 0x00, G: 0xFF, B: 0x00}},
	{"LimeGreen", pixel.Color{A: 0xFF, R: 0x32, G: 0xCD, B: 0x32}},
	{"Linen", pixel.Color{A: 0xFF, R: 0xFA, G: 0xF0, B: 0xE6}},
	{"Magenta", pixel.Color{A: 0xFF, R: 0xFF, G: 0x00, B: 0xFF}},
	{"Maroon", pixel.Color{A: 0xFF, R: 0x80, G: 0x00, B: 0x00}},
	{"MediumAquamarine", pixel.Color{A: 0xFF, R: 0x66, G: 0xCD, B: 0xAA}},
	{"MediumBlue", pixel.Color{A: 0xFF, R: 0x00, G: 0x00, B: 0xCD}},
	{"MediumOrchid", pixel.Color{A: 0xFF, R: 0xBA, G: 0x55, B: 0xD3}},
	{"MediumPurple", pixel.Color{A: 0xFF, R: 0x93, G: 0x70, B: 0xDB}},
	{"MediumSeaGreen", pixel.Color{A: 0xFF, R: 0x3C, G: 0xB3, B: 0x71}},
	{"MediumSlateBlue", pixel.Color{A: 0xFF, R: 0x7B, G: 0x68, B: 0xEE}},
	{"MediumSpringGreen", pixel.Color{A: 0xFF, R: 0x00, G: 0xFA, B: 0x9A}},
	{"MediumTurquoise", pixel.Color{A: 0xFF, R: 0x48, G: 0xD1, B: 0xCC}},
	{"MediumVioletRed", pixel.Color{A: 0xFF, R: 0xC7, G: 0x15, B: 0x85}},
	{"MidnightBlue", pixel.Color{A: 0xFF, R: 0x19, G: 0x19, B: 0x70}},
	{"MintCream", pixel.Color{A: 0xFF, R: 0xF5, G: 0xFF, B: 0xFA}},
	{"MistyRose", pixel.Color{A: 0xFF, R: 0xFF, G: 0xE4, B: 0xE1}},
	{"Moccasin", pixel.Color{A: 0xFF, R: 0xFF, G: 0xE4, B: 0xB5}},
	{"NavajoWhite", pixel.Color{A: 0xFF, R: 0xFF, G: 0xDE, B: 0xAD}},
	{"Navy", pixel.Color{A: 0xFF, R: 0x00, G: 0x00, B: 0x80}},
	{"OldLace", pixel.Color{A: 0xFF, R: 0xFD, G: 0xF5, B: 0xE6}},
	{"Olive", pixel.Color{A: 0xFF, R: 0x80, G: 0x80, B: 0x00}},
	{"OliveDrab", pixel.Color{A: 0xFF, R: 0x6B, G: 0x8E, B: 0x23}},
	{"Orange", pixel.Color{A: 0xFF, R: 0xFF, G: 0xA5, B: 0x00}},
	{"OrangeRed", pixel.Color{A: 0xFF, R: 0xFF, G: 0x45, B: 0x00}},
	{"Orchid", pixel.Color{A: 0xFF, R: 0xDA, G: 0x70, B: 0xD6}},
	{"PaleGoldenrod", pixel.Color{A: 0xFF, R: 0xEE, G: 0xE8, B: 0xAA}},
	{"PaleGreen", pixel.Color{A: 0xFF, R: 0x98, G: 0xFB, B: 0x98}},
	{"PaleTurquoise", pixel.Color{A: 0xFF, R: 0xAF, G: 0xEE, B: 0xEE}},
	{"PaleVioletRed", pixel.Color{A: 0xFF, R: 0xDB, G: 0x70, B: 0x93}},
	{"PapayaWhip", pixel.Color{A: 0xFF, R: 0xFF, G: 0xEF, B: 0xD5}},
	{"PeachPuff", pixel.Color{A: 0xFF, R: 0xFF, G: 0xDA, B: 0xB9}},
	{"Peru", pixel.Color{A: 0xFF, R: 0xCD, G: 0x85, B: 0x3F}},
	{"Pink", pixel.Color{A: 0xFF, R: 0xFF, G: 0xC0, B: 0xCB}},
	{"Plum", pixel.Color{A: 0xFF, R: 0xDD, G: 0xA0, B: 0xDD}},
	{"PowderBlue", pixel.Color{A: 0xFF, R: 0xB0, G: 0xE0, B: 0xE6}},
	{"Purple", pixel.Color{A: 0xFF, R: 0x80, G: 0x00, B: 0x80}},
	{"RebeccaPurple", pixel.Color{A: 0xFF, R: 0x66, G: 0x33, B: 0x99}},
	{"Red", pixel.Color{A: 0xFF, R: 0xFF, G: 0x00, B: 0x00}},
	{"RosyBrown", pixel.Color{A: 0xFF, R: 0xBC, G: 0x8F, B: 0x8F}},
	{"RoyalBlue", pixel.Color{A: 0xFF, R: 0x41, G: 0x69, B: 0xE1}},
	{"SaddleBrown", pixel.Color{A: 0xFF, R: 0x8B, G: 0x45, B: 0x13}},
	{"Salmon", pixel.Color{A: 0xFF, R: 0xFA, G: 0x80, B: 0x72}},
	{"SandyBrown", pixel.Color{A: 0xFF, R: 0xF4, G: 0xA4, B: 0x60}},
	{"SeaGreen", pixel.Color{A: 0xFF, R: 0x2E, G: 0x8B, B: 0x57}},
	{"SeaShell", pixel.Color{A: 0xFF, R: 0xFF, G: 0xF5, B: 0xEE}},
	{"Sienna", pixel.Color{A: 0xFF, R: 0xA0, G: 0x52, B: 0x2D}},
	{"Silver", pixel.Color{A: 0xFF, R: 0xC0, G: 0xC0, B: 0xC0}},
	{"SkyBlue", pixel.Color{A: 0xFF, R: 0x87, G: 0xCE, B: 0xEB}},
	{"SlateBlue", pixel.Color{A: 0xFF, R: 0x6A, G: 0x5A, B: 0xCD}},
	{"SlateGray", pixel.Color{A: 0xFF, R: 0x70, G: 0x80, B: 0x90}},
	{"Snow", pixel.Color{A: 0xFF, R: 0xFF, G: 0xFA, B: 0xFA}},
	{"SpringGreen", pixel.Color{A: 0xFF, R: 0x00, G: 0xFF, B: 0x7F}},
	{"SteelBlue", pixel.Color{A: 0xFF, R: 0x46, G: 0x82, B: 0xB4}},
	{"Tan", pixel.Color{A: 0xFF, R: 0xD2, G: 0xB4, B: 0x8C}},
	{"Teal", pixel.Color{A: 0xFF, R: 0x00, G: 0x80, B: 0x80}},
	{"Thistle", pixel.Color{A: 0xFF, R: 0xD8, G: 0xBF, B: 0xD8}},
	{"Tomato", pixel.Color{A: 0xFF, R: 0xFF, G: 0x63, B: 0x47}},
	{"Transparent", pixel.Color{A: 0x00, R: 0xFF, G: 0xFF, B: 0xFF}},
	{"Turquoise", pixel.Color{A: 0xFF, R: 0x40, G: 0xE0, B: 0xD0}},
	{"Violet", pixel.Color{A: 0xFF, R: 0xEE, G: 0x82, B: 0xEE}},
	{"Wheat", pixel.Color{A: 0xFF, R: 0xF5, G: 0xDE, B: 0xB3}},
	{"White", pixel.Color{A: 0xFF, R: 0xFF, G: 0xFF, B: 0xFF}},
	{"WhiteSmoke", pixel.Color{A: 0xFF, R: 0xF5, G: 0xF5, B: 0xF5}},
	{"Yellow", pixel.Color{A: 0xFF, R: 0xFF, G: 0xFF, B: 0x00}},
	{"YellowGreen", pixel.Color{A: 0xFF, R: 0x9A, G: 0xCD, B: 0x32}},
}
