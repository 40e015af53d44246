package layout

// Default returns the classic English 11x10 face. Reading order of
// the placements follows phrase order, which FindWords relies on: IT
// IS, the minute words, PAST or TO, the hour words, OCLOCK. AM and
// PM share the top row.
func Default() *Layout {
	return &Layout{
		Rows: 10,
		Cols: 11,
		Words: []Word{
			{Text: "IT", Row: 0, Col: 0},
			{Text: "IS", Row: 0, Col: 3},
			{Text: "AM", Row: 0, Col: 7},
			{Text: "PM", Row: 0, Col: 9},
			{Text: "A", Row: 1, Col: 0},
			{Text: "QUARTER", Row: 1, Col: 2},
			{Text: "TWENTY", Row: 2, Col: 0},
			{Text: "FIVE", Row: 2, Col: 6},
			{Text: "HALF", Row: 3, Col: 0},
			{Text: "TEN", Row: 3, Col: 5},
			{Text: "TO", Row: 3, Col: 9},
			{Text: "PAST", Row: 4, Col: 0},
			{Text: "NINE", Row: 4, Col: 7},
			{Text: "ONE", Row: 5, Col: 0},
			{Text: "SIX", Row: 5, Col: 3},
			{Text: "THREE", Row: 5, Col: 6},
			{Text: "FOUR", Row: 6, Col: 0},
			{Text: "FIVE", Row: 6, Col: 4},
			{Text: "TWO", Row: 6, Col: 8},
			{Text: "EIGHT", Row: 7, Col: 0},
			{Text: "ELEVEN", Row: 7, Col: 5},
			{Text: "SEVEN", Row: 8, Col: 0},
			{Text: "TWELVE", Row: 8, Col: 5},
			{Text: "TEN", Row: 9, Col: 0},
			{Text: "OCLOCK", Row: 9, Col: 5},
		},
		Filler: "LASCDCXSFERUSE",
	}
}
