package sheet

import "github.com/akyairhashvil/eclb/internal/models"

// Slot is where one label lands: the sheet, the sticker's row and column,
// and the label's position within the sticker, counted left to right.
type Slot struct {
	Sheet int
	Row   int
	Col   int
	Index int
}

// Rect is an axis-aligned box in inches, origin at the sheet's top left.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64 { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Bounds returns the sticker rectangle at row, col.
func Bounds(t models.Template, row, col int) Rect {
	x := t.LeftMargin + float64(col)*(t.LabelWidth+t.MiddlePadding)
	y := t.UpperMargin + float64(row)*t.LabelHeight
	return Rect{X0: x, Y0: y, X1: x + t.LabelWidth, Y1: y + t.LabelHeight}
}

// PerSheet is the number of labels one sheet holds.
func PerSheet(t models.Template, perSticker int) int {
	return t.Stickers() * max(perSticker, 1)
}

// SheetCount returns how many sheets n labels need.
func SheetCount(n int, t models.Template, perSticker int) int {
	per := PerSheet(t, perSticker)
	if n <= 0 || per <= 0 {
		return 0
	}
	return (n + per - 1) / per
}

// Fill reports how much of the last sheet n labels occupy, in (0, 1].
// Zero labels fill nothing.
func Fill(n int, t models.Template, perSticker int) float64 {
	per := PerSheet(t, perSticker)
	if n <= 0 || per <= 0 {
		return 0
	}
	used := n % per
	if used == 0 {
		return 1
	}
	return float64(used) / float64(per)
}

// Plan assigns a slot to each of n labels. Stickers fill row by row, left to
// right, and each sticker takes perSticker labels before the next one starts.
func Plan(n int, t models.Template, perSticker int) []Slot {
	perSticker = max(perSticker, 1)
	per := PerSheet(t, perSticker)
	if n <= 0 || per <= 0 {
		return nil
	}
	slots := make([]Slot, 0, n)
	var cur Slot
	for range n {
		slots = append(slots, cur)
		cur.Index++
		if cur.Index < perSticker {
			continue
		}
		cur.Index = 0
		cur.Col++
		if cur.Col < t.Cols {
			continue
		}
		cur.Col = 0
		cur.Row++
		if cur.Row < t.Rows {
			continue
		}
		cur.Row = 0
		cur.Sheet++
	}
	return slots
}

// Center returns the horizontal center of the label at index within a
// sticker split into perSticker equal sections.
func Center(r Rect, index, perSticker int) float64 {
	section := r.Width() / float64(perSticker*2)
	return r.X0 + section + float64(index)*section*2
}
