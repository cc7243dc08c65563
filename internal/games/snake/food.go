package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// FoodColor is the fixed color tag of the food cell.
const FoodColor = core.ColorBlue

// Food is the single food item on the board. It is never removed, only
// moved to a new random cell when eaten.
type Food struct {
	cell core.Cell
}

// NewFood places food at the given cell.
func NewFood(cell core.Cell) Food {
	return Food{cell: cell}
}

// Cell returns the food position.
func (f Food) Cell() core.Cell {
	return f.cell
}

// Relocate moves the food to a fresh random cell.
// The snake's body is not excluded; food may land under it.
func (f *Food) Relocate(rng core.RNG, w, h int) {
	f.cell = core.RandomCell(rng, w, h)
}

// Hint returns what the renderer needs to draw the food.
func (f Food) Hint() RenderHint {
	return RenderHint{Cell: f.cell, Color: FoodColor}
}
