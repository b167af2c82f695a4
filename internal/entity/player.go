package entity

// FirstPlayer always opens the game.
const FirstPlayer = CellX

// NextPlayer - returns the marker that moves after player.
func NextPlayer(player Cell) Cell {
	if player == CellX {
		return CellO
	}
	return CellX
}

// IsPlayer reports whether cell is a player marker rather than an empty cell.
func IsPlayer(cell Cell) bool {
	return cell == CellX || cell == CellO
}
