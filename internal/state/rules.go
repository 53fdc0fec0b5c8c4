package state

import (
	"fmt"
)

// Group returns the connected group (4-neighbors, same color) containing pos, in the
// order it was discovered. It returns nil if pos is empty.
func (b *Board) Group(pos Pos) []Pos {
	stone := b.At(pos)
	if stone == Empty {
		return nil
	}
	visited := make([]bool, len(b.cells))
	return b.floodFill(pos, stone, visited)
}

// floodFill collects the group of the given stone color around start, marking visited.
func (b *Board) floodFill(start Pos, stone Stone, visited []bool) []Pos {
	group := []Pos{start}
	visited[b.index(start)] = true
	for next := 0; next < len(group); next++ {
		for _, neighbor := range b.Neighbors(group[next]) {
			idx := b.index(neighbor)
			if visited[idx] || b.cells[idx] != stone {
				continue
			}
			visited[idx] = true
			group = append(group, neighbor)
		}
	}
	return group
}

// Groups returns all the connected groups of the given color, in row-major order of
// their first stone.
func (b *Board) Groups(stone Stone) (groups [][]Pos) {
	visited := make([]bool, len(b.cells))
	for idx, s := range b.cells {
		if s != stone || visited[idx] {
			continue
		}
		groups = append(groups, b.floodFill(b.posOf(idx), stone, visited))
	}
	return
}

// GroupLiberties returns the number of distinct empty points adjacent to the group.
// A liberty shared by several stones of the group is counted once.
func (b *Board) GroupLiberties(group []Pos) int {
	seen := make([]bool, len(b.cells))
	liberties := 0
	for _, pos := range group {
		for _, neighbor := range b.Neighbors(pos) {
			idx := b.index(neighbor)
			if b.cells[idx] == Empty && !seen[idx] {
				seen[idx] = true
				liberties++
			}
		}
	}
	return liberties
}

// hasLiberty is a faster version of GroupLiberties(group) > 0.
func (b *Board) hasLiberty(group []Pos) bool {
	for _, pos := range group {
		for _, neighbor := range b.Neighbors(pos) {
			if b.At(neighbor) == Empty {
				return true
			}
		}
	}
	return false
}

// Place returns a copy of the board with a stone of the given player placed at pos.
// It doesn't resolve captures nor check legality.
func (b *Board) Place(pos Pos, player Stone) *Board {
	newB := b.Clone()
	newB.cells[newB.index(pos)] = player
	return newB
}

// ResolveCaptures returns a copy of the board with all groups of the given color that
// have no liberties removed, and the number of stones removed.
func (b *Board) ResolveCaptures(stone Stone) (newB *Board, captured int) {
	newB = b.Clone()
	captured = newB.removeDead(stone)
	return
}

// removeDead removes in place the groups of stone without liberties.
func (b *Board) removeDead(stone Stone) (captured int) {
	var dead []Pos
	for _, group := range b.Groups(stone) {
		if !b.hasLiberty(group) {
			dead = append(dead, group...)
		}
	}
	for _, pos := range dead {
		b.cells[b.index(pos)] = Empty
	}
	return len(dead)
}

// Simulate returns the board after player takes the action: the stone is placed and the
// opponent's dead groups are removed. The previous position is recorded for the KO rule,
// and NextPlayer is set to the opponent of player. MoveNumber is not changed.
//
// It doesn't check legality, see IsLegal.
func (b *Board) Simulate(action Action, player Stone) *Board {
	newB, _ := b.simulate(action, player)
	return newB
}

func (b *Board) simulate(action Action, player Stone) (newB *Board, captured int) {
	newB = b.Clone()
	newB.previous = b.cells
	newB.NextPlayer = player.Opponent()
	if action.IsPass() {
		return
	}
	newB.cells[newB.index(action.Pos)] = player
	captured = newB.removeDead(player.Opponent())
	return
}

// IsLegal returns whether player can place a stone at pos: it must be empty, the
// placed stone's group must have a liberty after the captures (no suicide) and,
// if stones were captured, the result must not repeat the previous position (KO).
func (b *Board) IsLegal(pos Pos, player Stone) bool {
	if !b.InBounds(pos.Row(), pos.Col()) || b.At(pos) != Empty {
		return false
	}
	newB, captured := b.simulate(Action{Pos: pos}, player)
	if !newB.hasLiberty(newB.Group(pos)) {
		return false
	}
	if captured > 0 && b.PreviousIs(newB) {
		// KO.
		return false
	}
	return true
}

// LegalMoves returns the placements available to player, in row-major order.
// PassAction is always legal and it's not included.
func (b *Board) LegalMoves(player Stone) []Action {
	actions := make([]Action, 0, len(b.cells))
	for idx, s := range b.cells {
		if s != Empty {
			continue
		}
		pos := b.posOf(idx)
		if b.IsLegal(pos, player) {
			actions = append(actions, Action{Pos: pos})
		}
	}
	return actions
}

// IsValid returns whether NextPlayer can take the action.
func (b *Board) IsValid(action Action) bool {
	if action.IsPass() {
		return true
	}
	return b.IsLegal(action.Pos, b.NextPlayer)
}

// Act returns the board after NextPlayer takes the action: it simulates it, advances
// MoveNumber and hands the turn to the opponent.
func (b *Board) Act(action Action) *Board {
	newB := b.Simulate(action, b.NextPlayer)
	newB.MoveNumber = b.MoveNumber + 1
	if action.IsPass() {
		newB.passes = b.passes + 1
	} else {
		newB.passes = 0
	}
	return newB
}

// IsFinished returns whether the match is over: both players passed in sequence or the
// maximum number of moves was reached.
func (b *Board) IsFinished() bool {
	return b.passes >= 2 || b.MoveNumber >= b.MaxMoves
}

// FinishReason returns a human-readable reason for the end of the match.
func (b *Board) FinishReason() string {
	switch {
	case !b.IsFinished():
		return "game not finished yet"
	case b.passes >= 2:
		return "both players passed"
	default:
		return fmt.Sprintf("max number of moves %d was reached", b.MaxMoves)
	}
}

// Score returns the number of stones of the player on the board, plus Komi for White.
func (b *Board) Score(player Stone) float32 {
	score := float32(b.Count(player))
	if player == White {
		score += b.Komi
	}
	return score
}

// Winner returns the player with the highest score, or Empty if it is a tie.
// It doesn't check whether the match is finished.
func (b *Board) Winner() Stone {
	black, white := b.Score(Black), b.Score(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
