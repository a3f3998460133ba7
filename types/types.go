// Package types contains shared data structures for termchess-local.
package types

import "unicode"

// Side is one of the two players.
// First plays the uppercase pieces and advances toward row 0.
type Side int

const (
	First Side = iota
	Second
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == First {
		return Second
	}
	return First
}

func (s Side) String() string {
	if s == First {
		return "Light"
	}
	return "Dark"
}

// PieceKind identifies how a piece moves.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// AllKinds lists every kind in encoding order.
var AllKinds = []PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Letter returns the lowercase letter used for the kind in board text.
func (k PieceKind) Letter() rune {
	switch k {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return '?'
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "unknown"
}

// Piece is an immutable (kind, side) pair.
type Piece struct {
	Kind PieceKind
	Side Side
}

// PieceFromRune decodes one board-text letter. Uppercase letters belong to
// First, lowercase to Second. ok is false for anything else.
func PieceFromRune(r rune) (p Piece, ok bool) {
	if !unicode.IsLetter(r) {
		return Piece{}, false
	}
	side := Second
	if unicode.IsUpper(r) {
		side = First
	}
	switch unicode.ToLower(r) {
	case 'p':
		return Piece{Pawn, side}, true
	case 'n':
		return Piece{Knight, side}, true
	case 'b':
		return Piece{Bishop, side}, true
	case 'r':
		return Piece{Rook, side}, true
	case 'q':
		return Piece{Queen, side}, true
	case 'k':
		return Piece{King, side}, true
	}
	return Piece{}, false
}

// Rune returns the board-text letter for the piece.
func (p Piece) Rune() rune {
	r := p.Kind.Letter()
	if p.Side == First {
		return unicode.ToUpper(r)
	}
	return r
}

// Value returns the material value of the piece, negative for Second.
func (p Piece) Value() int {
	v := 0
	switch p.Kind {
	case Pawn:
		v = 1
	case Knight, Bishop:
		v = 3
	case Rook:
		v = 5
	case Queen:
		v = 8
	case King:
		v = 10
	}
	if p.Side == Second {
		return -v
	}
	return v
}

// Square holds an optional piece. The zero value is an empty square.
type Square struct {
	piece    Piece
	occupied bool
}

// Empty returns an empty square.
func Empty() Square {
	return Square{}
}

// Occupied returns a square holding p.
func Occupied(p Piece) Square {
	return Square{piece: p, occupied: true}
}

// Piece returns the occupant and whether there is one.
func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

// IsEmpty returns true if no piece stands on the square.
func (s Square) IsEmpty() bool {
	return !s.occupied
}

// GameState is the caller-owned state passed into move application.
type GameState struct {
	Turn Side
	// EnforceTurn rejects moves of pieces not belonging to Turn.
	// Off by default: any piece may be moved and the turn still flips.
	EnforceTurn bool
}

// NewGameState returns a state with First to move.
func NewGameState(enforceTurn bool) *GameState {
	return &GameState{Turn: First, EnforceTurn: enforceTurn}
}

// SwitchTurn hands the move to the other side.
func (g *GameState) SwitchTurn() {
	g.Turn = g.Turn.Other()
}
