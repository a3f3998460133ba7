package fen

// StartingPosition is the standard 8x8 opening arrangement.
const StartingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Demo is a named board text for the position picker.
type Demo struct {
	Name string
	Text string
}

// Demos lists the built-in positions. Several are deliberately short or
// sparse to show rank and board padding.
var Demos = []Demo{
	{Name: "Starting position", Text: StartingPosition},
	{Name: "Starting position, blank middle ranks", Text: "rnbqkbnr/pppppppp/////PPPPPPPP/RNBQKBNR"},
	{Name: "Immortal Game, final position", Text: "r1b1k1nr/p2p1pNp/n2B4/1p1NP2P/6P1/3P1Q2/P1P1K3/q5b1"},
	{Name: "Pawn endgame", Text: "8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8"},
	{Name: "Empty board", Text: "///////"},
	{Name: "Scattered pieces", Text: "b/r5n//q2k//Q2K/R5N/B6B"},
}
