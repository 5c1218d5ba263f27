package parser

import "github.com/JesusMj16/Compilador/token"

// Error is the single diagnostic a parse can fail with: a position and a
// message drawn from a fixed set ("expected ';'", "expression expected",
// and similar). There is no panic-mode recovery, so a parse never
// accumulates more than one.
type Error struct {
	Pos token.Position
	Msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}
