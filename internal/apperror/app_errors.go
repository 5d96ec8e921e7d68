package apperror

import "errors"

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidCell     = errors.New("invalid cell")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrNoActiveGame    = errors.New("no active game")
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidRecord   = errors.New("invalid record")
)
