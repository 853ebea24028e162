package model

import "errors"

var (
	// ErrParameters indicates a parameter vector whose length or values do
	// not fit the model family.
	ErrParameters = errors.New("model: invalid parameters")
	// ErrUnknownFamily indicates a family name or formula number that is
	// not recognised.
	ErrUnknownFamily = errors.New("model: unknown model family")
	// ErrUnknownOutput indicates an output name that is not recognised.
	ErrUnknownOutput = errors.New("model: unknown output")
)
