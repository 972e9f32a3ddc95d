// internal/game/types.go
//
// Core type definitions for game sessions.
// Defines:
//   - Game: an answerer-side session holding the hidden hand.
//   - Assist: a guesser-side session wrapping the solver for callers that
//     hold the answer themselves and only relay feedback.

package game

import "cardguess/internal/solver"

// Game holds the state of a single session where the engine is the
// answerer: it keeps the hidden hand and scores incoming guesses.
type Game struct {
	ID       string      // Unique session identifier (random hex string).
	Answer   solver.Hand // The hidden hand (2-4 distinct cards).
	Guesses  int         // Number of guesses scored so far.
	Finished bool        // True once the hand has been guessed exactly.
	Won      bool        // Mirrors Finished; there is no losing state.
}

// Assist holds the state of a session where the engine is the guesser.
// The caller scores each guess against their own hidden hand and feeds the
// signature back through Next.
type Assist struct {
	ID      string
	Guesser *solver.Guesser
	Rounds  int  // Guesses proposed so far, the initial guess included.
	Done    bool // True once feedback reported an exact match.
}
