// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Answerer endpoints: POST /game/new, POST /game/guess — the server
//     holds the hidden hand and scores client guesses.
//   - Guesser endpoints: POST /assist/new, POST /assist/next — the client
//     holds the hidden hand and relays feedback signatures.
//   - Debug endpoint for candidate-universe sizes.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - All sessions live in the in-memory store; nothing is persisted.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"cardguess/internal/deck"
	"cardguess/internal/game"
	"cardguess/internal/solver"
	"cardguess/internal/store"
)

// Server bundles the router and the in-memory session store.
type Server struct {
	r     *chi.Mux
	store store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"cardguess","endpoints":["/health","POST /game/new","POST /game/guess","POST /assist/new","POST /assist/next"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/assist/new", s.handleNewAssist)
	s.r.Post("/assist/next", s.handleAssistNext)

	// Debug: candidate-universe size per hand size
	s.r.Get("/debug/space", func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(r.URL.Query().Get("size"))
		if err != nil || n < 2 || n > 4 {
			http.Error(w, `{"error":"invalid_size"}`, http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"size": n, "hands": solver.SpaceSize(n)})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Size   int    `json:"size"`
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Size   int    `json:"size"`
}

// handleNewGame creates a new answerer session; the hidden hand stays
// server-side and is never echoed back.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := game.New(req.Size, req.Answer)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.SaveGame(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Size: len(g.Answer)})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"` // e.g. "2C 3H 4D"
}
type guessRes struct {
	Feedback solver.Feedback `json:"feedback"`
	State    string          `json:"state"` // "playing" | "won"
}

// handleGuess scores a guess against an answerer session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.GetGame(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	cards, err := deck.ParseHand(req.Guess)
	if err != nil {
		http.Error(w, `{"error":"invalid_selection"}`, http.StatusBadRequest)
		return
	}
	fb, state, err := g.ApplyGuess(solver.Hand(cards))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.SaveGame(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(guessRes{Feedback: fb, State: state})
}

// ----------------------------- ASSIST --------------------------------------

// assistNewReq/Res payloads for POST /assist/new.
type assistNewReq struct {
	Size int `json:"size"`
}
type assistNewRes struct {
	AssistID string `json:"assistId"`
	Guess    string `json:"guess"`
}

// handleNewAssist creates a guesser session and returns its opening guess.
func (s *Server) handleNewAssist(w http.ResponseWriter, r *http.Request) {
	var req assistNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	a, err := game.NewAssist(req.Size)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.SaveAssist(r.Context(), a); err != nil {
		log.Error().Err(err).Msg("save assist")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(assistNewRes{AssistID: a.ID, Guess: a.Guesser.Guess.String()})
}

// assistNextReq/Res payloads for POST /assist/next. Feedback order is
// (correctCards, lowerRanks, correctRanks, higherRanks, correctSuits).
type assistNextReq struct {
	AssistID string `json:"assistId"`
	Feedback [5]int `json:"feedback"`
}
type assistNextRes struct {
	Guess      string `json:"guess"`
	Candidates int    `json:"candidates"`
	Rounds     int    `json:"rounds"`
	State      string `json:"state"` // "guessing" | "solved"
}

// handleAssistNext advances a guesser session by one feedback signature.
func (s *Server) handleAssistNext(w http.ResponseWriter, r *http.Request) {
	var req assistNextReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	a, err := s.store.GetAssist(r.Context(), req.AssistID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	fb := solver.Feedback{
		CorrectCards: req.Feedback[0],
		LowerRanks:   req.Feedback[1],
		CorrectRanks: req.Feedback[2],
		HigherRanks:  req.Feedback[3],
		CorrectSuits: req.Feedback[4],
	}
	guess, state, err := a.Next(fb)
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			// Inconsistent feedback stream; the session cannot continue.
			log.Warn().Str("assistId", a.ID).Msg("candidate space exhausted")
			http.Error(w, `{"error":"inconsistent_feedback"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.SaveAssist(r.Context(), a); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(assistNextRes{
		Guess:      guess.String(),
		Candidates: len(a.Guesser.Candidates),
		Rounds:     a.Rounds,
		State:      state,
	})
}
