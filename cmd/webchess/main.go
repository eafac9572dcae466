// webchess analyzes chess positions: it validates and applies moves or
// searches for the best move with the built-in engine, and can record
// games in a local store.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mdeclerk/WebChess/internal/board"
	"github.com/mdeclerk/WebChess/internal/engine"
	"github.com/mdeclerk/WebChess/internal/storage"
)

var (
	fenFlag   = flag.String("fen", board.StartFEN, "position to analyze, as a FEN record")
	depthFlag = flag.Int("depth", 2, "search depth in plies (clamped to 1-4)")
	moveFlag  = flag.String("move", "", "apply this move (e.g. e2e4) instead of searching")
	dbFlag    = flag.String("db", "", "database directory; when set, searches and snapshots are recorded")
	gameFlag  = flag.String("game", "", "game id for the saved snapshot (uses the platform data dir unless -db is set)")
	probFlag  = flag.Bool("win-prob", false, "also print the score as a White-win probability")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	state, err := board.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid position")
	}

	dir := *dbFlag
	if dir == "" && *gameFlag != "" {
		dir, err = storage.DefaultDir()
		if err != nil {
			log.Fatal().Err(err).Msg("resolve data dir")
		}
	}

	var store *storage.Storage
	if dir != "" {
		store, err = storage.Open(dir)
		if err != nil {
			log.Fatal().Err(err).Msg("open store")
		}
		defer store.Close()
	}

	if *moveFlag != "" {
		applyMove(log, store, state, *moveFlag)
		return
	}
	search(log, store, state, *depthFlag, *probFlag)
}

// applyMove validates and plays a single move, printing the resulting
// position.
func applyMove(log zerolog.Logger, store *storage.Storage, state board.State, moveStr string) {
	move, err := board.ParseMove(moveStr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid move")
	}

	res, reason := state.Apply(move)
	if reason != board.ReasonOK {
		log.Fatal().Str("move", move.String()).Str("reason", string(reason)).Msg("illegal move")
	}

	ev := log.Info().
		Str("move", move.LAN(res.Promotion)).
		Str("fen", state.FEN())
	if res.Capture.IsValid() {
		ev = ev.Str("capture", res.Capture.String())
	}
	if res.RookFrom.IsValid() {
		ev = ev.Str("castle", res.RookFrom.String()+res.RookTo.String())
	}
	ev.Msg("move applied")

	saveSnapshot(log, store, &state, []string{move.LAN(res.Promotion)})
}

// search runs the engine and prints the chosen move.
func search(log zerolog.Logger, store *storage.Storage, state board.State, depth int, winProb bool) {
	depth = engine.ClampDepth(depth)

	start := time.Now()
	move, info := engine.SearchBestMove(state, depth)
	elapsed := time.Since(start)

	if info.NoLegalMoves {
		outcome := "stalemate"
		if board.IsInCheck(&state.Board, state.Turn) {
			outcome = "checkmate"
		}
		log.Info().
			Str("outcome", outcome).
			Int("score", info.Score).
			Msg("no legal moves")
		return
	}

	ev := log.Info().
		Str("move", move.String()).
		Int("depth", info.Depth).
		Int("nodes", info.Nodes).
		Int("score", info.Score).
		Dur("elapsed", elapsed)
	if winProb {
		ev = ev.Float64("win_prob", engine.WinProbability(info.Score))
	}
	ev.Msg("best move")

	if store != nil {
		if err := store.RecordSearch(info.Nodes); err != nil {
			log.Warn().Err(err).Msg("record search")
		}
	}

	if _, reason := state.Apply(move); reason != board.ReasonOK {
		log.Fatal().Str("reason", string(reason)).Msg("apply chosen move")
	}
	log.Info().Str("fen", state.FEN()).Msg("position after move")

	saveSnapshot(log, store, &state, []string{move.String()})
}

// saveSnapshot persists the position when a store and game id are set.
func saveSnapshot(log zerolog.Logger, store *storage.Storage, state *board.State, moves []string) {
	if store == nil || *gameFlag == "" {
		return
	}
	game := &storage.SavedGame{
		ID:    *gameFlag,
		FEN:   state.FEN(),
		Moves: moves,
	}
	if err := store.SaveGame(game); err != nil {
		log.Warn().Err(err).Msg("save game")
		return
	}
	log.Info().Str("game", game.ID).Msg("snapshot saved")
}
