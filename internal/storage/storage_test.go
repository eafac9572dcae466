package storage

import (
	"errors"
	"testing"

	"github.com/mdeclerk/WebChess/internal/testutil"
)

func openTestStore(t *testing.T) *Storage {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestSaveAndLoadGame(t *testing.T) {
	store := openTestStore(t)

	game := &SavedGame{
		ID:    "g1",
		FEN:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		Moves: []string{"e2e4"},
	}
	testutil.AssertNoError(t, store.SaveGame(game), "SaveGame")

	loaded, err := store.LoadGame("g1")
	testutil.AssertNoError(t, err, "LoadGame")
	if loaded.FEN != game.FEN {
		t.Errorf("FEN = %q, want %q", loaded.FEN, game.FEN)
	}
	testutil.AssertEqual(t, loaded.Moves, game.Moves, "moves")
	if loaded.SavedAt.IsZero() {
		t.Error("SavedAt not stamped")
	}
}

func TestLoadMissingGame(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadGame("nope")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("err = %v, want ErrGameNotFound", err)
	}
}

func TestSaveGameRequiresID(t *testing.T) {
	store := openTestStore(t)
	testutil.AssertError(t, store.SaveGame(&SavedGame{FEN: "x"}), "empty id")
}

func TestListAndDeleteGames(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		game := &SavedGame{ID: id, FEN: "8/8/8/8/8/8/8/8 w - - 0 1"}
		testutil.AssertNoError(t, store.SaveGame(game), "SaveGame "+id)
	}

	ids, err := store.ListGames()
	testutil.AssertNoError(t, err, "ListGames")
	testutil.AssertEqual(t, ids, []string{"a", "b", "c"}, "ids")

	testutil.AssertNoError(t, store.DeleteGame("b"), "DeleteGame")
	testutil.AssertNoError(t, store.DeleteGame("missing"), "DeleteGame missing id")

	ids, err = store.ListGames()
	testutil.AssertNoError(t, err, "ListGames after delete")
	testutil.AssertEqual(t, ids, []string{"a", "c"}, "ids after delete")
}

func TestRecordSearchAccumulates(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.LoadStats()
	testutil.AssertNoError(t, err, "LoadStats empty")
	if stats.SearchesRun != 0 || stats.NodesSearched != 0 {
		t.Errorf("fresh stats = %+v, want zeroes", stats)
	}

	testutil.AssertNoError(t, store.RecordSearch(20), "RecordSearch")
	testutil.AssertNoError(t, store.RecordSearch(400), "RecordSearch")

	stats, err = store.LoadStats()
	testutil.AssertNoError(t, err, "LoadStats")
	if stats.SearchesRun != 2 {
		t.Errorf("SearchesRun = %d, want 2", stats.SearchesRun)
	}
	if stats.NodesSearched != 420 {
		t.Errorf("NodesSearched = %d, want 420", stats.NodesSearched)
	}
}
