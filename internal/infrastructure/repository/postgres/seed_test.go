package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/infrastructure/repository/memory"
)

var seedTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func testSeed() memory.Seed {
	return memory.DefaultSeed(demon.Thresholds{ListSize: 2, ExtendedListSize: 4}, seedTime)
}

func countDemons(t *testing.T, tx txn.Manager) (ranked int, events int) {
	t.Helper()

	err := tx.Read(context.Background(), func(ctx context.Context, repos txn.Repositories) error {
		items, err := repos.Demons.ListRanked(ctx)
		if err != nil {
			return err
		}
		log, err := repos.History.ListUntil(ctx, time.Now())
		if err != nil {
			return err
		}
		ranked, events = len(items), len(log)
		return nil
	})
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	return ranked, events
}

func TestBootstrapSeedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.Seed{})

	seeded, err := BootstrapSeed(ctx, store, testSeed())
	if err != nil || !seeded {
		t.Fatalf("first bootstrap: seeded=%v err=%v", seeded, err)
	}
	ranked, events := countDemons(t, store)
	if ranked != 5 || events != 5 {
		t.Fatalf("unexpected seeded state: ranked=%d events=%d", ranked, events)
	}

	seeded, err = BootstrapSeed(ctx, store, testSeed())
	if err != nil || seeded {
		t.Fatalf("second bootstrap: seeded=%v err=%v", seeded, err)
	}
	if r, e := countDemons(t, store); r != ranked || e != events {
		t.Fatalf("second bootstrap changed the list: ranked=%d events=%d", r, e)
	}
}

func TestBootstrapSeedSkipsEmptiedList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.Seed{})
	if _, err := BootstrapSeed(ctx, store, testSeed()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	// Unrank every demon, leaving MaxPosition at 0 but history in place.
	err := store.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		items, err := repos.Demons.ListRanked(ctx)
		if err != nil {
			return err
		}
		for _, d := range items {
			if err := repos.Demons.SetPosition(ctx, d.ID, 0); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unrank demons: %v", err)
	}

	seeded, err := BootstrapSeed(ctx, store, testSeed())
	if err != nil || seeded {
		t.Fatalf("expected emptied list to stay empty: seeded=%v err=%v", seeded, err)
	}
	if ranked, events := countDemons(t, store); ranked != 0 || events != 5 {
		t.Fatalf("unexpected state after reseed attempt: ranked=%d events=%d", ranked, events)
	}
}

func TestBootstrapSeedKeepsExistingPlayerFlags(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.Seed{
		Players: []player.Player{{ID: 1, Name: "Riot", Banned: true, LinkBanned: true}},
	})

	if _, err := BootstrapSeed(ctx, store, testSeed()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	err := store.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		riot, ok, err := repos.Players.GetByName(ctx, "Riot")
		if err != nil {
			return err
		}
		if !ok || !riot.Banned || !riot.LinkBanned {
			t.Fatalf("expected Riot to stay banned, got %+v (found=%v)", riot, ok)
		}
		if riot.Nationality != "" {
			t.Fatalf("expected Riot's nationality untouched, got %q", riot.Nationality)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("read players: %v", err)
	}
}
