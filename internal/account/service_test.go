package account

import (
	"context"
	"encoding/json"
	"testing"

	"offr-backend/internal/profiles"
	"offr-backend/internal/tracker"
)

func TestClaimGuestMovesEverything(t *testing.T) {
	ctx := context.Background()
	profileRepo := profiles.NewMemoryRepo()
	trackerRepo := tracker.NewMemoryRepo()
	svc := NewService(profileRepo, trackerRepo)

	if err := profileRepo.Upsert(ctx, profiles.Profile{UserID: "guest:g1", Curriculum: "IB"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	for i, course := range []string{"ucl-cs", "lse-economics"} {
		entry := tracker.Entry{
			ID:       string(rune('a' + i)),
			UserID:   "guest:g1",
			CourseID: course,
			Snapshot: json.RawMessage(`{}`),
		}
		if err := trackerRepo.Insert(ctx, entry); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	result, err := svc.ClaimGuest(ctx, "guest:g1", "u1")
	if err != nil {
		t.Fatalf("ClaimGuest: %v", err)
	}
	if !result.MigratedProfile || result.MigratedTrackerEntries != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}

	if _, err := profileRepo.Get(ctx, "u1"); err != nil {
		t.Fatalf("expected migrated profile: %v", err)
	}
	entries, _ := trackerRepo.ListByUser(ctx, "u1")
	if len(entries) != 2 {
		t.Fatalf("expected migrated tracker entries, got %d", len(entries))
	}
}

func TestClaimGuestIsIdempotent(t *testing.T) {
	ctx := context.Background()
	profileRepo := profiles.NewMemoryRepo()
	trackerRepo := tracker.NewMemoryRepo()
	svc := NewService(profileRepo, trackerRepo)

	if err := profileRepo.Upsert(ctx, profiles.Profile{UserID: "guest:g1", Curriculum: "IB"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if _, err := svc.ClaimGuest(ctx, "guest:g1", "u1"); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	result, err := svc.ClaimGuest(ctx, "guest:g1", "u1")
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if result.MigratedProfile || result.MigratedTrackerEntries != 0 {
		t.Fatalf("second claim must find nothing, got %+v", result)
	}
}

func TestClaimGuestKeepsExistingProfile(t *testing.T) {
	ctx := context.Background()
	profileRepo := profiles.NewMemoryRepo()
	trackerRepo := tracker.NewMemoryRepo()
	svc := NewService(profileRepo, trackerRepo)

	if err := profileRepo.Upsert(ctx, profiles.Profile{UserID: "guest:g1", Curriculum: "IB"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := profileRepo.Upsert(ctx, profiles.Profile{UserID: "u1", Curriculum: "A_LEVELS"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	result, err := svc.ClaimGuest(ctx, "guest:g1", "u1")
	if err != nil {
		t.Fatalf("ClaimGuest: %v", err)
	}
	if result.MigratedProfile {
		t.Fatalf("existing profile must win, got %+v", result)
	}
	kept, _ := profileRepo.Get(ctx, "u1")
	if kept.Curriculum != "A_LEVELS" {
		t.Fatalf("profile was overwritten: %+v", kept)
	}
}

func TestClaimGuestRejectsEmptyIDs(t *testing.T) {
	svc := NewService(profiles.NewMemoryRepo(), tracker.NewMemoryRepo())
	if _, err := svc.ClaimGuest(context.Background(), "", "u1"); err == nil {
		t.Fatalf("expected error for empty guest id")
	}
	if _, err := svc.ClaimGuest(context.Background(), "guest:g1", " "); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}
