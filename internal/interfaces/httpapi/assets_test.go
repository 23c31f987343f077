package httpapi

import "testing"

func TestTeamBadgeURL(t *testing.T) {
	if got := teamBadgeURL(3); got != "https://resources.premierleague.com/premierleague/badges/t3.svg" {
		t.Fatalf("unexpected badge url: %s", got)
	}
	if got := teamBadgeURL(0); got != "" {
		t.Fatalf("expected empty url for zero code, got %s", got)
	}
}

func TestPlayerPhotoURL(t *testing.T) {
	if got := playerPhotoURL(223340); got != "https://resources.premierleague.com/premierleague/photos/players/110x140/p223340.png" {
		t.Fatalf("unexpected photo url: %s", got)
	}
	if got := playerPhotoURL(-1); got != "" {
		t.Fatalf("expected empty url for negative code, got %s", got)
	}
}
