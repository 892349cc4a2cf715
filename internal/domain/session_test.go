package domain

import (
	"testing"
	"time"
)

func TestSessionAuthenticate(t *testing.T) {
	s := NewSession("abc", time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))
	if s.Authenticated {
		t.Fatal("new session must start unauthenticated")
	}

	if s.Authenticate("wrong", "RGE2025") {
		t.Fatal("wrong password accepted")
	}
	if s.Authenticated {
		t.Fatal("failed attempt must not authenticate the session")
	}

	if !s.Authenticate("RGE2025", "RGE2025") {
		t.Fatal("correct password rejected")
	}
	if !s.Authenticated {
		t.Fatal("session should be authenticated after a match")
	}

	s.Logout()
	if s.Authenticated {
		t.Fatal("logout should clear the flag")
	}
}

func TestSessionAuthenticateEmptyExpected(t *testing.T) {
	s := NewSession("abc", time.Now())
	if s.Authenticate("", "") {
		t.Fatal("an unset password must never authenticate")
	}
}

func TestFilterInDateRange(t *testing.T) {
	day := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	f := FilterCriteria{
		Date1: *day(2025, 3, 1),
		Date2: *day(2025, 3, 31),
	}

	tests := []struct {
		name string
		rec  CollectionRecord
		want bool
	}{
		{"inside", CollectionRecord{StartDate: day(2025, 3, 2), EndDate: day(2025, 3, 5)}, true},
		{"bounds inclusive", CollectionRecord{StartDate: day(2025, 3, 1), EndDate: day(2025, 3, 31)}, true},
		{"end outside", CollectionRecord{StartDate: day(2025, 3, 20), EndDate: day(2025, 4, 2)}, false},
		{"start before", CollectionRecord{StartDate: day(2025, 2, 27), EndDate: day(2025, 3, 2)}, false},
		{"missing end", CollectionRecord{StartDate: day(2025, 3, 2)}, false},
		{"missing start", CollectionRecord{EndDate: day(2025, 3, 2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.InDateRange(tt.rec); got != tt.want {
				t.Errorf("InDateRange = %v, want %v", got, tt.want)
			}
		})
	}
}
