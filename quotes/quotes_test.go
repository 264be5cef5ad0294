package quotes

import (
	"math/rand"
	"testing"
	"time"
)

func TestDailyStableWithinDay(t *testing.T) {
	morning := time.Date(2025, 8, 21, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 8, 21, 22, 30, 0, 0, time.UTC)

	if Daily(morning) != Daily(evening) {
		t.Error("same day should give the same quote")
	}
}

func TestDailyRotates(t *testing.T) {
	day := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < len(All()); i++ {
		seen[Daily(day.AddDate(0, 0, i)).Text] = true
	}

	if got, want := len(seen), len(All()); got != want {
		t.Errorf("got %d distinct quotes over %d days, want %d", got, want, want)
	}
}

func TestDailyFieldsPopulated(t *testing.T) {
	q := Daily(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if q.Text == "" || q.Author == "" {
		t.Errorf("quote has empty fields: %+v", q)
	}
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		q := Random(r)
		if q.Text == "" || q.Author == "" {
			t.Fatalf("quote has empty fields: %+v", q)
		}
		seen[q.Text] = true
	}

	if len(seen) < 2 {
		t.Errorf("100 draws produced %d distinct quotes", len(seen))
	}
}

func TestAllIsACopy(t *testing.T) {
	quotes := All()
	quotes[0].Text = "changed"

	if All()[0].Text == "changed" {
		t.Error("All should return an independent copy")
	}
}
