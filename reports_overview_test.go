package tickreport

import (
	"errors"
	"testing"
)

// overviewSource is a three-revision history with uneven coverage: AAA is
// always priced, BBB appears mid-history, CCC only at the oldest revision,
// DDD only at the middle one, and EEE never carries an "Updated:" line.
func overviewSource() *memSource {
	return &memSource{
		revisions: []Revision{
			{ID: "r3", Stamp: "2025-07-15 10:00:00 +0000"},
			{ID: "r2", Stamp: "2025-07-14 10:00:00 +0000"},
			{ID: "r1", Stamp: "2025-07-13 10:00:00 +0000"},
		},
		files: map[string]map[string]string{
			"r3": {
				"AAA.txt": obs("100", "2025-07-15 09:30:00"),
				"BBB.txt": obs("55", "2025-07-15 09:30:00"),
				"EEE.txt": "Price: 10\n",
			},
			"r2": {
				"AAA.txt": obs("90", "2025-07-14 09:30:00"),
				"BBB.txt": obs("60", "2025-07-14 09:30:00"),
				"DDD.txt": obs("40", "2025-07-14 09:30:00"),
				"EEE.txt": "Price: 10\n",
			},
			"r1": {
				"AAA.txt": obs("80", "2025-07-13 09:30:00"),
				"CCC.txt": obs("7", "2025-07-13 09:30:00"),
				"EEE.txt": "Price: 10\n",
			},
		},
	}
}

func TestNewOverviewReport(t *testing.T) {
	t.Setenv("TICKREPORT_TESTING_NOW", "2025-07-15 12:00:00")

	u := NewUniverse(overviewSource(), "*.txt")
	report, err := u.NewOverviewReport(10)
	if err != nil {
		t.Fatalf("NewOverviewReport() error = %v", err)
	}

	if report.Stamp != "2025-07-15 12:00:00" {
		t.Errorf("Stamp = %q, want the testing clock", report.Stamp)
	}
	if len(report.Revisions) != 3 {
		t.Errorf("sampled %d revisions, want all 3", len(report.Revisions))
	}
	if report.Total != 5 {
		t.Errorf("Total = %d, want 5 discovered tickers", report.Total)
	}

	t.Run("counts follow the two newest revisions", func(t *testing.T) {
		// AAA gained and BBB lost between r2 and r3. DDD is priced just once
		// there and EEE is flat, so both count as unchanged. CCC is priced
		// in neither and is not counted at all.
		if report.Gainers != 1 {
			t.Errorf("Gainers = %d, want 1", report.Gainers)
		}
		if report.Losers != 1 {
			t.Errorf("Losers = %d, want 1", report.Losers)
		}
		if report.Unchanged != 2 {
			t.Errorf("Unchanged = %d, want 2", report.Unchanged)
		}
	})

	if len(report.Histories) != 5 {
		t.Fatalf("built %d histories, want 5", len(report.Histories))
	}
	wantOrder := []string{"AAA", "BBB", "CCC", "DDD", "EEE"}
	for i, w := range wantOrder {
		if got := report.Histories[i].Ticker; got != w {
			t.Errorf("Histories[%d].Ticker = %s, want %s", i, got, w)
		}
	}

	t.Run("full series", func(t *testing.T) {
		aaa := report.Histories[0]
		wantPrices := []float64{80, 90, 100}
		if len(aaa.Prices) != len(wantPrices) {
			t.Fatalf("AAA.Prices = %v, want %v", aaa.Prices, wantPrices)
		}
		for i := range wantPrices {
			checkFloat(t, "AAA.Prices[i]", aaa.Prices[i], wantPrices[i])
		}
		wantLabels := []string{"2025-07-13 09:30", "2025-07-14 09:30", "2025-07-15 09:30"}
		for i := range wantLabels {
			if aaa.Labels[i] != wantLabels[i] {
				t.Errorf("AAA.Labels[%d] = %q, want %q", i, aaa.Labels[i], wantLabels[i])
			}
		}
		checkFloat(t, "AAA.Stats.Current", aaa.Stats.Current, 100)
		checkFloat(t, "AAA.Stats.Previous", aaa.Stats.Previous, 90)
		checkFloat(t, "AAA.Stats.Min", aaa.Stats.Min, 80)
		checkFloat(t, "AAA.Stats.Max", aaa.Stats.Max, 100)
		checkFloat(t, "AAA.Stats.Average", aaa.Stats.Average, 90)
	})

	t.Run("gaps are skipped not zero-filled", func(t *testing.T) {
		bbb := report.Histories[1]
		if len(bbb.Prices) != 2 {
			t.Fatalf("BBB.Prices = %v, want two points", bbb.Prices)
		}
		checkFloat(t, "BBB.Prices[0]", bbb.Prices[0], 60)
		checkFloat(t, "BBB.Prices[1]", bbb.Prices[1], 55)
	})

	t.Run("singleton history", func(t *testing.T) {
		ccc := report.Histories[2]
		if len(ccc.Prices) != 1 {
			t.Fatalf("CCC.Prices = %v, want one point", ccc.Prices)
		}
		checkFloat(t, "CCC.Stats.Previous", ccc.Stats.Previous, 7)
		if !ccc.Stats.Percent.Equal(0) {
			t.Errorf("CCC.Stats.Percent = %v, want 0", ccc.Stats.Percent)
		}
	})

	t.Run("label falls back to revision stamp", func(t *testing.T) {
		eee := report.Histories[4]
		wantLabels := []string{"2025-07-13 10:00", "2025-07-14 10:00", "2025-07-15 10:00"}
		if len(eee.Labels) != len(wantLabels) {
			t.Fatalf("EEE.Labels = %v, want %v", eee.Labels, wantLabels)
		}
		for i := range wantLabels {
			if eee.Labels[i] != wantLabels[i] {
				t.Errorf("EEE.Labels[%d] = %q, want %q", i, eee.Labels[i], wantLabels[i])
			}
		}
	})

	t.Run("top clamps", func(t *testing.T) {
		if got := report.Top(2); len(got) != 2 || got[0].Ticker != "AAA" {
			t.Errorf("Top(2) = %v, want [AAA BBB]", got)
		}
		if got := report.Top(12); len(got) != 5 {
			t.Errorf("Top(12) returned %d histories, want all 5", len(got))
		}
	})
}

func TestNewOverviewReport_DefaultSample(t *testing.T) {
	u := NewUniverse(overviewSource(), "*.txt")
	report, err := u.NewOverviewReport(0)
	if err != nil {
		t.Fatalf("NewOverviewReport() error = %v", err)
	}
	// DefaultSample asks for more revisions than exist; the source clamps.
	if len(report.Revisions) != 3 {
		t.Errorf("sampled %d revisions, want 3", len(report.Revisions))
	}
}

func TestNewOverviewReport_NoRevisions(t *testing.T) {
	u := NewUniverse(&memSource{}, "*.txt")
	if _, err := u.NewOverviewReport(10); !errors.Is(err, ErrNoRevisions) {
		t.Errorf("NewOverviewReport() error = %v, want ErrNoRevisions", err)
	}
}

func TestChartLabel(t *testing.T) {
	tests := []struct {
		stamp string
		want  string
	}{
		{"2025-07-15 10:00:00 +0000", "2025-07-15 10:00"},
		{"2025-07-15 10:00", "2025-07-15 10:00"},
		{"short", "short"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := chartLabel(tc.stamp); got != tc.want {
			t.Errorf("chartLabel(%q) = %q, want %q", tc.stamp, got, tc.want)
		}
	}
}
