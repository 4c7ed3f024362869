package fundfolio

import (
	"errors"
	"testing"
)

func TestSchemeAbsoluteSummary(t *testing.T) {
	per := PnLSeries{
		newPnLPoint(on("2024-01-01"), INR(1000), INR(1010), "A"),
		newPnLPoint(on("2024-01-02"), INR(1000), INR(1020), "A"),
		newPnLPoint(on("2024-01-03"), INR(1000), INR(1030), "A"),
		// B has no row on 2024-01-02
		newPnLPoint(on("2024-01-01"), INR(500), INR(540), "B"),
		newPnLPoint(on("2024-01-03"), INR(500), INR(560), "B"),
	}
	names := Mapping{"A": "Alpha Fund"}

	s, err := NewSchemeAbsoluteSummary(per, names, 2)
	if err != nil {
		t.Fatal(err)
	}

	wantDates := []Date{on("2024-01-03"), on("2024-01-02")}
	if len(s.Dates) != 2 || s.Dates[0] != wantDates[0] || s.Dates[1] != wantDates[1] {
		t.Fatalf("Dates = %v, want %v", s.Dates, wantDates)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(s.Rows))
	}

	// B leads with pnl 60 on the most recent date
	best := s.Rows[0]
	if best.Scheme != UnknownScheme {
		t.Errorf("best row scheme = %q, want %q", best.Scheme, UnknownScheme)
	}
	if !best.PnL[0].Equal(INR(60)) {
		t.Errorf("best pnl = %v, want 60", best.PnL[0])
	}
	if !best.PnL[1].IsZero() {
		t.Errorf("missing cell = %v, want zero", best.PnL[1])
	}

	second := s.Rows[1]
	if second.Scheme != "Alpha Fund" {
		t.Errorf("second row scheme = %q, want Alpha Fund", second.Scheme)
	}
	if !second.PnL[0].Equal(INR(30)) || !second.PnL[1].Equal(INR(20)) {
		t.Errorf("second pnl = %v/%v, want 30/20", second.PnL[0], second.PnL[1])
	}
}

func TestSchemeAbsoluteSummaryAllDates(t *testing.T) {
	per := PnLSeries{
		newPnLPoint(on("2024-01-01"), INR(1000), INR(1010), "A"),
		newPnLPoint(on("2024-01-02"), INR(1000), INR(1020), "A"),
	}
	s, err := NewSchemeAbsoluteSummary(per, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Dates) != 2 {
		t.Errorf("numDays 0 kept %d dates, want all 2", len(s.Dates))
	}
}

func TestSchemeAbsoluteSummaryEmpty(t *testing.T) {
	if _, err := NewSchemeAbsoluteSummary(nil, nil, 3); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("err = %v, want ErrEmptySeries", err)
	}
}

func TestSchemeRelativeSummary(t *testing.T) {
	per := PnLSeries{
		// A publishes three days, B only the last one
		newPnLPoint(on("2024-01-01"), INR(1000), INR(1010), "A"),
		newPnLPoint(on("2024-01-02"), INR(1000), INR(1025), "A"),
		newPnLPoint(on("2024-01-03"), INR(1000), INR(1040), "A"),
		newPnLPoint(on("2024-01-03"), INR(500), INR(520), "B"),
	}
	names := Mapping{"A": "Alpha Fund", "B": "Beta Fund"}

	s, err := NewSchemeRelativeSummary(per, names, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Schemes) != 2 || s.Schemes[0] != "Alpha Fund" || s.Schemes[1] != "Beta Fund" {
		t.Fatalf("Schemes = %v", s.Schemes)
	}
	// T resolves for both, T-1 and T-2 only for A, deeper lookbacks for no one
	wantLabels := []string{"T", "T-1", "T-2"}
	if len(s.Labels) != len(wantLabels) {
		t.Fatalf("Labels = %v, want %v", s.Labels, wantLabels)
	}
	for i, want := range wantLabels {
		if s.Labels[i] != want {
			t.Errorf("label %d = %q, want %q", i, s.Labels[i], want)
		}
	}

	// A moved 15 between T-1 and T; B has no T-1 cell
	if !s.Change[1][0].Equal(INR(15)) {
		t.Errorf("A change at T-1 = %v, want 15", s.Change[1][0])
	}
	if !s.Change[1][1].IsZero() {
		t.Errorf("B change at T-1 = %v, want zero", s.Change[1][1])
	}
	if !s.ChangePercent[1][0].Equal(INR(15).PercentOf(INR(1000))) {
		t.Errorf("A change%% at T-1 = %v", s.ChangePercent[1][0])
	}
}

func TestSchemeRelativeSummaryLargeMove(t *testing.T) {
	per := PnLSeries{
		newPnLPoint(on("2024-01-01"), INR(100), INR(100), "A"),
		newPnLPoint(on("2024-01-02"), INR(100), INR(300), "A"),
	}

	s, err := NewSchemeRelativeSummary(per, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	// profit moved by 200 on a base of 100, so the movement is 200%
	if !s.Change[1][0].Equal(INR(200)) {
		t.Errorf("T-1 change = %v, want 200", s.Change[1][0])
	}
	if !s.ChangePercent[1][0].Equal(200) {
		t.Errorf("T-1 change%% = %v, want 200%%", s.ChangePercent[1][0])
	}
}

func TestSchemeRelativeSummaryEmpty(t *testing.T) {
	if _, err := NewSchemeRelativeSummary(nil, nil, nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("err = %v, want ErrEmptySeries", err)
	}
}

func TestRelativePercent(t *testing.T) {
	tests := []struct {
		name     string
		change   Money
		invested Money
		want     Percent
	}{
		{"usual", INR(50), INR(1000), 5},
		{"large gain", INR(5000), INR(100), 5000},
		{"large loss", INR(-5000), INR(100), -5000},
		{"zero base gain", INR(10), INR(0), 100},
		{"zero base loss", INR(-10), INR(0), -100},
		{"zero base flat", INR(0), INR(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativePercent(tt.change, tt.invested); !got.Equal(tt.want) {
				t.Errorf("relativePercent(%v, %v) = %v, want %v", tt.change, tt.invested, got, tt.want)
			}
		})
	}
}
