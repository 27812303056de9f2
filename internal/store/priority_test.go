package store

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"high", High, false},
		{"HIGH", High, false},
		{"  High  ", High, false},
		{"medium", Medium, false},
		{"Medium", Medium, false},
		{"low", Low, false},
		{" LOW ", Low, false},
		{"", "", true},
		{"   ", "", true},
		{"urgent", "", true},
		{"highest", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTiersOrder(t *testing.T) {
	tiers := Tiers()
	want := []Priority{High, Medium, Low}
	if len(tiers) != len(want) {
		t.Fatalf("expected %d tiers, got %d", len(want), len(tiers))
	}
	for i := range want {
		if tiers[i] != want[i] {
			t.Errorf("tier %d: expected %v, got %v", i, want[i], tiers[i])
		}
	}
}
