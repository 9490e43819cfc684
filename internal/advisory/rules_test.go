package advisory

import (
	"testing"

	"github.com/linerhc/linerhc/internal/mix"
)

func rulesFired(ws []Warning) []string {
	names := make([]string, len(ws))
	for i, w := range ws {
		names[i] = w.Rule
	}
	return names
}

func TestValidate_DefaultsClean(t *testing.T) {
	ws := Validate(mix.Defaults())
	if len(ws) != 0 {
		t.Errorf("got %d warnings for defaults, want 0: %v", len(ws), ws)
	}
}

func TestCompositionRule_Band(t *testing.T) {
	tests := []struct {
		name string
		ec   float64
		want bool
	}{
		{"exact", 80, false},
		{"upper edge", 81, false},
		{"lower edge", 79, false},
		{"just over", 81.01, true},
		{"just under", 78.99, true},
		{"far off", 50, true},
	}
	c := &CompositionRule{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mix.Defaults()
			req.EC = tt.ec
			_, fired := c.Check(req)
			if fired != tt.want {
				t.Errorf("EC=%v (sum %v): fired=%v, want %v", tt.ec, req.Composition(), fired, tt.want)
			}
		})
	}
}

func TestStrengthRule_Threshold(t *testing.T) {
	s := &StrengthRule{}
	for _, ucs := range []float64{200, 200.0001, 321, 1000} {
		req := mix.Defaults()
		req.UCS = ucs
		if _, fired := s.Check(req); fired {
			t.Errorf("UCS=%v: strength warning fired, want none", ucs)
		}
	}
	for _, ucs := range []float64{50, 150, 199.999} {
		req := mix.Defaults()
		req.UCS = ucs
		if _, fired := s.Check(req); !fired {
			t.Errorf("UCS=%v: strength warning did not fire", ucs)
		}
	}
}

func TestAtterbergRule(t *testing.T) {
	a := &AtterbergRule{}

	req := mix.Defaults()
	req.LL, req.PI = 40, 40
	if _, fired := a.Check(req); fired {
		t.Error("LL == PI should not warn")
	}

	req.LL, req.PI = 39, 40
	w, fired := a.Check(req)
	if !fired {
		t.Fatal("LL < PI should warn")
	}
	if w.Message != "Liquid Limit should be greater than Plasticity Index" {
		t.Errorf("unexpected message %q", w.Message)
	}
}

func TestValidate_IndependentWarnings(t *testing.T) {
	req := mix.Defaults()
	req.FA, req.SCBA, req.EC = 5, 5, 80
	req.UCS = 150

	ws := Validate(req)
	got := rulesFired(ws)
	if len(got) != 2 || got[0] != "composition" || got[1] != "strength" {
		t.Fatalf("got rules %v, want [composition strength]", got)
	}
}

func TestValidate_AllFireInOrder(t *testing.T) {
	req := mix.Request{FA: 50, SCBA: 50, EC: 50, LL: 30, PI: 60, FSI: 38, MDUW: 14, OMC: 32, UCS: 60}
	got := rulesFired(Validate(req))
	want := []string{"composition", "strength", "atterberg"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRun_CustomRules(t *testing.T) {
	ws := Run([]Rule{&StrengthRule{}}, mix.Request{UCS: 10})
	if len(ws) != 1 || ws[0].Rule != "strength" {
		t.Errorf("got %v, want one strength warning", ws)
	}
	if ws := Run(nil, mix.Request{}); ws != nil {
		t.Errorf("no rules should yield nil, got %v", ws)
	}
}
