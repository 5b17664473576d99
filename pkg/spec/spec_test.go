package spec

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if s.SpecVersion != "0.1.0" {
		t.Errorf("spec_version = %q, want %q", s.SpecVersion, "0.1.0")
	}
	if s.Currency != "NOK" {
		t.Errorf("currency = %q, want NOK", s.Currency)
	}

	// Raccoons
	if s.Raccoons.Count != 30 {
		t.Errorf("raccoons.count = %d, want 30", s.Raccoons.Count)
	}
	if s.Raccoons.MinMassKg != 3.5 || s.Raccoons.MaxMassKg != 9 {
		t.Errorf("mass range = %v-%v, want 3.5-9", s.Raccoons.MinMassKg, s.Raccoons.MaxMassKg)
	}
	if got := s.Raccoons.MeanMassKg(); got != 6.25 {
		t.Errorf("mean mass = %v, want 6.25", got)
	}

	// Food
	if s.Food.UnitPrice != 30 {
		t.Errorf("food.unit_price = %v, want 30", s.Food.UnitPrice)
	}
	if s.Food.UnitEnergyKcal != 3585 {
		t.Errorf("food.unit_energy_kcal = %v, want 3585", s.Food.UnitEnergyKcal)
	}

	// Health
	if s.Health.FleaCurePrice != 36 {
		t.Errorf("health.flea_cure_price = %v, want 36", s.Health.FleaCurePrice)
	}
	if s.Health.EuthanizationPrice != 100 {
		t.Errorf("health.euthanization_price = %v, want 100", s.Health.EuthanizationPrice)
	}
	if s.Health.KillRatio != 1.0/3 {
		t.Errorf("health.kill_ratio = %v, want exactly 1/3", s.Health.KillRatio)
	}

	// Utilities, web, protection
	if s.Utilities.PowerWatts != 300 || s.Utilities.PricePerKWh != 0.2816 {
		t.Errorf("utilities = %+v, want 300 W at 0.2816", s.Utilities)
	}
	if s.Web.HostingPerYear != 100 || s.Web.DomainPerYear != 150 {
		t.Errorf("web = %+v, want 100 + 150", s.Web)
	}
	if s.Protection.GlovePairPrice != 300 || s.Protection.PairsPerYear != 3 {
		t.Errorf("protection = %+v, want 3 pairs at 300", s.Protection)
	}

	// Cage
	c := s.Cage
	if c.LengthM != 3 || c.WidthM != 2 || c.HeightM != 1.5 {
		t.Errorf("cage dimensions = %vx%vx%v, want 3x2x1.5", c.LengthM, c.WidthM, c.HeightM)
	}
	if c.EdgesPerDimension != 4 {
		t.Errorf("edges_per_dimension = %d, want 4", c.EdgesPerDimension)
	}
	if c.LumberPricePerM != 13.95 {
		t.Errorf("lumber_price_per_m = %v, want 13.95", c.LumberPricePerM)
	}
	if c.Mesh.RollPrice != 539.95 || c.Mesh.RollWidthM != 1.5 || c.Mesh.RollLengthM != 30 {
		t.Errorf("mesh = %+v, want 539.95 for 1.5x30", c.Mesh)
	}
	if c.BinPrice != 80 {
		t.Errorf("bin_price = %v, want 80", c.BinPrice)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	a.Raccoons.Count = 1

	b, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if b.Raccoons.Count != 30 {
		t.Errorf("second Default saw mutation: count = %d", b.Raccoons.Count)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("raccoons: [unterminated"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing spec YAML") {
		t.Errorf("error = %v, want wrapped parse error", err)
	}
}

func TestParsePartial(t *testing.T) {
	s, err := Parse([]byte("raccoons:\n  count: 12\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Raccoons.Count != 12 {
		t.Errorf("count = %d, want 12", s.Raccoons.Count)
	}
	if s.Food.UnitPrice != 0 {
		t.Errorf("unset field should be zero, got %v", s.Food.UnitPrice)
	}
}
