package cost

import (
	"github.com/ChicagoDave/raccoonshelter/pkg/analytics"
	"github.com/ChicagoDave/raccoonshelter/pkg/spec"
)

// Materials itemizes the one-time cage bill for the whole shelter.
type Materials struct {
	Construction float64 `json:"construction"`
	Fence        float64 `json:"fence"`
	Bins         float64 `json:"bins"`
	LandAreaM2   float64 `json:"land_area_m2"`
}

// Health itemizes the yearly veterinary costs.
type Health struct {
	FleaCure      float64 `json:"flea_cure"`
	Euthanization float64 `json:"euthanization"`
}

// FoodCost prices a year of food for count raccoons of the given mass.
// unitEnergyJ is the energy content of one food unit sold at unitPrice.
func FoodCost(massKg, unitPrice, unitEnergyJ float64, count int) float64 {
	energy := analytics.YearlyEnergyJ(analytics.MetabolicPowerW(massKg))
	perRaccoon := energy / unitEnergyJ * unitPrice
	return float64(count) * perRaccoon
}

// FixedMaterialCosts prices lumber, mesh and bins for one cage per raccoon
// and reports the land the cages occupy.
func FixedMaterialCosts(s *spec.ShelterSpec, count int) Materials {
	n := analytics.CageCount(count)
	cages := float64(n)
	return Materials{
		Construction: analytics.LumberPerCageM(s.Cage) * cages * s.Cage.LumberPricePerM,
		Fence:        analytics.MeshPerCageM2(s.Cage) * cages * analytics.MeshPricePerM2(s.Cage.Mesh),
		Bins:         cages * s.Cage.BinPrice,
		LandAreaM2:   analytics.LandAreaM2(s.Cage, n),
	}
}

// HealthCosts prices one flea cure per raccoon and euthanization of
// KillRatio of the population. The ratio is applied unrounded.
func HealthCosts(s *spec.ShelterSpec, count int) Health {
	n := float64(count)
	return Health{
		FleaCure:      s.Health.FleaCurePrice * n,
		Euthanization: s.Health.KillRatio * n * s.Health.EuthanizationPrice,
	}
}

// UtilityCost is the yearly price of a constant draw of powerW watts.
func UtilityCost(powerW, pricePerKWh float64) float64 {
	return powerW * analytics.SecondsPerYear * analytics.PricePerJoule(pricePerKWh)
}

// WebCost is hosting plus domain registration.
func WebCost(s *spec.ShelterSpec) float64 {
	return s.Web.HostingPerYear + s.Web.DomainPerYear
}

func ProtectionCost(s *spec.ShelterSpec) float64 {
	return s.Protection.GlovePairPrice * float64(s.Protection.PairsPerYear)
}

// Build evaluates every category against the spec and returns the model.
func Build(s *spec.ShelterSpec) *Model {
	params := analytics.Resolve(s)
	count := s.Raccoons.Count

	health := HealthCosts(s, count)
	materials := FixedMaterialCosts(s, count)

	entries := []Entry{
		{Name: CategoryFood, Kind: Recurring, Value: FoodCost(
			params.RaccoonMassKg, s.Food.UnitPrice, params.FoodUnitEnergyJ, count)},
		{Name: CategoryHealth, Kind: Recurring, Value: health.FleaCure},
		{Name: CategoryEuthanization, Kind: Recurring, Value: health.Euthanization},
		{Name: CategoryPower, Kind: Recurring, Value: UtilityCost(s.Utilities.PowerWatts, s.Utilities.PricePerKWh)},
		{Name: CategoryWebsite, Kind: Recurring, Value: WebCost(s)},
		{Name: CategoryProtection, Kind: Recurring, Value: ProtectionCost(s)},
		{Name: CategoryFixedConstruction, Kind: OneTime, Value: materials.Construction},
		{Name: CategoryFixedFence, Kind: OneTime, Value: materials.Fence},
		{Name: CategoryFixedBins, Kind: OneTime, Value: materials.Bins},
	}

	m, err := NewModel(entries, materials.LandAreaM2)
	if err != nil {
		// Category names are constants; a duplicate is a programming error.
		panic(err)
	}
	m.params = params
	return m
}
