package analytics

import (
	"math"

	"github.com/ChicagoDave/raccoonshelter/pkg/spec"
)

// ResolvedParameters holds the derived quantities the cost categories are
// priced from.
type ResolvedParameters struct {
	RaccoonCount        int     `json:"raccoon_count"`
	RaccoonMassKg       float64 `json:"raccoon_mass_kg"`
	RaccoonPowerW       float64 `json:"raccoon_power_w"`
	EnergyPerYearJ      float64 `json:"energy_per_year_j"`
	FoodUnitEnergyJ     float64 `json:"food_unit_energy_j"`
	FoodUnitsPerRaccoon float64 `json:"food_units_per_raccoon"`
	FoodCostPerRaccoon  float64 `json:"food_cost_per_raccoon"`
	PricePerJoule       float64 `json:"price_per_joule"`

	Cages              int     `json:"cages"`
	LumberPerCageM     float64 `json:"lumber_per_cage_m"`
	MeshPerCageM2      float64 `json:"mesh_per_cage_m2"`
	MeshPricePerM2     float64 `json:"mesh_price_per_m2"`
	FootprintPerCageM2 float64 `json:"footprint_per_cage_m2"`
	LandAreaM2         float64 `json:"land_area_m2"`
}

// Resolve computes every derived quantity from the spec.
func Resolve(s *spec.ShelterSpec) *ResolvedParameters {
	mass := s.Raccoons.MeanMassKg()
	power := MetabolicPowerW(mass)
	energy := YearlyEnergyJ(power)
	unitEnergy := FoodUnitEnergyJ(s.Food.UnitEnergyKcal)
	units := energy / unitEnergy

	cages := CageCount(s.Raccoons.Count)
	footprint := CageFootprintM2(s.Cage)

	return &ResolvedParameters{
		RaccoonCount:        s.Raccoons.Count,
		RaccoonMassKg:       mass,
		RaccoonPowerW:       power,
		EnergyPerYearJ:      energy,
		FoodUnitEnergyJ:     unitEnergy,
		FoodUnitsPerRaccoon: units,
		FoodCostPerRaccoon:  units * s.Food.UnitPrice,
		PricePerJoule:       PricePerJoule(s.Utilities.PricePerKWh),

		Cages:              cages,
		LumberPerCageM:     LumberPerCageM(s.Cage),
		MeshPerCageM2:      MeshPerCageM2(s.Cage),
		MeshPricePerM2:     MeshPricePerM2(s.Cage.Mesh),
		FootprintPerCageM2: footprint,
		LandAreaM2:         LandAreaM2(s.Cage, cages),
	}
}

// MetabolicPowerW is the continuous power draw in watts of a placental
// mammal of the given mass, from its daily energy requirement.
func MetabolicPowerW(massKg float64) float64 {
	return JoulesPerKcal * KleiberCoefficient * math.Pow(massKg, KleiberExponent) / SecondsPerDay
}

// YearlyEnergyJ integrates a constant power draw over one year.
func YearlyEnergyJ(powerW float64) float64 {
	return powerW * SecondsPerYear
}

func FoodUnitEnergyJ(kcal float64) float64 {
	return kcal * JoulesPerKcal
}

// PricePerJoule converts a price per kWh to a price per joule.
func PricePerJoule(pricePerKWh float64) float64 {
	return pricePerKWh / JoulesPerKWh
}

// CageCount is one cage per raccoon.
func CageCount(raccoons int) int {
	return raccoons
}

// LumberPerCageM is the linear meters of lumber needed to frame one cage:
// every edge of the box, EdgesPerDimension edges along each axis.
func LumberPerCageM(c spec.Cage) float64 {
	edges := float64(c.EdgesPerDimension)
	return c.LengthM*edges + c.WidthM*edges + c.HeightM*edges
}

// MeshPerCageM2 is the surface area of the cage box, all six faces.
func MeshPerCageM2(c spec.Cage) float64 {
	return c.LengthM*c.WidthM*2 + c.LengthM*c.HeightM*2 + c.WidthM*c.HeightM*2
}

func MeshPricePerM2(m spec.Mesh) float64 {
	return m.RollPrice / (m.RollWidthM * m.RollLengthM)
}

// CageFootprintM2 is the ground area of one cage including the spacing
// padding between neighbours.
func CageFootprintM2(c spec.Cage) float64 {
	return (c.LengthM + c.SpacingM) * (c.WidthM + c.SpacingM)
}

func LandAreaM2(c spec.Cage, cages int) float64 {
	return CageFootprintM2(c) * float64(cages)
}
