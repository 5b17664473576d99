package spec

// ShelterSpec is the full set of prices and physical constants behind the
// shelter budget.
type ShelterSpec struct {
	SpecVersion string     `yaml:"spec_version" json:"spec_version"`
	Currency    string     `yaml:"currency" json:"currency"`
	Raccoons    Raccoons   `yaml:"raccoons" json:"raccoons"`
	Food        Food       `yaml:"food" json:"food"`
	Health      Health     `yaml:"health" json:"health"`
	Utilities   Utilities  `yaml:"utilities" json:"utilities"`
	Web         Web        `yaml:"web" json:"web"`
	Protection  Protection `yaml:"protection" json:"protection"`
	Cage        Cage       `yaml:"cage" json:"cage"`
}

// Raccoons describes the housed population.
type Raccoons struct {
	MinMassKg float64 `yaml:"min_mass_kg" json:"min_mass_kg"`
	MaxMassKg float64 `yaml:"max_mass_kg" json:"max_mass_kg"`
	Count     int     `yaml:"count" json:"count"`
}

// MeanMassKg is the midpoint of the adult mass range.
func (r Raccoons) MeanMassKg() float64 {
	return (r.MinMassKg + r.MaxMassKg) / 2
}

// Food is priced per unit (one bag) with a known energy content.
type Food struct {
	UnitPrice      float64 `yaml:"unit_price" json:"unit_price"`
	UnitEnergyKcal float64 `yaml:"unit_energy_kcal" json:"unit_energy_kcal"`
}

type Health struct {
	FleaCurePrice      float64 `yaml:"flea_cure_price" json:"flea_cure_price"`
	EuthanizationPrice float64 `yaml:"euthanization_price" json:"euthanization_price"`
	KillRatio          float64 `yaml:"kill_ratio" json:"kill_ratio"`
}

// Utilities covers the monitoring machine that runs all year.
type Utilities struct {
	PowerWatts  float64 `yaml:"power_watts" json:"power_watts"`
	PricePerKWh float64 `yaml:"price_per_kwh" json:"price_per_kwh"`
}

type Web struct {
	HostingPerYear float64 `yaml:"hosting_per_year" json:"hosting_per_year"`
	DomainPerYear  float64 `yaml:"domain_per_year" json:"domain_per_year"`
}

type Protection struct {
	GlovePairPrice float64 `yaml:"glove_pair_price" json:"glove_pair_price"`
	PairsPerYear   int     `yaml:"pairs_per_year" json:"pairs_per_year"`
}

// Cage is the bill of quantities for one housing unit. One raccoon per cage.
type Cage struct {
	LengthM           float64 `yaml:"length_m" json:"length_m"`
	WidthM            float64 `yaml:"width_m" json:"width_m"`
	HeightM           float64 `yaml:"height_m" json:"height_m"`
	EdgesPerDimension int     `yaml:"edges_per_dimension" json:"edges_per_dimension"`
	SpacingM          float64 `yaml:"spacing_m" json:"spacing_m"`
	LumberPricePerM   float64 `yaml:"lumber_price_per_m" json:"lumber_price_per_m"`
	Mesh              Mesh    `yaml:"mesh" json:"mesh"`
	BinPrice          float64 `yaml:"bin_price" json:"bin_price"`
}

// Mesh is chicken wire sold by the roll.
type Mesh struct {
	RollPrice   float64 `yaml:"roll_price" json:"roll_price"`
	RollWidthM  float64 `yaml:"roll_width_m" json:"roll_width_m"`
	RollLengthM float64 `yaml:"roll_length_m" json:"roll_length_m"`
}
