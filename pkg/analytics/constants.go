package analytics

// Physical constants used by the resolution formulas.
const (
	JoulesPerKcal = 4184.0

	// Kleiber's law for placental mammals: 70 kcal/day per kg^0.75.
	KleiberCoefficient = 70.0
	KleiberExponent    = 0.75

	SecondsPerHour = 3600.0
	SecondsPerDay  = 24 * SecondsPerHour
	DaysPerYear    = 365.25
	SecondsPerYear = DaysPerYear * SecondsPerDay

	JoulesPerKWh = 1000 * SecondsPerHour
)
