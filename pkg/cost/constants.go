package cost

// Category names as they appear in the report. The fixed- prefix is for the
// reader only; aggregation goes by Kind.
const (
	CategoryFood              = "food"
	CategoryHealth            = "health"
	CategoryEuthanization     = "euthanization"
	CategoryPower             = "power"
	CategoryWebsite           = "website"
	CategoryProtection        = "protection"
	CategoryFixedConstruction = "fixed-construction"
	CategoryFixedFence        = "fixed-fence"
	CategoryFixedBins         = "fixed-bins"
)
