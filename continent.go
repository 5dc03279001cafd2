package atlas

// Continents, in the fixed order every coverage report uses.
const (
	Europe       = "Europe"
	Asia         = "Asia"
	NorthAmerica = "North America"
	SouthAmerica = "South America"
	Africa       = "Africa"
	Oceania      = "Oceania"

	// OtherContinent buckets countries missing from the lookup table.
	OtherContinent = "Other"
)

// AllContinents lists the six continents in report order.
var AllContinents = []string{Europe, Asia, NorthAmerica, SouthAmerica, Africa, Oceania}

// continentTable maps lower-cased country names to continents. It is a small
// closed set: common aliases are listed ("uk" and "united kingdom"), but the
// table never canonicalizes record data.
var continentTable = map[string]string{
	"germany":        Europe,
	"france":         Europe,
	"spain":          Europe,
	"portugal":       Europe,
	"italy":          Europe,
	"uk":             Europe,
	"united kingdom": Europe,
	"ireland":        Europe,
	"netherlands":    Europe,
	"belgium":        Europe,
	"switzerland":    Europe,
	"austria":        Europe,
	"sweden":         Europe,
	"norway":         Europe,
	"denmark":        Europe,
	"finland":        Europe,
	"iceland":        Europe,
	"poland":         Europe,
	"czech republic": Europe,
	"greece":         Europe,
	"croatia":        Europe,

	"japan":       Asia,
	"china":       Asia,
	"south korea": Asia,
	"india":       Asia,
	"thailand":    Asia,
	"vietnam":     Asia,
	"indonesia":   Asia,
	"malaysia":    Asia,
	"singapore":   Asia,
	"philippines": Asia,
	"uae":         Asia,
	"turkey":      Asia,

	"usa":           NorthAmerica,
	"united states": NorthAmerica,
	"canada":        NorthAmerica,
	"mexico":        NorthAmerica,
	"costa rica":    NorthAmerica,
	"panama":        NorthAmerica,

	"brazil":    SouthAmerica,
	"argentina": SouthAmerica,
	"chile":     SouthAmerica,
	"colombia":  SouthAmerica,
	"peru":      SouthAmerica,
	"uruguay":   SouthAmerica,
	"ecuador":   SouthAmerica,

	"south africa": Africa,
	"morocco":      Africa,
	"egypt":        Africa,
	"kenya":        Africa,
	"tanzania":     Africa,
	"nigeria":      Africa,
	"ghana":        Africa,

	"australia":   Oceania,
	"new zealand": Oceania,
	"fiji":        Oceania,
}

// ContinentOf maps a derived country (any casing) to its continent, or to
// the Other bucket when the table does not know it.
func ContinentOf(country string) string {
	if continent, ok := continentTable[normalizeCountry(country)]; ok {
		return continent
	}
	return OtherContinent
}

func normalizeCountry(country string) string {
	// the table keys are already lower-cased and trimmed
	return CountryKey(country)
}
