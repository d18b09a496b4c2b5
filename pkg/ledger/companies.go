package ledger

import (
	"fmt"
	"math/rand"
	"strings"
)

// ManagementCompany is one NYC-style property management firm with the
// buildings it manages. The set is fixed so train/validation splits can
// be made at the company level without leakage.
type ManagementCompany struct {
	Name          string
	ShortName     string
	Buildings     []string
	Boroughs      []string
	PropertyTypes []string
}

var ManagementCompanies = []ManagementCompany{
	{
		Name: "FirstService Residential", ShortName: "FSR",
		Buildings: []string{
			"432 Park Avenue", "8 Spruce Street", "80 DeKalb Avenue",
			"One Manhattan Square", "The Greenwich Lane", "15 Central Park West",
		},
		Boroughs:      []string{"Manhattan", "Brooklyn"},
		PropertyTypes: []string{"CONDO", "COOP"},
	},
	{
		Name: "Douglas Elliman Property Management", ShortName: "DEPM",
		Buildings: []string{
			"Park Terrace Gardens Inc", "The Beresford", "The Eldorado",
			"Central Park South Towers", "Fifth Avenue Place", "Sutton Place Towers",
		},
		Boroughs:      []string{"Manhattan"},
		PropertyTypes: []string{"COOP", "CONDO"},
	},
	{
		Name: "AKAM Associates", ShortName: "AKAM",
		Buildings: []string{
			"245 East 72nd Owners Corporation", "Park Avenue Tower",
			"Madison Square Owners", "Gramercy Owners Corp",
			"Murray Hill Towers", "Brooklyn Heights Cooperative",
		},
		Boroughs:      []string{"Manhattan", "Brooklyn"},
		PropertyTypes: []string{"COOP", "CONDO"},
	},
	{
		Name: "Halstead Management", ShortName: "Halstead",
		Buildings: []string{
			"Gramercy Park Towers", "Tudor City Place", "Kips Bay Towers",
			"Murray Hill Manor", "Lexington Towers", "East Side Cooperative",
		},
		Boroughs:      []string{"Manhattan"},
		PropertyTypes: []string{"COOP", "CONDO"},
	},
	{
		Name: "Rose Associates", ShortName: "Rose",
		Buildings: []string{
			"Metro Tower", "Riverdale Towers", "Tribeca Green",
			"The Lucida", "70 Pine Street", "One Brooklyn Bridge Park",
		},
		Boroughs:      []string{"Manhattan", "Brooklyn", "Bronx"},
		PropertyTypes: []string{"CONDO", "RENTAL"},
	},
	{
		Name: "Orsid Realty", ShortName: "ORSID",
		Buildings: []string{
			"Lindenwood Owners Corp", "245 East 72nd Street",
			"Carnegie Hill Towers", "Upper East Side Co-op",
			"Yorkville Towers", "Lenox Hill Cooperative",
		},
		Boroughs:      []string{"Manhattan"},
		PropertyTypes: []string{"COOP"},
	},
	{
		Name: "Midboro Management", ShortName: "Midboro",
		Buildings: []string{
			"Lincoln Towers", "West End Towers", "Riverside Owners Corp",
			"Columbus Circle Condos", "Central Park Cooperative", "Upper West Towers",
		},
		Boroughs:      []string{"Manhattan"},
		PropertyTypes: []string{"COOP", "CONDO"},
	},
	{
		Name: "Wavecrest Management", ShortName: "Wavecrest",
		Buildings: []string{
			"Queens Village Co-op", "Rochdale Village", "Co-op City Tower A",
			"Parkchester Towers", "Bay Terrace Cooperative", "Fresh Meadows Gardens",
		},
		Boroughs:      []string{"Queens", "Bronx", "Brooklyn"},
		PropertyTypes: []string{"COOP"},
	},
	{
		Name: "Charles H. Greenthal Management", ShortName: "Greenthal",
		Buildings: []string{
			"Upper West Towers", "Riverside Drive Owners", "Amsterdam Cooperative",
			"West 86th Owners Corp", "Morningside Heights Co-op", "Columbia Terrace",
		},
		Boroughs:      []string{"Manhattan"},
		PropertyTypes: []string{"COOP"},
	},
	{
		Name: "Argo Real Estate", ShortName: "Argo",
		Buildings: []string{
			"Park Avenue Place", "Madison Square Gardens", "Fifth Avenue Cooperative",
			"Central Park Towers", "Lexington Avenue Condos", "East End Towers",
		},
		Boroughs:      []string{"Manhattan"},
		PropertyTypes: []string{"COOP", "CONDO"},
	},
}

// PropertyManagers feeds "Prepared by:" lines in template headers.
var PropertyManagers = []string{
	"John Smith", "Maria Garcia", "David Chen", "Sarah Johnson",
	"Michael Brown", "Jennifer Lee", "Robert Williams", "Lisa Anderson",
	"James Martinez", "Michelle Thompson", "William Davis", "Angela Wilson",
	"Christopher Taylor", "Patricia Moore", "Daniel Jackson", "Nancy White",
	"Matthew Harris", "Karen Martin", "Joseph Clark", "Betty Lewis",
	"Ahmed Hassan", "Priya Patel", "Tomasz Kowalski", "Yuki Tanaka",
	"Olga Petrov", "Marcus Johnson", "Elena Rodriguez", "Kwame Asante",
}

// RandomCompany picks a management company.
func RandomCompany(rng *rand.Rand) ManagementCompany {
	return ManagementCompanies[rng.Intn(len(ManagementCompanies))]
}

// RandomBuilding picks one of a company's buildings.
func RandomBuilding(c ManagementCompany, rng *rand.Rand) string {
	return c.Buildings[rng.Intn(len(c.Buildings))]
}

// RandomManager picks a property manager name.
func RandomManager(rng *rand.Rand) string {
	return PropertyManagers[rng.Intn(len(PropertyManagers))]
}

// TrainValSplit splits companies at the company level to avoid
// leakage between training and validation documents.
func TrainValSplit(valRatio float64, seed int64) (train, val []ManagementCompany) {
	rng := rand.New(rand.NewSource(seed))
	shuffled := make([]ManagementCompany, len(ManagementCompanies))
	copy(shuffled, ManagementCompanies)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	numVal := int(float64(len(shuffled)) * valRatio)
	if numVal < 1 {
		numVal = 1
	}
	return shuffled[numVal:], shuffled[:numVal]
}

// PageHeaderText builds a section title. PAGE_HEADER text is the
// report name plus context, distinct from column headers.
func PageHeaderText(reportType, buildingName, period string) string {
	parts := []string{reportType}
	if buildingName != "" {
		parts = append(parts, buildingName)
	}
	if period != "" {
		parts = append(parts, "For Period Ending "+period)
	}
	return strings.Join(parts, " - ")
}

// TemplateHeaderLines builds the per-page repeating design chrome,
// 1-6 lines depending on the draw.
func TemplateHeaderLines(c ManagementCompany, buildingName string, rng *rand.Rand) []string {
	lines := []string{strings.ToUpper(buildingName)}

	candidates := []string{
		"Monthly Financial Package - " + buildingName,
		"Prepared by " + c.Name,
		"Prepared by: " + RandomManager(rng),
		fmt.Sprintf("%s Management Office", c.ShortName),
		"--- CONFIDENTIAL ---",
	}
	extra := rng.Intn(len(candidates) + 1)
	for i := 0; i < extra; i++ {
		lines = append(lines, candidates[i])
	}
	return lines
}
