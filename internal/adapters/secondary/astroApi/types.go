package astroApi

// NamedValue is the {"Name": ...} wrapper VedAstro uses for planets and signs
type NamedValue struct {
	Name *string `json:"Name"`
}

// PlanetEntry holds the planet fields we keep; everything else in the payload is ignored
type PlanetEntry struct {
	HousePlanetOccupiesBasedOnSign any `json:"HousePlanetOccupiesBasedOnSign"`
	IsPlanetBenefic                any `json:"IsPlanetBenefic"`
	PlanetsInConjunction           any `json:"PlanetsInConjunction"`
}

// HouseEntry holds the house fields we keep
type HouseEntry struct {
	LordOfHouse   *NamedValue `json:"LordOfHouse"`
	HouseRasiSign *NamedValue `json:"HouseRasiSign"`
}

// PlanetDataResponse is the AllPlanetData response.
// Each list element maps a planet name to its data.
type PlanetDataResponse struct {
	Status  string `json:"Status"`
	Payload struct {
		AllPlanetData []map[string]PlanetEntry `json:"AllPlanetData"`
	} `json:"Payload"`
}

// HouseDataResponse is the AllHouseData response, keyed by house name
type HouseDataResponse struct {
	Status  string `json:"Status"`
	Payload struct {
		AllHouseData []map[string]HouseEntry `json:"AllHouseData"`
	} `json:"Payload"`
}
