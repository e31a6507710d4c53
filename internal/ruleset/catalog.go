package ruleset

// Stock catalogs, in the order scanners iterate them.

var defaultBuildings = []Building{
	{ID: "granary", Name: "Granary", Cost: 180, MinPopulation: 0},
	{ID: "well", Name: "Well", Cost: 120, MinPopulation: 0},
	{ID: "walls", Name: "Walls", Cost: 260, MinPopulation: 200},
	{ID: "barracks", Name: "Barracks", Cost: 240, MinPopulation: 200},
	{ID: "market", Name: "Market", Cost: 300, MinPopulation: 400},
	{ID: "library", Name: "Library", Cost: 320, MinPopulation: 400},
	{ID: "temple", Name: "Temple", Cost: 280, MinPopulation: 300},
	{ID: "forge", Name: "Forge", Cost: 340, MinPopulation: 500, Requires: "barracks"},
	{ID: "harbor", Name: "Harbor", Cost: 360, MinPopulation: 500},
	// Monuments are prestige projects: produced, never bought.
	{ID: "monument", Name: "Monument", Cost: 0, MinPopulation: 800},
}

var defaultUnits = []UnitType{
	{ID: "scout", Name: "Scout", Cost: 120, Military: true},
	{ID: "warrior", Name: "Warrior", Cost: 200, Military: true, Successor: "swordsman"},
	{ID: "spearman", Name: "Spearman", Cost: 220, Military: true, Successor: "pikeman", MinPopulation: 200},
	{ID: "archer", Name: "Archer", Cost: 240, Military: true, Successor: "crossbowman", MinPopulation: 200},
	{ID: "swordsman", Name: "Swordsman", Cost: 320, Military: true, MinPopulation: 300},
	{ID: "pikeman", Name: "Pikeman", Cost: 300, Military: true, MinPopulation: 300},
	{ID: "crossbowman", Name: "Crossbowman", Cost: 360, Military: true, MinPopulation: 400},
	{ID: "settler", Name: "Settler", Cost: 400, Military: false, MinPopulation: 600},
	{ID: "worker", Name: "Worker", Cost: 160, Military: false},
}
