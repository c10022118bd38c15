package catalog

// knownModels is the built-in brand table. Model strings are matched
// verbatim (word-boundary anchored) against listing titles, so entries keep
// the spelling the sites actually use.
var knownModels = map[string][]string{
	"acura":        {"ILX", "TLX", "RLX", "MDX", "RDX", "ZDX", "Integra (2023+)"},
	"alfa romeo":   {"Giulia", "Stelvio", "4C"},
	"aston martin": {"DB9", "DB11", "Vantage", "Rapide"},
	"audi": {
		"A3", "A4", "A5", "A6", "A7", "A8",
		"Q3", "Q5", "Q7", "Q8",
		"TT", "R8", "e-tron",
	},
	"bentley": {"Continental GT", "Flying Spur", "Bentayga"},
	"bmw": {
		"1 Series", "2 Series", "3 Series", "4 Series",
		"5 Series", "6 Series", "7 Series", "8 Series",
		"X1", "X3", "X5", "X6", "X7",
		"Z4", "i3", "i4", "i8",
	},
	"buick": {"Encore", "Envision", "Enclave", "Regal (2000s)", "LaCrosse"},
	"cadillac": {
		"CTS", "ATS", "CT4", "CT5", "CT6",
		"Escalade", "XT4", "XT5", "XT6", "Lyriq",
	},
	"chevrolet": {
		"Aveo", "Cruze", "Malibu", "Impala (2000s)", "Camaro (2009+)",
		"Corvette C6/C7/C8", "Equinox", "Traverse", "Tahoe",
		"Suburban", "Silverado", "Bolt EV",
	},
	"chrysler": {"300", "Pacifica", "Voyager (2019+)"},
	"dodge": {
		"Charger", "Challenger", "Durango", "Journey",
		"Grand Caravan (2000s)", "Ram 1500",
	},
	"ferrari": {
		"458 Italia", "488", "F8 Tributo", "Roma",
		"Portofino", "California", "LaFerrari",
	},
	"fiat": {"500", "500X", "500L", "124 Spider"},
	"ford": {
		"Focus (2000s)", "Fusion", "Taurus (2000s)", "Mustang (2005+)",
		"Escape", "Edge", "Explorer", "Expedition",
		"F-150", "Ranger (2019+)", "Bronco (2021+)",
	},
	"genesis": {"G70", "G80", "G90", "GV70", "GV80"},
	"gmc":     {"Terrain", "Acadia", "Yukon", "Sierra 1500", "Canyon"},
	"honda": {
		"Civic (2000+)", "Accord (2000+)", "Fit", "HR-V",
		"CR-V", "Pilot", "Odyssey", "Ridgeline",
	},
	"hyundai": {
		"Elantra", "Sonata", "Accent", "Kona", "Tucson",
		"Santa Fe", "Palisade", "Veloster", "Ioniq", "Ioniq 5",
	},
	"infiniti": {"G35/G37", "Q50", "Q60", "QX50", "QX60", "QX80"},
	"jaguar":   {"XE", "XF", "XJ (2000s)", "F-Pace", "E-Pace", "I-Pace", "F-Type"},
	"jeep": {
		"Wrangler", "Cherokee", "Grand Cherokee",
		"Compass", "Renegade", "Gladiator",
	},
	"kia": {
		"Rio", "Forte", "Soul", "Seltos", "Sportage",
		"Sorento", "Telluride", "Stinger", "EV6",
	},
	"land rover": {
		"Range Rover", "Range Rover Sport", "Range Rover Evoque",
		"Discovery", "Defender (2020+)",
	},
	"lexus": {"IS", "ES", "GS", "LS", "NX", "RX", "GX", "LX", "UX"},
	"lincoln": {
		"MKZ", "Continental (2000s)", "Corsair",
		"Nautilus", "Aviator", "Navigator",
	},
	"mazda": {"Mazda3", "Mazda6", "CX-3", "CX-5", "CX-9", "CX-30", "MX-5"},
	"mercedes-benz": {
		"A-Class", "B-Class", "C-Class", "E-Class", "S-Class",
		"CLA", "CLS", "GLA", "GLC", "GLE", "GLS",
		"G-Class", "EQC", "EQE", "EQS",
	},
	"mini": {
		"John Cooper Works",
		"Cooper Hardtop S", "Cooper Hardtop",
		"3 Door Cooper S", "3 Door Cooper",
		"5 Door Cooper S", "5 Door Cooper",
		"Countryman Cooper S", "Countryman",
		"Clubman Cooper S", "Clubman",
		"Convertible Cooper S", "Convertible",
		"Paceman", "Roadster", "Coupe",
		"Cooper SE", "Cooper S", "Cooper",
	},
	"mitsubishi": {"Lancer (2000s)", "Outlander", "Eclipse Cross", "RVR"},
	"nissan": {
		"Versa", "Sentra", "Altima", "Maxima", "370Z", "GT-R",
		"Kicks", "Rogue", "Murano", "Pathfinder", "Armada",
		"Frontier", "Titan", "Leaf",
	},
	"porsche": {
		"911 (996+)", "Boxster (986+)", "Cayman",
		"Panamera", "Macan", "Cayenne", "Taycan",
	},
	"ram": {"1500", "2500", "3500", "ProMaster"},
	"subaru": {
		"Impreza", "Legacy", "WRX", "BRZ",
		"Crosstrek", "Forester", "Outback", "Ascent",
	},
	"tesla": {"Model S", "Model 3", "Model X", "Model Y", "Cybertruck"},
	"toyota": {
		"Yaris", "Corolla", "Camry", "Avalon", "Prius", "C-HR",
		"RAV4", "Venza", "Highlander", "4Runner", "Sequoia",
		"Tacoma", "Tundra", "Sienna",
	},
	"volkswagen": {
		"Golf", "Jetta", "Passat", "Arteon", "Beetle (2000s)",
		"Tiguan", "Atlas", "Touareg", "ID.4",
	},
	"volvo": {
		"S40 (2000s)", "S60", "S80 (2000s)", "S90",
		"V60", "V90", "XC40", "XC60", "XC90",
	},
}
