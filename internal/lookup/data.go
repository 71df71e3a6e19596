// ABOUTME: Static agronomy data tables: knowledge base, practices, crop calendar
// ABOUTME: Pakistan-centric content with Roman Urdu summaries per entry

package lookup

// knowledgeDB is the structured agronomy knowledge base, keyed by topic.
var knowledgeDB = map[string]any{
	"crop_basics": map[string]any{
		"wheat": map[string]any{
			"type":            "Rabi (Winter) crop",
			"scientific_name": "Triticum aestivum",
			"sowing_time":     "November-December",
			"harvest_time":    "April-May",
			"duration":        "120-150 days",
			"temperature":     "20-25°C optimal",
			"soil":            "Well-drained loamy soil, pH 6-7",
			"water":           "3-5 irrigations needed",
			"varieties":       []any{"Punjab-11", "Faisalabad-08", "Johar-16"},
			"urdu":            "Gandum - Rabi ki mukhy fasal",
		},
		"rice": map[string]any{
			"type":            "Kharif (Summer) crop",
			"scientific_name": "Oryza sativa",
			"sowing_time":     "May-June (nursery)",
			"transplanting":   "June-July",
			"harvest_time":    "October-November",
			"duration":        "140-160 days",
			"temperature":     "25-35°C",
			"soil":            "Heavy clay soil, pH 5.5-6.5",
			"water":           "Standing water required",
			"varieties":       []any{"Super Basmati", "KSK-133", "Kainat"},
			"urdu":            "Chawal - Kharif ki mukhy fasal",
		},
		"cotton": map[string]any{
			"type":            "Kharif (Summer) crop",
			"scientific_name": "Gossypium hirsutum",
			"sowing_time":     "April-May",
			"harvest_time":    "September-December (multiple pickings)",
			"duration":        "180-200 days",
			"temperature":     "25-35°C",
			"soil":            "Sandy loam, pH 6-8",
			"varieties":       []any{"BT-121", "FH-326", "IUB-13"},
			"urdu":            "Kapas - Kharif ki nakdi fasal",
		},
		"sugarcane": map[string]any{
			"type":         "Annual/Ratoon crop",
			"sowing_time":  "February-March (spring), September-October (autumn)",
			"harvest_time": "November-March",
			"duration":     "12-18 months",
			"water":        "Heavy water requirement",
			"varieties":    []any{"CPF-246", "HSF-240"},
			"urdu":         "Ganna - Barson wali fasal",
		},
	},

	"soil_science": map[string]any{
		"types": map[string]any{
			"sandy": map[string]any{
				"texture":         "Coarse, gritty",
				"drainage":        "Excellent (too fast)",
				"water_retention": "Poor",
				"nutrients":       "Low",
				"best_for":        []any{"Groundnut", "Watermelon", "Carrots"},
				"improvement":     "Add organic matter, compost",
				"urdu":            "Retli mitti - pani jaldi sookh jata hai",
			},
			"loamy": map[string]any{
				"texture":         "Balanced mixture",
				"drainage":        "Good",
				"water_retention": "Excellent",
				"nutrients":       "High",
				"best_for":        []any{"Wheat", "Rice", "Most vegetables"},
				"urdu":            "Dumat mitti - sab se achi mitti",
			},
			"clay": map[string]any{
				"texture":         "Fine, sticky when wet",
				"drainage":        "Poor",
				"water_retention": "Excellent (too much)",
				"nutrients":       "High",
				"best_for":        []any{"Rice", "Wheat", "Sugarcane"},
				"improvement":     "Add sand, gypsum for drainage",
				"urdu":            "Chikni mitti - pani zyada rakhti hai",
			},
		},
		"testing": map[string]any{
			"ph":             "Test every 2-3 years. Ideal: 6-7 for most crops",
			"npk":            "Test before sowing to determine fertilizer needs",
			"organic_matter": "Should be 2-5% for good fertility",
			"urdu":           "Mitti ka test agriculture lab me karwayen",
		},
	},

	"irrigation": map[string]any{
		"methods": map[string]any{
			"flood": map[string]any{
				"description": "Traditional method, field flooding",
				"efficiency":  "40-60%",
				"best_for":    []any{"Rice", "Wheat", "Sugarcane"},
				"cost":        "Low initial investment",
				"urdu":        "Sailab irrigation - poore khet me pani",
			},
			"drip": map[string]any{
				"description": "Water directly to plant roots",
				"efficiency":  "90-95%",
				"best_for":    []any{"Vegetables", "Fruits", "Cotton"},
				"cost":        "High initial, low running cost",
				"subsidy":     "Government provides 60% subsidy",
				"urdu":        "Boond boond pani - pani ki bachat",
			},
			"sprinkler": map[string]any{
				"description": "Rain-like water distribution",
				"efficiency":  "70-80%",
				"best_for":    []any{"Vegetables", "Fodder", "Wheat"},
				"cost":        "Medium",
				"urdu":        "Fawara system - barish ki tarah",
			},
		},
		"scheduling": map[string]any{
			"critical_stages": "Never skip water during flowering/grain formation",
			"timing":          "Early morning (5-8 AM) or evening (5-8 PM)",
			"frequency":       "Check soil moisture at 6 inches depth",
			"urdu":            "Subah ya sham ko pani dein",
		},
	},

	"fertilizers": map[string]any{
		"types": map[string]any{
			"urea": map[string]any{
				"npk":         "46:0:0",
				"nutrient":    "Nitrogen (N)",
				"use":         "Vegetative growth, green leaves",
				"timing":      "Split doses during growth",
				"price_range": "PKR 2000-2500 per 50kg bag",
				"urdu":        "Urea - paudhon ko hara karta hai",
			},
			"dap": map[string]any{
				"npk":         "18:46:0",
				"nutrient":    "Phosphorus (P) + Nitrogen",
				"use":         "Root development, at sowing",
				"timing":      "Apply during land preparation",
				"price_range": "PKR 7000-8500 per 50kg bag",
				"subsidy":     "PKR 1000 subsidy per bag",
				"urdu":        "DAP - jarein mazboot karta hai",
			},
			"potash": map[string]any{
				"npk":      "0:0:60",
				"nutrient": "Potassium (K)",
				"use":      "Fruit/grain quality, disease resistance",
				"timing":   "Flowering stage",
				"urdu":     "Potash - phool aur phal ke liye",
			},
			"npk_complex": map[string]any{
				"npk":    "Various ratios",
				"use":    "Balanced nutrition",
				"common": "12:32:16, 15:15:15",
				"urdu":   "Mix khaad - teeno tatve shamil",
			},
		},
		"organic": map[string]any{
			"fym":          "Farm Yard Manure - 5-10 tons per acre",
			"compost":      "Decomposed organic matter",
			"green_manure": "Sesbania, sunhemp before main crop",
			"urdu":         "Desi khaad - gaay gobar, patti",
		},
	},

	"pests_diseases": map[string]any{
		"common_pests": map[string]any{
			"aphids": map[string]any{
				"symptoms": "Sticky leaves, curled leaves, stunted growth",
				"organic":  "Neem oil spray (5ml/liter), ladybugs",
				"chemical": "Imidacloprid @ 0.5ml/liter",
				"urdu":     "Choti makhi - paton pe chipak jati hai",
			},
			"whitefly": map[string]any{
				"symptoms": "White flies under leaves, yellowing",
				"organic":  "Yellow sticky traps, neem spray",
				"chemical": "Acetamiprid @ 1g/liter",
				"urdu":     "Safed makhi - paton ke neeche",
			},
			"bollworm": map[string]any{
				"crop":     "Cotton",
				"symptoms": "Holes in bolls, damaged fruits",
				"organic":  "Pheromone traps, neem",
				"chemical": "BT spray, chlorpyrifos",
				"urdu":     "Tikka - kapas ka keera",
			},
		},
		"diseases": map[string]any{
			"rust": map[string]any{
				"symptoms": "Orange-brown pustules on leaves",
				"affected": "Wheat, pulses",
				"control":  "Fungicide spray, resistant varieties",
				"urdu":     "Zang - paton pe laal daag",
			},
			"blast": map[string]any{
				"symptoms": "Diamond-shaped lesions on leaves",
				"affected": "Rice",
				"control":  "Tricyclazole spray",
				"urdu":     "Blast - chawal ki beemari",
			},
		},
	},

	"farm_machinery": map[string]any{
		"tractor": map[string]any{
			"cost":      "PKR 1.2-2.5 million",
			"subsidy":   "Available through tractorization scheme",
			"financing": "Banks offer agricultural loans",
			"urdu":      "Tractor - zameen ki jotai ke liye",
		},
		"harvester": map[string]any{
			"types":   []any{"Combine harvester", "Reaper"},
			"rental":  "PKR 3000-5000 per acre",
			"subsidy": "Available for small farmers",
			"urdu":    "Harvester - fasal katne ki machine",
		},
		"spray_pump": map[string]any{
			"types": []any{"Manual", "Battery", "Motorized"},
			"cost":  "PKR 5000-50,000",
			"urdu":  "Spray pump - dawa chirakne ke liye",
		},
	},

	"government_schemes": map[string]any{
		"kisan_card": map[string]any{
			"loan_amount": "Up to PKR 150,000",
			"interest":    "Zero markup for 1 year",
			"eligibility": "Landowner with CNIC and documents",
			"apply_at":    "Zarai Taraqiati Bank (ZTBL)",
			"urdu":        "Kisan Card - sasta qarz",
		},
		"crop_insurance": map[string]any{
			"scheme":          "Prime Minister's Crop Insurance (PMFBP)",
			"premium_subsidy": "Government pays 50% premium",
			"coverage":        "Natural disasters, pest attacks",
			"helpline":        "051-9205771",
			"urdu":            "Fasal ki insurance - nuksaan ki tazmeen",
		},
		"subsidy_programs": map[string]any{
			"seeds":      "30% subsidy on certified seeds",
			"fertilizer": "PKR 1000 per DAP bag",
			"drip":       "60% subsidy on drip irrigation",
			"solar":      "50% subsidy on solar pumps",
			"urdu":       "Hukumat ki madad programs",
		},
	},

	"marketing": map[string]any{
		"selling_options": map[string]any{
			"mandi":    "Traditional market - auction system",
			"contract": "Pre-agreed price with companies",
			"online":   "Online platforms emerging",
			"export":   "High value for quality produce",
			"urdu":     "Fasal bechne ke tareeqe",
		},
		"pricing_factors": map[string]any{
			"demand_supply": "Main price determinant",
			"quality":       "Grade A gets premium",
			"timing":        "Off-season = higher prices",
			"storage":       "Cold storage extends selling window",
			"urdu":          "Qeemat kis cheez pe nirbhar karti hai",
		},
	},

	"organic_farming": map[string]any{
		"principles": map[string]any{
			"no_chemicals":  "No synthetic pesticides/fertilizers",
			"natural":       "Use organic inputs only",
			"certification": "Required for premium pricing",
			"market":        "Growing demand in urban areas",
			"urdu":          "Organic kheti - qudrati tareeqa",
		},
		"inputs": map[string]any{
			"fertilizer":           "Compost, vermicompost, FYM",
			"pest_control":         "Neem, tobacco extract, biopesticides",
			"certification_bodies": "PNAC (Pakistan National Accreditation Council)",
			"urdu":                 "Desi tareeqon se kheti",
		},
	},

	"climate_smart": map[string]any{
		"practices": map[string]any{
			"water_conservation": "Drip, mulching, rainwater harvesting",
			"soil_health":        "Cover crops, crop rotation, no-till",
			"renewable_energy":   "Solar pumps, biogas from waste",
			"weather_info":       "Use weather apps for planning",
			"urdu":               "Mausam ke hisab se kheti",
		},
		"challenges": map[string]any{
			"heat_stress":        "Rising temperatures affect yield",
			"water_scarcity":     "Groundwater depletion",
			"unpredictable_rain": "Delayed or excess rainfall",
			"solutions":          "Drought-resistant varieties, efficient irrigation",
			"urdu":               "Mausam ki tabdili ke masail",
		},
	},
}

// practicesDB holds step-by-step farming practices, keyed by practice name.
var practicesDB = map[string]any{
	"land_preparation": map[string]any{
		"steps": []any{
			"1. Remove previous crop residue",
			"2. Deep ploughing (8-10 inches)",
			"3. Planking/leveling",
			"4. Apply FYM if available",
			"5. Final ploughing before sowing",
		},
		"urdu": "Zameen tayyar karne ka tareeqa",
	},
	"seed_selection": map[string]any{
		"criteria": []any{
			"Use certified seeds",
			"Check germination rate (>85%)",
			"Select disease-resistant varieties",
			"Match variety to your region",
		},
		"sources": []any{"Punjab Seed Corporation", "Private companies", "Agriculture department"},
		"urdu":    "Acha beej kaise chuno",
	},
	"water_management": map[string]any{
		"tips": []any{
			"Check soil moisture before irrigation",
			"Irrigate at critical stages",
			"Avoid over-watering",
			"Use efficient methods (drip/sprinkler)",
		},
		"urdu": "Pani ka intezam",
	},
	"weed_control": map[string]any{
		"methods": map[string]any{
			"manual":        "Hand weeding - labor intensive",
			"chemical":      "Herbicides - use carefully",
			"mulching":      "Cover soil to prevent weeds",
			"crop_rotation": "Breaks weed cycles",
		},
		"urdu": "Jhangli ghaas se nijat",
	},
	"harvest_timing": map[string]any{
		"indicators": []any{
			"Grain moisture content",
			"Color of grains/fruits",
			"Leaf yellowing (for grains)",
			"Days after flowering",
		},
		"urdu": "Fasal katne ka sahi waqt",
	},
	"post_harvest": map[string]any{
		"steps": []any{
			"Threshing/cleaning",
			"Drying to safe moisture (12-14%)",
			"Storage in proper conditions",
			"Pest control in storage",
		},
		"storage_tips": "Use airtight containers, add neem leaves",
		"urdu":         "Fasal katne ke baad kya karein",
	},
}

// MonthPlan describes the farming season and key activities for one month.
type MonthPlan struct {
	Season     string
	Activities []string
	Urdu       string
}

// farmingCalendar maps month number (1-12) to the Punjab cropping plan.
var farmingCalendar = map[int]MonthPlan{
	1:  {"Winter (Rabi)", []string{"Wheat irrigation", "Fertilizer for wheat", "Potato harvest begins"}, "Gandum me pani aur khaad"},
	2:  {"Spring prep", []string{"Sugarcane planting", "Wheat fertilizer (2nd dose)", "Prepare for cotton"}, "Ganna lagana shuru"},
	3:  {"Spring", []string{"Cotton land preparation", "Wheat irrigation", "Summer vegetables sowing"}, "Kapas ki zameen tayyar"},
	4:  {"Summer start (Kharif)", []string{"Cotton sowing", "Rice nursery preparation", "Wheat harvest"}, "Kapas bona, gandum katna"},
	5:  {"Hot (Kharif)", []string{"Rice nursery", "Cotton irrigation", "Maize sowing"}, "Chawal ki nursery"},
	6:  {"Monsoon start", []string{"Rice transplanting", "Cotton pest management", "Fodder sowing"}, "Chawal ropna"},
	7:  {"Monsoon", []string{"Rice irrigation", "Cotton fertilizer", "Weed control"}, "Chawal aur kapas ka khayal"},
	8:  {"Late monsoon", []string{"Cotton picking prep", "Rice fertilizer", "Vegetable sowing"}, "Fasal pakne ki tayyari"},
	9:  {"Post-monsoon", []string{"Cotton picking", "Rice harvest prep", "Wheat land prep"}, "Kapas todna shuru"},
	10: {"Autumn (Rabi prep)", []string{"Rice harvest", "Wheat land preparation", "Sugarcane harvest"}, "Chawal katna, gandum ki tayyari"},
	11: {"Winter start (Rabi)", []string{"Wheat sowing", "Fertilizer application", "Sugarcane harvest"}, "Gandum bona"},
	12: {"Winter (Rabi)", []string{"Wheat irrigation", "Potato sowing", "Fodder crops"}, "Gandum me pani, aalu lagana"},
}

var monthNames = []string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
