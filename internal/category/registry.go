package category

// registry holds the nine category definitions. Tag rules and keyword
// lists mirror the production rule vocabulary; keywords are bilingual
// (Indonesian/English) and compared against the lowercased feature name.
var registry = []Category{
	{
		Key:     Residential,
		Display: "Residential",
		TagRules: []TagRule{
			{Key: "building", Values: []string{"residential", "apartments", "house", "dormitory"}},
			{Key: "landuse", Values: []string{"residential"}},
			{Key: "amenity", Values: []string{"housing"}},
		},
		Keywords: []string{
			"perumahan", "apartemen", "rumah susun", "asrama", "cluster", "villa",
			"apartment", "residence", "housing", "dormitory",
		},
		Marker:          MarkerStyle{Color: "#4CAF50", Icon: "home"},
		FallbackSubtype: "Residential Area",
		subtypes:        residentialSubtypes,
	},
	{
		Key:     Education,
		Display: "Education",
		TagRules: []TagRule{
			{Key: "amenity", Values: []string{"school", "university", "college", "kindergarten", "language_school", "education", "training"}},
			{Key: "building", Values: []string{"school", "university", "college", "kindergarten", "education"}},
		},
		Keywords: []string{
			"sd", "smp", "sma", "smk", "universitas", "tk", "paud", "pesantren",
			"lembaga kursus", "sekolah", "school", "university", "college",
			"academy", "institute", "pendidikan", "education", "training",
			"kursus", "course",
		},
		Marker:          MarkerStyle{Color: "#2196F3", Icon: "graduation-cap"},
		FallbackSubtype: "Educational Institution",
		subtypes:        educationSubtypes,
	},
	{
		Key:     PublicArea,
		Display: "Public Area",
		TagRules: []TagRule{
			{Key: "amenity", Values: []string{"park", "community_centre", "marketplace", "place_of_worship", "bus_station", "terminal", "bus_stop", "ferry_terminal", "transportation", "public_building"}},
			{Key: "leisure", Values: []string{"park", "garden", "playground"}},
			{Key: "tourism", Values: []string{"museum", "gallery", "attraction"}},
			{Key: "public_transport"},
			{Key: "aeroway", Values: []string{"aerodrome", "terminal"}},
		},
		Keywords: []string{
			"taman kota", "alun-alun", "stasiun", "terminal", "tempat ibadah",
			"museum", "masjid", "gereja", "pura", "vihara", "klenteng", "mosque",
			"church", "temple", "synagogue", "park", "square", "station",
			"public area", "public space",
		},
		Marker:          MarkerStyle{Color: "#9C27B0", Icon: "tree"},
		FallbackSubtype: "Public Facility",
		subtypes:        publicAreaSubtypes,
	},
	{
		Key:     Culinary,
		Display: "Culinary",
		TagRules: []TagRule{
			{Key: "amenity", Values: []string{"restaurant", "cafe", "food_court", "fast_food", "bar", "pub", "bistro"}},
			{Key: "shop", Values: []string{"bakery", "coffee", "tea", "convenience", "grocery", "supermarket", "food"}},
			{Key: "cuisine"},
		},
		Keywords: []string{
			"restoran", "warung makan", "kedai kopi", "street food", "food court",
			"cafe", "restaurant", "warung", "warteg", "rumah makan", "kantin",
			"angkringan", "kedai", "bakery", "bakeri", "kue", "roti", "makanan",
			"minuman", "kuliner", "catering", "dapur", "food", "coffee", "kopi",
			"makan", "padang", "stall", "canteen", "warmindo", "warung mie",
			"warung bakso", "warung nasi", "fried chicken", "ayam goreng",
			"ayam geprek", "burger", "pizza", "steakhouse", "bbq", "barbecue",
			"seafood", "aneka", "jus", "juice", "milk", "tea", "teh", "ice cream",
			"es krim", "martabak", "depot", "eatery", "bakso", "mie ayam",
			"bebek", "nasi", "gado-gado", "sate", "satay", "soto", "gulai",
			"rendang", "pecel", "bistro", "kebab",
		},
		Marker:          MarkerStyle{Color: "#FF9800", Icon: "utensils"},
		FallbackSubtype: "Food & Beverage",
		subtypes:        culinarySubtypes,
	},
	{
		Key:     BusinessCenter,
		Display: "Business Center",
		TagRules: []TagRule{
			{Key: "shop"},
			{Key: "building", Values: []string{"commercial", "office", "retail", "supermarket"}},
			{Key: "amenity", Values: []string{"marketplace", "bank", "atm", "bureau_de_change", "business_center"}},
			{Key: "office"},
			{Key: "landuse", Values: []string{"commercial", "retail"}},
		},
		Keywords: []string{
			"gedung perkantoran", "ruko", "coworking space", "perkantoran",
			"office building", "office tower", "mall", "plaza", "pusat bisnis",
			"business center", "pasar", "market", "shop", "toko", "retail",
			"store", "supermarket", "department store", "pusat perbelanjaan",
			"shopping center", "shopping mall", "square", "trade center", "itc",
			"mangga dua", "tanah abang", "bazaar", "hypermarket", "carrefour",
			"giant", "lotte mart", "ramayana", "matahari", "metro", "transmart",
			"grand indonesia", "central park", "pondok indah", "teras kota",
		},
		Marker:          MarkerStyle{Color: "#607D8B", Icon: "briefcase"},
		FallbackSubtype: "Commercial Area",
		subtypes:        businessCenterSubtypes,
	},
	{
		Key:     Groceries,
		Display: "Groceries",
		TagRules: []TagRule{
			{Key: "shop", Values: []string{"supermarket", "grocery", "greengrocer", "butcher", "seafood", "deli", "spices", "bakery", "food"}},
			{Key: "amenity", Values: []string{"marketplace"}},
		},
		Keywords: []string{
			"toko kelontong", "toko sembako", "toko sayur", "mini market",
			"mini mart", "fresh market", "pasar tradisional", "supermarket",
			"hypermarket", "grocery", "greengrocer", "butcher", "seafood",
			"deli", "spices", "bakery", "pasar", "market", "swalayan", "toserba",
			"giant", "carrefour", "lottemart", "ranch market", "farmers market",
			"transmart", "hero", "brastagi", "foodmart", "foodhall", "organic",
			"food market", "superindo", "grand lucky", "total buah", "buah",
			"sayur", "vegetables", "fruits", "meat", "daging", "food", "makanan",
			"pasaraya", "fresh", "segar", "toko buah", "groceries", "buah segar",
			"minimarket", "grosir", "wholesale", "retail", "super indo",
		},
		Marker:          MarkerStyle{Color: "#8BC34A", Icon: "shopping-cart"},
		FallbackSubtype: "Grocery Store",
		subtypes:        groceriesSubtypes,
	},
	{
		Key:     ConvenientStores,
		Display: "Convenient Stores",
		TagRules: []TagRule{
			{Key: "shop", Values: []string{"convenience", "kiosk"}},
		},
		Keywords: []string{
			"indomaret", "alfamart", "alfamidi", "circle k", "family mart",
			"lawson", "7-eleven", "7 eleven", "seven eleven", "minimart",
			"mini mart", "mini market", "convenience store", "convenience",
			"toko kelontong", "warung kelontong", "kios", "kiosk", "toko",
			"mart", "eceran", "ritel", "minishop", "toko serba ada",
			"toko kecil", "wartel", "kiosco", "retail", "alfaexpress",
			"alfa midi", "alfa express", "indomart", "alfa", "indomaret point",
		},
		Marker:          MarkerStyle{Color: "#00BCD4", Icon: "shopping-basket"},
		FallbackSubtype: "Convenience Store",
		subtypes:        convenientStoresSubtypes,
	},
	{
		Key:     Industrial,
		Display: "Industrial",
		TagRules: []TagRule{
			{Key: "landuse", Values: []string{"industrial", "factory"}},
			{Key: "building", Values: []string{"industrial", "factory", "warehouse", "manufacture", "manufacturing"}},
			{Key: "industrial"},
			{Key: "man_made", Values: []string{"works", "factory"}},
		},
		Keywords: []string{
			"pabrik", "factory", "industri", "industrial", "warehousing",
			"pergudangan", "gudang", "warehouse", "manufacturing",
			"kawasan industri", "workshop", "bengkel", "industrial estate",
			"industrial complex", "industrial park", "industrial area",
			"manufacture", "logistic", "logistik", "assembly", "assembling",
			"processing", "storage", "fabrikasi", "fabrication", "plant",
			"kilang", "depot", "garasi", "maintenance", "pemeliharaan",
			"perbaikan", "repair", "machining", "welding", "galvanizing",
			"forge", "foundry", "smelter", "refinery", "kiln", "mill",
			"manufaktur",
		},
		Marker:          MarkerStyle{Color: "#795548", Icon: "industry"},
		FallbackSubtype: "Industrial Facility",
		subtypes:        industrialSubtypes,
	},
	{
		Key:     HospitalClinic,
		Display: "Hospital/Clinic",
		TagRules: []TagRule{
			{Key: "amenity", Values: []string{"hospital", "clinic", "doctors", "healthcare", "dentist", "pharmacy", "veterinary", "health_centre"}},
			{Key: "healthcare"},
			{Key: "building", Values: []string{"hospital", "clinic", "healthcare"}},
			{Key: "emergency", Values: []string{"yes"}},
		},
		Keywords: []string{
			"rumah sakit", "hospital", "klinik", "clinic", "puskesmas", "bidan",
			"dokter", "doctor", "medical center", "pusat kesehatan", "rs",
			"apotek", "apotik", "pharmacy", "medical", "klinik gigi", "dental",
			"dentist", "orthodontist", "poliklinik", "laboratorium", "lab",
			"laboratory", "radiologi", "radiology", "ambulance", "ambulans",
			"icu", "igd", "ugd", "emergency", "physiotherapy", "fisioterapi",
			"rehab", "rehabilitasi", "rehabilitation", "psikiatri", "psychiatry",
			"psikologi", "psychology", "mental health", "kesehatan jiwa",
			"health", "medical service", "layanan kesehatan", "specialist",
			"spesialis", "care", "nursing", "perawatan", "therapy", "terapi",
			"orthopaedic", "orthopedic", "optometrist", "eye", "mata",
			"neurology", "saraf", "children", "anak", "ginekologi", "obstetri",
			"kanker", "cancer", "kardiovaskular", "cardiovascular", "jantung",
			"heart", "internist", "internal", "kulit", "skin", "urologi",
			"urology", "fertility", "reproduksi", "bedah", "surgery",
			"aesthetics", "kecantikan", "darurat", "intensive", "trauma",
		},
		Marker:          MarkerStyle{Color: "#F44336", Icon: "plus"},
		FallbackSubtype: "Healthcare Facility",
		subtypes:        hospitalClinicSubtypes,
	},
}
