package category

import (
	"strconv"
	"strings"
)

// QueryMode selects the query template set. Simplified templates carry
// narrower filters and a 15s engine timeout; comprehensive templates
// carry the full filter vocabulary and a 30s engine timeout. Selection
// is a static configuration toggle, not adaptive.
type QueryMode int

const (
	Simplified QueryMode = iota
	Comprehensive
)

// ParseQueryMode maps a config string to a QueryMode. Unknown values
// fall back to Simplified.
func ParseQueryMode(s string) QueryMode {
	if strings.EqualFold(s, "comprehensive") {
		return Comprehensive
	}
	return Simplified
}

func (m QueryMode) String() string {
	if m == Comprehensive {
		return "comprehensive"
	}
	return "simplified"
}

func (m QueryMode) header() string {
	if m == Comprehensive {
		return "[out:json][timeout:30]; ("
	}
	return "[out:json][timeout:15]; ("
}

const queryFooter = "); out body;"

// Template returns the raw parameterized query template for this category.
func (c Category) Template(mode QueryMode) string {
	if mode == Comprehensive {
		return comprehensiveQueries[c.Key]
	}
	return simplifiedQueries[c.Key]
}

// BuildQuery substitutes radius and coordinates into the category's
// template for the given mode.
func BuildQuery(c Category, mode QueryMode, lat, lon float64, radius int) string {
	return substitute(c.Template(mode), lat, lon, radius)
}

// BuildCombinedQuery concatenates every category's filter body into a
// single query so one round trip covers all nine categories. Each
// per-category body is stripped of its header and footer first.
func BuildCombinedQuery(mode QueryMode, lat, lon float64, radius int) string {
	var b strings.Builder
	b.WriteString(mode.header())
	for _, c := range registry {
		body := substitute(c.Template(mode), lat, lon, radius)
		body = strings.Replace(body, mode.header(), "", 1)
		body = strings.Replace(body, queryFooter, "", 1)
		b.WriteString(body)
	}
	b.WriteString(queryFooter)
	return b.String()
}

func substitute(template string, lat, lon float64, radius int) string {
	r := strings.NewReplacer(
		"{radius}", strconv.Itoa(radius),
		"{lat}", strconv.FormatFloat(lat, 'f', -1, 64),
		"{lon}", strconv.FormatFloat(lon, 'f', -1, 64),
	)
	return r.Replace(template)
}

// simplifiedQueries trade recall for speed: narrower tag filters and a
// shorter engine timeout.
var simplifiedQueries = map[Key]string{
	Residential: `[out:json][timeout:15]; (way["landuse"="residential"](around:{radius},{lat},{lon}); way["building"~"residential|apartments|house|dormitory"](around:{radius},{lat},{lon}); node["building"~"residential|apartments|house|dormitory"](around:{radius},{lat},{lon}); node["name"~"perumahan|apartemen|rumah susun|asrama|cluster|villa"](around:{radius},{lat},{lon}); way["name"~"perumahan|apartemen|rumah susun|asrama|cluster|villa"](around:{radius},{lat},{lon}); ); out body;`,

	Education: `[out:json][timeout:15]; (node["amenity"~"school|university|college|kindergarten"](around:{radius},{lat},{lon}); way["amenity"~"school|university|college|kindergarten"](around:{radius},{lat},{lon}); node["building"~"school|university|college"](around:{radius},{lat},{lon}); way["building"~"school|university|college"](around:{radius},{lat},{lon}); node["name"~"SD|SMP|SMA|Universitas|TK|PAUD|Pesantren|Lembaga kursus|Sekolah"](around:{radius},{lat},{lon}); way["name"~"SD|SMP|SMA|Universitas|TK|PAUD|Pesantren|Lembaga kursus|Sekolah"](around:{radius},{lat},{lon}); ); out body;`,

	PublicArea: `[out:json][timeout:15]; (node["amenity"~"park|community_centre|marketplace|place_of_worship|bus_station|terminal|hospital|clinic|doctors|healthcare"](around:{radius},{lat},{lon}); way["amenity"~"park|community_centre|marketplace|place_of_worship|bus_station|terminal|hospital|clinic|doctors|healthcare"](around:{radius},{lat},{lon}); node["leisure"="park"](around:{radius},{lat},{lon}); way["leisure"="park"](around:{radius},{lat},{lon}); node["public_transport"](around:{radius},{lat},{lon}); node["tourism"="museum"](around:{radius},{lat},{lon}); way["tourism"="museum"](around:{radius},{lat},{lon}); node["healthcare"](around:{radius},{lat},{lon}); way["healthcare"](around:{radius},{lat},{lon}); node["name"~"taman kota|alun-alun|stasiun|terminal|tempat ibadah|museum|rumah sakit|hospital|klinik|puskesmas|poliklinik|rs|clinic"](around:{radius},{lat},{lon}); way["name"~"taman kota|alun-alun|stasiun|terminal|tempat ibadah|museum|rumah sakit|hospital|klinik|puskesmas|poliklinik|rs|clinic"](around:{radius},{lat},{lon}); ); out body;`,

	Culinary: `[out:json][timeout:15]; (node["amenity"~"restaurant|cafe|food_court|fast_food"](around:{radius},{lat},{lon}); way["amenity"~"restaurant|cafe|food_court|fast_food"](around:{radius},{lat},{lon}); node["shop"~"bakery|coffee|tea|convenience"](around:{radius},{lat},{lon}); way["shop"~"bakery|coffee|tea|convenience"](around:{radius},{lat},{lon}); node["cuisine"](around:{radius},{lat},{lon}); way["cuisine"](around:{radius},{lat},{lon}); node["name"~"restoran|warung makan|kedai kopi|street food|food court|cafe|rumah makan|warteg|kantin|warmindo|warung|kedai|mie ayam|bakso|nasi|pecel|soto|es krim|ice cream|minuman|kafe|coffee|tea|teh|jus|juice|ayam|chicken|burger|pizza|seafood|steak|depot|eatery|kopi|padang|catering|martabak|bakery|kue|roti"](around:{radius},{lat},{lon}); way["name"~"restoran|warung makan|kedai kopi|street food|food court|cafe|rumah makan|warteg|kantin|warmindo|warung|kedai|mie ayam|bakso|nasi|pecel|soto|es krim|ice cream|minuman|kafe|coffee|tea|teh|jus|juice|ayam|chicken|burger|pizza|seafood|steak|depot|eatery|kopi|padang|catering|martabak|bakery|kue|roti"](around:{radius},{lat},{lon}); ); out body;`,

	BusinessCenter: `[out:json][timeout:15]; (node["shop"](around:{radius},{lat},{lon}); way["shop"](around:{radius},{lat},{lon}); node["building"~"commercial|office|retail|supermarket|industrial"](around:{radius},{lat},{lon}); way["building"~"commercial|office|retail|supermarket|industrial"](around:{radius},{lat},{lon}); node["amenity"="marketplace"](around:{radius},{lat},{lon}); way["amenity"="marketplace"](around:{radius},{lat},{lon}); node["office"](around:{radius},{lat},{lon}); way["office"](around:{radius},{lat},{lon}); node["shop"~"mall|supermarket|department_store"](around:{radius},{lat},{lon}); way["shop"~"mall|supermarket|department_store"](around:{radius},{lat},{lon}); node["name"~"gedung perkantoran|ruko|kawasan industri|coworking space|perkantoran|mall|plaza|pusat pembelanjaan|shopping center|shopping mall|department store|hypermarket|supermarket|retail|indomaret|alfamart|alfamidi|pertokoan|pasar|market"](around:{radius},{lat},{lon}); way["name"~"gedung perkantoran|ruko|kawasan industri|coworking space|perkantoran|mall|plaza|pusat pembelanjaan|shopping center|shopping mall|department store|hypermarket|supermarket|retail|indomaret|alfamart|alfamidi|pertokoan|pasar|market"](around:{radius},{lat},{lon}); ); out body;`,

	Groceries: `[out:json][timeout:15]; (node["shop"~"supermarket|grocery|greengrocer|butcher|seafood|deli|spices|bakery"](around:{radius},{lat},{lon}); way["shop"~"supermarket|grocery|greengrocer|butcher|seafood|deli|spices|bakery"](around:{radius},{lat},{lon}); node["name"~"toko kelontong|toko sembako|toko sayur|mini market|mini mart|fresh market|pasar tradisional|supermarket|grocery|greengrocer|butcher|seafood|deli|spices"](around:{radius},{lat},{lon}); way["name"~"toko kelontong|toko sembako|toko sayur|mini market|mini mart|fresh market|pasar tradisional|supermarket|grocery|greengrocer|butcher|seafood|deli|spices"](around:{radius},{lat},{lon}); ); out body;`,

	ConvenientStores: `[out:json][timeout:15]; (node["shop"~"convenience"](around:{radius},{lat},{lon}); way["shop"~"convenience"](around:{radius},{lat},{lon}); node["name"~"indomaret|alfamart|alfamidi|circle k|family mart|lawson|7-eleven|7 eleven|seven eleven|minimart|mini mart|mini market|convenience store"](around:{radius},{lat},{lon}); way["name"~"indomaret|alfamart|alfamidi|circle k|family mart|lawson|7-eleven|7 eleven|seven eleven|minimart|mini mart|mini market|convenience store"](around:{radius},{lat},{lon}); ); out body;`,

	Industrial: `[out:json][timeout:15]; (node["landuse"~"industrial"](around:{radius},{lat},{lon}); way["landuse"~"industrial"](around:{radius},{lat},{lon}); node["building"~"industrial|factory|warehouse"](around:{radius},{lat},{lon}); way["building"~"industrial|factory|warehouse"](around:{radius},{lat},{lon}); node["industrial"](around:{radius},{lat},{lon}); way["industrial"](around:{radius},{lat},{lon}); node["name"~"pabrik|factory|industri|industrial|warehousing|pergudangan|gudang|warehouse|manufacturing|kawasan industri|workshop|bengkel"](around:{radius},{lat},{lon}); way["name"~"pabrik|factory|industri|industrial|warehousing|pergudangan|gudang|warehouse|manufacturing|kawasan industri|workshop|bengkel"](around:{radius},{lat},{lon}); ); out body;`,

	HospitalClinic: `[out:json][timeout:15]; (node["amenity"~"hospital|clinic|doctors|healthcare"](around:{radius},{lat},{lon}); way["amenity"~"hospital|clinic|doctors|healthcare"](around:{radius},{lat},{lon}); node["healthcare"](around:{radius},{lat},{lon}); way["healthcare"](around:{radius},{lat},{lon}); node["building"="hospital"](around:{radius},{lat},{lon}); way["building"="hospital"](around:{radius},{lat},{lon}); node["name"~"rumah sakit|hospital|klinik|clinic|puskesmas|bidan|dokter|doctor|medical center|pusat kesehatan|rs|apotek|apotik|pharmacy|medical"](around:{radius},{lat},{lon}); way["name"~"rumah sakit|hospital|klinik|clinic|puskesmas|bidan|dokter|doctor|medical center|pusat kesehatan|rs|apotek|apotik|pharmacy|medical"](around:{radius},{lat},{lon}); ); out body;`,
}

// comprehensiveQueries trade speed for recall: the full filter and
// keyword vocabulary per category.
var comprehensiveQueries = map[Key]string{
	Residential: `[out:json][timeout:30]; (node["building"~"residential|apartments|house|dormitory"](around:{radius},{lat},{lon}); way["building"~"residential|apartments|house|dormitory"](around:{radius},{lat},{lon}); way["landuse"="residential"](around:{radius},{lat},{lon}); node["amenity"="housing"](around:{radius},{lat},{lon}); way["amenity"="housing"](around:{radius},{lat},{lon}); node["name"~"perumahan|apartemen|rumah susun|asrama|cluster|villa|apartment|residence|housing|dormitory"](around:{radius},{lat},{lon}); way["name"~"perumahan|apartemen|rumah susun|asrama|cluster|villa|apartment|residence|housing|dormitory"](around:{radius},{lat},{lon}); ); out body;`,

	Education: `[out:json][timeout:30]; (node["amenity"~"school|university|college|kindergarten|language_school|education|training"](around:{radius},{lat},{lon}); way["amenity"~"school|university|college|kindergarten|language_school|education|training"](around:{radius},{lat},{lon}); node["building"~"school|university|college|kindergarten|education"](around:{radius},{lat},{lon}); way["building"~"school|university|college|kindergarten|education"](around:{radius},{lat},{lon}); node["name"~"SD|SMP|SMA|SMK|Universitas|TK|PAUD|Pesantren|Lembaga kursus|Sekolah|School|University|College|Academy|Institute|Pendidikan|Education|Training|Kursus|Course"](around:{radius},{lat},{lon}); way["name"~"SD|SMP|SMA|SMK|Universitas|TK|PAUD|Pesantren|Lembaga kursus|Sekolah|School|University|College|Academy|Institute|Pendidikan|Education|Training|Kursus|Course"](around:{radius},{lat},{lon}); ); out body;`,

	PublicArea: `[out:json][timeout:30]; (node["amenity"~"park|community_centre|marketplace|place_of_worship|bus_station|terminal|bus_stop|ferry_terminal|transportation|public_building|hospital|clinic|doctors|healthcare"](around:{radius},{lat},{lon}); way["amenity"~"park|community_centre|marketplace|place_of_worship|bus_station|terminal|bus_stop|ferry_terminal|transportation|public_building|hospital|clinic|doctors|healthcare"](around:{radius},{lat},{lon}); node["leisure"~"park|garden|playground"](around:{radius},{lat},{lon}); way["leisure"~"park|garden|playground"](around:{radius},{lat},{lon}); node["public_transport"](around:{radius},{lat},{lon}); way["public_transport"](around:{radius},{lat},{lon}); node["tourism"~"museum|gallery|attraction"](around:{radius},{lat},{lon}); way["tourism"~"museum|gallery|attraction"](around:{radius},{lat},{lon}); node["healthcare"](around:{radius},{lat},{lon}); way["healthcare"](around:{radius},{lat},{lon}); node["building"="hospital"](around:{radius},{lat},{lon}); way["building"="hospital"](around:{radius},{lat},{lon}); node["name"~"taman kota|alun-alun|stasiun|terminal|tempat ibadah|museum|masjid|gereja|pura|vihara|klenteng|mosque|church|temple|synagogue|park|square|station|terminal|public area|public space|rumah sakit|hospital|klinik|puskesmas|poliklinik|rs|clinic|health center|medical center"](around:{radius},{lat},{lon}); way["name"~"taman kota|alun-alun|stasiun|terminal|tempat ibadah|museum|masjid|gereja|pura|vihara|klenteng|mosque|church|temple|synagogue|park|square|station|terminal|public area|public space|rumah sakit|hospital|klinik|puskesmas|poliklinik|rs|clinic|health center|medical center"](around:{radius},{lat},{lon}); node["aeroway"](around:{radius},{lat},{lon}); way["aeroway"](around:{radius},{lat},{lon}); ); out body;`,

	Culinary: `[out:json][timeout:30]; (node["amenity"~"restaurant|cafe|food_court|fast_food|pub|bar|bistro"](around:{radius},{lat},{lon}); way["amenity"~"restaurant|cafe|food_court|fast_food|pub|bar|bistro"](around:{radius},{lat},{lon}); node["shop"~"bakery|coffee|tea|convenience|grocery|supermarket|food"](around:{radius},{lat},{lon}); way["shop"~"bakery|coffee|tea|convenience|grocery|supermarket|food"](around:{radius},{lat},{lon}); node["cuisine"](around:{radius},{lat},{lon}); way["cuisine"](around:{radius},{lat},{lon}); node["name"~"restoran|warung makan|kedai kopi|street food|food court|cafe|restaurant|warung|warteg|rumah makan|kantin|angkringan|kedai|bakery|bakeri|kue|roti|makanan|minuman|kuliner|catering|dapur|food|coffee|kopi|makan|padang|stall|canteen|warmindo|warung mie|warung bakso|warung nasi|fried chicken|ayam goreng|ayam geprek|burger|pizza|steakhouse|bbq|barbecue|seafood|aneka|jus|juice|milk|tea|teh|ice cream|es krim|martabak|depot|eatery|bakso|mie ayam|bebek|nasi|gado-gado|sate|satay|soto|gulai|rendang|pecel|bistro|kebab"](around:{radius},{lat},{lon}); way["name"~"restoran|warung makan|kedai kopi|street food|food court|cafe|restaurant|warung|warteg|rumah makan|kantin|angkringan|kedai|bakery|bakeri|kue|roti|makanan|minuman|kuliner|catering|dapur|food|coffee|kopi|makan|padang|stall|canteen|warmindo|warung mie|warung bakso|warung nasi|fried chicken|ayam goreng|ayam geprek|burger|pizza|steakhouse|bbq|barbecue|seafood|aneka|jus|juice|milk|tea|teh|ice cream|es krim|martabak|depot|eatery|bakso|mie ayam|bebek|nasi|gado-gado|sate|satay|soto|gulai|rendang|pecel|bistro|kebab"](around:{radius},{lat},{lon}); ); out body;`,

	BusinessCenter: `[out:json][timeout:30]; (node["shop"](around:{radius},{lat},{lon}); way["shop"](around:{radius},{lat},{lon}); node["building"~"commercial|office|retail|supermarket|industrial|warehouse|factory"](around:{radius},{lat},{lon}); way["building"~"commercial|office|retail|supermarket|industrial|warehouse|factory"](around:{radius},{lat},{lon}); node["amenity"~"marketplace|bank|atm|bureau_de_change|business_center"](around:{radius},{lat},{lon}); way["amenity"~"marketplace|bank|atm|bureau_de_change|business_center"](around:{radius},{lat},{lon}); node["office"](around:{radius},{lat},{lon}); way["office"](around:{radius},{lat},{lon}); node["industrial"](around:{radius},{lat},{lon}); way["industrial"](around:{radius},{lat},{lon}); node["landuse"~"commercial|retail|industrial"](around:{radius},{lat},{lon}); way["landuse"~"commercial|retail|industrial"](around:{radius},{lat},{lon}); node["shop"~"mall|supermarket|department_store|convenience|marketplace"](around:{radius},{lat},{lon}); way["shop"~"mall|supermarket|department_store|convenience|marketplace"](around:{radius},{lat},{lon}); node["name"~"gedung perkantoran|ruko|kawasan industri|coworking space|perkantoran|office building|office tower|mall|plaza|pusat bisnis|business center|factory|warehouse|gudang|pasar|market|shop|toko|retail|store|supermarket|minimarket|alfamart|indomaret|alfamidi|mini market|department store|industrial|industry|pusat perbelanjaan|shopping center|shopping mall|plaza|square|trade center|ITC|mangga dua|tanah abang|pasar|market|bazaar|hypermarket|carrefour|giant|lotte mart|ramayana|matahari|metro|transmart|grand indonesia|central park|pondok indah|teras kota"](around:{radius},{lat},{lon}); way["name"~"gedung perkantoran|ruko|kawasan industri|coworking space|perkantoran|office building|office tower|mall|plaza|pusat bisnis|business center|factory|warehouse|gudang|pasar|market|shop|toko|retail|store|supermarket|minimarket|alfamart|indomaret|alfamidi|mini market|department store|industrial|industry|pusat perbelanjaan|shopping center|shopping mall|plaza|square|trade center|ITC|mangga dua|tanah abang|pasar|market|bazaar|hypermarket|carrefour|giant|lotte mart|ramayana|matahari|metro|transmart|grand indonesia|central park|pondok indah|teras kota"](around:{radius},{lat},{lon}); ); out body;`,

	Groceries: `[out:json][timeout:30]; (node["shop"~"supermarket|grocery|greengrocer|butcher|seafood|deli|spices|bakery|convenience|food"](around:{radius},{lat},{lon}); way["shop"~"supermarket|grocery|greengrocer|butcher|seafood|deli|spices|bakery|convenience|food"](around:{radius},{lat},{lon}); node["amenity"="marketplace"](around:{radius},{lat},{lon}); way["amenity"="marketplace"](around:{radius},{lat},{lon}); node["name"~"toko kelontong|toko sembako|toko sayur|mini market|mini mart|fresh market|pasar tradisional|supermarket|hypermarket|grocery|greengrocer|butcher|seafood|deli|spices|bakery|pasar|market|swalayan|toserba|giant|carrefour|lottemart|ranch market|farmers market|transmart|hero|brastagi|foodmart|foodhall|organic|food market|superindo|grand lucky|total buah|buah|sayur|vegetables|fruits|meat|daging|food|makanan|pasaraya|fresh|segar|toko buah|grocery|groceries|buah segar|minimarket|foodmart|grosir|wholesale|retail|super indo"](around:{radius},{lat},{lon}); way["name"~"toko kelontong|toko sembako|toko sayur|mini market|mini mart|fresh market|pasar tradisional|supermarket|hypermarket|grocery|greengrocer|butcher|seafood|deli|spices|bakery|pasar|market|swalayan|toserba|giant|carrefour|lottemart|ranch market|farmers market|transmart|hero|brastagi|foodmart|foodhall|organic|food market|superindo|grand lucky|total buah|buah|sayur|vegetables|fruits|meat|daging|food|makanan|pasaraya|fresh|segar|toko buah|grocery|groceries|buah segar|minimarket|foodmart|grosir|wholesale|retail|super indo"](around:{radius},{lat},{lon}); ); out body;`,

	ConvenientStores: `[out:json][timeout:30]; (node["shop"~"convenience|kiosk"](around:{radius},{lat},{lon}); way["shop"~"convenience|kiosk"](around:{radius},{lat},{lon}); node["amenity"="marketplace"](around:{radius},{lat},{lon}); way["amenity"="marketplace"](around:{radius},{lat},{lon}); node["name"~"indomaret|alfamart|alfamidi|circle k|family mart|lawson|7-eleven|7 eleven|seven eleven|minimart|mini mart|mini market|convenience store|convenience|toko kelontong|warung|warung kelontong|kios|kiosk|toko|mart|eceran|ritel|minishop|toko serba ada|toko kecil|wartel|kiosco|retail|alfaexpress|alfa midi|alfa express|indomart|alfa|indomaret point"](around:{radius},{lat},{lon}); way["name"~"indomaret|alfamart|alfamidi|circle k|family mart|lawson|7-eleven|7 eleven|seven eleven|minimart|mini mart|mini market|convenience store|convenience|toko kelontong|warung|warung kelontong|kios|kiosk|toko|mart|eceran|ritel|minishop|toko serba ada|toko kecil|wartel|kiosco|retail|alfaexpress|alfa midi|alfa express|indomart|alfa|indomaret point"](around:{radius},{lat},{lon}); ); out body;`,

	Industrial: `[out:json][timeout:30]; (node["landuse"~"industrial|factory"](around:{radius},{lat},{lon}); way["landuse"~"industrial|factory"](around:{radius},{lat},{lon}); node["building"~"industrial|factory|warehouse|manufacture|manufacturing"](around:{radius},{lat},{lon}); way["building"~"industrial|factory|warehouse|manufacture|manufacturing"](around:{radius},{lat},{lon}); node["industrial"~"factory|zone|area|estate|manufacturing|workshop"](around:{radius},{lat},{lon}); way["industrial"~"factory|zone|area|estate|manufacturing|workshop"](around:{radius},{lat},{lon}); node["man_made"~"works|factory"](around:{radius},{lat},{lon}); way["man_made"~"works|factory"](around:{radius},{lat},{lon}); node["name"~"pabrik|factory|industri|industrial|warehousing|pergudangan|gudang|warehouse|manufacturing|kawasan industri|workshop|bengkel|industrial estate|industrial complex|industrial park|industrial area|manufacture|logistic|logistik|manufacturing|assembly|assembling|processing|storage|fabrikasi|fabrication|plant|kilang|depot|garasi|maintenance|pemeliharaan|perbaikan|repair|machining|welding|galvanizing|forge|foundry|smelter|refinery|kiln|mill|manufaktur"](around:{radius},{lat},{lon}); way["name"~"pabrik|factory|industri|industrial|warehousing|pergudangan|gudang|warehouse|manufacturing|kawasan industri|workshop|bengkel|industrial estate|industrial complex|industrial park|industrial area|manufacture|logistic|logistik|manufacturing|assembly|assembling|processing|storage|fabrikasi|fabrication|plant|kilang|depot|garasi|maintenance|pemeliharaan|perbaikan|repair|machining|welding|galvanizing|forge|foundry|smelter|refinery|kiln|mill|manufaktur"](around:{radius},{lat},{lon}); ); out body;`,

	HospitalClinic: `[out:json][timeout:30]; (node["amenity"~"hospital|clinic|doctors|healthcare|dentist|pharmacy|veterinary|health_centre"](around:{radius},{lat},{lon}); way["amenity"~"hospital|clinic|doctors|healthcare|dentist|pharmacy|veterinary|health_centre"](around:{radius},{lat},{lon}); node["healthcare"](around:{radius},{lat},{lon}); way["healthcare"](around:{radius},{lat},{lon}); node["building"~"hospital|clinic|healthcare"](around:{radius},{lat},{lon}); way["building"~"hospital|clinic|healthcare"](around:{radius},{lat},{lon}); node["emergency"="yes"](around:{radius},{lat},{lon}); way["emergency"="yes"](around:{radius},{lat},{lon}); node["name"~"rumah sakit|hospital|klinik|clinic|puskesmas|bidan|dokter|doctor|medical center|pusat kesehatan|rs|apotek|apotik|pharmacy|medical|klinik gigi|dental|dentist|orthodontist|poliklinik|laboratorium|lab|laboratory|radiologi|radiology|ambulance|ambulans|ICU|IGD|UGD|emergency|physiotherapy|fisioterapi|rehab|rehabilitasi|rehabilitation|psikiatri|psychiatry|psikologi|psychology|mental health|kesehatan jiwa|health|medical service|layanan kesehatan|specialist|spesialis|care|nursing|perawatan|therapy|terapi|orthopaedic|orthopedic|optometrist|eye|mata|neurology|saraf|children|anak|ginekologi|obstetri|kanker|cancer|kardiovaskular|cardiovascular|jantung|heart|internist|internal|kulit|skin|urologi|urology|fertility|reproduksi|bedah|surgery|aesthetics|kecantikan|darurat|intensive|trauma"](around:{radius},{lat},{lon}); way["name"~"rumah sakit|hospital|klinik|clinic|puskesmas|bidan|dokter|doctor|medical center|pusat kesehatan|rs|apotek|apotik|pharmacy|medical|klinik gigi|dental|dentist|orthodontist|poliklinik|laboratorium|lab|laboratory|radiologi|radiology|ambulance|ambulans|ICU|IGD|UGD|emergency|physiotherapy|fisioterapi|rehab|rehabilitasi|rehabilitation|psikiatri|psychiatry|psikologi|psychology|mental health|kesehatan jiwa|health|medical service|layanan kesehatan|specialist|spesialis|care|nursing|perawatan|therapy|terapi|orthopaedic|orthopedic|optometrist|eye|mata|neurology|saraf|children|anak|ginekologi|obstetri|kanker|cancer|kardiovaskular|cardiovascular|jantung|heart|internist|internal|kulit|skin|urologi|urology|fertility|reproduksi|bedah|surgery|aesthetics|kecantikan|darurat|intensive|trauma"](around:{radius},{lat},{lon}); ); out body;`,
}
