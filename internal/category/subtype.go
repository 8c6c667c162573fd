package category

import "strings"

// subtypeRule is one step of a category's subtype decision chain. A rule
// matches when the tag at TagKey contains one of TagContains (or equals
// one of TagEquals), or the lowercased name contains one of NameAny.
// Chains are evaluated in order and the first match wins, so earlier
// rules shadow later ones even when several conditions hold.
type subtypeRule struct {
	Label       string
	TagKey      string
	TagContains []string
	TagEquals   []string
	NameAny     []string
	TagPresent  bool // matches on bare presence of TagKey
}

func (r subtypeRule) matches(tags map[string]string, nameLower string) bool {
	if r.TagKey != "" {
		v, ok := tags[r.TagKey]
		if ok {
			if r.TagPresent {
				return true
			}
			for _, s := range r.TagContains {
				if strings.Contains(v, s) {
					return true
				}
			}
			for _, s := range r.TagEquals {
				if v == s {
					return true
				}
			}
		}
	}
	for _, s := range r.NameAny {
		if strings.Contains(nameLower, s) {
			return true
		}
	}
	return false
}

// Subtype derives the human-readable subtype label for a feature already
// known to belong to this category. Falls back to the category's generic
// label when no rule matches.
func (c Category) Subtype(tags map[string]string, name string) string {
	lower := strings.ToLower(name)
	for _, r := range c.subtypes {
		if r.matches(tags, lower) {
			return r.Label
		}
	}
	return c.FallbackSubtype
}

var residentialSubtypes = []subtypeRule{
	{Label: "Apartment/Dormitory", TagKey: "building", TagEquals: []string{"apartments", "dormitory"}},
	{Label: "House", TagKey: "building", TagEquals: []string{"house"}},
	{Label: "Cluster/Villa", NameAny: []string{"cluster", "villa"}},
	{Label: "Housing Complex", NameAny: []string{"perumahan"}},
}

var educationSubtypes = []subtypeRule{
	{Label: "University", TagKey: "amenity", TagContains: []string{"university"}, NameAny: []string{"universitas"}},
	{Label: "School", TagKey: "amenity", TagContains: []string{"school"}, NameAny: []string{"sd", "smp", "sma", "smk", "sekolah"}},
	{Label: "Kindergarten", TagKey: "amenity", TagContains: []string{"kindergarten"}, NameAny: []string{"tk", "paud"}},
	{Label: "Islamic Boarding School", NameAny: []string{"pesantren"}},
	{Label: "Course/Training Center", NameAny: []string{"kursus", "course", "training"}},
}

var publicAreaSubtypes = []subtypeRule{
	{Label: "Hospital", TagKey: "amenity", TagContains: []string{"hospital"}, NameAny: []string{"rumah sakit", "rs"}},
	{Label: "Clinic", TagKey: "amenity", TagContains: []string{"clinic"}, NameAny: []string{"klinik", "puskesmas"}},
	{Label: "Park", TagKey: "leisure", TagContains: []string{"park"}, NameAny: []string{"taman"}},
	{Label: "Place of Worship", TagKey: "amenity", TagContains: []string{"place_of_worship"}, NameAny: []string{"masjid", "gereja", "pura", "vihara", "klenteng"}},
	{Label: "Museum", TagKey: "tourism", TagContains: []string{"museum"}, NameAny: []string{"museum"}},
	{Label: "Bus Station/Terminal", TagKey: "amenity", TagContains: []string{"bus_station"}, NameAny: []string{"terminal"}},
	{Label: "Train/Metro Station", TagKey: "public_transport", TagContains: []string{"station"}, NameAny: []string{"stasiun"}},
	{Label: "Airport", TagKey: "aeroway", TagContains: []string{"terminal"}, NameAny: []string{"bandara", "airport"}},
}

var culinarySubtypes = []subtypeRule{
	{Label: "Restaurant", TagKey: "amenity", TagContains: []string{"restaurant"}, NameAny: []string{"restoran"}},
	{Label: "Cafe", TagKey: "amenity", TagContains: []string{"cafe"}, NameAny: []string{"cafe", "kafe"}},
	{Label: "Food Court", TagKey: "amenity", TagContains: []string{"food_court"}, NameAny: []string{"food court"}},
	{Label: "Fast Food", TagKey: "amenity", TagContains: []string{"fast_food"}, NameAny: []string{"fast food"}},
	{Label: "Warmindo", NameAny: []string{"warmindo"}},
	{Label: "Warung", NameAny: []string{"warung", "warteg"}},
	{Label: "Kedai", NameAny: []string{"kedai"}},
	{Label: "Bakery", TagKey: "shop", TagContains: []string{"bakery"}, NameAny: []string{"bakery", "roti"}},
	{Label: "Coffee Shop", TagKey: "shop", TagContains: []string{"coffee"}, NameAny: []string{"kopi"}},
	{Label: "Food Stall", NameAny: []string{"ayam", "chicken", "bakso", "mie", "nasi", "soto", "pecel"}},
}

var businessCenterSubtypes = []subtypeRule{
	{Label: "Office Building", TagKey: "building", TagContains: []string{"office"}, NameAny: []string{"perkantoran"}},
	{Label: "Shophouse", NameAny: []string{"ruko"}},
	{Label: "Coworking Space", NameAny: []string{"coworking"}},
	{Label: "Industrial Area", TagKey: "landuse", TagContains: []string{"industrial"}, NameAny: []string{"kawasan industri"}},
	{Label: "Supermarket", TagKey: "shop", TagContains: []string{"supermarket"}, NameAny: []string{"supermarket"}},
	{Label: "Shopping Mall", TagKey: "shop", TagContains: []string{"mall"}, NameAny: []string{"mall", "plaza"}},
	{Label: "Market", TagKey: "amenity", TagContains: []string{"marketplace"}, NameAny: []string{"pasar", "market"}},
	{Label: "Convenience Store", TagKey: "shop", TagContains: []string{"convenience"}, NameAny: []string{"alfamart", "indomaret"}},
	{Label: "Shop", TagKey: "shop", TagPresent: true},
}

var groceriesSubtypes = []subtypeRule{
	{Label: "Supermarket", TagKey: "shop", TagContains: []string{"supermarket"}, NameAny: []string{"supermarket"}},
	{Label: "Grocery Store", TagKey: "shop", TagContains: []string{"grocery"}, NameAny: []string{"grocery", "sembako"}},
	{Label: "Greengrocer/Fruit Shop", TagKey: "shop", TagContains: []string{"greengrocer"}, NameAny: []string{"sayur", "buah"}},
	{Label: "Butcher Shop", TagKey: "shop", TagContains: []string{"butcher"}, NameAny: []string{"daging", "meat"}},
	{Label: "Seafood Shop", TagKey: "shop", TagContains: []string{"seafood"}, NameAny: []string{"seafood"}},
	{Label: "Traditional Market", TagKey: "amenity", TagContains: []string{"marketplace"}, NameAny: []string{"pasar", "market"}},
	{Label: "Bakery", TagKey: "shop", TagContains: []string{"bakery"}, NameAny: []string{"bakery", "roti"}},
	{Label: "Small Grocery", NameAny: []string{"kelontong"}},
}

var convenientStoresSubtypes = []subtypeRule{
	{Label: "Indomaret", NameAny: []string{"indomaret"}},
	{Label: "Alfamart/Alfamidi", NameAny: []string{"alfamart", "alfamidi", "alfa"}},
	{Label: "Circle K", NameAny: []string{"circle k"}},
	{Label: "Family Mart", NameAny: []string{"family mart"}},
	{Label: "Lawson", NameAny: []string{"lawson"}},
	{Label: "7-Eleven", NameAny: []string{"7-eleven", "7 eleven", "seven eleven"}},
	{Label: "Mini Market", NameAny: []string{"minimart", "mini mart", "mini market"}},
	{Label: "Convenience Store", TagKey: "shop", TagContains: []string{"convenience"}, NameAny: []string{"convenience"}},
	{Label: "Kiosk/Small Shop", TagKey: "shop", TagContains: []string{"kiosk"}, NameAny: []string{"kios", "warung"}},
}

var industrialSubtypes = []subtypeRule{
	{Label: "Factory", TagKey: "building", TagContains: []string{"factory"}, NameAny: []string{"pabrik", "factory"}},
	{Label: "Warehouse", TagKey: "building", TagContains: []string{"warehouse"}, NameAny: []string{"gudang", "warehouse"}},
	{Label: "Industrial Area", TagKey: "landuse", TagContains: []string{"industrial"}, NameAny: []string{"kawasan industri", "industrial"}},
	{Label: "Workshop", TagKey: "industrial", TagContains: []string{"workshop"}, NameAny: []string{"bengkel", "workshop"}},
	{Label: "Manufacturing Facility", TagKey: "building", TagContains: []string{"manufacturing"}, NameAny: []string{"manufacturing", "manufaktur"}},
}

var hospitalClinicSubtypes = []subtypeRule{
	{Label: "Hospital", TagKey: "amenity", TagContains: []string{"hospital"}, NameAny: []string{"rumah sakit", "hospital", "rs"}},
	{Label: "Clinic", TagKey: "amenity", TagContains: []string{"clinic"}, NameAny: []string{"klinik", "clinic"}},
	{Label: "Doctor's Office", TagKey: "amenity", TagContains: []string{"doctors"}, NameAny: []string{"dokter", "doctor"}},
	{Label: "Pharmacy", TagKey: "amenity", TagContains: []string{"pharmacy"}, NameAny: []string{"apotek", "apotik", "pharmacy"}},
	{Label: "Dental Clinic", TagKey: "amenity", TagContains: []string{"dentist"}, NameAny: []string{"gigi", "dental"}},
	{Label: "Community Health Center", NameAny: []string{"puskesmas", "health center", "health centre"}},
	{Label: "Medical Laboratory", NameAny: []string{"laboratory", "lab", "laboratorium"}},
}
