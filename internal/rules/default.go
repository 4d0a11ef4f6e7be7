package rules

// DefaultPriority breaks score ties between categories.
var DefaultPriority = []string{
	"finance", "health", "home_services", "education",
	"transport", "food", "subscriptions", "auto",
}

// Default returns the built-in keyword table.
// Category order is significant: it is the last-resort tie-break.
func Default() *Table {
	cats := make([]Category, len(defaultCategories))
	for i, c := range defaultCategories {
		cats[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return &Table{
		Categories: cats,
		Priority:   append([]string(nil), DefaultPriority...),
	}
}

var defaultCategories = []Category{
	{Name: "food", Keywords: []string{
		"pyaterochka", "magnit", "spar", "bystronom", "yarcher", "lenta",
		"maria-ra", "products", "food", "supermarket", "vegetables",
		"fruits", "bread", "bakery", "confectionery", "gastronomy",
		"grocery", "market",
	}},
	{Name: "transport", Keywords: []string{
		"metro", "bus", "trolleybus", "tram", "train", "electric train",
		"taxi", "gasoline", "fuel", "travel", "troika card", "transport",
		"motorcycle", "bicycle", "carsharing", "electric scooter",
		"gazpromneft", "lukoil", "rosneft", "gas station", "fine",
		"traffic police", "parking", "car wash", "insurance", "osago", "casco",
	}},
	{Name: "entertainment", Keywords: []string{
		"cinema", "movie", "restaurant", "cafe", "concert", "theater",
		"bar", "club", "ticket", "aquapark", "bowling", "karaoke",
		"attraction", "game", "formula kino", "cinema park", "quest",
		"shooting range", "zoo",
	}},
	{Name: "health", Keywords: []string{
		"pharmacy", "doctor", "hospital", "medicine", "medication", "dentist",
		"tests", "consultation", "vitamins", "x-ray", "mri", "msct", "scan",
	}},
	{Name: "travel", Keywords: []string{
		"travel", "hotel", "hostel", "air ticket", "train", "airplane",
		"station", "airport", "excursion", "resort",
	}},
	{Name: "sport", Keywords: []string{
		"sportmaster", "sporting goods", "sports suit", "trainer", "dumbbells",
		"weights", "barbell", "elliptical", "treadmill", "bicycle", "bike helmet",
		"bike accessories", "swimsuit", "swimming goggles", "swimming cap",
		"skis", "skates", "snowboard", "football", "ball", "sports nutrition",
		"protein", "water bottle", "fitness bracelet",
	}},
	{Name: "clothes_and_shoes", Keywords: []string{
		"clothing", "clothes", "shoes", "footwear", "t-shirt", "polo", "shirt",
		"blouse", "sweater", "sweatshirt", "hoodie", "cardigan", "pants",
		"jeans", "shorts", "skirt", "dress", "jacket", "coat", "down jacket",
		"raincoat", "sneakers", "sports shoes", "shoes", "loafers", "moccasins",
		"boots", "sandals", "slippers", "heels", "ballet flats", "espadrilles",
	}},
	{Name: "children", Keywords: []string{
		"children's world", "toys", "toy", "children's clothing", "baby food",
		"kindergarten", "nursery", "car seat", "pediatrician", "clubs",
		"sections", "school", "stationery", "doll", "car", "constructor",
		"puzzle", "crib", "stroller",
	}},
	{Name: "pets", Keywords: []string{
		"pet store", "pet supplies", "wet nose", "pet food", "carrier",
		"bed", "scratching post", "house", "leash", "collar", "harness",
		"bowl", "water dispenser", "grooming", "veterinarian", "boarding",
		"pet hotel", "walking", "training", "dog trainer", "kennel",
		"shelter", "animal help", "animal charity",
	}},
	{Name: "home", Keywords: []string{
		"lemana pro", "construction", "furniture", "interior", "repair",
		"wallpaper", "paint", "laminate", "tile", "plumbing", "electrical goods",
		"tools", "garden", "vegetable garden", "plants", "flowers", "textiles",
		"bedding", "towels", "dishes", "kitchen", "household appliances",
		"cleaning", "detergents", "lighting", "decor",
	}},
	{Name: "electronics", Keywords: []string{
		"m.video", "eldorado", "citilink", "dns", "appliances", "electronics",
		"computer", "laptop", "phone", "smartphone", "tablet", "headphones",
		"speakers", "tv", "television", "photo", "video", "gadgets",
		"accessories", "charging", "cable", "router", "printer", "games",
		"software", "service", "repair", "apple", "iphone", "ipad", "samsung",
		"xiaomi", "huawei", "honor", "sony", "philips", "hp", "panasonic", "intel",
	}},
	{Name: "beauty", Keywords: []string{
		"rive gauche", "letoile", "golden apple", "cosmetics", "perfume",
		"beauty salon", "hairdresser", "barbershop", "stylist", "makeup artist",
		"manicure", "pedicure", "nail service", "eyebrows", "eyelashes",
		"extensions", "lamination", "cosmetologist", "massage", "spa", "sauna",
	}},
	{Name: "finance", Keywords: []string{
		"bank", "insurance", "credit", "mortgage", "deposit", "investment",
		"taxes", "transfer", "payment", "bill", "receipt", "fine", "duty",
		"debt", "loan", "leasing", "factoring",
	}},
	{Name: "education", Keywords: []string{
		"education", "studying", "university", "institute", "college",
		"courses", "tutor", "training", "school", "kindergarten", "student",
		"textbooks", "stationery", "pens", "notebooks", "album", "paints", "brushes",
	}},
	{Name: "home_services", Keywords: []string{
		"utilities", "rent", "electricity", "water", "heating", "gas",
		"internet", "television", "intercom", "concierge", "cleaning",
		"laundry", "dry cleaning", "tailor", "shoe repair", "keys",
		"master call", "plumber", "electrician", "installation", "mounting",
		"water delivery", "garbage disposal", "security",
	}},
	{Name: "gifts_flowers_jewelry", Keywords: []string{
		"gift", "flowers", "bouquet", "jewelry", "gold", "silver",
		"jewellery", "diamond", "ring", "earrings", "chain", "souvenir",
		"postcard", "packaging", "crystal", "porcelain", "antiques",
		"painting", "frame", "costume jewelry", "watch", "watchmaker",
		"florist", "flower",
	}},
	{Name: "business", Keywords: []string{
		"stationery", "office", "advertising", "marketing", "printing",
		"copying", "courier", "mail", "delivery", "packaging", "materials",
		"tools", "equipment", "communication", "mobile", "internet",
	}},
	{Name: "subscriptions", Keywords: []string{
		"subscription", "streaming", "ivi", "wink", "okko", "more.tv", "start",
		"yandex plus", "vk music", "sberprime", "apple music", "yandex music",
		"telegram premium", "online course", "software", "antivirus", "cloud",
		"hosting", "domain",
	}},
	{Name: "auto", Keywords: []string{
		"auto service", "tire fitting", "car wash", "spare parts", "battery",
		"oil", "filter", "brakes", "glass", "tires", "wheels", "maintenance",
		"diagnostics", "painting", "body repair", "tow truck", "inspection",
		"insurance", "garage", "parking", "auto detailing", "polishing",
	}},
}
