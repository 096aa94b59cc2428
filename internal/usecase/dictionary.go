package usecase

// foodDictionary is the curated set of canonical food terms used for
// spell correction. It is a slice, not a map: Levenshtein fallback keeps
// the first minimal-distance entry, so iteration order must be stable.
// All entries are lowercase and trimmed; none is empty.
var foodDictionary = []string{
	// Proteins
	"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp",
	"turkey", "lamb", "bacon", "sausage", "steak", "ham", "crab",
	"squid", "tilapia", "milkfish", "egg", "eggs", "tofu",

	// Vegetables
	"broccoli", "carrot", "cabbage", "lettuce", "spinach", "tomato",
	"potato", "onion", "garlic", "ginger", "eggplant", "squash",
	"okra", "cucumber", "pepper", "corn", "beans", "peas", "celery",
	"mushroom", "radish", "kangkong", "malunggay", "ampalaya",
	"sitaw", "pechay", "upo", "sayote",

	// Fruits
	"apple", "banana", "orange", "mango", "grape", "lemon", "lime",
	"avocado", "strawberry", "blueberry", "pineapple", "watermelon",
	"papaya", "coconut", "calamansi", "guava", "jackfruit", "lanzones",

	// Grains & starches
	"rice", "bread", "pasta", "noodles", "spaghetti", "cereal",
	"oats", "flour", "wheat", "tortilla", "quinoa", "bihon", "canton",

	// Dairy
	"milk", "cheese", "butter", "yogurt", "cream", "cheddar",
	"mozzarella", "parmesan",

	// Condiments & sauces
	"ketchup", "mustard", "mayonnaise", "soy sauce", "vinegar",
	"fish sauce", "oyster sauce", "salsa", "honey", "syrup", "jam",
	"bagoong", "patis", "toyo",

	// Named dishes
	"adobo", "sinigang", "kare kare", "lechon", "lumpia", "pancit",
	"sisig", "tinola", "nilaga", "bulalo", "menudo", "kaldereta",
	"afritada", "bicol express", "laing", "pinakbet", "dinuguan",
	"arroz caldo", "champorado", "halo halo", "turon", "bibingka",
	"pizza", "burger", "sandwich", "soup", "salad", "stew", "curry",
	"burrito", "taco", "paella", "omelette",

	// Cooking-method adjectives
	"fried", "grilled", "baked", "roasted", "steamed", "boiled",
	"sauteed", "smoked", "raw", "fresh", "crispy", "spicy", "sweet",
	"sour", "salted",
}

// commonMisspellings maps known systematic typos to their canonical
// correction. An entry here takes priority over the Levenshtein search
// because it encodes observed errors, not generic distance. A key never
// maps to itself.
var commonMisspellings = map[string]string{
	"chikcne":   "chicken",
	"chiken":    "chicken",
	"chicen":    "chicken",
	"chikin":    "chicken",
	"brocolli":  "broccoli",
	"tomatoe":   "tomato",
	"potatoe":   "potato",
	"letuce":    "lettuce",
	"onoin":     "onion",
	"garlick":   "garlic",
	"spagetti":  "spaghetti",
	"sphagetti": "spaghetti",
	"sandwhich": "sandwich",
	"avacado":   "avocado",
	"bannana":   "banana",
	"seafod":    "seafood",
	"yoghurt":   "yogurt",
	"mayonaise": "mayonnaise",
	"karekare":  "kare kare",
	"adobong":   "adobo",
	"siningang": "sinigang",
	"sinagang":  "sinigang",
	"litson":    "lechon",
	"lumpiya":   "lumpia",
	"pansit":    "pancit",
	"halohalo":  "halo halo",
}

// translationTable maps a canonical English term to its equivalents in
// other languages (Filipino/Tagalog first, then Spanish where one
// exists). Entries carry no language tag; the display label is inferred
// heuristically at suggestion time. Lookup is bidirectional: querying by
// any array member recovers the key and all siblings.
var translationTable = map[string][]string{
	"chicken":   {"manok", "pollo"},
	"pork":      {"baboy", "cerdo"},
	"beef":      {"baka", "res"},
	"fish":      {"isda", "pescado"},
	"shrimp":    {"hipon", "camaron"},
	"squid":     {"pusit", "calamares"},
	"crab":      {"alimango", "cangrejo"},
	"egg":       {"itlog", "huevo"},
	"rice":      {"kanin", "bigas", "arroz"},
	"noodles":   {"pancit", "fideos"},
	"bread":     {"tinapay", "pan"},
	"milk":      {"gatas", "leche"},
	"cheese":    {"keso", "queso"},
	"vegetable": {"gulay", "verdura"},
	"eggplant":  {"talong", "berenjena"},
	"squash":    {"kalabasa", "calabaza"},
	"corn":      {"mais", "elote"},
	"garlic":    {"bawang", "ajo"},
	"onion":     {"sibuyas", "cebolla"},
	"ginger":    {"luya", "jengibre"},
	"banana":    {"saging", "platano"},
	"mango":     {"mangga"},
	"coconut":   {"niyog", "buko", "coco"},
	"soup":      {"sabaw", "sopa"},
	"vinegar":   {"suka", "vinagre"},
	"salt":      {"asin", "sal"},
	"sugar":     {"asukal", "azucar"},
	"water":     {"tubig", "agua"},
	"adobo":     {"chicken adobo", "pork adobo"},
	"sinigang":  {"sour soup", "tamarind soup"},
	"lechon":    {"roast pig", "roasted pig"},
	"fried":     {"prito", "frito"},
	"grilled":   {"inihaw", "asado"},
	"steamed":   {"pinasingaw", "al vapor"},
}
