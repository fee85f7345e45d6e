package naming

// baseClassTable maps item class names to parent node ids.
var baseClassTable = Table{
	"WEAPON":             "5422acb9af1c889c16000029",
	"PISTOL":             "5447b5cf4bdc2d65278b4567",
	"REVOLVER":           "617f1ef5e8b54b0998387733",
	"SMG":                "5447b5e04bdc2d62278b4567",
	"ASSAULT_RIFLE":      "5447b5f14bdc2d61278b4567",
	"ASSAULT_CARBINE":    "5447b5fc4bdc2d87278b4567",
	"SHOTGUN":            "5447b6094bdc2dc3278b4567",
	"MARKSMAN_RIFLE":     "5447b6194bdc2d67278b4567",
	"SNIPER_RIFLE":       "5447b6254bdc2dc3278b4568",
	"MACHINEGUN":         "5447bed64bdc2d97278b4568",
	"KNIFE":              "5447e1d04bdc2dff2f8b4567",
	"THROWABLE":          "543be6564bdc2df4348b4568",
	"MOD":                "5448fe124bdc2da5018b4567",
	"MUZZLE":             "5448fe394bdc2d0d028b456c",
	"SILENCER":           "550aa4cd4bdc2dd8348b456c",
	"COLLIMATOR":         "55818ad54bdc2ddc698b4569",
	"MAGAZINE":           "5448bc234bdc2d3c308b4569",
	"AMMO":               "5485a8684bdc2da71d8b4567",
	"AMMO_BOX":           "543be5cb4bdc2deb348b4568",
	"BARTER_ITEM":        "5448eb774bdc2d0a728b4567",
	"MONEY":              "543be5dd4bdc2deb348b4569",
	"FOOD":               "5448e8d04bdc2ddf718b4569",
	"DRINK":              "5448e8d64bdc2dce718b4568",
	"MEDS":               "543be5664bdc2dd4348b4569",
	"KEY_MECHANICAL":     "5c99f98d86f7745c314214b3",
	"KEYCARD":            "5c164d2286f774194c5e69fa",
	"BACKPACK":           "5448e53e4bdc2d60728b4567",
	"ARMOR":              "5448e54d4bdc2dcc718b4568",
	"VEST":               "5448e5284bdc2dcb718b4567",
	"HEADWEAR":           "5a341c4086f77401f2541505",
	"SIMPLE_CONTAINER":   "5795f317245977243854e041",
	"LOCKABLE_CONTAINER": "5671435f4bdc2d96058b4569",
}

// handbookCategoryTable maps handbook category names to category ids.
var handbookCategoryTable = Table{
	"WEAPONS":          "5b5f78dc86f77409407a7f8e",
	"PISTOLS":          "5b5f792486f77447ed5636b3",
	"ASSAULT_RIFLES":   "5b5f78fc86f77409407a7f90",
	"ASSAULT_CARBINES": "5b5f78e986f77447ed5636b1",
	"SMGS":             "5b5f796a86f774093f2ed3c0",
	"SHOTGUNS":         "5b5f794b86f77409407a7f92",
	"MARKSMAN_RIFLES":  "5b5f791486f774093f2ed3be",
	"BOLT_ACTION":      "5b5f798886f77447ed5636b5",
	"MACHINEGUNS":      "5b5f79a486f77409407a7f94",
	"WEAPON_PARTS":     "5b5f71a686f77447ed5636ab",
	"MAGAZINES":        "5b5f754a86f774094242f19b",
	"AMMO":             "5b47574386f77428ca22b346",
	"BARTER":           "5b47574386f77428ca22b33e",
	"MEDICATION":       "5b47574386f77428ca22b344",
	"PROVISIONS":       "5b47574386f77428ca22b340",
	"KEYS":             "5b47574386f77428ca22b342",
}
