package naming

// botTypeTable lists the bot types whose loadouts may receive custom items,
// keyed by host bot type id.
var botTypeTable = Table{
	"assault":                 "scav",
	"cursedassault":           "cursed scav",
	"marksman":                "sniper scav",
	"pmcbot":                  "raider",
	"exusec":                  "rogue",
	"arenafighterevent":       "arena fighter",
	"crazyassaultevent":       "crazy scav",
	"bear":                    "bear pmc",
	"usec":                    "usec pmc",
	"bossbully":               "reshala",
	"followerbully":           "reshala guard",
	"bossgluhar":              "glukhar",
	"followergluharassault":   "glukhar assault",
	"followergluharscout":     "glukhar scout",
	"followergluharsecurity":  "glukhar security",
	"bosskilla":               "killa",
	"bosskojaniy":             "shturman",
	"followerkojaniy":         "shturman guard",
	"bosssanitar":             "sanitar",
	"followersanitar":         "sanitar guard",
	"bosstagilla":             "tagilla",
	"bossknight":              "knight",
	"followerbigpipe":         "big pipe",
	"followerbirdeye":         "birdeye",
	"bosszryachiy":            "zryachiy",
	"followerzryachiy":        "zryachiy guard",
	"bossboar":                "kaban",
	"followerboar":            "kaban guard",
	"bosskolontay":            "kolontay",
	"followerkolontayassault": "kolontay assault",
	"sectantpriest":           "cultist priest",
	"sectantwarrior":          "cultist",
}
