package naming

// itemTable maps item and container short names to template ids.
var itemTable = Table{
	// Currencies
	"ROUBLES": "5449016a4bdc2d6f028b456f",
	"DOLLARS": "5696686a4bdc2da3298b456a",
	"EUROS":   "569668774bdc2da2298b4568",
	"GP_COIN": "5d235b4d86f7742e017bc88a",

	// Pistols
	"PISTOL_PM":      "5448bd6b4bdc2dfc2f8b4569",
	"PISTOL_TT":      "571a12c42459771f627b58a0",
	"PISTOL_MP443":   "576a581d2459771e7b1bc4f1",
	"PISTOL_GLOCK17": "5a7ae0c351dfba0017554310",
	"PISTOL_M1911A1": "5e81c3cbac2bb513793cdc75",
	"PISTOL_PRODIGY": "665fe0e865683281eb8e7ed6",

	// Rifles
	"RIFLE_AK74N": "5644bd2b4bdc2d3b4c8b4572",
	"RIFLE_M4A1":  "5447a9cd4bdc2dbd208b4567",

	// Barter goods
	"BITCOIN":        "59faff1d86f7746c51718c9c",
	"GRAPHICS_CARD":  "57347ca924597744596b4e71",
	"LEDX":           "5c0530ee86f774697952d952",
	"TETRIZ":         "5c12688486f77426843c7d32",
	"MORPHINE":       "544fb3f34bdc2d03748b456a",
	"SALEWA":         "544fb45d4bdc2dee738b4568",
	"CONDENSED_MILK": "5734773724597737fd047c14",

	// Static loot containers
	"CONTAINER_WEAPON_BOX":    "5909d5ef86f77467974efbd8",
	"CONTAINER_JACKET":        "578f8778245977358849a9b5",
	"CONTAINER_DEAD_SCAV":     "5909e4b686f7747f5b744fa4",
	"CONTAINER_SAFE":          "578f8782245977354405a1e3",
	"CONTAINER_TOOLBOX":       "5909d36d86f774660f0bb900",
	"CONTAINER_DRAWER":        "578f87b7245977356274f2cd",
	"CONTAINER_WOODEN_CRATE":  "578f87ad245977356274f2cc",
	"CONTAINER_GROUND_CACHE":  "5d6d2bb386f774785b07a77a",
	"CONTAINER_BURIED_BARREL": "5d6d2b5486f774785c2ba8ea",
	"CONTAINER_MEDBAG_SMU06":  "5909d24f86f77466f56e6855",
}
