package naming

// traderTable maps trader names to trader ids.
var traderTable = Table{
	"prapor":      "54cb50c76803fa8b248b4571",
	"therapist":   "54cb57776803fa99248b456e",
	"fence":       "579dc571d53a0658a154fbec",
	"skier":       "58330581ace78e27b8b10cee",
	"peacekeeper": "5935c25fb3acc3127c3d8cd9",
	"mechanic":    "5a7c2eca46aefd000e4bd0ac",
	"ragman":      "5ac3b934156ae10c4430e83c",
	"jaeger":      "5c0647fdd443bc2504c2d371",
	"lightkeeper": "638f541a29ffd1183d187f57",
	"ref":         "6617beeaa9cfa777ca915b7c",
}

// currencyTable maps currency codes to currency template ids.
var currencyTable = Table{
	"RUB": "5449016a4bdc2d6f028b456f",
	"USD": "5696686a4bdc2da3298b456a",
	"EUR": "569668774bdc2da2298b4568",
	"GP":  "5d235b4d86f7742e017bc88a",
}
