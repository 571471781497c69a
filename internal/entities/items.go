package entities

// Starting wardrobe items referenced by the class loadouts.
const (
	ItemHeavyHideChestpiece     = "HEAVY_HIDE_CHESTPIECE"
	ItemClothTunic              = "CLOTH_TUNIC"
	ItemRangersHarness          = "RANGERS_HARNESS"
	ItemWornRags                = "WORN_RAGS"
	ItemReinforcedLeatherPants  = "REINFORCED_LEATHER_PANTS"
	ItemFortifiedBoots          = "FORTIFIED_BOOTS"
	ItemBluntHandAxe            = "BLUNT_HAND_AXE"
	ItemCumbersomeSmallShield   = "CUMBERSOME_SMALL_SHIELD"
)
