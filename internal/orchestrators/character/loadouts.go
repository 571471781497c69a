package character

import (
	"github.com/midgardgame/character-api/internal/clients/trait"
	"github.com/midgardgame/character-api/internal/entities"
)

// loadout is the fixed starting kit for one class: the item placed in each
// slot and the trait subset marked as purchased on top of the shared unlocks.
// Adding a class means adding a table entry, not new control flow.
type loadout struct {
	slots           map[entities.Slot]string
	purchasedTraits []trait.Type

	// unlockAllTraits marks the QA population loadout; each unlock failure
	// is logged and skipped instead of aborting the creation.
	unlockAllTraits bool
}

// baseTraits are unlocked for every new character regardless of class.
var baseTraits = []trait.Type{
	trait.TypeDodge,
	trait.TypeShieldBreaker,
	trait.TypeHemorrhage,
	trait.TypeGungnirsWrath,
	trait.TypeOnehandedSpecialization,
	trait.TypeFrostBlast,
	trait.TypeSeidhring,
	trait.TypePetrify,
	trait.TypeFriggsIntervention,
	trait.TypeShieldBash,
	trait.TypeRecover,
	trait.TypeTaunt,
	trait.TypeKick,
}

// startingGold is granted to every new character.
const startingGold = 50

// defaultRecipes are granted to every new character after it is persisted.
var defaultRecipes = []string{
	"SWORD",
	"HAND_AXE",
	"LONGSWORD",
	"DAGGER",
	"WARHAMMER",
	"GREATAXE",
	"SMALL_SHIELD",
	"MEDIUM_SHIELD",
	"LARGE_SHIELD",
	"STEEL_SHIELD",
	"TORCH",
	"HUNTING_BOW",
}

var classLoadouts = map[entities.Class]loadout{
	entities.ClassWarrior: {
		slots: map[entities.Slot]string{
			entities.SlotHead:     entities.UnequippedItem,
			entities.SlotBeard:    entities.UnequippedItem,
			entities.SlotChest:    entities.ItemHeavyHideChestpiece,
			entities.SlotHands:    entities.UnequippedItem,
			entities.SlotLegs:     entities.ItemWornRags,
			entities.SlotFeet:     entities.UnequippedItem,
			entities.SlotMainhand: entities.ItemBluntHandAxe,
			entities.SlotOffhand:  entities.ItemCumbersomeSmallShield,
		},
		purchasedTraits: []trait.Type{
			trait.TypeShieldBash,
			trait.TypeRecover,
			trait.TypeTaunt,
			trait.TypeKick,
		},
	},
	entities.ClassShaman: {
		slots: map[entities.Slot]string{
			entities.SlotHead:     entities.UnequippedItem,
			entities.SlotBeard:    entities.UnequippedItem,
			entities.SlotChest:    entities.ItemClothTunic,
			entities.SlotHands:    entities.UnequippedItem,
			entities.SlotLegs:     entities.ItemWornRags,
			entities.SlotFeet:     entities.UnequippedItem,
			entities.SlotMainhand: entities.ItemBluntHandAxe,
			entities.SlotOffhand:  entities.ItemCumbersomeSmallShield,
		},
		purchasedTraits: []trait.Type{
			trait.TypeFrostBlast,
			trait.TypeSeidhring,
			trait.TypePetrify,
			trait.TypeFriggsIntervention,
		},
	},
	entities.ClassRanger: {
		slots: map[entities.Slot]string{
			entities.SlotHead:     entities.UnequippedItem,
			entities.SlotBeard:    entities.UnequippedItem,
			entities.SlotChest:    entities.ItemRangersHarness,
			entities.SlotHands:    entities.UnequippedItem,
			entities.SlotLegs:     entities.ItemWornRags,
			entities.SlotFeet:     entities.UnequippedItem,
			entities.SlotMainhand: entities.ItemBluntHandAxe,
			entities.SlotOffhand:  entities.ItemCumbersomeSmallShield,
		},
		purchasedTraits: []trait.Type{
			trait.TypeShieldBreaker,
			trait.TypeHemorrhage,
			trait.TypeGungnirsWrath,
			trait.TypeOnehandedSpecialization,
		},
	},
	entities.ClassDebug: {
		slots: map[entities.Slot]string{
			entities.SlotHead:     entities.UnequippedItem,
			entities.SlotBeard:    entities.UnequippedItem,
			entities.SlotChest:    entities.ItemHeavyHideChestpiece,
			entities.SlotHands:    entities.UnequippedItem,
			entities.SlotLegs:     entities.ItemReinforcedLeatherPants,
			entities.SlotFeet:     entities.ItemFortifiedBoots,
			entities.SlotMainhand: entities.ItemBluntHandAxe,
			entities.SlotOffhand:  entities.ItemCumbersomeSmallShield,
		},
		unlockAllTraits: true,
	},
}
