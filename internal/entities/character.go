// Package entities holds the domain types shared across the service
package entities

// UnequippedItem is the sentinel stored in a slot that has nothing equipped.
// Earlier data used a mix of "NONE", "None" and empty strings; "NONE" is the
// canonical form and the only one this service writes.
const UnequippedItem = "NONE"

// Character represents a player-owned character record.
// CharacterName is the lowercased form of DisplayCharacterName at creation
// time and serves as the primary key; the pair never changes afterwards.
type Character struct {
	CharacterName        string `json:"characterName"`
	DisplayCharacterName string `json:"displayCharacterName"`
	OwnerUsername        string `json:"ownerUsername"`

	HeadItem                 string `json:"headItem"`
	HeadItemMetaData         string `json:"headItemMetaData,omitempty"`
	BeardItem                string `json:"beardItem"`
	BeardItemMetaData        string `json:"beardItemMetaData,omitempty"`
	ChestItem                string `json:"chestItem"`
	ChestItemMetaData        string `json:"chestItemMetaData,omitempty"`
	HandsItem                string `json:"handsItem"`
	HandsItemMetaData        string `json:"handsItemMetaData,omitempty"`
	LegsItem                 string `json:"legsItem"`
	LegsItemMetaData         string `json:"legsItemMetaData,omitempty"`
	FeetItem                 string `json:"feetItem"`
	FeetItemMetaData         string `json:"feetItemMetaData,omitempty"`
	MainhandArmament         string `json:"mainhandArmament"`
	MainhandArmamentMetaData string `json:"mainhandArmamentMetaData,omitempty"`
	OffHandArmament          string `json:"offHandArmament"`
	OffHandArmamentMetaData  string `json:"offHandArmamentMetaData,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// slotFields maps a slot to the item and metadata fields backing it.
// The mapping is total over the Slot enum.
func (c *Character) slotFields(slot Slot) (item, meta *string) {
	switch slot {
	case SlotMainhand:
		return &c.MainhandArmament, &c.MainhandArmamentMetaData
	case SlotOffhand:
		return &c.OffHandArmament, &c.OffHandArmamentMetaData
	case SlotHead:
		return &c.HeadItem, &c.HeadItemMetaData
	case SlotBeard:
		return &c.BeardItem, &c.BeardItemMetaData
	case SlotChest:
		return &c.ChestItem, &c.ChestItemMetaData
	case SlotHands:
		return &c.HandsItem, &c.HandsItemMetaData
	case SlotLegs:
		return &c.LegsItem, &c.LegsItemMetaData
	case SlotFeet:
		return &c.FeetItem, &c.FeetItemMetaData
	}
	return nil, nil
}

// Equip sets the item and metadata for the given slot.
// Callers are expected to have validated the slot via ParseSlot.
func (c *Character) Equip(slot Slot, item, metadata string) {
	itemField, metaField := c.slotFields(slot)
	if itemField == nil {
		return
	}
	*itemField = item
	*metaField = metadata
}

// Unequip resets the slot to the unequipped sentinel and clears its metadata.
func (c *Character) Unequip(slot Slot) {
	c.Equip(slot, UnequippedItem, "")
}

// SlotItem returns the item currently equipped in the given slot.
func (c *Character) SlotItem(slot Slot) string {
	itemField, _ := c.slotFields(slot)
	if itemField == nil {
		return ""
	}
	return *itemField
}
