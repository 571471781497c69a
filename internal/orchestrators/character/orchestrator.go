// Package character implements the character workflow engine
package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/midgardgame/character-api/internal/clients/currency"
	"github.com/midgardgame/character-api/internal/clients/recipe"
	"github.com/midgardgame/character-api/internal/clients/trait"
	"github.com/midgardgame/character-api/internal/clients/wardrobe"
	"github.com/midgardgame/character-api/internal/entities"
	"github.com/midgardgame/character-api/internal/errors"
	"github.com/midgardgame/character-api/internal/notifications"
	"github.com/midgardgame/character-api/internal/pkg/namegen"
	characterrepo "github.com/midgardgame/character-api/internal/repositories/character"
	selectionrepo "github.com/midgardgame/character-api/internal/repositories/selection"
	"github.com/midgardgame/character-api/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo  characterrepo.Repository
	SelectionRepo  selectionrepo.Repository
	WardrobeClient wardrobe.Client
	TraitClient    trait.Client
	CurrencyClient currency.Client
	RecipeClient   recipe.Client
	Publisher      notifications.Publisher
	Scrambler      namegen.Scrambler
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SelectionRepo == nil {
		vb.RequiredField("SelectionRepo")
	}
	if c.WardrobeClient == nil {
		vb.RequiredField("WardrobeClient")
	}
	if c.TraitClient == nil {
		vb.RequiredField("TraitClient")
	}
	if c.CurrencyClient == nil {
		vb.RequiredField("CurrencyClient")
	}
	if c.RecipeClient == nil {
		vb.RequiredField("RecipeClient")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo  characterrepo.Repository
	selectionRepo  selectionrepo.Repository
	wardrobeClient wardrobe.Client
	traitClient    trait.Client
	currencyClient currency.Client
	recipeClient   recipe.Client
	publisher      notifications.Publisher
	scrambler      namegen.Scrambler
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	scrambler := cfg.Scrambler
	if scrambler == nil {
		scrambler = namegen.NewRandom(nil)
	}

	return &Orchestrator{
		characterRepo:  cfg.CharacterRepo,
		selectionRepo:  cfg.SelectionRepo,
		wardrobeClient: cfg.WardrobeClient,
		traitClient:    cfg.TraitClient,
		currencyClient: cfg.CurrencyClient,
		recipeClient:   cfg.RecipeClient,
		publisher:      cfg.Publisher,
		scrambler:      scrambler,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter runs the full creation workflow: name and class
// validation, loadout assignment, remote grants, persistence, and selection.
//
// The grant calls and the persistence are not transactional. A grant failure
// aborts the creation with nothing persisted, but grants that already went
// through are not rolled back; the remote grant operations are idempotent so
// a retry is safe. Recipe grants run after persistence and are fail-soft.
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerUsername", input.OwnerUsername, vb)
	errors.ValidateRequired("displayCharacterName", input.DisplayCharacterName, vb)
	errors.ValidateRequired("startingClass", input.StartingClass, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if strings.Contains(input.DisplayCharacterName, "#") {
		return nil, errors.InvalidArgument("# is not allowed in character name")
	}

	class, err := entities.ParseClass(input.StartingClass)
	if err != nil {
		return nil, err
	}

	characterName := strings.ToLower(input.DisplayCharacterName)
	slog.InfoContext(ctx, "creating character",
		"owner", input.OwnerUsername,
		"character_name", characterName,
		"class", class.String())

	// Advisory pre-check; the store's unique constraint is the backstop for
	// two concurrent creations racing past this point.
	_, err = o.characterRepo.Get(ctx, characterrepo.GetInput{CharacterName: characterName})
	if err == nil {
		return nil, errors.AlreadyExistsf("character name %s is already taken", input.DisplayCharacterName)
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check name availability")
	}

	lo := classLoadouts[class]

	char := &entities.Character{
		CharacterName:        characterName,
		DisplayCharacterName: input.DisplayCharacterName,
		OwnerUsername:        input.OwnerUsername,
	}
	for _, slot := range entities.AllSlots {
		char.Equip(slot, lo.slots[slot], "")
	}

	if err := o.provision(ctx, characterName, lo); err != nil {
		return nil, err
	}

	createOut, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to persist character %s", characterName)
	}
	created := createOut.Character

	// The character exists at this point; selection and recipe failures are
	// logged but no longer fail the creation.
	if err := o.setSelected(ctx, created.OwnerUsername, created.CharacterName); err != nil {
		slog.WarnContext(ctx, "failed to select newly created character",
			"character_name", created.CharacterName,
			"error", err.Error())
	}

	for _, recipeName := range defaultRecipes {
		if err := o.recipeClient.Add(ctx, characterName, recipeName); err != nil {
			slog.WarnContext(ctx, "failed to grant default recipe",
				"character_name", characterName,
				"recipe", recipeName,
				"error", err.Error())
		}
	}

	return &character.CreateCharacterOutput{Character: created}, nil
}

// provision issues the remote grant calls for a new character: wardrobe
// items from the loadout, trait unlocks and purchases, and starting gold.
func (o *Orchestrator) provision(ctx context.Context, characterName string, lo loadout) error {
	for _, slot := range entities.AllSlots {
		item := lo.slots[slot]
		if item == entities.UnequippedItem {
			continue
		}
		if err := o.wardrobeClient.AddItem(ctx, characterName, item); err != nil {
			return errors.Wrapf(err, "failed to grant wardrobe item %s", item)
		}
	}

	for _, t := range baseTraits {
		if err := o.traitClient.Unlock(ctx, characterName, t); err != nil {
			return errors.Wrapf(err, "failed to unlock trait %s", t)
		}
	}

	if lo.unlockAllTraits {
		for _, t := range trait.AllTypes {
			if err := o.traitClient.Unlock(ctx, characterName, t); err != nil {
				slog.ErrorContext(ctx, "failed to populate debug character with trait",
					"character_name", characterName,
					"trait", string(t),
					"error", err.Error())
			}
		}
	}

	if err := o.traitClient.Purchase(ctx, characterName, trait.TypeDodge); err != nil {
		return errors.Wrapf(err, "failed to purchase trait %s", trait.TypeDodge)
	}
	for _, t := range lo.purchasedTraits {
		if err := o.traitClient.Purchase(ctx, characterName, t); err != nil {
			return errors.Wrapf(err, "failed to purchase trait %s", t)
		}
	}

	if err := o.traitClient.Skill(ctx, characterName, trait.TypeDodge, trait.AttributeAgility, 0); err != nil {
		return errors.Wrapf(err, "failed to skill trait %s", trait.TypeDodge)
	}

	if err := o.currencyClient.Add(ctx, characterName, currency.TypeGold, startingGold); err != nil {
		return errors.Wrapf(err, "failed to grant starting gold")
	}

	return nil
}

// CreateDebugCharacter creates a QA character with randomized display-name
// casing, or reassigns ownership if the name is already in use.
func (o *Orchestrator) CreateDebugCharacter(ctx context.Context, input *character.CreateDebugCharacterInput) (*character.CreateDebugCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerUsername", input.OwnerUsername, vb)
	errors.ValidateRequired("displayCharacterName", input.DisplayCharacterName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	characterName := strings.ToLower(input.DisplayCharacterName)

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{CharacterName: characterName})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to look up character")
		}

		createOut, createErr := o.CreateCharacter(ctx, &character.CreateCharacterInput{
			OwnerUsername:        input.OwnerUsername,
			DisplayCharacterName: o.scrambler.Scramble(input.DisplayCharacterName),
			StartingClass:        entities.ClassDebug.String(),
		})
		if createErr != nil {
			return nil, createErr
		}
		return &character.CreateDebugCharacterOutput{Character: createOut.Character}, nil
	}

	// Ownership-transfer escape hatch: the character exists, hand it to the
	// caller without touching anything else.
	existing := getOut.Character
	slog.InfoContext(ctx, "reassigning debug character",
		"character_name", existing.CharacterName,
		"from", existing.OwnerUsername,
		"to", input.OwnerUsername)
	existing.OwnerUsername = input.OwnerUsername

	updateOut, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: existing})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reassign character %s", existing.CharacterName)
	}

	return &character.CreateDebugCharacterOutput{Character: updateOut.Character}, nil
}

// IsNameAvailable reports whether a character name can still be claimed.
func (o *Orchestrator) IsNameAvailable(ctx context.Context, input *character.IsNameAvailableInput) (*character.IsNameAvailableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.CharacterName) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}
	if strings.Contains(input.CharacterName, "#") {
		return nil, errors.InvalidArgument("# is not allowed in character name")
	}

	_, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		CharacterName: strings.ToLower(input.CharacterName),
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return &character.IsNameAvailableOutput{Available: true}, nil
		}
		return nil, errors.Wrap(err, "failed to check name availability")
	}

	return &character.IsNameAvailableOutput{Available: false}, nil
}

// DeleteCharacter removes a character after validating ownership. If the
// character was the owner's selection, the selection is re-pointed at any
// other character the owner still has, or cleared when none remains.
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerUsername", input.OwnerUsername, vb)
	errors.ValidateRequired("characterName", input.CharacterName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	characterName := strings.ToLower(input.CharacterName)

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{CharacterName: characterName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterName)
	}
	char := getOut.Character

	if char.OwnerUsername != input.OwnerUsername {
		return nil, errors.PermissionDenied("you don't own that character")
	}

	if err := o.repairSelection(ctx, input.OwnerUsername, char); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{CharacterName: characterName}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", characterName)
	}

	slog.InfoContext(ctx, "deleted character",
		"owner", input.OwnerUsername,
		"character_name", characterName)

	msg := notifications.Message{Message: "A character was deleted"}.AddData("characterName", characterName)
	if err := o.publisher.Publish(ctx, notifications.TopicCharacterDelete, msg); err != nil {
		slog.WarnContext(ctx, "failed to publish character deletion",
			"character_name", characterName,
			"error", err.Error())
	}

	return &character.DeleteCharacterOutput{}, nil
}

// repairSelection re-points or clears the owner's selection before the given
// character is deleted. The replacement pick carries no ordering guarantee.
func (o *Orchestrator) repairSelection(ctx context.Context, owner string, doomed *entities.Character) error {
	selOut, err := o.selectionRepo.GetSelection(ctx, selectionrepo.GetSelectionInput{OwnerUsername: owner})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(err, "failed to read selection")
	}
	if selOut.CharacterName != doomed.CharacterName {
		return nil
	}

	listOut, err := o.characterRepo.ListByOwner(ctx, characterrepo.ListByOwnerInput{OwnerUsername: owner})
	if err != nil {
		return errors.Wrap(err, "failed to list characters for selection repair")
	}

	for _, other := range listOut.Characters {
		if other.CharacterName == doomed.CharacterName {
			continue
		}
		if err := o.setSelected(ctx, owner, other.CharacterName); err != nil {
			return errors.Wrap(err, "failed to re-point selection")
		}
		return nil
	}

	if _, err := o.selectionRepo.ClearSelection(ctx, selectionrepo.ClearSelectionInput{OwnerUsername: owner}); err != nil {
		return errors.Wrap(err, "failed to clear selection")
	}
	return nil
}

// SelectCharacter makes a character the owner's active one.
func (o *Orchestrator) SelectCharacter(ctx context.Context, input *character.SelectCharacterInput) (*character.SelectCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerUsername", input.OwnerUsername, vb)
	errors.ValidateRequired("characterName", input.CharacterName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	characterName := strings.ToLower(input.CharacterName)

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{CharacterName: characterName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterName)
	}
	if getOut.Character.OwnerUsername != input.OwnerUsername {
		return nil, errors.PermissionDenied("you don't own that character")
	}

	if err := o.setSelected(ctx, input.OwnerUsername, characterName); err != nil {
		return nil, err
	}

	return &character.SelectCharacterOutput{}, nil
}

// setSelected writes the selection pointer and emits the selection-changed
// event. The publish is fire-and-forget; selection state is re-derivable.
func (o *Orchestrator) setSelected(ctx context.Context, owner, characterName string) error {
	_, err := o.selectionRepo.SetSelection(ctx, selectionrepo.SetSelectionInput{
		OwnerUsername: owner,
		CharacterName: characterName,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to set selected character for %s", owner)
	}

	msg := notifications.Message{Username: owner, Message: "Changed selected character"}
	if err := o.publisher.Publish(ctx, notifications.TopicCharacterSelect, msg); err != nil {
		slog.WarnContext(ctx, "failed to publish selection change",
			"owner", owner,
			"error", err.Error())
	}

	return nil
}

// GetCharacter retrieves a character without owner validation.
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.CharacterName) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		CharacterName: strings.ToLower(input.CharacterName),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterName)
	}

	return &character.GetCharacterOutput{Character: getOut.Character}, nil
}

// GetOwnedCharacter retrieves a character and validates ownership. An owner
// mismatch reports NotFound rather than PermissionDenied so callers can't
// probe for other players' character names.
func (o *Orchestrator) GetOwnedCharacter(ctx context.Context, input *character.GetOwnedCharacterInput) (*character.GetOwnedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerUsername", input.OwnerUsername, vb)
	errors.ValidateRequired("characterName", input.CharacterName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		CharacterName: strings.ToLower(input.CharacterName),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterName)
	}
	if getOut.Character.OwnerUsername != input.OwnerUsername {
		return nil, errors.NotFound("wrong owner")
	}

	return &character.GetOwnedCharacterOutput{Character: getOut.Character}, nil
}

// ListCharacters returns every character owned by a player account.
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.OwnerUsername) == "" {
		return nil, errors.InvalidArgument("owner username is required")
	}

	listOut, err := o.characterRepo.ListByOwner(ctx, characterrepo.ListByOwnerInput{
		OwnerUsername: input.OwnerUsername,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for %s", input.OwnerUsername)
	}

	return &character.ListCharactersOutput{Characters: listOut.Characters}, nil
}

// GetSelectedCharacter returns the owner's currently selected character.
func (o *Orchestrator) GetSelectedCharacter(ctx context.Context, input *character.GetSelectedCharacterInput) (*character.GetSelectedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.OwnerUsername) == "" {
		return nil, errors.InvalidArgument("owner username is required")
	}

	selOut, err := o.selectionRepo.GetSelection(ctx, selectionrepo.GetSelectionInput{
		OwnerUsername: input.OwnerUsername,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get selection for %s", input.OwnerUsername)
	}

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{CharacterName: selOut.CharacterName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get selected character %s", selOut.CharacterName)
	}

	return &character.GetSelectedCharacterOutput{Character: getOut.Character}, nil
}

// EquipItem sets a single slot's item and metadata.
func (o *Orchestrator) EquipItem(ctx context.Context, input *character.EquipItemInput) (*character.EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterName", input.CharacterName, vb)
	errors.ValidateRequired("slot", input.Slot, vb)
	errors.ValidateRequired("item", input.Item, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slot, err := entities.ParseSlot(input.Slot)
	if err != nil {
		return nil, err
	}

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		CharacterName: strings.ToLower(input.CharacterName),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterName)
	}

	char := getOut.Character
	char.Equip(slot, input.Item, input.Metadata)

	updateOut, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", char.CharacterName)
	}

	return &character.EquipItemOutput{Character: updateOut.Character}, nil
}

// UnequipItem resets a slot to the unequipped sentinel and clears its metadata.
func (o *Orchestrator) UnequipItem(ctx context.Context, input *character.UnequipItemInput) (*character.UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterName", input.CharacterName, vb)
	errors.ValidateRequired("slot", input.Slot, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slot, err := entities.ParseSlot(input.Slot)
	if err != nil {
		return nil, err
	}

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		CharacterName: strings.ToLower(input.CharacterName),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterName)
	}

	char := getOut.Character
	char.Unequip(slot)

	updateOut, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", char.CharacterName)
	}

	return &character.UnequipItemOutput{Character: updateOut.Character}, nil
}

// SaveEquippedItems applies a batch of slot assignments. Every slot name and
// every item is validated against the character's wardrobe before any slot
// is touched; the first invalid entry rejects the whole batch.
func (o *Orchestrator) SaveEquippedItems(ctx context.Context, input *character.SaveEquippedItemsInput) (*character.SaveEquippedItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterName", input.CharacterName, vb)
	if len(input.Items) == 0 {
		vb.RequiredField("equippedItems")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	characterName := strings.ToLower(input.CharacterName)

	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{CharacterName: characterName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterName)
	}
	char := getOut.Character

	ownedItems, err := o.wardrobeClient.GetItems(ctx, characterName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch wardrobe for %s", characterName)
	}
	owned := make(map[string]struct{}, len(ownedItems))
	for _, item := range ownedItems {
		owned[item] = struct{}{}
	}

	type assignment struct {
		slot     entities.Slot
		item     string
		metadata string
	}
	assignments := make([]assignment, 0, len(input.Items))

	for _, equipped := range input.Items {
		slot, err := entities.ParseSlot(equipped.Slot)
		if err != nil {
			return nil, err
		}
		if equipped.Item == "" {
			return nil, errors.InvalidArgumentf("no item given for slot %s", slot)
		}
		if _, ok := owned[equipped.Item]; !ok {
			return nil, errors.FailedPreconditionf("wardrobe does not have item %s", equipped.Item)
		}
		assignments = append(assignments, assignment{slot: slot, item: equipped.Item, metadata: equipped.Metadata})
	}

	for _, a := range assignments {
		char.Equip(a.slot, a.item, a.metadata)
	}

	updateOut, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", char.CharacterName)
	}

	return &character.SaveEquippedItemsOutput{Character: updateOut.Character}, nil
}
