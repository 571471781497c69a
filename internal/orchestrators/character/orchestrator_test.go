package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/midgardgame/character-api/internal/clients/currency"
	currencymock "github.com/midgardgame/character-api/internal/clients/currency/mock"
	recipemock "github.com/midgardgame/character-api/internal/clients/recipe/mock"
	"github.com/midgardgame/character-api/internal/clients/trait"
	traitmock "github.com/midgardgame/character-api/internal/clients/trait/mock"
	wardrobemock "github.com/midgardgame/character-api/internal/clients/wardrobe/mock"
	"github.com/midgardgame/character-api/internal/entities"
	"github.com/midgardgame/character-api/internal/errors"
	"github.com/midgardgame/character-api/internal/notifications"
	notificationsmock "github.com/midgardgame/character-api/internal/notifications/mock"
	charorchestrator "github.com/midgardgame/character-api/internal/orchestrators/character"
	"github.com/midgardgame/character-api/internal/pkg/namegen"
	characterrepo "github.com/midgardgame/character-api/internal/repositories/character"
	characterrepomock "github.com/midgardgame/character-api/internal/repositories/character/mock"
	selectionrepo "github.com/midgardgame/character-api/internal/repositories/selection"
	selectionrepomock "github.com/midgardgame/character-api/internal/repositories/selection/mock"
	"github.com/midgardgame/character-api/internal/services/character"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCharRepo   *characterrepomock.MockRepository
	mockSelRepo    *selectionrepomock.MockRepository
	mockWardrobe   *wardrobemock.MockClient
	mockTrait      *traitmock.MockClient
	mockCurrency   *currencymock.MockClient
	mockRecipe     *recipemock.MockClient
	mockPublisher  *notificationsmock.MockPublisher
	orchestrator   *charorchestrator.Orchestrator
	ctx            context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockSelRepo = selectionrepomock.NewMockRepository(s.ctrl)
	s.mockWardrobe = wardrobemock.NewMockClient(s.ctrl)
	s.mockTrait = traitmock.NewMockClient(s.ctrl)
	s.mockCurrency = currencymock.NewMockClient(s.ctrl)
	s.mockRecipe = recipemock.NewMockClient(s.ctrl)
	s.mockPublisher = notificationsmock.NewMockPublisher(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := charorchestrator.New(&charorchestrator.Config{
		CharacterRepo:  s.mockCharRepo,
		SelectionRepo:  s.mockSelRepo,
		WardrobeClient: s.mockWardrobe,
		TraitClient:    s.mockTrait,
		CurrencyClient: s.mockCurrency,
		RecipeClient:   s.mockRecipe,
		Publisher:      s.mockPublisher,
		Scrambler:      namegen.Identity{},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectNameFree mocks the advisory name check coming back empty.
func (s *OrchestratorTestSuite) expectNameFree(name string) {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: name}).
		Return(nil, errors.NotFoundf("character %s not found", name))
}

// expectSelection mocks the selection write and its notification.
func (s *OrchestratorTestSuite) expectSelection(owner, name string) {
	s.mockSelRepo.EXPECT().
		SetSelection(s.ctx, selectionrepo.SetSelectionInput{
			OwnerUsername: owner,
			CharacterName: name,
		}).
		Return(&selectionrepo.SetSelectionOutput{}, nil)
	s.mockPublisher.EXPECT().
		Publish(s.ctx, notifications.TopicCharacterSelect, gomock.Any()).
		Return(nil)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Warrior() {
	s.expectNameFree("thor")

	for _, item := range []string{
		entities.ItemHeavyHideChestpiece,
		entities.ItemWornRags,
		entities.ItemBluntHandAxe,
		entities.ItemCumbersomeSmallShield,
	} {
		s.mockWardrobe.EXPECT().AddItem(s.ctx, "thor", item).Return(nil)
	}

	s.mockTrait.EXPECT().Unlock(s.ctx, "thor", gomock.Any()).Return(nil).Times(13)
	for _, t := range []trait.Type{
		trait.TypeDodge,
		trait.TypeShieldBash,
		trait.TypeRecover,
		trait.TypeTaunt,
		trait.TypeKick,
	} {
		s.mockTrait.EXPECT().Purchase(s.ctx, "thor", t).Return(nil)
	}
	s.mockTrait.EXPECT().
		Skill(s.ctx, "thor", trait.TypeDodge, trait.AttributeAgility, 0).
		Return(nil)
	s.mockCurrency.EXPECT().Add(s.ctx, "thor", currency.TypeGold, 50).Return(nil)

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			char := input.Character
			s.Equal("thor", char.CharacterName)
			s.Equal("Thor", char.DisplayCharacterName)
			s.Equal("odin", char.OwnerUsername)
			s.Equal(entities.ItemHeavyHideChestpiece, char.ChestItem)
			s.Equal(entities.ItemWornRags, char.LegsItem)
			s.Equal(entities.ItemBluntHandAxe, char.MainhandArmament)
			s.Equal(entities.ItemCumbersomeSmallShield, char.OffHandArmament)
			s.Equal(entities.UnequippedItem, char.HeadItem)
			s.Equal(entities.UnequippedItem, char.FeetItem)
			return &characterrepo.CreateOutput{Character: char}, nil
		})

	s.expectSelection("odin", "thor")
	s.mockRecipe.EXPECT().Add(s.ctx, "thor", gomock.Any()).Return(nil).Times(12)

	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerUsername:        "odin",
		DisplayCharacterName: "Thor",
		StartingClass:        "WARRIOR",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("thor", output.Character.CharacterName)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_NameTaken() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor", OwnerUsername: "loki"},
		}, nil)

	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerUsername:        "odin",
		DisplayCharacterName: "Thor",
		StartingClass:        "WARRIOR",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_HashForbidden() {
	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerUsername:        "odin",
		DisplayCharacterName: "Thor#1",
		StartingClass:        "WARRIOR",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "#")
}

func (s *OrchestratorTestSuite) TestCreateCharacter_UnknownClass() {
	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerUsername:        "odin",
		DisplayCharacterName: "Thor",
		StartingClass:        "NECROMANCER",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_GrantFailureAborts() {
	s.expectNameFree("thor")

	s.mockWardrobe.EXPECT().
		AddItem(s.ctx, "thor", gomock.Any()).
		Return(errors.Unavailable("wardrobe service is down"))

	// No Create, no selection, no recipes: the workflow stops before
	// persistence.
	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerUsername:        "odin",
		DisplayCharacterName: "Thor",
		StartingClass:        "WARRIOR",
	})

	s.Error(err)
	s.Nil(output)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_SelectionFailureIsSoft() {
	s.expectNameFree("thor")

	s.mockWardrobe.EXPECT().AddItem(s.ctx, "thor", gomock.Any()).Return(nil).Times(4)
	s.mockTrait.EXPECT().Unlock(s.ctx, "thor", gomock.Any()).Return(nil).Times(13)
	s.mockTrait.EXPECT().Purchase(s.ctx, "thor", gomock.Any()).Return(nil).Times(5)
	s.mockTrait.EXPECT().Skill(s.ctx, "thor", trait.TypeDodge, trait.AttributeAgility, 0).Return(nil)
	s.mockCurrency.EXPECT().Add(s.ctx, "thor", currency.TypeGold, 50).Return(nil)

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})

	s.mockSelRepo.EXPECT().
		SetSelection(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("selection store is down"))
	s.mockRecipe.EXPECT().Add(s.ctx, "thor", gomock.Any()).Return(nil).Times(12)

	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerUsername:        "odin",
		DisplayCharacterName: "Thor",
		StartingClass:        "WARRIOR",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("thor", output.Character.CharacterName)
}

func (s *OrchestratorTestSuite) TestCreateDebugCharacter_New() {
	// Looked up once by CreateDebugCharacter and once by the creation
	// workflow's advisory check.
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "tester"}).
		Return(nil, errors.NotFound("character tester not found")).
		Times(2)

	s.mockWardrobe.EXPECT().AddItem(s.ctx, "tester", gomock.Any()).Return(nil).Times(5)
	// 13 base unlocks plus the debug unlock-everything sweep.
	s.mockTrait.EXPECT().Unlock(s.ctx, "tester", gomock.Any()).Return(nil).Times(26)
	s.mockTrait.EXPECT().Purchase(s.ctx, "tester", trait.TypeDodge).Return(nil)
	s.mockTrait.EXPECT().Skill(s.ctx, "tester", trait.TypeDodge, trait.AttributeAgility, 0).Return(nil)
	s.mockCurrency.EXPECT().Add(s.ctx, "tester", currency.TypeGold, 50).Return(nil)

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			char := input.Character
			s.Equal("tester", char.CharacterName)
			s.Equal(entities.ItemReinforcedLeatherPants, char.LegsItem)
			s.Equal(entities.ItemFortifiedBoots, char.FeetItem)
			return &characterrepo.CreateOutput{Character: char}, nil
		})

	s.expectSelection("qa", "tester")
	s.mockRecipe.EXPECT().Add(s.ctx, "tester", gomock.Any()).Return(nil).Times(12)

	output, err := s.orchestrator.CreateDebugCharacter(s.ctx, &character.CreateDebugCharacterInput{
		OwnerUsername:        "qa",
		DisplayCharacterName: "tester",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("tester", output.Character.CharacterName)
}

func (s *OrchestratorTestSuite) TestCreateDebugCharacter_ReassignsExisting() {
	existing := &entities.Character{
		CharacterName:        "tester",
		DisplayCharacterName: "Tester",
		OwnerUsername:        "someone-else",
	}
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "tester"}).
		Return(&characterrepo.GetOutput{Character: existing}, nil)

	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal("qa", input.Character.OwnerUsername)
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.CreateDebugCharacter(s.ctx, &character.CreateDebugCharacterInput{
		OwnerUsername:        "qa",
		DisplayCharacterName: "Tester",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("qa", output.Character.OwnerUsername)
}

func (s *OrchestratorTestSuite) TestIsNameAvailable() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(nil, errors.NotFound("character thor not found"))

	output, err := s.orchestrator.IsNameAvailable(s.ctx, &character.IsNameAvailableInput{
		CharacterName: "Thor",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.True(output.Available)
}

func (s *OrchestratorTestSuite) TestIsNameAvailable_Taken() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor"},
		}, nil)

	output, err := s.orchestrator.IsNameAvailable(s.ctx, &character.IsNameAvailableInput{
		CharacterName: "thor",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.False(output.Available)
}

func (s *OrchestratorTestSuite) TestIsNameAvailable_HashForbidden() {
	output, err := s.orchestrator.IsNameAvailable(s.ctx, &character.IsNameAvailableInput{
		CharacterName: "thor#1",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_NotSelected() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor", OwnerUsername: "odin"},
		}, nil)
	s.mockSelRepo.EXPECT().
		GetSelection(s.ctx, selectionrepo.GetSelectionInput{OwnerUsername: "odin"}).
		Return(&selectionrepo.GetSelectionOutput{CharacterName: "baldr"}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{CharacterName: "thor"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockPublisher.EXPECT().
		Publish(s.ctx, notifications.TopicCharacterDelete, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg notifications.Message) error {
			s.Equal("thor", msg.Data["characterName"])
			return nil
		})

	output, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{
		OwnerUsername: "odin",
		CharacterName: "Thor",
	})

	s.NoError(err)
	s.NotNil(output)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_WrongOwner() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor", OwnerUsername: "odin"},
		}, nil)

	output, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{
		OwnerUsername: "loki",
		CharacterName: "thor",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_RepointsSelection() {
	doomed := &entities.Character{CharacterName: "thor", OwnerUsername: "odin"}
	other := &entities.Character{CharacterName: "baldr", OwnerUsername: "odin"}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{Character: doomed}, nil)
	s.mockSelRepo.EXPECT().
		GetSelection(s.ctx, selectionrepo.GetSelectionInput{OwnerUsername: "odin"}).
		Return(&selectionrepo.GetSelectionOutput{CharacterName: "thor"}, nil)
	s.mockCharRepo.EXPECT().
		ListByOwner(s.ctx, characterrepo.ListByOwnerInput{OwnerUsername: "odin"}).
		Return(&characterrepo.ListByOwnerOutput{
			Characters: []*entities.Character{other, doomed},
		}, nil)
	s.expectSelection("odin", "baldr")
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{CharacterName: "thor"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockPublisher.EXPECT().
		Publish(s.ctx, notifications.TopicCharacterDelete, gomock.Any()).
		Return(nil)

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{
		OwnerUsername: "odin",
		CharacterName: "thor",
	})

	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_LastOneClearsSelection() {
	doomed := &entities.Character{CharacterName: "thor", OwnerUsername: "odin"}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{Character: doomed}, nil)
	s.mockSelRepo.EXPECT().
		GetSelection(s.ctx, selectionrepo.GetSelectionInput{OwnerUsername: "odin"}).
		Return(&selectionrepo.GetSelectionOutput{CharacterName: "thor"}, nil)
	s.mockCharRepo.EXPECT().
		ListByOwner(s.ctx, characterrepo.ListByOwnerInput{OwnerUsername: "odin"}).
		Return(&characterrepo.ListByOwnerOutput{
			Characters: []*entities.Character{doomed},
		}, nil)
	s.mockSelRepo.EXPECT().
		ClearSelection(s.ctx, selectionrepo.ClearSelectionInput{OwnerUsername: "odin"}).
		Return(&selectionrepo.ClearSelectionOutput{}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{CharacterName: "thor"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockPublisher.EXPECT().
		Publish(s.ctx, notifications.TopicCharacterDelete, gomock.Any()).
		Return(nil)

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{
		OwnerUsername: "odin",
		CharacterName: "thor",
	})

	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestSelectCharacter() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor", OwnerUsername: "odin"},
		}, nil)
	s.expectSelection("odin", "thor")

	output, err := s.orchestrator.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		OwnerUsername: "odin",
		CharacterName: "Thor",
	})

	s.NoError(err)
	s.NotNil(output)
}

func (s *OrchestratorTestSuite) TestSelectCharacter_WrongOwner() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor", OwnerUsername: "odin"},
		}, nil)

	output, err := s.orchestrator.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		OwnerUsername: "loki",
		CharacterName: "thor",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestGetSelectedCharacter() {
	s.mockSelRepo.EXPECT().
		GetSelection(s.ctx, selectionrepo.GetSelectionInput{OwnerUsername: "odin"}).
		Return(&selectionrepo.GetSelectionOutput{CharacterName: "thor"}, nil)
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor", OwnerUsername: "odin"},
		}, nil)

	output, err := s.orchestrator.GetSelectedCharacter(s.ctx, &character.GetSelectedCharacterInput{
		OwnerUsername: "odin",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("thor", output.Character.CharacterName)
}

func (s *OrchestratorTestSuite) TestGetSelectedCharacter_NoSelection() {
	s.mockSelRepo.EXPECT().
		GetSelection(s.ctx, selectionrepo.GetSelectionInput{OwnerUsername: "odin"}).
		Return(nil, errors.NotFound("no selected character for odin"))

	output, err := s.orchestrator.GetSelectedCharacter(s.ctx, &character.GetSelectedCharacterInput{
		OwnerUsername: "odin",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetOwnedCharacter_WrongOwnerHidesExistence() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{CharacterName: "thor", OwnerUsername: "odin"},
		}, nil)

	output, err := s.orchestrator.GetOwnedCharacter(s.ctx, &character.GetOwnedCharacterInput{
		OwnerUsername: "loki",
		CharacterName: "thor",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEquipItem() {
	char := &entities.Character{
		CharacterName: "thor",
		OwnerUsername: "odin",
		HeadItem:      entities.UnequippedItem,
	}
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal("IRON_HELM", input.Character.HeadItem)
			s.Equal("enchant:frost", input.Character.HeadItemMetaData)
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.EquipItem(s.ctx, &character.EquipItemInput{
		CharacterName: "thor",
		Slot:          "head",
		Item:          "IRON_HELM",
		Metadata:      "enchant:frost",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("IRON_HELM", output.Character.HeadItem)
}

func (s *OrchestratorTestSuite) TestEquipItem_UnknownSlot() {
	output, err := s.orchestrator.EquipItem(s.ctx, &character.EquipItemInput{
		CharacterName: "thor",
		Slot:          "TAIL",
		Item:          "IRON_HELM",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnequipItem() {
	char := &entities.Character{
		CharacterName:    "thor",
		OwnerUsername:    "odin",
		HeadItem:         "IRON_HELM",
		HeadItemMetaData: "enchant:frost",
	}
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal(entities.UnequippedItem, input.Character.HeadItem)
			s.Empty(input.Character.HeadItemMetaData)
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.UnequipItem(s.ctx, &character.UnequipItemInput{
		CharacterName: "thor",
		Slot:          "HEAD",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(entities.UnequippedItem, output.Character.HeadItem)
}

func (s *OrchestratorTestSuite) TestSaveEquippedItems() {
	char := &entities.Character{CharacterName: "thor", OwnerUsername: "odin"}
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockWardrobe.EXPECT().
		GetItems(s.ctx, "thor").
		Return([]string{"IRON_HELM", "STEEL_SHIELD"}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal("IRON_HELM", input.Character.HeadItem)
			s.Equal("STEEL_SHIELD", input.Character.OffHandArmament)
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.SaveEquippedItems(s.ctx, &character.SaveEquippedItemsInput{
		CharacterName: "thor",
		Items: []character.EquippedItem{
			{Slot: "HEAD", Item: "IRON_HELM"},
			{Slot: "OFFHAND", Item: "STEEL_SHIELD"},
		},
	})

	s.NoError(err)
	s.NotNil(output)
}

func (s *OrchestratorTestSuite) TestSaveEquippedItems_UnownedItemRejectsBatch() {
	char := &entities.Character{CharacterName: "thor", OwnerUsername: "odin"}
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockWardrobe.EXPECT().
		GetItems(s.ctx, "thor").
		Return([]string{"IRON_HELM"}, nil)

	// No Update: the batch fails validation before any slot is touched.
	output, err := s.orchestrator.SaveEquippedItems(s.ctx, &character.SaveEquippedItemsInput{
		CharacterName: "thor",
		Items: []character.EquippedItem{
			{Slot: "HEAD", Item: "IRON_HELM"},
			{Slot: "OFFHAND", Item: "STOLEN_SHIELD"},
		},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSaveEquippedItems_UnknownSlotRejectsBatch() {
	char := &entities.Character{CharacterName: "thor", OwnerUsername: "odin"}
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{CharacterName: "thor"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockWardrobe.EXPECT().
		GetItems(s.ctx, "thor").
		Return([]string{"IRON_HELM"}, nil)

	output, err := s.orchestrator.SaveEquippedItems(s.ctx, &character.SaveEquippedItemsInput{
		CharacterName: "thor",
		Items: []character.EquippedItem{
			{Slot: "TAIL", Item: "IRON_HELM"},
		},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
