// Package v1 exposes the character service REST API
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/midgardgame/character-api/internal/errors"
	"github.com/midgardgame/character-api/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler translates HTTP requests into character service calls. It carries
// no business logic of its own.
type Handler struct {
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

// RegisterRoutes mounts every character endpoint on the router. Paths mirror
// the sibling services' convention: POST with a JSON parameter object.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	v1 := r.Group("/v1/character")
	v1.POST("/create", h.Create)
	v1.POST("/create-debug-character", h.CreateDebugCharacter)
	v1.POST("/character-available", h.CharacterAvailable)
	v1.POST("/delete", h.Delete)
	v1.POST("/select-character", h.SelectCharacter)
	v1.POST("/get-selected-character", h.GetSelectedCharacter)
	v1.POST("/get-character", h.GetCharacter)
	v1.POST("/get-character-without-owner-validation", h.GetCharacterWithoutOwnerValidation)
	v1.POST("/get-all", h.GetAll)
	v1.POST("/equip-item", h.EquipItem)
	v1.POST("/unequip-item", h.UnequipItem)
	v1.POST("/save-equipped-items", h.SaveEquippedItems)
}

// Create creates a character with a class loadout
func (h *Handler) Create(c *gin.Context) {
	var req createCharacterRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.CreateCharacter(c.Request.Context(), &character.CreateCharacterInput{
		OwnerUsername:        req.OwnerUsername,
		DisplayCharacterName: req.DisplayCharacterName,
		StartingClass:        req.StartingClass,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

// CreateDebugCharacter creates a QA character or reassigns an existing one
func (h *Handler) CreateDebugCharacter(c *gin.Context) {
	var req characterNameAndOwnerRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.CreateDebugCharacter(c.Request.Context(), &character.CreateDebugCharacterInput{
		OwnerUsername:        req.OwnerUsername,
		DisplayCharacterName: req.CharacterName,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

// CharacterAvailable reports whether a name can still be claimed
func (h *Handler) CharacterAvailable(c *gin.Context) {
	var req characterNameRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.IsNameAvailable(c.Request.Context(), &character.IsNameAvailableInput{
		CharacterName: req.CharacterName,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	if !output.Available {
		renderMessage(c, http.StatusConflict, "Character not available")
		return
	}
	renderMessage(c, http.StatusOK, "Character available")
}

// Delete deletes a character, repairing the owner's selection
func (h *Handler) Delete(c *gin.Context) {
	var req characterNameAndOwnerRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.characterService.DeleteCharacter(c.Request.Context(), &character.DeleteCharacterInput{
		OwnerUsername: req.OwnerUsername,
		CharacterName: req.CharacterName,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	renderMessage(c, http.StatusOK, "Deleted character")
}

// SelectCharacter makes a character the owner's active one
func (h *Handler) SelectCharacter(c *gin.Context) {
	var req characterNameAndOwnerRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.characterService.SelectCharacter(c.Request.Context(), &character.SelectCharacterInput{
		OwnerUsername: req.OwnerUsername,
		CharacterName: req.CharacterName,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	renderMessage(c, http.StatusOK, "Character selected")
}

// GetSelectedCharacter returns the owner's active character
func (h *Handler) GetSelectedCharacter(c *gin.Context) {
	var req usernameRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.GetSelectedCharacter(c.Request.Context(), &character.GetSelectedCharacterInput{
		OwnerUsername: req.Username,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

// GetCharacter returns a character after validating ownership
func (h *Handler) GetCharacter(c *gin.Context) {
	var req characterNameAndOwnerRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.GetOwnedCharacter(c.Request.Context(), &character.GetOwnedCharacterInput{
		OwnerUsername: req.OwnerUsername,
		CharacterName: req.CharacterName,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

// GetCharacterWithoutOwnerValidation returns a character by name alone
func (h *Handler) GetCharacterWithoutOwnerValidation(c *gin.Context) {
	var req characterNameRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.GetCharacter(c.Request.Context(), &character.GetCharacterInput{
		CharacterName: req.CharacterName,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

// GetAll returns every character owned by an account
func (h *Handler) GetAll(c *gin.Context) {
	var req usernameRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.ListCharacters(c.Request.Context(), &character.ListCharactersInput{
		OwnerUsername: req.Username,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Characters)
}

// EquipItem sets one equipment slot
func (h *Handler) EquipItem(c *gin.Context) {
	var req equipItemRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.EquipItem(c.Request.Context(), &character.EquipItemInput{
		CharacterName: req.CharacterName,
		Slot:          req.ItemSlot,
		Item:          req.Item,
		Metadata:      req.MetaData,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

// UnequipItem clears one equipment slot
func (h *Handler) UnequipItem(c *gin.Context) {
	var req unequipItemRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.characterService.UnequipItem(c.Request.Context(), &character.UnequipItemInput{
		CharacterName: req.CharacterName,
		Slot:          req.ItemSlot,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

// SaveEquippedItems applies a batch of slot assignments
func (h *Handler) SaveEquippedItems(c *gin.Context) {
	var req saveEquippedItemsRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]character.EquippedItem, 0, len(req.EquippedItems))
	for _, item := range req.EquippedItems {
		items = append(items, character.EquippedItem{
			Slot:     item.ItemSlot,
			Item:     item.Item,
			Metadata: item.MetaData,
		})
	}

	output, err := h.characterService.SaveEquippedItems(c.Request.Context(), &character.SaveEquippedItemsInput{
		CharacterName: req.CharacterName,
		Items:         items,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}
