package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/midgardgame/character-api/internal/errors"
)

type createCharacterRequest struct {
	OwnerUsername        string `json:"ownerUsername" binding:"required"`
	DisplayCharacterName string `json:"displayCharacterName" binding:"required"`
	StartingClass        string `json:"startingClass" binding:"required"`
}

type characterNameRequest struct {
	CharacterName string `json:"characterName" binding:"required"`
}

type characterNameAndOwnerRequest struct {
	CharacterName string `json:"characterName" binding:"required"`
	OwnerUsername string `json:"ownerUsername" binding:"required"`
}

type usernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type equipItemRequest struct {
	CharacterName string `json:"characterName" binding:"required"`
	ItemSlot      string `json:"itemSlot" binding:"required"`
	Item          string `json:"item" binding:"required"`
	MetaData      string `json:"metaData"`
}

type unequipItemRequest struct {
	CharacterName string `json:"characterName" binding:"required"`
	ItemSlot      string `json:"itemSlot" binding:"required"`
}

type equippedItem struct {
	ItemSlot string `json:"itemSlot" binding:"required"`
	Item     string `json:"item" binding:"required"`
	MetaData string `json:"metaData"`
}

type saveEquippedItemsRequest struct {
	CharacterName string         `json:"characterName" binding:"required"`
	EquippedItems []equippedItem `json:"equippedItems" binding:"required"`
}

// bindJSON decodes the request body into req and renders a 400 on failure.
// Returns false when the request was already answered.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		renderError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return false
	}
	return true
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// renderError writes an error response with the HTTP status derived from the
// error's code, so a repository NotFound renders as 404 and a name conflict
// as 409 without the handler inspecting the error.
func renderError(c *gin.Context, err error) {
	c.JSON(errors.HTTPStatus(err), errorResponse{
		Code:    errors.GetCode(err).String(),
		Message: errors.GetMessage(err),
	})
}

func renderMessage(c *gin.Context, status int, message string) {
	c.JSON(status, messageResponse{Message: message})
}
