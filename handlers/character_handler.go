package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maskle/services"
)

type CharacterHandler struct {
	catalog services.Catalog
}

func NewCharacterHandler(catalog services.Catalog) *CharacterHandler {
	return &CharacterHandler{
		catalog: catalog,
	}
}

func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	characters, err := h.catalog.Characters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	previews := make([]services.CharacterPreview, 0, len(characters))
	for i := range characters {
		previews = append(previews, services.PreviewCharacter(&characters[i]))
	}

	c.JSON(http.StatusOK, gin.H{"characters": previews})
}

func (h *CharacterHandler) GetCharacterQuestions(c *gin.Context) {
	character, err := h.catalog.CharacterByID(c.Request.Context(), c.Param("characterId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.PublicCharacter(character))
}
