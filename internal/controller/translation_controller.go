package controller

import (
	"altacoach_backend/internal/i18n"
	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TranslationController struct {
	Translator *i18n.Translator
}

func NewTranslationController(translator *i18n.Translator) *TranslationController {
	return &TranslationController{Translator: translator}
}

// @Summary Get the translation table for a language
// @Tags translations
// @Produce json
// @Param lang query string false "Language code, defaults to the configured default"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/translations [get]
func (c *TranslationController) GetTranslations(ctx *gin.Context) {
	lang := ctx.Query("lang")
	if lang == "" {
		lang = c.Translator.DefaultLanguage()
	}

	table, err := c.Translator.Table(lang)
	if err != nil {
		util.Error(ctx, 404, "unknown language: "+lang)
		return
	}

	util.Success(ctx, gin.H{
		"language":     lang,
		"translations": table,
	})
}

// @Summary List available languages
// @Tags translations
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/translations/languages [get]
func (c *TranslationController) ListLanguages(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"default":   c.Translator.DefaultLanguage(),
		"languages": c.Translator.Languages(),
	})
}
