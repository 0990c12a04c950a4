package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/latestcomment/mind-mirror/internal/models"
	"github.com/latestcomment/mind-mirror/internal/services"
	"go.uber.org/zap"
)

const freeWriteField = "freewrite"

type Handler struct {
	Analyzer *services.AnalyzerService
	Logger   *zap.Logger
}

func NewHandler(analyzer *services.AnalyzerService, logger *zap.Logger) *Handler {
	return &Handler{Analyzer: analyzer, Logger: logger}
}

type questionView struct {
	Field  string
	Prompt string
	Answer string
}

type sectionView struct {
	Title     string
	Questions []questionView
}

type analyzeRequest struct {
	Responses models.ResponseMap `json:"responses"`
	FreeWrite string             `json:"freeWrite"`
}

// fieldName is the form field that carries the i-th prompt's answer.
func fieldName(i int) string {
	return "q" + strconv.Itoa(i)
}

func (h *Handler) sections(answers models.ResponseMap) []sectionView {
	var views []sectionView
	i := 0
	for _, s := range h.Analyzer.Questions.Sections {
		sv := sectionView{Title: s.Title}
		for _, p := range s.Prompts {
			sv.Questions = append(sv.Questions, questionView{
				Field:  fieldName(i),
				Prompt: p,
				Answer: answers[p],
			})
			i++
		}
		views = append(views, sv)
	}
	return views
}

func (h *Handler) FormPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Sections":        h.sections(nil),
		"FreeWritePrompt": models.FreeWritePrompt,
		"FreeWriteField":  freeWriteField,
	})
}

func (h *Handler) AnalyzeForm(c *fiber.Ctx) error {
	responses := models.ResponseMap{}
	for i, p := range h.Analyzer.Questions.Prompts() {
		field := fieldName(i)
		if formHas(c, field) {
			responses[p] = c.FormValue(field)
		}
	}
	freeWrite := c.FormValue(freeWriteField)

	report, err := h.Analyzer.AnalyzeSubmission(models.NewSubmission(responses, freeWrite))
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			h.Logger.Error("analysis failed", zap.Error(err))
		}
		return c.Status(status).Render("index", fiber.Map{
			"Sections":        h.sections(responses),
			"FreeWritePrompt": models.FreeWritePrompt,
			"FreeWriteField":  freeWriteField,
			"FreeWrite":       freeWrite,
			"Error":           err.Error(),
		})
	}

	return c.Render("report", fiber.Map{
		"Report": report,
	})
}

func (h *Handler) Questions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"sections":        h.Analyzer.Questions.Sections,
		"freeWritePrompt": models.FreeWritePrompt,
	})
}

func (h *Handler) AnalyzeAPI(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, err := h.Analyzer.AnalyzeSubmission(models.NewSubmission(req.Responses, req.FreeWrite))
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			h.Logger.Error("analysis failed", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

func statusFor(err error) int {
	if errors.Is(err, services.ErrMissingInput) || errors.Is(err, services.ErrUnknownPrompt) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// formHas tells an absent field apart from one submitted empty.
func formHas(c *fiber.Ctx, key string) bool {
	if c.Request().PostArgs().Has(key) {
		return true
	}
	if form, err := c.MultipartForm(); err == nil {
		_, ok := form.Value[key]
		return ok
	}
	return false
}
