package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/logger"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
	"resume-analyzer/internal/services"
)

// AnalyzeHandler runs the full pipeline for one request:
// extract -> classify -> normalize -> score -> role-specific report.
// Nothing about the analysis is persisted; concurrent requests share only
// read-only startup state.
type AnalyzeHandler struct {
	docRepo     repositories.DocumentRepository
	extractor   services.ExtractorService
	classifier  services.ClassifierService
	normalizer  services.NormalizerService
	analyzer    services.AnalyzerService
	report      services.ReportService
	maxFileSize int64
}

func NewAnalyzeHandler(
	docRepo repositories.DocumentRepository,
	extractor services.ExtractorService,
	classifier services.ClassifierService,
	normalizer services.NormalizerService,
	analyzer services.AnalyzerService,
	report services.ReportService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		docRepo:     docRepo,
		extractor:   extractor,
		classifier:  classifier,
		normalizer:  normalizer,
		analyzer:    analyzer,
		report:      report,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. The form carries `role` plus, per
// slot, either a file upload (`resume`, `job_description`) or the ID of a
// previously uploaded document (`resume_document_id`,
// `job_description_document_id`).
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	role, err := models.ParseRole(c.FormValue("role"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rawResume, err := h.resolveRawText(c, "resume")
	if err != nil {
		return err
	}

	rawJD, err := h.resolveRawText(c, "job_description")
	if err != nil {
		return err
	}

	resumeDoc := models.NewRawDocument(rawResume, models.LabelResume)
	jdDoc := models.NewRawDocument(rawJD, models.LabelJobDescription)

	// Both documents pass through both classifier layers before any
	// normalization; a rejection is terminal for the request.
	if err := h.classifier.ValidateResume(resumeDoc); err != nil {
		return classificationToHTTP(err)
	}
	if err := h.classifier.ValidateJobDescription(jdDoc); err != nil {
		return classificationToHTTP(err)
	}

	cleanResume, err := h.normalizer.Clean(resumeDoc.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("Text preprocessing failed: %v", err))
	}
	cleanJD, err := h.normalizer.Clean(jdDoc.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("Text preprocessing failed: %v", err))
	}

	// Empty-after-normalization guard, before the engine sees the streams.
	if cleanResume.IsEmpty() {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Resume text is empty after preprocessing. Please upload a richer document.")
	}
	if cleanJD.IsEmpty() {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Job description text is empty after preprocessing. Please upload a richer document.")
	}

	result, err := h.analyzer.Run(cleanResume, cleanJD)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientContent) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
	}

	logger.Info().
		Str("role", string(role)).
		Float64("match_percentage", result.MatchPercentage).
		Int("matched_skills", len(result.MatchedSkills)).
		Int("missing_skills", len(result.MissingSkills)).
		Msg("analysis completed")

	if role == models.RoleRecruiter {
		return c.JSON(models.RecruiterResponse{
			MatchPercentage: result.MatchPercentage,
			MatchedSkills:   result.MatchedSkills,
			MissingSkills:   result.MissingSkills,
			HireSummary:     h.report.HireSummary(result),
		})
	}

	return c.JSON(models.ApplierResponse{
		MatchPercentage:   result.MatchPercentage,
		MatchedSkills:     result.MatchedSkills,
		MissingSkills:     result.MissingSkills,
		BasicImprovements: h.report.Improvements(result),
	})
}

// resolveRawText turns either an uploaded file or a stored document ID
// into extracted plain text for the given slot.
func (h *AnalyzeHandler) resolveRawText(c *fiber.Ctx, slot string) (string, error) {
	if file, err := c.FormFile(slot); err == nil && file != nil {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".pdf" && ext != ".docx" {
			return "", fiber.NewError(
				fiber.StatusUnsupportedMediaType,
				fmt.Sprintf("'%s' must be a PDF or DOCX file. Received: '%s'.", slot, file.Filename),
			)
		}
		if file.Size > h.maxFileSize {
			return "", fiber.NewError(
				fiber.StatusBadRequest,
				fmt.Sprintf("'%s' file too large. Max size: %d bytes", slot, h.maxFileSize),
			)
		}

		// Spool to a temp file; the extractor works on paths and the
		// upload is not kept for direct-analyze requests.
		tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+ext)
		if err := c.SaveFile(file, tmpPath); err != nil {
			return "", fiber.NewError(fiber.StatusInternalServerError,
				fmt.Sprintf("failed to buffer '%s' file: %v", slot, err))
		}
		defer os.Remove(tmpPath)

		return h.extractText(tmpPath, slot)
	}

	idValue := c.FormValue(slot + "_document_id")
	if idValue == "" {
		return "", fiber.NewError(
			fiber.StatusBadRequest,
			fmt.Sprintf("either a '%s' file or a '%s_document_id' form field is required", slot, slot),
		)
	}

	docID, err := uuid.Parse(idValue)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("invalid %s_document_id format", slot))
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		return "", fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("'%s' document not found", slot))
	}

	return h.extractText(doc.FilePath, slot)
}

func (h *AnalyzeHandler) extractText(path, slot string) (string, error) {
	text, err := h.extractor.ExtractText(path)
	if err != nil {
		return "", fiber.NewError(
			fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Could not extract text from the %s: %v", strings.ReplaceAll(slot, "_", " "), err),
		)
	}
	return text, nil
}

// classificationToHTTP maps a classifier rejection to a 400 carrying the
// rejection's message verbatim.
func classificationToHTTP(err error) error {
	if ce, ok := services.AsClassificationError(err); ok {
		logger.Warn().
			Str("label", string(ce.Label)).
			Str("layer", string(ce.Layer)).
			Str("reason", ce.Reason).
			Msg("document rejected by classifier")
		return fiber.NewError(fiber.StatusBadRequest, ce.Message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
