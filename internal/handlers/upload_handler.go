package handlers

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/logger"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
	"resume-analyzer/internal/services"
)

// uploadSlots are the multipart field names accepted by HandleUpload.
var uploadSlots = []string{"resume", "job_description"}

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload stores one or both documents of an analysis pair and
// returns their IDs. The files themselves are not validated here beyond
// size and extension; classification happens at analyze time.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	var responses []models.UploadResponse

	for _, slot := range uploadSlots {
		files, exists := form.File[slot]
		if !exists || len(files) == 0 {
			continue
		}

		resp, err := h.saveDocument(files[0], slot)
		if err != nil {
			return err
		}
		responses = append(responses, *resp)
	}

	if len(responses) == 0 {
		return fiber.NewError(
			fiber.StatusBadRequest,
			"No valid files uploaded. Please upload 'resume' and/or 'job_description' as PDF or DOCX files.",
		)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Files uploaded successfully",
		"documents": responses,
	})
}

func (h *UploadHandler) saveDocument(file *multipart.FileHeader, slot string) (*models.UploadResponse, error) {
	if file.Size > h.maxFileSize {
		return nil, fiber.NewError(
			fiber.StatusBadRequest,
			fmt.Sprintf("'%s' file too large. Max size: %d bytes", slot, h.maxFileSize),
		)
	}

	filename, filePath, err := h.storageService.SaveFile(file, slot)
	if err != nil {
		return nil, fiber.NewError(
			fiber.StatusBadRequest,
			fmt.Sprintf("failed to save '%s' file: %v", slot, err),
		)
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		Slot:             slot,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup the uploaded file if the database insert fails.
		h.storageService.DeleteFile(filename)
		return nil, fiber.NewError(
			fiber.StatusInternalServerError,
			fmt.Sprintf("failed to save '%s' document record: %v", slot, err),
		)
	}

	logger.Info().
		Str("document_id", doc.ID.String()).
		Str("slot", slot).
		Str("original_name", file.Filename).
		Msg("document uploaded")

	return &models.UploadResponse{
		ID:           doc.ID.String(),
		Filename:     doc.Filename,
		OriginalName: doc.OriginalFileName,
		Slot:         doc.Slot,
	}, nil
}
