package api

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sint-message-service/internal/letter"
	"sint-message-service/internal/models"
	"sint-message-service/internal/services"
	"sint-message-service/internal/validation"
)

// Generator runs the full letter pipeline
type Generator interface {
	Generate(ctx context.Context, request models.GenerateLetterRequest) (*models.GenerationResult, error)
}

// MessageDrafter drafts a message without producing media
type MessageDrafter interface {
	Generate(ctx context.Context, child models.ChildProfile) (string, error)
}

// Speaker synthesizes speech for arbitrary text
type Speaker interface {
	Speak(ctx context.Context, text string, preferPrimary bool) ([]byte, error)
}

// EmailSender delivers finished artifacts by email
type EmailSender interface {
	SendLetterEmail(toEmail string, formatted *letter.FormattedLetter, pdfData []byte, audioData []byte) error
}

// AvatarLister lists the avatars available at the video provider
type AvatarLister interface {
	ListAvatars(ctx context.Context) (json.RawMessage, error)
}

// Handlers contains all HTTP handlers. emailService and avatarLister are nil
// when the corresponding provider is not configured.
type Handlers struct {
	generationService Generator
	messageService    MessageDrafter
	speechService     Speaker
	taskService       *services.TaskService
	emailService      EmailSender
	avatarLister      AvatarLister
}

// NewHandlers creates a new handlers instance
func NewHandlers(
	generationService Generator,
	messageService MessageDrafter,
	speechService Speaker,
	taskService *services.TaskService,
	emailService EmailSender,
	avatarLister AvatarLister,
) *Handlers {
	return &Handlers{
		generationService: generationService,
		messageService:    messageService,
		speechService:     speechService,
		taskService:       taskService,
		emailService:      emailService,
		avatarLister:      avatarLister,
	}
}

// GenerateMessageHandler handles POST /api/messages/generate
func (h *Handlers) GenerateMessageHandler(c *gin.Context) {
	var req models.GenerateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Generate(c.Request.Context(), req.Child)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GenerateLetterHandler handles POST /api/letters/generate
// Creates a task and runs the pipeline asynchronously
func (h *Handlers) GenerateLetterHandler(c *gin.Context) {
	req, ok := h.bindLetterRequest(c)
	if !ok {
		return
	}

	task := h.taskService.CreateTask(*req)

	go func() {
		_ = h.taskService.UpdateTaskStatus(task.ID, models.TaskStatusProcessing)

		// The HTTP request context dies with the response; the pipeline
		// gets its own lifetime (the video stage bounds itself)
		result, err := h.generationService.Generate(context.Background(), *req)
		if err != nil {
			log.Printf("ERROR: task %s failed: %v", task.ID, err)
			_ = h.taskService.SetTaskError(task.ID, err)
			return
		}

		_ = h.taskService.SetTaskResult(task.ID, result)
	}()

	c.JSON(http.StatusAccepted, models.TaskResponse{
		TaskID: task.ID,
		Status: string(task.Status),
	})
}

// GenerateLetterSyncHandler handles POST /api/letters/generate-sync
// Runs the pipeline synchronously and stores the result as a completed task
// so the download endpoints work for it too
func (h *Handlers) GenerateLetterSyncHandler(c *gin.Context) {
	req, ok := h.bindLetterRequest(c)
	if !ok {
		return
	}

	task := h.taskService.CreateTask(*req)
	_ = h.taskService.UpdateTaskStatus(task.ID, models.TaskStatusProcessing)

	result, err := h.generationService.Generate(c.Request.Context(), *req)
	if err != nil {
		_ = h.taskService.SetTaskError(task.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "taskId": task.ID})
		return
	}

	_ = h.taskService.SetTaskResult(task.ID, result)

	c.JSON(http.StatusOK, models.StatusResponse{
		TaskID: task.ID,
		Status: string(models.TaskStatusCompleted),
		Result: result,
	})
}

// bindLetterRequest reads and schema-validates the letter request body
func (h *Handlers) bindLetterRequest(c *gin.Context) (*models.GenerateLetterRequest, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil, false
	}

	req, err := validation.ValidateAndParseLetterRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	return req, true
}

// GetTaskStatusHandler handles GET /api/letters/status/:taskId
func (h *Handlers) GetTaskStatusHandler(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "taskId is required"})
		return
	}

	task, err := h.taskService.GetTask(taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	response := models.StatusResponse{
		TaskID: task.ID,
		Status: string(task.Status),
	}

	if task.Status == models.TaskStatusCompleted {
		response.Result = task.Result
	} else if task.Status == models.TaskStatusFailed {
		response.Error = task.Error
	}

	c.JSON(http.StatusOK, response)
}

// DownloadAudioHandler handles GET /api/letters/download/:taskId/audio
func (h *Handlers) DownloadAudioHandler(c *gin.Context) {
	task, ok := h.completedTask(c)
	if !ok {
		return
	}

	if !task.Result.HasAudio {
		c.JSON(http.StatusNotFound, gin.H{"error": "task has no audio artifact"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="boodschap-van-sinterklaas.mp3"`)
	c.Data(http.StatusOK, "audio/mpeg", task.Result.Audio)
}

// DownloadPDFHandler handles GET /api/letters/download/:taskId/pdf
func (h *Handlers) DownloadPDFHandler(c *gin.Context) {
	task, ok := h.completedTask(c)
	if !ok {
		return
	}

	if !task.Result.HasPDF {
		c.JSON(http.StatusNotFound, gin.H{"error": "task has no PDF artifact"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="brief-van-sinterklaas.pdf"`)
	c.Data(http.StatusOK, "application/pdf", task.Result.PDF)
}

// SendLetterEmailHandler handles POST /api/letters/email/:taskId
func (h *Handlers) SendLetterEmailHandler(c *gin.Context) {
	if h.emailService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email sending is not configured"})
		return
	}

	var req models.SendLetterEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, ok := h.completedTask(c)
	if !ok {
		return
	}

	if err := h.emailService.SendLetterEmail(req.Email, task.Result.Letter, task.Result.PDF, task.Result.Audio); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "letter sent", "taskId": task.ID})
}

// completedTask fetches the task from the path parameter and rejects
// requests for tasks that have not completed
func (h *Handlers) completedTask(c *gin.Context) (*models.Task, bool) {
	taskID := c.Param("taskId")
	task, err := h.taskService.GetTask(taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return nil, false
	}

	if task.Status != models.TaskStatusCompleted || task.Result == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "task is not completed", "status": string(task.Status)})
		return nil, false
	}

	return task, true
}

// GenerateSpeechHandler handles POST /api/speech/generate
// Synthesizes arbitrary text and streams the audio back
func (h *Handlers) GenerateSpeechHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audio, err := h.speechService.Speak(c.Request.Context(), req.Text, true)
	if err != nil {
		class := services.ClassifyProviderError(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":       err.Error(),
			"remediation": services.RemediationMessage(class),
		})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// ListAvatarsHandler handles GET /api/avatars
func (h *Handlers) ListAvatarsHandler(c *gin.Context) {
	if h.avatarLister == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "video provider is not configured"})
		return
	}

	avatars, err := h.avatarLister.ListAvatars(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, avatars)
}
