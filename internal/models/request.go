package models

// ChildProfile describes the child the message is written for.
// It is filled in once by the caregiver and never mutated.
type ChildProfile struct {
	Name         string `json:"name" binding:"required"`
	Age          int    `json:"age" binding:"required,min=1,max=18"`
	Gender       string `json:"gender" binding:"required"` // "Jongen" or "Meisje"
	Anecdote     string `json:"anecdote"`                  // note from Piet's big book
	Wishlist     string `json:"wishlist"`                  // comma separated wishlist items
	FavoriteItem string `json:"favoriteItem"`              // something the child will certainly get
	ShoeSetOut   bool   `json:"shoeSetOut"`                // whether a shoe has been set out already
	UseSlang     bool   `json:"useSlang"`                  // Gen Z slang toggle
}

// OutputSelection selects which artifacts to produce for a letter task
type OutputSelection struct {
	Audio  bool `json:"audio"`
	Video  bool `json:"video"`
	Letter bool `json:"letter"`
}

// GenerateMessageRequest asks for a message draft only (no media)
type GenerateMessageRequest struct {
	Child ChildProfile `json:"child" binding:"required"`
}

// GenerateLetterRequest starts the full pipeline. Either Message (manual mode,
// the caregiver wrote the text) or Child (auto mode, gpt drafts it) must be set.
type GenerateLetterRequest struct {
	Message string          `json:"message,omitempty"`
	Child   *ChildProfile   `json:"child,omitempty"`
	Outputs OutputSelection `json:"outputs"`
}

// SendLetterEmailRequest asks for the finished artifacts to be emailed
type SendLetterEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TaskResponse represents the response when creating a task
type TaskResponse struct {
	TaskID string `json:"taskId"`
	Status string `json:"status"` // "pending", "processing", "completed", "failed"
}

// StatusResponse represents the response when checking task status
type StatusResponse struct {
	TaskID string            `json:"taskId"`
	Status string            `json:"status"`
	Result *GenerationResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}
