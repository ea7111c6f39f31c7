package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"sint-message-service/internal/models"
	"sint-message-service/internal/utils"
)

// TaskService manages async letter generation tasks in memory. Finished
// tasks are expired by an hourly janitor so held audio and PDF buffers do
// not accumulate.
type TaskService struct {
	tasks  map[string]*models.Task
	mutex  sync.RWMutex
	cron   *cron.Cron
	maxAge time.Duration
}

// NewTaskService creates a task service expiring finished tasks after maxAge
func NewTaskService(maxAge time.Duration) *TaskService {
	return &TaskService{
		tasks:  make(map[string]*models.Task),
		cron:   cron.New(cron.WithSeconds()),
		maxAge: maxAge,
	}
}

// StartJanitor starts the hourly cleanup scheduler
func (s *TaskService) StartJanitor() error {
	// cron format with seconds: second minute hour day month weekday
	if _, err := s.cron.AddFunc("0 0 * * * *", s.expireFinishedTasks); err != nil {
		return fmt.Errorf("failed to schedule task janitor: %w", err)
	}
	s.cron.Start()
	log.Println("Task janitor started")
	return nil
}

// Stop stops the cleanup scheduler
func (s *TaskService) Stop() {
	s.cron.Stop()
}

// expireFinishedTasks drops terminal tasks older than maxAge
func (s *TaskService) expireFinishedTasks() {
	cutoff := time.Now().Add(-s.maxAge)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for id, task := range s.tasks {
		terminal := task.Status == models.TaskStatusCompleted || task.Status == models.TaskStatusFailed
		if terminal && task.UpdatedAt.Before(cutoff) {
			delete(s.tasks, id)
		}
	}
}

// CreateTask creates a new pending task and returns a snapshot of it.
// Callers get a copy, not the stored task, so their reads cannot race
// with the pipeline goroutine that updates the task through the service.
func (s *TaskService) CreateTask(request models.GenerateLetterRequest) *models.Task {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	task := &models.Task{
		ID:        utils.GenerateUUID(),
		Status:    models.TaskStatusPending,
		Request:   request,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.tasks[task.ID] = task

	snapshot := *task
	return &snapshot
}

// GetTask retrieves a snapshot of a task by ID. Returning a copy keeps
// readers from racing with the pipeline goroutine that updates the task.
func (s *TaskService) GetTask(taskID string) (*models.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return nil, fmt.Errorf("task not found: %s", taskID)
	}

	snapshot := *task
	return &snapshot, nil
}

// UpdateTaskStatus updates the status of a task
func (s *TaskService) UpdateTaskStatus(taskID string, status models.TaskStatus) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return fmt.Errorf("task not found: %s", taskID)
	}

	task.Status = status
	task.UpdatedAt = time.Now()
	return nil
}

// SetTaskError marks a task as failed with an error message
func (s *TaskService) SetTaskError(taskID string, err error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return fmt.Errorf("task not found: %s", taskID)
	}

	task.Status = models.TaskStatusFailed
	task.Error = err.Error()
	task.UpdatedAt = time.Now()
	return nil
}

// SetTaskResult stores the completed result in a task
func (s *TaskService) SetTaskResult(taskID string, result *models.GenerationResult) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return fmt.Errorf("task not found: %s", taskID)
	}

	task.Status = models.TaskStatusCompleted
	task.Result = result
	task.UpdatedAt = time.Now()
	return nil
}

// DeleteTask removes a task from memory
func (s *TaskService) DeleteTask(taskID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.tasks, taskID)
}
