package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sint-message-service/internal/models"
)

func TestCreateAndGetTask(t *testing.T) {
	service := NewTaskService(time.Hour)

	task := service.CreateTask(models.GenerateLetterRequest{Message: "Dag Emma!"})
	require.NotEmpty(t, task.ID)
	assert.Equal(t, models.TaskStatusPending, task.Status)

	got, err := service.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Dag Emma!", got.Request.Message)
}

func TestGetTaskNotFound(t *testing.T) {
	service := NewTaskService(time.Hour)

	_, err := service.GetTask("nope")
	assert.Error(t, err)
}

func TestTaskLifecycle(t *testing.T) {
	service := NewTaskService(time.Hour)
	task := service.CreateTask(models.GenerateLetterRequest{Message: "Dag Emma!"})

	require.NoError(t, service.UpdateTaskStatus(task.ID, models.TaskStatusProcessing))
	got, _ := service.GetTask(task.ID)
	assert.Equal(t, models.TaskStatusProcessing, got.Status)

	result := &models.GenerationResult{Message: "Dag Emma!", HasAudio: true, Audio: []byte("mp3")}
	require.NoError(t, service.SetTaskResult(task.ID, result))

	got, _ = service.GetTask(task.ID)
	assert.Equal(t, models.TaskStatusCompleted, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, []byte("mp3"), got.Result.Audio)
}

func TestSetTaskError(t *testing.T) {
	service := NewTaskService(time.Hour)
	task := service.CreateTask(models.GenerateLetterRequest{Message: "Dag Emma!"})

	require.NoError(t, service.SetTaskError(task.ID, errors.New("synthesis failed")))

	got, _ := service.GetTask(task.ID)
	assert.Equal(t, models.TaskStatusFailed, got.Status)
	assert.Equal(t, "synthesis failed", got.Error)
}

func TestExpireFinishedTasks(t *testing.T) {
	service := NewTaskService(time.Nanosecond)

	finished := service.CreateTask(models.GenerateLetterRequest{Message: "klaar"})
	require.NoError(t, service.SetTaskResult(finished.ID, &models.GenerationResult{Message: "klaar"}))

	running := service.CreateTask(models.GenerateLetterRequest{Message: "bezig"})
	require.NoError(t, service.UpdateTaskStatus(running.ID, models.TaskStatusProcessing))

	time.Sleep(time.Millisecond)
	service.expireFinishedTasks()

	_, err := service.GetTask(finished.ID)
	assert.Error(t, err, "terminal task past maxAge should be expired")

	_, err = service.GetTask(running.ID)
	assert.NoError(t, err, "running task must never be expired")
}

func TestCreateTaskReturnsSnapshot(t *testing.T) {
	service := NewTaskService(time.Hour)
	task := service.CreateTask(models.GenerateLetterRequest{Message: "Dag Emma!"})

	require.NoError(t, service.UpdateTaskStatus(task.ID, models.TaskStatusProcessing))

	// The caller's copy is detached from the stored task
	assert.Equal(t, models.TaskStatusPending, task.Status)

	stored, err := service.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusProcessing, stored.Status)
}

func TestCreateTaskReadsSafeDuringBackgroundUpdates(t *testing.T) {
	service := NewTaskService(time.Hour)

	// Mirrors the async handler: the returned task is read while a
	// goroutine drives the stored one through its lifecycle
	for i := 0; i < 50; i++ {
		task := service.CreateTask(models.GenerateLetterRequest{Message: "Dag Emma!"})

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = service.UpdateTaskStatus(task.ID, models.TaskStatusProcessing)
			_ = service.SetTaskResult(task.ID, &models.GenerationResult{Message: "Dag Emma!"})
		}()

		assert.NotEmpty(t, task.ID)
		assert.Equal(t, models.TaskStatusPending, task.Status)
		<-done
	}
}

func TestConcurrentTaskAccess(t *testing.T) {
	service := NewTaskService(time.Hour)
	task := service.CreateTask(models.GenerateLetterRequest{Message: "Dag Emma!"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = service.UpdateTaskStatus(task.ID, models.TaskStatusProcessing)
		}()
		go func() {
			defer wg.Done()
			_, _ = service.GetTask(task.ID)
		}()
	}
	wg.Wait()

	got, err := service.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusProcessing, got.Status)
}

func TestDeleteTask(t *testing.T) {
	service := NewTaskService(time.Hour)
	task := service.CreateTask(models.GenerateLetterRequest{Message: "Dag Emma!"})

	service.DeleteTask(task.ID)

	_, err := service.GetTask(task.ID)
	assert.Error(t, err)
}
