package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"calorify/internal/cache"
	"calorify/internal/ml"
	"calorify/internal/models"
	"calorify/internal/mq"
	"calorify/internal/repository"
)

// JobSubmitter is the slice of the worker the training controller needs.
type JobSubmitter interface {
	SubmitJob(request models.TrainingJobRequest) error
}

// TrainingJobWorker executes queued training runs in a fixed-size worker
// pool. Runs for different model kinds proceed in parallel; runs for the
// same kind are serialized by a per-kind mutex, so the last metadata writer
// is always the last trainer to finish.
type TrainingJobWorker struct {
	jobRepo      repository.TrainingJobRepository
	exerciseRepo repository.ExerciseDataRepository
	caloriesRepo repository.CaloriesDataRepository
	trainedRepo  repository.TrainedModelRepository
	artifacts    *ml.ArtifactStore
	dashboard    *cache.DashboardCache
	events       *mq.Publisher

	jobQueue    chan models.TrainingJobRequest
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.RWMutex

	kindLocks map[string]*sync.Mutex
}

func NewTrainingJobWorker(
	jobRepo repository.TrainingJobRepository,
	exerciseRepo repository.ExerciseDataRepository,
	caloriesRepo repository.CaloriesDataRepository,
	trainedRepo repository.TrainedModelRepository,
	artifacts *ml.ArtifactStore,
	dashboard *cache.DashboardCache,
	events *mq.Publisher,
	workerCount int,
) *TrainingJobWorker {
	if workerCount <= 0 {
		workerCount = 2
	}
	locks := make(map[string]*sync.Mutex, len(models.ModelKinds))
	for _, kind := range models.ModelKinds {
		locks[kind] = &sync.Mutex{}
	}
	return &TrainingJobWorker{
		jobRepo:      jobRepo,
		exerciseRepo: exerciseRepo,
		caloriesRepo: caloriesRepo,
		trainedRepo:  trainedRepo,
		artifacts:    artifacts,
		dashboard:    dashboard,
		events:       events,
		jobQueue:     make(chan models.TrainingJobRequest, 32),
		workerCount:  workerCount,
		stopChan:     make(chan struct{}),
		kindLocks:    locks,
	}
}

// ========== WORKER LIFECYCLE ==========

func (w *TrainingJobWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.worker(i)
	}

	// Re-enqueue jobs that were pending when the process last stopped.
	w.wg.Add(1)
	go w.recoverPendingJobs()
}

func (w *TrainingJobWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()
}

// SubmitJob queues a training run. The job row must already be persisted
// with status pending.
func (w *TrainingJobWorker) SubmitJob(request models.TrainingJobRequest) error {
	w.mu.RLock()
	if !w.running {
		w.mu.RUnlock()
		return fmt.Errorf("job worker is not running")
	}
	w.mu.RUnlock()

	select {
	case w.jobQueue <- request:
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("job queue is full, try again later")
	}
}

func (w *TrainingJobWorker) worker(workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case request := <-w.jobQueue:
			w.processJob(request)
		}
	}
}

func (w *TrainingJobWorker) recoverPendingJobs() {
	defer w.wg.Done()

	jobs, err := w.jobRepo.GetJobsByStatus(models.JobStatusPending, 50)
	if err != nil {
		log.Printf("Failed to recover pending training jobs: %v", err)
		return
	}
	for _, job := range jobs {
		select {
		case w.jobQueue <- models.TrainingJobRequest{JobID: job.ID, ModelName: job.ModelName}:
		case <-w.stopChan:
			return
		}
	}
}

// ========== JOB PROCESSING ==========

func (w *TrainingJobWorker) processJob(request models.TrainingJobRequest) {
	jobID := request.JobID

	if err := w.jobRepo.UpdateJobStatus(jobID, models.JobStatusProcessing, nil); err != nil {
		log.Printf("Failed to mark job %s as processing: %v", jobID, err)
		return
	}

	if lock := w.kindLocks[request.ModelName]; lock != nil {
		lock.Lock()
		defer lock.Unlock()
	}

	trainer, err := ml.NewModelTrainer(
		request.ModelName,
		w.exerciseRepo,
		w.caloriesRepo,
		w.trainedRepo,
		w.artifacts,
	)
	if err != nil {
		w.failJob(jobID, request.ModelName, err)
		return
	}

	record, err := trainer.Run()
	if err != nil {
		w.failJob(jobID, request.ModelName, err)
		return
	}

	if err := w.jobRepo.UpdateJobStatus(jobID, models.JobStatusCompleted, nil); err != nil {
		log.Printf("Failed to mark job %s as completed: %v", jobID, err)
	}
	if err := w.dashboard.Invalidate(context.Background()); err != nil {
		log.Printf("Failed to invalidate dashboard cache: %v", err)
	}
	if err := w.events.Publish(mq.TrainingEvent{
		JobID:     jobID,
		ModelName: record.Name,
		Status:    models.JobStatusCompleted,
		Timestamp: time.Now(),
	}); err != nil {
		log.Printf("Failed to publish training event for job %s: %v", jobID, err)
	}
}

func (w *TrainingJobWorker) failJob(jobID, modelName string, cause error) {
	msg := cause.Error()
	if err := w.jobRepo.UpdateJobStatus(jobID, models.JobStatusFailed, &msg); err != nil {
		log.Printf("Failed to mark job %s as failed: %v", jobID, err)
	}
	if err := w.events.Publish(mq.TrainingEvent{
		JobID:     jobID,
		ModelName: modelName,
		Status:    models.JobStatusFailed,
		Error:     msg,
		Timestamp: time.Now(),
	}); err != nil {
		log.Printf("Failed to publish training event for job %s: %v", jobID, err)
	}
}
