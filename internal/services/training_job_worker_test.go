package services

import (
	"testing"
	"time"

	"calorify/internal/ml"
	"calorify/internal/mocks"
	"calorify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func workerFixture(n int) ([]models.ExerciseData, []models.CaloriesData) {
	exercise := make([]models.ExerciseData, 0, n)
	calories := make([]models.CaloriesData, 0, n)
	for i := 0; i < n; i++ {
		duration := float64(i%15) + 1
		exercise = append(exercise, models.ExerciseData{
			UserID:    int64(i + 1),
			Gender:    "male",
			Age:       20 + i%40,
			Height:    150 + float64(i%40),
			Weight:    50 + float64(i%50),
			Duration:  duration,
			HeartRate: 90 + float64(i%60),
			BodyTemp:  38,
		})
		calories = append(calories, models.CaloriesData{
			UserID:   int64(i + 1),
			Calories: duration*10 + 50,
		})
	}
	return exercise, calories
}

func newTestWorker(t *testing.T) (*TrainingJobWorker, *mocks.MockTrainingJobRepository, *mocks.MockTrainedModelRepository) {
	t.Helper()
	jobRepo := new(mocks.MockTrainingJobRepository)
	exerciseRepo := new(mocks.MockExerciseDataRepository)
	caloriesRepo := new(mocks.MockCaloriesDataRepository)
	trainedRepo := new(mocks.MockTrainedModelRepository)

	exercise, calories := workerFixture(30)
	exerciseRepo.On("FindAll").Return(exercise, nil).Maybe()
	caloriesRepo.On("FindAll").Return(calories, nil).Maybe()
	jobRepo.On("GetJobsByStatus", models.JobStatusPending, 50).Return([]*models.TrainingJob{}, nil)

	worker := NewTrainingJobWorker(
		jobRepo,
		exerciseRepo,
		caloriesRepo,
		trainedRepo,
		ml.NewArtifactStore(t.TempDir()),
		nil, // dashboard cache
		nil, // event publisher
		2,
	)
	return worker, jobRepo, trainedRepo
}

func TestWorkerProcessesJob(t *testing.T) {
	worker, jobRepo, trainedRepo := newTestWorker(t)

	done := make(chan struct{})
	jobRepo.On("UpdateJobStatus", "job-1", models.JobStatusProcessing, (*string)(nil)).Return(nil)
	jobRepo.On("UpdateJobStatus", "job-1", models.JobStatusCompleted, (*string)(nil)).
		Run(func(mock.Arguments) { close(done) }).Return(nil)
	trainedRepo.On("Upsert", mock.AnythingOfType("*models.TrainedModel")).Return(nil)

	worker.Start()
	defer worker.Stop()

	require.NoError(t, worker.SubmitJob(models.TrainingJobRequest{
		JobID:     "job-1",
		ModelName: models.ModelLinearRegression,
	}))

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("training job did not complete")
	}
	trainedRepo.AssertExpectations(t)
}

func TestWorkerFailsUnsupportedKind(t *testing.T) {
	worker, jobRepo, trainedRepo := newTestWorker(t)

	done := make(chan struct{})
	jobRepo.On("UpdateJobStatus", "job-2", models.JobStatusProcessing, (*string)(nil)).Return(nil)
	jobRepo.On("UpdateJobStatus", "job-2", models.JobStatusFailed, mock.AnythingOfType("*string")).
		Run(func(args mock.Arguments) {
			msg := args.Get(2).(*string)
			assert.Contains(t, *msg, "unsupported model kind")
			close(done)
		}).Return(nil)

	worker.Start()
	defer worker.Stop()

	require.NoError(t, worker.SubmitJob(models.TrainingJobRequest{
		JobID:     "job-2",
		ModelName: models.ModelLightGBM,
	}))

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("training job was not marked failed")
	}
	trainedRepo.AssertNotCalled(t, "Upsert")
}

func TestWorkerRejectsSubmitWhenStopped(t *testing.T) {
	worker, _, _ := newTestWorker(t)

	err := worker.SubmitJob(models.TrainingJobRequest{JobID: "job-3", ModelName: models.ModelXGBoost})
	assert.Error(t, err)
}

func TestWorkerRecoversPendingJobs(t *testing.T) {
	jobRepo := new(mocks.MockTrainingJobRepository)
	exerciseRepo := new(mocks.MockExerciseDataRepository)
	caloriesRepo := new(mocks.MockCaloriesDataRepository)
	trainedRepo := new(mocks.MockTrainedModelRepository)

	exercise, calories := workerFixture(30)
	exerciseRepo.On("FindAll").Return(exercise, nil)
	caloriesRepo.On("FindAll").Return(calories, nil)
	trainedRepo.On("Upsert", mock.AnythingOfType("*models.TrainedModel")).Return(nil)

	// A job left pending by a previous process run is re-enqueued on start.
	jobRepo.On("GetJobsByStatus", models.JobStatusPending, 50).Return([]*models.TrainingJob{
		{ID: "stale-job", ModelName: models.ModelLinearRegression, Status: models.JobStatusPending},
	}, nil)

	done := make(chan struct{})
	jobRepo.On("UpdateJobStatus", "stale-job", models.JobStatusProcessing, (*string)(nil)).Return(nil)
	jobRepo.On("UpdateJobStatus", "stale-job", models.JobStatusCompleted, (*string)(nil)).
		Run(func(mock.Arguments) { close(done) }).Return(nil)

	worker := NewTrainingJobWorker(
		jobRepo, exerciseRepo, caloriesRepo, trainedRepo,
		ml.NewArtifactStore(t.TempDir()), nil, nil, 2,
	)
	worker.Start()
	defer worker.Stop()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("pending job was not recovered")
	}
}
