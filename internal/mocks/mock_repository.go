package mocks

import (
	"time"

	"calorify/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockExerciseDataRepository
type MockExerciseDataRepository struct {
	mock.Mock
}

func (m *MockExerciseDataRepository) Create(record *models.ExerciseData) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockExerciseDataRepository) FindAll() ([]models.ExerciseData, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExerciseData), args.Error(1)
}

func (m *MockExerciseDataRepository) FindByUserID(userID int64) (*models.ExerciseData, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseData), args.Error(1)
}

func (m *MockExerciseDataRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockExerciseDataRepository) ReplaceByUserID(records []models.ExerciseData) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockExerciseDataRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockCaloriesDataRepository
type MockCaloriesDataRepository struct {
	mock.Mock
}

func (m *MockCaloriesDataRepository) Create(record *models.CaloriesData) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockCaloriesDataRepository) FindAll() ([]models.CaloriesData, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaloriesData), args.Error(1)
}

func (m *MockCaloriesDataRepository) FindByUserID(userID int64) (*models.CaloriesData, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaloriesData), args.Error(1)
}

func (m *MockCaloriesDataRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCaloriesDataRepository) ReplaceByUserID(records []models.CaloriesData) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockCaloriesDataRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockTrainedModelRepository
type MockTrainedModelRepository struct {
	mock.Mock
}

func (m *MockTrainedModelRepository) Upsert(record *models.TrainedModel) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockTrainedModelRepository) FindByName(name string) (*models.TrainedModel, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainedModel), args.Error(1)
}

func (m *MockTrainedModelRepository) FindAll() ([]models.TrainedModel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrainedModel), args.Error(1)
}

// Shared MockTrainingJobRepository
type MockTrainingJobRepository struct {
	mock.Mock
}

func (m *MockTrainingJobRepository) SaveJob(job *models.TrainingJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockTrainingJobRepository) GetJobByID(id string) (*models.TrainingJob, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingJob), args.Error(1)
}

func (m *MockTrainingJobRepository) UpdateJobStatus(jobID, status string, errorMessage *string) error {
	args := m.Called(jobID, status, errorMessage)
	return args.Error(0)
}

func (m *MockTrainingJobRepository) GetJobsByStatus(status string, limit int) ([]*models.TrainingJob, error) {
	args := m.Called(status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TrainingJob), args.Error(1)
}

func (m *MockTrainingJobRepository) GetRecentJobs(limit int) ([]*models.TrainingJob, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TrainingJob), args.Error(1)
}

func (m *MockTrainingJobRepository) CleanupOldJobs(olderThan time.Time) error {
	args := m.Called(olderThan)
	return args.Error(0)
}

// Shared MockJobSubmitter
type MockJobSubmitter struct {
	mock.Mock
}

func (m *MockJobSubmitter) SubmitJob(request models.TrainingJobRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

// Shared MockCaloriePredictor
type MockCaloriePredictor struct {
	mock.Mock
}

func (m *MockCaloriePredictor) Predict(input *models.PredictionInput) (float64, error) {
	args := m.Called(input)
	return args.Get(0).(float64), args.Error(1)
}
