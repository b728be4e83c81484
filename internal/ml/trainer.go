package ml

import (
	"fmt"

	"calorify/internal/models"
	"calorify/internal/repository"
)

const (
	testSize  = 0.2
	splitSeed = 42
)

// ModelTrainer runs the training pipeline for a single model kind:
//
//	fetch → split → build → train → evaluate → persist-artifact → persist-metadata
//
// Stages execute strictly in order with no retries; the first error aborts
// the run and nothing reaches the metadata table until every metric has been
// computed in memory. One run is synchronous and single-threaded.
type ModelTrainer struct {
	modelName    string
	exerciseRepo repository.ExerciseDataRepository
	caloriesRepo repository.CaloriesDataRepository
	trainedRepo  repository.TrainedModelRepository
	artifacts    *ArtifactStore

	model         Estimator
	x             [][]float64
	y             []float64
	xTrain, xTest [][]float64
	yTrain, yTest []float64
	mse, r2       float64
	importances   []models.FeatureImportance
}

// NewModelTrainer rejects kinds without a registry entry up front, so a
// configuration error surfaces before any dataset access.
func NewModelTrainer(
	modelName string,
	exerciseRepo repository.ExerciseDataRepository,
	caloriesRepo repository.CaloriesDataRepository,
	trainedRepo repository.TrainedModelRepository,
	artifacts *ArtifactStore,
) (*ModelTrainer, error) {
	if !Supported(modelName) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, modelName)
	}
	return &ModelTrainer{
		modelName:    modelName,
		exerciseRepo: exerciseRepo,
		caloriesRepo: caloriesRepo,
		trainedRepo:  trainedRepo,
		artifacts:    artifacts,
	}, nil
}

// Run executes the full pipeline and returns the persisted metadata record.
func (t *ModelTrainer) Run() (*models.TrainedModel, error) {
	if err := t.fetchData(); err != nil {
		return nil, err
	}
	t.splitData()
	if err := t.buildModel(); err != nil {
		return nil, err
	}
	if err := t.train(); err != nil {
		return nil, fmt.Errorf("train %s: %w", t.modelName, err)
	}
	t.evaluate()
	if err := t.saveModel(); err != nil {
		return nil, err
	}
	return t.saveToDB()
}

func (t *ModelTrainer) fetchData() error {
	exercise, err := t.exerciseRepo.FindAll()
	if err != nil {
		return fmt.Errorf("fetch exercise data: %w", err)
	}
	calories, err := t.caloriesRepo.FindAll()
	if err != nil {
		return fmt.Errorf("fetch calories data: %w", err)
	}
	t.x, t.y = AssembleTraining(exercise, calories)
	return nil
}

func (t *ModelTrainer) splitData() {
	t.xTrain, t.xTest, t.yTrain, t.yTest = SplitData(t.x, t.y, testSize, splitSeed)
}

func (t *ModelTrainer) buildModel() error {
	model, err := NewEstimator(t.modelName)
	if err != nil {
		return err
	}
	t.model = model
	return nil
}

func (t *ModelTrainer) train() error {
	return t.model.Fit(t.xTrain, t.yTrain)
}

func (t *ModelTrainer) evaluate() {
	preds := make([]float64, len(t.xTest))
	for i, row := range t.xTest {
		preds[i] = t.model.Predict(row)
	}
	t.mse = MeanSquaredError(t.yTest, preds)
	t.r2 = R2Score(t.yTest, preds)

	if weights, ok := t.model.FeatureWeights(); ok {
		t.importances = make([]models.FeatureImportance, len(weights))
		for i, w := range weights {
			t.importances[i] = models.FeatureImportance{
				Feature:    FeatureNames[i],
				Importance: w,
			}
		}
	} else {
		t.importances = nil
	}
}

func (t *ModelTrainer) saveModel() error {
	return t.artifacts.Save(t.modelName, t.model)
}

func (t *ModelTrainer) saveToDB() (*models.TrainedModel, error) {
	mse, r2 := t.mse, t.r2
	record := &models.TrainedModel{
		Name: t.modelName,
		File: t.artifacts.RelativePath(t.modelName),
		MSE:  &mse,
		R2:   &r2,
	}
	if err := record.SetImportances(t.importances); err != nil {
		return nil, err
	}
	if err := t.trainedRepo.Upsert(record); err != nil {
		return nil, fmt.Errorf("persist training metadata: %w", err)
	}
	return record, nil
}
