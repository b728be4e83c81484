package ml

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrArtifactNotFound signals a prediction request for a model kind that was
// never trained. There is no fallback model and no lazy training trigger.
var ErrArtifactNotFound = errors.New("model artifact not found")

const artifactDir = "models"

// ArtifactStore persists fitted estimators under <mediaRoot>/models using the
// fixed "<kind>_model.gob" naming convention. Training and prediction share
// one store so the path contract cannot drift.
type ArtifactStore struct {
	mediaRoot string
}

func NewArtifactStore(mediaRoot string) *ArtifactStore {
	return &ArtifactStore{mediaRoot: mediaRoot}
}

// RelativePath is the artifact reference recorded in training metadata.
func (s *ArtifactStore) RelativePath(kind string) string {
	return filepath.Join(artifactDir, kind+"_model.gob")
}

func (s *ArtifactStore) absolutePath(kind string) string {
	return filepath.Join(s.mediaRoot, s.RelativePath(kind))
}

// envelope wraps the estimator so its concrete type survives the gob round
// trip through the interface field.
type envelope struct {
	Kind      string
	Estimator Estimator
}

func init() {
	gob.Register(&LinearRegression{})
	gob.Register(&RandomForest{})
	gob.Register(&GradientBoosting{})
	gob.Register(&RegressionTree{})
}

// Save overwrites any existing artifact for kind. The write is a plain
// whole-file overwrite; a crash mid-write can leave a corrupt artifact.
func (s *ArtifactStore) Save(kind string, est Estimator) error {
	path := s.absolutePath(kind)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(&envelope{Kind: kind, Estimator: est}); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return nil
}

// Load reads the fitted estimator for kind, failing hard when none exists.
func (s *ArtifactStore) Load(kind string) (Estimator, error) {
	f, err := os.Open(s.absolutePath(kind))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, kind)
		}
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()
	var env envelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return env.Estimator, nil
}
