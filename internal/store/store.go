package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"careerdecide/internal/errors"
	"careerdecide/internal/types"
)

// Store is the persistence contract consumed by the CLI and HTTP
// server. Collections are append-only; records are never mutated after
// they are written. The evaluation engine never touches this interface.
type Store interface {
	SaveEvaluation(evaluation types.EvaluationResult) error
	Evaluations() ([]types.EvaluationResult, error)
	EvaluationByID(id string) (types.EvaluationResult, error)

	SaveAttempt(attempt types.InterviewAttempt) error
	Attempts() ([]types.InterviewAttempt, error)
	AttemptsForEvaluation(evaluationID string) ([]types.InterviewAttempt, error)

	SaveFeedback(feedback types.Feedback) error
	FeedbackEntries() ([]types.Feedback, error)

	SaveJobRole(role types.JobRole) error
	JobRoles() ([]types.JobRole, error)
	JobRoleByID(id string) (types.JobRole, error)

	SaveCandidates(jobRoleID string, candidates []types.Candidate) error
	CandidatesForJob(jobRoleID string) ([]types.Candidate, error)
}

// Collection file names inside the data directory.
const (
	evaluationsFile = "evaluations.json"
	interviewsFile  = "interviews.json"
	feedbackFile    = "feedback.json"
	jobRolesFile    = "job_roles.json"
	candidatesFile  = "candidates.json"
)

// FileStore persists collections as JSON files in a single directory.
// Writes rewrite the whole collection file; a mutex serializes access
// so the store is safe for concurrent use from HTTP handlers.
type FileStore struct {
	dataDir string
	mu      sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to create data directory: %s", dataDir), err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) path(file string) string {
	return filepath.Join(s.dataDir, file)
}

// readCollection decodes a collection file into target. A missing file
// is an empty collection, not an error.
func (s *FileStore) readCollection(file string, target any) error {
	data, err := os.ReadFile(s.path(file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to read collection: %s", file), err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to decode collection: %s", file), err)
	}
	return nil
}

// writeCollection encodes a collection and writes it atomically via a
// temp file rename.
func (s *FileStore) writeCollection(file string, collection any) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to encode collection: %s", file), err)
	}

	tmp := s.path(file) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to write collection: %s", file), err)
	}
	if err := os.Rename(tmp, s.path(file)); err != nil {
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to replace collection: %s", file), err)
	}
	return nil
}

func (s *FileStore) SaveEvaluation(evaluation types.EvaluationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evaluations []types.EvaluationResult
	if err := s.readCollection(evaluationsFile, &evaluations); err != nil {
		return err
	}
	evaluations = append(evaluations, evaluation)
	return s.writeCollection(evaluationsFile, evaluations)
}

func (s *FileStore) Evaluations() ([]types.EvaluationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evaluations []types.EvaluationResult
	if err := s.readCollection(evaluationsFile, &evaluations); err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (s *FileStore) EvaluationByID(id string) (types.EvaluationResult, error) {
	evaluations, err := s.Evaluations()
	if err != nil {
		return types.EvaluationResult{}, err
	}
	for _, e := range evaluations {
		if e.ID == id {
			return e, nil
		}
	}
	return types.EvaluationResult{}, errors.NewStorageError(errors.ErrCodeRecordNotFound,
		fmt.Sprintf("evaluation not found: %s", id), nil)
}

func (s *FileStore) SaveAttempt(attempt types.InterviewAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var attempts []types.InterviewAttempt
	if err := s.readCollection(interviewsFile, &attempts); err != nil {
		return err
	}
	attempts = append(attempts, attempt)
	return s.writeCollection(interviewsFile, attempts)
}

func (s *FileStore) Attempts() ([]types.InterviewAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var attempts []types.InterviewAttempt
	if err := s.readCollection(interviewsFile, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (s *FileStore) AttemptsForEvaluation(evaluationID string) ([]types.InterviewAttempt, error) {
	attempts, err := s.Attempts()
	if err != nil {
		return nil, err
	}
	var matching []types.InterviewAttempt
	for _, a := range attempts {
		if a.EvaluationID == evaluationID {
			matching = append(matching, a)
		}
	}
	return matching, nil
}

func (s *FileStore) SaveFeedback(feedback types.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []types.Feedback
	if err := s.readCollection(feedbackFile, &entries); err != nil {
		return err
	}
	entries = append(entries, feedback)
	return s.writeCollection(feedbackFile, entries)
}

func (s *FileStore) FeedbackEntries() ([]types.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []types.Feedback
	if err := s.readCollection(feedbackFile, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *FileStore) SaveJobRole(role types.JobRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var roles []types.JobRole
	if err := s.readCollection(jobRolesFile, &roles); err != nil {
		return err
	}
	roles = append(roles, role)
	return s.writeCollection(jobRolesFile, roles)
}

func (s *FileStore) JobRoles() ([]types.JobRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var roles []types.JobRole
	if err := s.readCollection(jobRolesFile, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *FileStore) JobRoleByID(id string) (types.JobRole, error) {
	roles, err := s.JobRoles()
	if err != nil {
		return types.JobRole{}, err
	}
	for _, r := range roles {
		if r.ID == id {
			return r, nil
		}
	}
	return types.JobRole{}, errors.NewStorageError(errors.ErrCodeRecordNotFound,
		fmt.Sprintf("job role not found: %s", id), nil)
}

func (s *FileStore) SaveCandidates(jobRoleID string, candidates []types.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byRole := make(map[string][]types.Candidate)
	if err := s.readCollection(candidatesFile, &byRole); err != nil {
		return err
	}
	byRole[jobRoleID] = candidates
	return s.writeCollection(candidatesFile, byRole)
}

func (s *FileStore) CandidatesForJob(jobRoleID string) ([]types.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byRole := make(map[string][]types.Candidate)
	if err := s.readCollection(candidatesFile, &byRole); err != nil {
		return nil, err
	}
	return byRole[jobRoleID], nil
}
