package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSubmissionStore struct{ mock.Mock }

func (m *mockSubmissionStore) Put(ctx context.Context, s *domain.Submission) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSubmissionStore) ListByStudent(ctx context.Context, studentID string) ([]domain.Submission, error) {
	args := m.Called(ctx, studentID)
	if subs, _ := args.Get(0).([]domain.Submission); subs != nil {
		return subs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSubmissionStore) ListByProblem(ctx context.Context, problemID string) ([]domain.Submission, error) {
	args := m.Called(ctx, problemID)
	if subs, _ := args.Get(0).([]domain.Submission); subs != nil {
		return subs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSubmissionStore) ListAll(ctx context.Context) ([]domain.Submission, error) {
	args := m.Called(ctx)
	if subs, _ := args.Get(0).([]domain.Submission); subs != nil {
		return subs, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreate_PersistsPending(t *testing.T) {
	repo := &mockSubmissionStore{}
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Submission")).Return(nil)
	svc := NewService(repo)

	res := svc.Create(context.Background(), "student-1", domain.CreateSubmissionRequest{
		ProblemID: "p1", GithubURL: "https://github.com/a/b",
	})

	require.False(t, res.DemoMode)
	assert.Equal(t, "pending", res.Submission.Status)
	assert.Equal(t, "student-1", res.Submission.StudentID)
	assert.NotEmpty(t, res.Submission.SubmissionID)
}

func TestCreate_StorageFailure_EchoesDemoResult(t *testing.T) {
	repo := &mockSubmissionStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))
	svc := NewService(repo)

	res := svc.Create(context.Background(), "student-1", domain.CreateSubmissionRequest{ProblemID: "p1"})
	assert.True(t, res.DemoMode)
	assert.Equal(t, "demo-submission-id", res.Submission.SubmissionID)
}

func TestList_StudentSeesOnlyOwnSubmissions(t *testing.T) {
	repo := &mockSubmissionStore{}
	repo.On("ListByStudent", mock.Anything, "student-1").Return([]domain.Submission{{SubmissionID: "s1"}}, nil)
	svc := NewService(repo)

	subs, demo := svc.List(context.Background(), "student-1", domain.RoleStudent, "p1")
	assert.False(t, demo)
	assert.Len(t, subs, 1)
	repo.AssertNotCalled(t, "ListByProblem", mock.Anything, mock.Anything)
}

func TestList_RecruiterScopesByProblem(t *testing.T) {
	repo := &mockSubmissionStore{}
	repo.On("ListByProblem", mock.Anything, "p1").Return([]domain.Submission{{SubmissionID: "s1"}, {SubmissionID: "s2"}}, nil)
	svc := NewService(repo)

	subs, demo := svc.List(context.Background(), "recruiter-1", domain.RoleRecruiter, "p1")
	assert.False(t, demo)
	assert.Len(t, subs, 2)
}

func TestList_AdminWithoutProblem_ListsAll(t *testing.T) {
	repo := &mockSubmissionStore{}
	repo.On("ListAll", mock.Anything).Return([]domain.Submission{{SubmissionID: "s1"}}, nil)
	svc := NewService(repo)

	subs, demo := svc.List(context.Background(), "admin", domain.RoleAdmin, "")
	assert.False(t, demo)
	assert.Len(t, subs, 1)
}

func TestList_StorageFailure_ServesDemoData(t *testing.T) {
	repo := &mockSubmissionStore{}
	repo.On("ListByStudent", mock.Anything, "student-1").Return(nil, errors.New("dynamo down"))
	svc := NewService(repo)

	subs, demo := svc.List(context.Background(), "student-1", domain.RoleStudent, "")
	assert.True(t, demo)
	assert.Len(t, subs, 2)
}
