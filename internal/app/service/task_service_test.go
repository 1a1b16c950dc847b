package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/app/service"
	"tasktracker/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context, filter domain.TaskFilter, page domain.Page) ([]domain.Task, error) {
	args := m.Called(ctx, filter, page)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Count(ctx context.Context, filter domain.TaskFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) (int64, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepositoryMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var (
	fixedNow    = time.Date(2026, 4, 2, 15, 4, 5, 123456789, time.UTC)
	createdDate = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
)

func newService(repo *taskRepositoryMock) *service.TaskService {
	return service.NewTaskService(repo, service.WithClock(func() time.Time { return fixedNow }))
}

func requireCompletionInvariant(t *testing.T, task domain.Task) {
	t.Helper()
	require.Equal(t, task.IsCompleted, task.CompletedDate != nil,
		"isCompleted=%v but completedDate=%v", task.IsCompleted, task.CompletedDate)
}

func TestTaskService_ListTasks(t *testing.T) {
	repo := new(taskRepositoryMock)
	completed := true
	filter := domain.TaskFilter{IsCompleted: &completed, Title: "milk"}
	page := domain.Page{Number: 2, Size: 5}
	tasks := []domain.Task{{ID: 7, Title: "Buy milk", CreatedDate: createdDate}}

	repo.On("List", mock.Anything, filter, page).Return(tasks, nil).Once()
	repo.On("Count", mock.Anything, filter).Return(6, nil).Once()

	got, err := newService(repo).ListTasks(context.Background(), filter, page)
	require.NoError(t, err)
	require.Equal(t, tasks, got.Items)
	require.Equal(t, 6, got.TotalCount)
	require.Equal(t, page, got.Page)
	require.Equal(t, 2, got.TotalPages())
	repo.AssertExpectations(t)
}

func TestTaskService_ListTasks_EmptyIsNotAnError(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("List", mock.Anything, domain.TaskFilter{}, mock.Anything).Return(nil, nil).Once()
	repo.On("Count", mock.Anything, domain.TaskFilter{}).Return(0, nil).Once()

	got, err := newService(repo).ListTasks(context.Background(), domain.TaskFilter{}, domain.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.NotNil(t, got.Items)
	require.Empty(t, got.Items)
	require.Zero(t, got.TotalPages())
}

func TestTaskService_ListTasks_StorageFailure(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db is down")).Once()

	_, err := newService(repo).ListTasks(context.Background(), domain.TaskFilter{}, domain.Page{Number: 1, Size: 10})
	require.Error(t, err)
	require.Equal(t, domain.KindInternal, domain.KindOf(err))
	repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("GetByID", mock.Anything, int64(99999)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	_, err := newService(repo).GetTask(context.Background(), 99999)

	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, domain.KindNotFound, domainErr.Kind)
	require.Equal(t, int64(99999), domainErr.TaskID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_CreateTask(t *testing.T) {
	repo := new(taskRepositoryMock)
	description := "semi-skimmed"
	repo.On("Create", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.ID == 0 &&
			task.Title == "Buy milk" &&
			task.Description != nil && *task.Description == description &&
			!task.IsCompleted &&
			task.CompletedDate == nil &&
			task.CreatedDate.Equal(fixedNow.Truncate(time.Microsecond))
	})).Return(int64(42), nil).Once()

	got, err := newService(repo).CreateTask(context.Background(), domain.CreateTaskInput{
		Title:       "  Buy milk ",
		Description: &description,
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), got.ID)
	require.False(t, got.IsCompleted)
	require.Nil(t, got.CompletedDate)
	requireCompletionInvariant(t, got)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_StorageFailure(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("insert failed")).Once()

	_, err := newService(repo).CreateTask(context.Background(), domain.CreateTaskInput{Title: "x"})
	require.EqualError(t, err, "insert failed")
}

func TestTaskService_UpdateTask_Transitions(t *testing.T) {
	earlier := createdDate.Add(time.Hour)

	cases := []struct {
		name          string
		existing      domain.Task
		input         domain.UpdateTaskInput
		wantCompleted *time.Time
	}{
		{
			name:          "incomplete to complete stamps now",
			existing:      domain.Task{ID: 1, Title: "a", CreatedDate: createdDate},
			input:         domain.UpdateTaskInput{Title: "a", IsCompleted: true},
			wantCompleted: &fixedNow,
		},
		{
			name:          "complete to complete keeps the original date",
			existing:      domain.Task{ID: 1, Title: "a", IsCompleted: true, CompletedDate: &earlier, CreatedDate: createdDate},
			input:         domain.UpdateTaskInput{Title: "b", IsCompleted: true},
			wantCompleted: &earlier,
		},
		{
			name:     "complete to incomplete clears the date",
			existing: domain.Task{ID: 1, Title: "a", IsCompleted: true, CompletedDate: &earlier, CreatedDate: createdDate},
			input:    domain.UpdateTaskInput{Title: "a", IsCompleted: false},
		},
		{
			name:     "incomplete stays incomplete",
			existing: domain.Task{ID: 1, Title: "a", CreatedDate: createdDate},
			input:    domain.UpdateTaskInput{Title: "c"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(taskRepositoryMock)
			repo.On("GetByID", mock.Anything, int64(1)).Return(tc.existing, nil).Once()
			repo.On("Update", mock.Anything, mock.AnythingOfType("domain.Task")).Return(nil).Once()

			got, err := newService(repo).UpdateTask(context.Background(), 1, tc.input)
			require.NoError(t, err)

			require.Equal(t, tc.input.IsCompleted, got.IsCompleted)
			require.Equal(t, tc.input.Title, got.Title)
			require.True(t, createdDate.Equal(got.CreatedDate), "createdDate must not change")
			requireCompletionInvariant(t, got)
			if tc.wantCompleted == nil {
				require.Nil(t, got.CompletedDate)
			} else {
				require.NotNil(t, got.CompletedDate)
				require.True(t, tc.wantCompleted.Truncate(time.Microsecond).Equal(*got.CompletedDate))
			}

			persisted := repo.Calls[1].Arguments.Get(1).(domain.Task)
			require.Equal(t, got, persisted)
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("GetByID", mock.Anything, int64(5)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	_, err := newService(repo).UpdateTask(context.Background(), 5, domain.UpdateTaskInput{Title: "x"})
	require.Equal(t, domain.KindNotFound, domain.KindOf(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_CompleteTask(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("GetByID", mock.Anything, int64(3)).Return(domain.Task{ID: 3, Title: "a", CreatedDate: createdDate}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.ID == 3 && task.IsCompleted && task.CompletedDate != nil
	})).Return(nil).Once()

	got, err := newService(repo).CompleteTask(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, got.IsCompleted)
	require.True(t, fixedNow.Truncate(time.Microsecond).Equal(*got.CompletedDate))
	requireCompletionInvariant(t, got)
	repo.AssertExpectations(t)
}

func TestTaskService_CompleteTask_AlreadyCompletedNeverMutates(t *testing.T) {
	completedAt := createdDate.Add(time.Hour)
	repo := new(taskRepositoryMock)
	repo.On("GetByID", mock.Anything, int64(3)).Return(domain.Task{
		ID: 3, Title: "a", IsCompleted: true, CompletedDate: &completedAt, CreatedDate: createdDate,
	}, nil).Once()

	_, err := newService(repo).CompleteTask(context.Background(), 3)

	require.Equal(t, domain.KindAlreadyCompleted, domain.KindOf(err))
	require.ErrorIs(t, err, domain.ErrTaskAlreadyCompleted)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_CompleteTask_NotFound(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("GetByID", mock.Anything, int64(3)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	_, err := newService(repo).CompleteTask(context.Background(), 3)
	require.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestTaskService_DeleteTask(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Exists", mock.Anything, int64(8)).Return(true, nil).Once()
	repo.On("Delete", mock.Anything, int64(8)).Return(nil).Once()

	require.NoError(t, newService(repo).DeleteTask(context.Background(), 8))
	repo.AssertExpectations(t)
}

func TestTaskService_DeleteTask_NotFoundLeavesStorageUntouched(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Exists", mock.Anything, int64(8)).Return(false, nil).Once()

	err := newService(repo).DeleteTask(context.Background(), 8)
	require.Equal(t, domain.KindNotFound, domain.KindOf(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTaskService_DeleteTask_RowVanished(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Exists", mock.Anything, int64(8)).Return(true, nil).Once()
	repo.On("Delete", mock.Anything, int64(8)).Return(domain.ErrTaskNotFound).Once()

	err := newService(repo).DeleteTask(context.Background(), 8)
	require.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestTaskService_PropagatesDeadline(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("GetByID", mock.Anything, int64(1)).Return(domain.Task{}, context.DeadlineExceeded).Once()

	_, err := newService(repo).GetTask(context.Background(), 1)
	require.Equal(t, domain.KindTimeout, domain.KindOf(err))
}
