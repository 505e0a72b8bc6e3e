package testutil

import (
	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/app/model"
	"audio-transcriber/internal/app/repository"
)

// MockRunDAO is a testify/mock implementation of repository.RunDAO.
type MockRunDAO struct {
	mock.Mock
}

func NewMockRunDAO() *MockRunDAO {
	return &MockRunDAO{}
}

func (m *MockRunDAO) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockRunDAO) Record(run model.Run) error {
	args := m.Called(run)
	return args.Error(0)
}

func (m *MockRunDAO) ListRecent(limit int) ([]model.Run, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Run), args.Error(1)
}

// Interface compliance check
var _ repository.RunDAO = (*MockRunDAO)(nil)
