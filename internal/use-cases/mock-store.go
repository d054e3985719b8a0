package use_cases

import (
	"mime/multipart"

	"github.com/stretchr/testify/mock"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/storage"
)

var _ storage.FileStore = (*MockFileStore)(nil)

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Validate(header *multipart.FileHeader) *app_errors.AppError {
	args := m.Called(header)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockFileStore) Save(field string, header *multipart.FileHeader) (*storage.StoredFile, *app_errors.AppError) {
	args := m.Called(field, header)
	return args.Get(0).(*storage.StoredFile), args.Get(1).(*app_errors.AppError)
}

func (m *MockFileStore) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockFileStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
