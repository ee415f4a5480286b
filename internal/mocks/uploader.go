package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockImageUploader is a mock implementation of the recipe image uploader
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) UploadRecipeImage(ctx context.Context, userID, filename string, body io.Reader) (string, error) {
	args := m.Called(ctx, userID, filename, body)
	return args.String(0), args.Error(1)
}
