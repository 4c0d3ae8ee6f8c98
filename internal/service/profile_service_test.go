package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nutrio/internal/model"
)

func TestProfileService_Update(t *testing.T) {
	profile := &model.Profile{
		Age:    30,
		Gender: "female",
		DOB:    time.Date(1995, 4, 2, 0, 0, 0, 0, time.UTC),
		Weight: 62.5,
		Height: 168,
	}

	t.Run("updates the user matching the email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateProfile", mock.Anything, "a@x.com", profile).Return(nil)

		svc := NewProfileService(mockRepo, testLogger())
		err := svc.Update(context.Background(), "a@x.com", profile)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateProfile", mock.Anything, "a@x.com", profile).Return(errors.New("connection refused"))

		svc := NewProfileService(mockRepo, testLogger())
		err := svc.Update(context.Background(), "a@x.com", profile)

		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}
