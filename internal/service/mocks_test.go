package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/birthsafe/enrollbridge/internal/domain"
)

type PaymentStoreMock struct {
	mock.Mock
}

func (m *PaymentStoreMock) Create(ctx context.Context, sub domain.PaymentSubmission) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, sub)
	if rec := args.Get(0); rec != nil {
		return rec.(*domain.PaymentRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaymentStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, id)
	if rec := args.Get(0); rec != nil {
		return rec.(*domain.PaymentRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaymentStoreMock) SetVerdict(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}

type SettingsStoreMock struct {
	mock.Mock
}

func (m *SettingsStoreMock) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type DispatcherMock struct {
	mock.Mock
}

func (m *DispatcherMock) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) NotifyAdmin(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}
