package utils

import "time"

//go:generate mockgen -destination ../mocks/utils/timeProvider.go -package mock_utils github.com/unicsmcr/healthcare_api/utils TimeProvider

// Helper interface to make mocking time.Now() easier
type TimeProvider interface {
	Now() time.Time
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

func (*timeProvider) Now() time.Time {
	return time.Now()
}
