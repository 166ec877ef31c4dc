package usecases

import (
	"context"
)

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/agent/usecases/api.go -package=usecases

// RegistrationService obtains a delivery token from the push transport and
// hands it to the admin backend.
type RegistrationService interface {
	RequestRegistration(ctx context.Context) error
}
