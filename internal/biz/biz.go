package biz

import (
	"github.com/agentics/gatekeeper/internal/biz/usecase"
)

// Usecases contains all usecases
type Usecases struct {
	Vet *usecase.VetUsecase
}
