package usecase

import (
	"fmt"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

func invalidInput(format string, args ...any) error {
	return listerr.InvalidInput(fmt.Sprintf(format, args...))
}

// outcome labels a finished operation for metrics.
func outcome(err error) string {
	if err == nil {
		return "accepted"
	}
	if domainErr, ok := listerr.As(err); ok {
		return domainErr.Reason()
	}
	return "internalError"
}
