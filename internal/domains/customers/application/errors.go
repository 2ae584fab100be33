package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/huerto-store/internal/domains/customers/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid customer input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyRUT) ||
		errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptySurname) ||
		errors.Is(err, domain.ErrEmptyCountry) ||
		errors.Is(err, domain.ErrNegativeOrders) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
