package v1

import (
	"errors"
	"net/http"

	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/storage"
)

// status returns the appropriate HTTP status for a core error.
func status(err error) int {
	if errors.Is(err, ledger.ErrNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrDuplicateTransaction) {
		return http.StatusConflict
	}

	if errors.Is(err, storage.ErrPersistence) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errSortMethodInvalid   = errors.New("the sort parameter must be 'snowball' or 'avalanche'")
	errFilePathNotSet      = errors.New("the file path must be set")
)
