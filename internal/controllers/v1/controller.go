// Package v1 implements the v1 API.
package v1

import (
	"sync"

	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// Controller holds the state the handlers work on.
//
// The budget core is single-writer: exactly one mutation is in flight
// at any time. Since gin serves requests concurrently, the mutex
// serializes all access to the ledger here at the boundary.
type Controller struct {
	mu       sync.Mutex
	ledger   *ledger.Ledger
	gateway  *storage.Gateway
	handles  *storage.HandleCache // may be nil
	currency string
}

// NewController returns a Controller. The handle cache is optional.
func NewController(l *ledger.Ledger, gateway *storage.Gateway, handles *storage.HandleCache, currency string) *Controller {
	return &Controller{
		ledger:   l,
		gateway:  gateway,
		handles:  handles,
		currency: currency,
	}
}

// persist writes the full document after a successful mutation.
//
// A failed write is logged and surfaced on the storage endpoint; the
// in-memory mutation that triggered it stays applied and authoritative.
func (co *Controller) persist() {
	if err := co.gateway.Write(co.ledger.Document()); err != nil {
		log.Error().Err(err).Str("file", co.gateway.File()).Msg("failed to save budget file")
	}
}
