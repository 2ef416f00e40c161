// Package memory implementaciones en memoria para pruebas y arranques sin base.
package memory

import (
	"context"
	"sync/atomic"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/folio"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

var _ repository.FolioSequence = (*FolioSequence)(nil)

// FolioSequence contador atómico en memoria. Mismo contrato que la secuencia en
// base: folios únicos y estrictamente crecientes ante llamadas concurrentes.
type FolioSequence struct {
	valor atomic.Int64
}

// NewFolioSequence crea la secuencia sembrada con el último consecutivo emitido.
func NewFolioSequence(ultimo int64) *FolioSequence {
	s := &FolioSequence{}
	s.valor.Store(ultimo)
	return s
}

// Siguiente incrementa el contador y devuelve el folio con formato "#00042".
func (s *FolioSequence) Siguiente(ctx context.Context) (string, error) {
	return folio.Format(s.valor.Add(1)), nil
}
