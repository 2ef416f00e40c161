package postgres

import (
	"context"
	"fmt"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/folio"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

var _ repository.FolioSequence = (*FolioSequence)(nil)

// FolioSequence emite números de factura desde un contador en la tabla folios.
// El UPDATE ... RETURNING incrementa y lee en una sola operación atómica; dos
// cobros concurrentes nunca reciben el mismo folio. Debe usarse dentro de la
// misma transacción que el cobro: si la venta no se confirma, el incremento se
// revierte con el rollback (el siguiente cobro reutiliza el número, el contador
// no deja huecos por fallas).
type FolioSequence struct {
	q Querier
}

// NewFolioSequence construye la secuencia. Pasar la tx del cobro.
func NewFolioSequence(q Querier) *FolioSequence {
	return &FolioSequence{q: q}
}

// Siguiente incrementa el contador y devuelve el folio con formato "#00042".
func (s *FolioSequence) Siguiente(ctx context.Context) (string, error) {
	var n int64
	err := s.q.QueryRow(ctx,
		`UPDATE folios SET valor = valor + 1 WHERE nombre = 'ventas' RETURNING valor`).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("siguiente folio: %w", err)
	}
	return folio.Format(n), nil
}

// SeedFolios siembra el contador con el mayor consecutivo observado en ventas
// históricas. Idempotente: solo inserta si la fila no existe.
func SeedFolios(ctx context.Context, q Querier, max int64) error {
	_, err := q.Exec(ctx,
		`INSERT INTO folios (nombre, valor) VALUES ('ventas', $1) ON CONFLICT (nombre) DO NOTHING`, max)
	if err != nil {
		return fmt.Errorf("seed folios: %w", err)
	}
	return nil
}
