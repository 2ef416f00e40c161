package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/folio"
	"github.com/elzarapeimports/zarape-pos-api/internal/infrastructure/memory"
)

func TestFolioSequence_Siguiente(t *testing.T) {
	seq := memory.NewFolioSequence(0)
	ctx := context.Background()

	f, err := seq.Siguiente(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#00001", f)

	f, err = seq.Siguiente(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#00002", f)
}

func TestFolioSequence_SembradaConHistorial(t *testing.T) {
	seq := memory.NewFolioSequence(41)

	f, err := seq.Siguiente(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#00042", f)
}

func TestFolioSequence_Concurrente(t *testing.T) {
	const n = 200
	seq := memory.NewFolioSequence(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	folios := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := seq.Siguiente(ctx)
			assert.NoError(t, err)
			folios <- f
		}()
	}
	wg.Wait()
	close(folios)

	vistos := make(map[string]bool, n)
	for f := range folios {
		assert.False(t, vistos[f], "folio repetido %s", f)
		vistos[f] = true
		num, ok := folio.Parse(f)
		require.True(t, ok)
		assert.True(t, num >= 1 && num <= n)
	}
	assert.Len(t, vistos, n)
}
