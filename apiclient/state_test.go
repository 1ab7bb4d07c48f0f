package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonDecode(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func TestOptimistic(t *testing.T) {
	type partner struct {
		UserID int64
		Level  int
	}

	t.Run("CommitOnSuccess", func(t *testing.T) {
		p := partner{UserID: 1, Level: 1}
		err := Optimistic(&p,
			func(p *partner) { p.Level = 2 },
			func() error { return nil })
		require.NoError(t, err)
		assert.Equal(t, 2, p.Level)
	})

	t.Run("RollbackOnFailure", func(t *testing.T) {
		p := partner{UserID: 1, Level: 1}
		err := Optimistic(&p,
			func(p *partner) { p.Level = 3 },
			func() error { return errors.New("forbidden") })
		require.Error(t, err)
		// Откат к снимку до мутации
		assert.Equal(t, 1, p.Level)
	})
}
