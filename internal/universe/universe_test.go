package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CanslimScanner/internal/model"
)

func TestDefault_UniqueAndComplete(t *testing.T) {
	assert.Len(t, Default, 52)
	seen := map[string]bool{}
	for _, e := range Default {
		assert.False(t, seen[e.Symbol], "duplicate symbol %s", e.Symbol)
		seen[e.Symbol] = true
		assert.NotEmpty(t, e.Sector, e.Symbol)
		assert.NotEmpty(t, e.Name, e.Symbol)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Default, Resolve(nil))
	custom := []model.SymbolEntry{{Symbol: "XYZ", Sector: "Tech"}}
	assert.Equal(t, custom, Resolve(custom))
	assert.Equal(t, []string{"XYZ"}, Symbols(custom))
}
