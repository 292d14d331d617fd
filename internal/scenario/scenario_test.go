package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllScenariosPass(t *testing.T) {
	for _, sc := range All {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			assert.NoError(t, sc.Execute())
		})
	}
}

func TestFindUnknownScenario(t *testing.T) {
	_, ok := Find("does-not-exist")
	assert.False(t, ok)
}
