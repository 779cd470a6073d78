package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crisisvision/types"
)

func TestProceduresByCategory(t *testing.T) {
	assert.Equal(t, FireProcedures, Procedures(types.Fire))
	assert.Equal(t, HurricaneProcedures, Procedures(types.Hurricane))
	assert.Equal(t, FloodProcedures, Procedures(types.Flood))
	assert.Equal(t, GeneralSafety, Procedures(types.None))
	assert.Equal(t, GeneralSafety, Procedures(types.Category("volcano")))
}
