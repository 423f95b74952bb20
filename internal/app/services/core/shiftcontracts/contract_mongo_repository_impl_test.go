package shiftcontracts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractMongoRepository_FindByID_MalformedID(t *testing.T) {
	repo := &ContractMongoRepository{}

	contract, err := repo.FindByID(context.Background(), "not-hex")
	require.NoError(t, err)
	assert.Nil(t, contract)
}
