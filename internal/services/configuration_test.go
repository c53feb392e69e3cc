package services_test

import (
	"testing"

	"github.com/localnerve/salesdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetConfigurationUpserts(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.SetConfiguration(db, "company_name", "Representacoes Silva"))
	require.True(t, services.SetConfiguration(db, "company_name", "Representacoes Silva e Filhos"))

	value, found := services.GetConfiguration(db, "company_name")
	require.True(t, found)
	assert.Equal(t, "Representacoes Silva e Filhos", value)

	assert.Len(t, services.GetAllConfigurations(db), 1)
}

func TestGetConfigurationMissingKey(t *testing.T) {
	db := setupTestDB(t)

	value, found := services.GetConfiguration(db, "no_such_key")
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestDeleteConfiguration(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.SetConfiguration(db, "printer_enabled", "true"))

	assert.False(t, services.DeleteConfiguration(db, "no_such_key"))
	assert.True(t, services.DeleteConfiguration(db, "printer_enabled"))

	_, found := services.GetConfiguration(db, "printer_enabled")
	assert.False(t, found)
}
