package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationStatusFor(t *testing.T) {
	assert.Equal(t, RegistrationIncomplete, RegistrationStatusFor(""))
	assert.Equal(t, RegistrationIncomplete, RegistrationStatusFor("   "))
	assert.Equal(t, RegistrationComplete, RegistrationStatusFor("11999887766"))
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Birth Date  `json:"birth"`
		End   *Date `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"birth":"1985-03-15","end":null}`), &payload))
	assert.Equal(t, NewDate(1985, time.March, 15), payload.Birth)
	assert.Nil(t, payload.End)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birth":"1985-03-15","end":null}`, string(out))
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/1985"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-01-31"))
	assert.Equal(t, "2024-01-31", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 2, 1, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-02-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateBefore(t *testing.T) {
	start := NewDate(2024, time.January, 10)
	assert.True(t, NewDate(2024, time.January, 9).Before(start))
	assert.False(t, start.Before(start))
}

func TestEnums(t *testing.T) {
	assert.True(t, ContractCancelled.Valid())
	assert.False(t, ContractStatus("ATIVO").Valid())
	assert.True(t, ServiceDigital.Valid())
	assert.False(t, ServiceCategory("OTHER").Valid())
}
