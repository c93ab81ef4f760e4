package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "un-secret-para-tests"
	testIssuer = "tenaxis-test"
)

func testInput() TokenInput {
	return TokenInput{
		UserID:    "user-1",
		TenantID:  "tenant-1",
		CompanyID: "company-1",
		Role:      "supervisor",
	}
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, 60, testInput())
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, "supervisor", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, -1, testInput())
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, 60, testInput())
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", testIssuer, 60, testInput())
	assert.Error(t, err)
}
