package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tenaxis/tenaxis-api/pkg/normalize"
)

func TestSearchKey_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "maria jimenez", normalize.SearchKey("María Jiménez"))
	assert.Equal(t, "nunez & cia", normalize.SearchKey("NÚÑEZ & Cía"))
}

func TestSearchKey_ColapsaEspacios(t *testing.T) {
	assert.Equal(t, "fumigaciones el bosque", normalize.SearchKey("  Fumigaciones   El  Bosque "))
}

func TestSearchKey_Vacio(t *testing.T) {
	assert.Equal(t, "", normalize.SearchKey(""))
	assert.Equal(t, "", normalize.SearchKey("   "))
}
