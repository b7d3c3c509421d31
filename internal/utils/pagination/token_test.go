package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	fecha := time.Date(2025, 7, 14, 10, 30, 0, 123456789, time.UTC)
	movimientoID := "d8b2f1f0-1111-2222-3333-444455556666"

	token := EncodeToken(fecha, movimientoID)
	require.NotEmpty(t, token)

	gotFecha, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, fecha.Equal(gotFecha))
	assert.Equal(t, movimientoID, gotID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2025-07-14T10:30:00Z"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadDate(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|some-id"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_EmptyID(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2025-07-14T10:30:00Z|"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}
