package hci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseBytes(t *testing.T) {
	assert.Equal(t, []byte{3, 2, 1}, reverseBytes([]byte{1, 2, 3}))
	assert.Empty(t, reverseBytes(nil))
}

func TestEncodeLEEncryptReversesBothBlocks(t *testing.T) {
	var key, plaintext [16]byte
	for i := range key {
		key[i] = byte(i)
		plaintext[i] = byte(i + 100)
	}
	b := EncodeLEEncrypt(key, plaintext)
	require.Len(t, b, 32)
	assert.Equal(t, reverseBytes(key[:]), b[0:16])
	assert.Equal(t, reverseBytes(plaintext[:]), b[16:32])
}

func TestDecodeLEEncryptResultUnreverses(t *testing.T) {
	wire := make([]byte, 16)
	for i := range wire {
		wire[i] = byte(15 - i)
	}
	out, err := DecodeLEEncryptResult(wire)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i), out[i])
	}
}

func TestDecodeLERandResult(t *testing.T) {
	out, err := DecodeLERandResult([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, out)

	_, err = DecodeLERandResult([]byte{1, 2})
	var sizeErr *InvalidPayloadSizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestEncodeLELongTermKeyRequestReply(t *testing.T) {
	var ltk [16]byte
	for i := range ltk {
		ltk[i] = byte(i)
	}
	b := EncodeLELongTermKeyRequestReply(0x0040, ltk)
	require.Len(t, b, 18)
	assert.Equal(t, reverseBytes(ltk[:]), b[2:18])
}

func TestRemoteConnParamReqReplyMatchesConnectionUpdateLayout(t *testing.T) {
	p := RemoteConnParamReqReply{
		Handle:            0x0040,
		ConnIntervalMinMs: 30,
		ConnIntervalMaxMs: 50,
		LatencyEvents:     0,
		SupervisionMs:     2000,
	}
	equivalent := ConnectionUpdateParams(p)
	assert.Equal(t, equivalent.Encode(), p.Encode())
}

func TestEncodeLERemoteConnParamReqNegReply(t *testing.T) {
	b := EncodeLERemoteConnParamReqNegReply(0x0040, StatusUnsupportedRemoteFeature)
	require.Len(t, b, 3)
	assert.Equal(t, uint8(StatusUnsupportedRemoteFeature), b[2])
}
