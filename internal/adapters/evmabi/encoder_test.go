package evmabi

import (
	"math/big"
	"testing"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCallTransferAsset(t *testing.T) {
	params := domain.NewParameterList(domain.FunctionTransferAsset, domain.PathSpec, []domain.Parameter{
		{Name: "tokenAddress", Kind: domain.KindAddress, Value: domain.MustParseAddress("0.0.111")},
		{Name: "newOwnerAddress", Kind: domain.KindAddress, Value: domain.MustParseAddress("0.0.222")},
		{Name: "serialNumber", Kind: domain.KindInt64, Value: int64(5)},
	})

	data, err := NewEncoder().EncodeCall(params)
	require.NoError(t, err)
	require.Len(t, data, 4+3*32)
	assert.Equal(t, crypto.Keccak256([]byte("transferAsset(address,address,int64)"))[:4], data[:4])

	method, err := Method(params)
	require.NoError(t, err)
	values, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, common.HexToAddress("0x000000000000000000000000000000000000006f"), values[0])
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000de"), values[1])
	assert.Equal(t, int64(5), values[2])
}

func TestEncodeCallMintAssetDynamicTypes(t *testing.T) {
	params := domain.NewParameterList(domain.FunctionMintAsset, domain.PathSpec, []domain.Parameter{
		{Name: "tokenAddress", Kind: domain.KindAddress, Value: domain.MustParseAddress("0.0.111")},
		{Name: "metadata", Kind: domain.KindBytesArray, Value: [][]byte{[]byte("ipfs://a"), []byte("ipfs://b")}},
		{Name: "availableDates", Kind: domain.KindUint256Array, Value: []*big.Int{big.NewInt(1767225600)}},
	})

	data, err := NewEncoder().EncodeCall(params)
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256([]byte("mintAsset(address,bytes[],uint256[])"))[:4], data[:4])

	method, err := Method(params)
	require.NoError(t, err)
	values, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("ipfs://a"), []byte("ipfs://b")}, values[1])
	assert.Equal(t, []*big.Int{big.NewInt(1767225600)}, values[2])
}

func TestEncodeCallEmptyOptionalArray(t *testing.T) {
	params := domain.NewParameterList(domain.FunctionMintAsset, domain.PathSpec, []domain.Parameter{
		{Name: "tokenAddress", Kind: domain.KindAddress, Value: domain.MustParseAddress("0.0.111")},
		{Name: "metadata", Kind: domain.KindBytesArray, Value: [][]byte{[]byte("x")}},
		{Name: "availableDates", Kind: domain.KindUint256Array, Value: []*big.Int{}},
	})

	_, err := NewEncoder().EncodeCall(params)
	require.NoError(t, err)
}

func TestEncodeCallCreateAsset(t *testing.T) {
	params := domain.NewParameterList(domain.FunctionCreateAsset, domain.PathSpec, []domain.Parameter{
		{Name: "name", Kind: domain.KindString, Value: "Lisbon Loft"},
		{Name: "symbol", Kind: domain.KindString, Value: "LOFT"},
		{Name: "memo", Kind: domain.KindString, Value: ""},
		{Name: "maxSupply", Kind: domain.KindInt64, Value: int64(365)},
		{Name: "autoRenewPeriod", Kind: domain.KindUint32, Value: uint32(7776000)},
	})

	data, err := NewEncoder().EncodeCall(params)
	require.NoError(t, err)

	method, err := Method(params)
	require.NoError(t, err)
	assert.Equal(t, "createAsset(string,string,string,int64,uint32)", method.Sig)
	values, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, "Lisbon Loft", values[0])
	assert.Equal(t, uint32(7776000), values[4])
}

func TestEncodeCallRejectsUnknownValues(t *testing.T) {
	params := domain.NewParameterList("setFlag", domain.PathDynamic, []domain.Parameter{
		{Name: "flag", Kind: domain.KindBool, Value: 1.5},
	})

	_, err := NewEncoder().EncodeCall(params)
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)

	_, err = NewEncoder().EncodeCall(domain.ParameterList{})
	assert.ErrorIs(t, err, domain.ErrUnknownFunction)
}
