package mongostore

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"vehicle_rental/internal/models"
)

func TestDecimalStoredAsDecimal128(t *testing.T) {
	reg := Registry()
	in := models.Payment{
		PaymentID:     "P1",
		Amount:        decimal.RequireFromString("90.10"),
		PaymentMethod: models.Cash,
		Status:        models.Paid,
	}

	raw, err := bson.MarshalWithRegistry(reg, in)
	require.NoError(t, err)
	require.Equal(t, bsontype.Decimal128, bson.Raw(raw).Lookup("amount").Type)
	_, hasID := bson.Raw(raw).LookupErr("id")
	require.Error(t, hasID)

	var out models.Payment
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	require.True(t, out.Amount.Equal(in.Amount))
	require.Equal(t, models.Paid, out.Status)
}

func TestDecimalDecodesLegacyNumbers(t *testing.T) {
	reg := Registry()

	cases := map[string]any{
		"double": 12.5,
		"int32":  int32(12),
		"int64":  int64(12),
		"string": "12.50",
	}
	for name, amount := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"payment_id": "P1", "amount": amount})
			require.NoError(t, err)

			var out models.Payment
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
			require.True(t, out.Amount.GreaterThanOrEqual(decimal.NewFromInt(12)))
			require.True(t, out.Amount.LessThanOrEqual(decimal.RequireFromString("12.5")))
		})
	}
}

func TestDecimalRejectsOtherTypes(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"amount": true})
	require.NoError(t, err)

	var out models.Payment
	require.Error(t, bson.UnmarshalWithRegistry(Registry(), raw, &out))
}
