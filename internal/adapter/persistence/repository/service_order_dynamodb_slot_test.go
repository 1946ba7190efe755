package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
	putErr error
	table  string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.table = *in.TableName
	key := in.Key["slot_key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.table = *in.TableName
	key := in.Item["slot_key"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestServiceOrderDynamoSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		slot := NewServiceOrderDynamoSlot(newFakeDynamo(), "", "ponto")
		orders, err := slot.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, orders)
	})

	t.Run("save then load", func(t *testing.T) {
		ddb := newFakeDynamo()
		slot := NewServiceOrderDynamoSlot(ddb, "shop-slots", "ponto")
		slot.now = func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) }

		require.NoError(t, slot.Save(ctx, sampleOrders()))
		assert.Equal(t, "shop-slots", ddb.table)

		var it slotItem
		require.NoError(t, attributevalue.UnmarshalMap(ddb.items["ponto"], &it))
		assert.Equal(t, "2024-03-05T00:00:00Z", it.UpdatedAt)
		assert.Contains(t, it.Payload, `"customerName":"Maria"`)

		orders, err := slot.Load(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "Samsung", orders[0].EquipmentBrand)
	})

	t.Run("malformed payload", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.items["ponto"] = map[string]types.AttributeValue{
			"slot_key": &types.AttributeValueMemberS{Value: "ponto"},
			"payload":  &types.AttributeValueMemberS{Value: "[{"},
		}
		_, err := NewServiceOrderDynamoSlot(ddb, "", "ponto").Load(ctx)
		assert.Error(t, err)
	})

	t.Run("client errors are wrapped", func(t *testing.T) {
		boom := errors.New("throttled")
		ddb := newFakeDynamo()
		ddb.getErr, ddb.putErr = boom, boom
		slot := NewServiceOrderDynamoSlot(ddb, "", "ponto")

		_, err := slot.Load(ctx)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, slot.Save(ctx, nil), boom)
	})
}
