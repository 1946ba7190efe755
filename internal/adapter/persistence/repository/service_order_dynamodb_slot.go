package repository

import (
	"context"
	"fmt"
	"time"

	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSlotsTableName = "slots"

type slotItem struct {
	Key       string `dynamodbav:"slot_key"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the slot.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ServiceOrderDynamoSlot stores the serialized collection as one DynamoDB item.
//
// Table requirements:
//   - PK: slot_key (string)
//
// The payload attribute holds the same JSON array the file slot writes, so both
// drivers are interchangeable.
type ServiceOrderDynamoSlot struct {
	ddb       DynamoDBAPI
	tableName string
	key       string
	now       func() time.Time
}

var _ interfaces.IServiceOrderSlot = (*ServiceOrderDynamoSlot)(nil)

func NewServiceOrderDynamoSlot(ddb DynamoDBAPI, tableName, key string) *ServiceOrderDynamoSlot {
	if tableName == "" {
		tableName = defaultSlotsTableName
	}
	return &ServiceOrderDynamoSlot{ddb: ddb, tableName: tableName, key: key, now: time.Now}
}

func (r *ServiceOrderDynamoSlot) Load(ctx context.Context) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot_key": &types.AttributeValueMemberS{Value: r.key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb slot: get: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it slotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("dynamodb slot: unmarshal: %w", err)
	}
	return DecodeCollection([]byte(it.Payload))
}

func (r *ServiceOrderDynamoSlot) Save(ctx context.Context, orders []entities.ServiceOrder) error {
	data, err := EncodeCollection(orders)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(slotItem{
		Key:       r.key,
		Payload:   string(data),
		UpdatedAt: r.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("dynamodb slot: marshal: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb slot: put: %w", err)
	}
	return nil
}
