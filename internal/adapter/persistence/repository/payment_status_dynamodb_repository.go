package repository

import (
	"context"
	"strings"
	"time"

	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentStatusTableName = "payment_status"

type paymentStatusItem struct {
	TransactionID string  `dynamodbav:"transaction_id"`
	Status        string  `dynamodbav:"status"`
	Method        string  `dynamodbav:"method,omitempty"`
	Amount        float64 `dynamodbav:"amount"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
	RawStatus     string  `dynamodbav:"raw_status,omitempty"`
	WebhookEvent  string  `dynamodbav:"webhook_event,omitempty"`
	Source        string  `dynamodbav:"source,omitempty"`
	ExpiresAt     int64   `dynamodbav:"expires_at,omitempty"`
}

// dynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type dynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// PaymentStatusDynamoRepository persists PaymentRecords in DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily (up to days later), so Get also
// checks expires_at and reports expired items as absent.

type PaymentStatusDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPaymentStatusStore = (*PaymentStatusDynamoRepository)(nil)

// NewPaymentStatusDynamoRepository uses tableName, or "payment_status" when blank.
func NewPaymentStatusDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentStatusDynamoRepository {
	return newPaymentStatusDynamoRepository(ddb, tableName)
}

func newPaymentStatusDynamoRepository(ddb dynamoDBAPI, tableName string) *PaymentStatusDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultPaymentStatusTableName
	}
	return &PaymentStatusDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *PaymentStatusDynamoRepository) Get(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() > it.ExpiresAt {
		return entities.PaymentRecord{}, nil
	}
	return fromPaymentStatusItem(it), nil
}

func (r *PaymentStatusDynamoRepository) Set(ctx context.Context, transactionID string, record entities.PaymentRecord, ttl time.Duration) error {
	record.TransactionID = transactionID
	it := toPaymentStatusItem(record)
	if ttl > 0 {
		it.ExpiresAt = r.now().Add(ttl).Unix()
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	// Unconditional put: records are overwritten as a whole.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toPaymentStatusItem(p entities.PaymentRecord) paymentStatusItem {
	return paymentStatusItem{
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		Method:        p.Method,
		Amount:        p.Amount,
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		RawStatus:     p.RawStatus,
		WebhookEvent:  p.WebhookEvent,
		Source:        string(p.Source),
	}
}

func fromPaymentStatusItem(it paymentStatusItem) entities.PaymentRecord {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentRecord{
		TransactionID: it.TransactionID,
		Status:        entities.PaymentStatus(it.Status),
		Method:        it.Method,
		Amount:        it.Amount,
		UpdatedAt:     updatedAt,
		RawStatus:     it.RawStatus,
		WebhookEvent:  it.WebhookEvent,
		Source:        entities.RecordSource(it.Source),
	}
}
