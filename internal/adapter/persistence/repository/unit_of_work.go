package repository

import (
	"context"
	"strconv"
	"time"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxTransactItems is the DynamoDB limit on actions per TransactWriteItems.
const maxTransactItems = 100

type actionKind int

const (
	actionKey actionKind = iota
	actionCreate
	actionVersioned
)

// stagedAction remembers what each TransactWriteItem guards, so that a
// cancellation reason at index i can be explained.
type stagedAction struct {
	kind            actionKind
	entity          string
	id              string
	expectedVersion int64
}

// DynamoUnitOfWork commits staged writes with a single TransactWriteItems
// call, which is all-or-nothing.
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	tables Tables
	now    func() time.Time
	log    *logrus.Entry
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI, tables Tables, log *logrus.Entry) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{
		ddb:    ddb,
		tables: tables,
		now:    func() time.Time { return time.Now().UTC() },
		log:    log,
	}
}

func (u *DynamoUnitOfWork) Transact(ctx context.Context, fn func(tx interfaces.ITxn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &dynamoTxn{tables: u.tables, now: formatTime(u.now()), keys: map[string]struct{}{}}
	if err := fn(tx); err != nil {
		return err
	}
	if tx.err != nil {
		return tx.err
	}
	if len(tx.items) == 0 {
		return nil
	}
	if len(tx.items) > maxTransactItems {
		return errors.Wrapf(interfaces.ErrConstraintViolation, "transaction has %d actions, limit is %d", len(tx.items), maxTransactItems)
	}

	_, err := u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      tx.items,
		ClientRequestToken: aws.String(uuid.NewString()),
	})
	if err == nil {
		return nil
	}
	mapped := commitError(err, tx.actions)
	if u.log != nil {
		u.log.WithError(err).WithField("actions", len(tx.items)).Debug("transaction cancelled")
	}
	return mapped
}

// commitError explains a failed TransactWriteItems call in store terms.
// Uniqueness violations win over version mismatches, which win over
// structural violations.
func commitError(err error, staged []stagedAction) error {
	var cancelled *types.TransactionCanceledException
	if !errors.As(err, &cancelled) {
		return unavailable("commit", err)
	}

	var keyDup, rowDup, mismatch, constraint, transient error
	for i, reason := range cancelled.CancellationReasons {
		if i >= len(staged) {
			break
		}
		a := staged[i]
		switch aws.ToString(reason.Code) {
		case "", "None":
		case "ConditionalCheckFailed":
			switch a.kind {
			case actionKey:
				if keyDup == nil {
					keyDup = &interfaces.DuplicateKeyError{Key: a.id}
				}
			case actionCreate:
				if rowDup == nil {
					rowDup = &interfaces.DuplicateKeyError{Key: a.entity + "#" + a.id}
				}
			case actionVersioned:
				if len(reason.Item) == 0 {
					if constraint == nil {
						constraint = errors.Wrapf(interfaces.ErrConstraintViolation, "%s %s does not exist", a.entity, a.id)
					}
				} else if mismatch == nil {
					mismatch = &interfaces.VersionMismatchError{Entity: a.entity, ID: a.id, ExpectedVersion: a.expectedVersion}
				}
			}
		case "TransactionConflict":
			if mismatch == nil {
				mismatch = &interfaces.VersionMismatchError{Entity: a.entity, ID: a.id, ExpectedVersion: a.expectedVersion}
			}
		case "ValidationError":
			if constraint == nil {
				constraint = errors.Wrapf(interfaces.ErrConstraintViolation, "%s %s: %s", a.entity, a.id, aws.ToString(reason.Message))
			}
		default:
			if transient == nil {
				transient = unavailable("commit", errors.Errorf("%s on %s %s", aws.ToString(reason.Code), a.entity, a.id))
			}
		}
	}

	for _, e := range []error{keyDup, rowDup, mismatch, constraint, transient} {
		if e != nil {
			return e
		}
	}
	return unavailable("commit", err)
}

type dynamoTxn struct {
	tables  Tables
	now     string
	items   []types.TransactWriteItem
	actions []stagedAction
	keys    map[string]struct{}
	err     error
}

func (t *dynamoTxn) fail(err error) {
	if t.err == nil {
		t.err = err
	}
}

func (t *dynamoTxn) claimKey(key, ownerID string) {
	if _, dup := t.keys[key]; dup {
		t.fail(&interfaces.DuplicateKeyError{Key: key})
		return
	}
	t.keys[key] = struct{}{}
	t.put(t.tables.Keys, keyItem{Key: key, OwnerID: ownerID}, "key",
		stagedAction{kind: actionKey, entity: "key", id: key})
}

// put stages a conditional insert that fails if the row already exists.
func (t *dynamoTxn) put(table string, row any, hashKey string, action stagedAction) {
	av, err := attributevalue.MarshalMap(row)
	if err != nil {
		t.fail(errors.Wrapf(err, "marshal %s %s", action.entity, action.id))
		return
	}
	t.items = append(t.items, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": hashKey},
	}})
	t.actions = append(t.actions, action)
}

// versioned stages a guarded update: the row must exist with the expected
// version, and the stored version becomes expected+1.
func (t *dynamoTxn) versioned(table, entity, id string, expectedVersion int64, set string, names map[string]string, values map[string]types.AttributeValue) {
	vals := map[string]types.AttributeValue{
		":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		":next":       &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		":updated_at": &types.AttributeValueMemberS{Value: t.now},
	}
	for k, v := range values {
		vals[k] = v
	}
	t.items = append(t.items, types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(table),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET " + set + ", #version = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":         "id",
			"#version":    "version",
			"#updated_at": "updated_at",
		}),
		ExpressionAttributeValues:           vals,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}})
	t.actions = append(t.actions, stagedAction{kind: actionVersioned, entity: entity, id: id, expectedVersion: expectedVersion})
}

func (t *dynamoTxn) CreateOrder(o entities.Order) {
	if o.TotalAmount.IsNegative() {
		t.fail(errors.Wrap(interfaces.ErrConstraintViolation, "negative order total"))
		return
	}
	t.claimKey(interfaces.KeyPrefixQuotation+o.QuotationID, o.ID)
	t.claimKey(interfaces.KeyPrefixOrderNumber+o.OrderNumber, o.ID)
	t.put(t.tables.Orders, toOrderItem(o), "id", stagedAction{kind: actionCreate, entity: "order", id: o.ID})
	for _, it := range o.Items {
		if it.Quantity <= 0 {
			t.fail(errors.Wrapf(interfaces.ErrConstraintViolation, "order item %s quantity %d", it.ID, it.Quantity))
			return
		}
		t.put(t.tables.OrderItems, toOrderLineItem(it), "id", stagedAction{kind: actionCreate, entity: "order_item", id: it.ID})
	}
}

func (t *dynamoTxn) AppendStatusHistory(h entities.OrderStatusHistory) {
	t.put(t.tables.StatusHistory, toStatusHistoryItem(h), "id", stagedAction{kind: actionCreate, entity: "history", id: h.ID})
}

func (t *dynamoTxn) UpdateProductStock(productID string, newStock int64, expectedVersion int64) {
	if newStock < 0 {
		t.fail(errors.Wrapf(interfaces.ErrConstraintViolation, "product %s stock would be %d", productID, newStock))
		return
	}
	t.versioned(t.tables.Products, "product", productID, expectedVersion,
		"#stock = :stock",
		map[string]string{"#stock": "stock_quantity"},
		map[string]types.AttributeValue{":stock": &types.AttributeValueMemberN{Value: strconv.FormatInt(newStock, 10)}},
	)
}

func (t *dynamoTxn) UpdateQuotationStatus(quotationID string, status entities.QuotationStatus, expectedVersion int64) {
	t.versioned(t.tables.Quotations, "quotation", quotationID, expectedVersion,
		"#status = :status",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: string(status)}},
	)
}

func (t *dynamoTxn) UpdateOrderStatus(orderID string, status entities.OrderStatus, expectedVersion int64) {
	t.versioned(t.tables.Orders, "order", orderID, expectedVersion,
		"#status = :status",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: string(status)}},
	)
}

func (t *dynamoTxn) CreateSampleRequest(r entities.SampleRequest) {
	t.claimKey(interfaces.KeyPrefixRequestNumber+r.RequestNumber, r.ID)
	t.put(t.tables.SampleRequests, toSampleRequestItem(r), "id", stagedAction{kind: actionCreate, entity: "sample_request", id: r.ID})
	for _, it := range r.Items {
		if it.Quantity <= 0 {
			t.fail(errors.Wrapf(interfaces.ErrConstraintViolation, "sample item %s quantity %d", it.ID, it.Quantity))
			return
		}
		t.put(t.tables.SampleItems, toSampleLineItem(it), "id", stagedAction{kind: actionCreate, entity: "sample_item", id: it.ID})
	}
}
