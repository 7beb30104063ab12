package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"invoice_service/internal/domain/entities"
	"invoice_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName       = "invoices"
	defaultInvoiceNumbersTableName = "invoice_numbers"
)

//go:generate mockgen -source=invoice_dynamodb_repository.go -destination=mocks/mock_dynamo_api.go -package=mock_repository

// DynamoAPI is the subset of *dynamodb.Client used by the invoice repository.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type invoiceLineItem struct {
	Service     string  `dynamodbav:"service"`
	Description string  `dynamodbav:"description,omitempty"`
	Price       float64 `dynamodbav:"price"`
}

type invoiceItem struct {
	ID             string            `dynamodbav:"id"`
	InvoiceNumber  string            `dynamodbav:"invoiceNumber"`
	ClientName     string            `dynamodbav:"clientName"`
	CompanyName    string            `dynamodbav:"companyName,omitempty"`
	ClientEmail    string            `dynamodbav:"clientEmail,omitempty"`
	Amount         float64           `dynamodbav:"amount"`
	Status         string            `dynamodbav:"status"`
	Currency       string            `dynamodbav:"currency"`
	DueDate        string            `dynamodbav:"dueDate"`
	Items          []invoiceLineItem `dynamodbav:"items"`
	Subtotal       float64           `dynamodbav:"subtotal"`
	DiscountRate   float64           `dynamodbav:"discountRate"`
	DiscountAmount float64           `dynamodbav:"discountAmount"`
	Total          float64           `dynamodbav:"total"`
	CreatedAt      string            `dynamodbav:"createdAt"`
	UpdatedAt      string            `dynamodbav:"updatedAt"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - invoices: PK id (string)
//   - invoice_numbers: PK invoiceNumber (string), attribute invoiceId
//
// DynamoDB has no secondary unique index, so every write that assigns an
// invoice number also claims it in invoice_numbers inside one transaction.
type InvoiceDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	numbersTable string
	now          func() time.Time
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName, numbersTable string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:          ddb,
		tableName:    valueOrDefault(tableName, defaultInvoicesTableName),
		numbersTable: valueOrDefault(numbersTable, defaultInvoiceNumbersTableName),
		now:          time.Now,
	}
}

// List returns every invoice, newest first. Storage errors are logged and
// reported as an empty list.
func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	out := []entities.Invoice{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			log.Printf("[invoice][repository] list scan failed table=%s err=%v", r.tableName, err)
			return []entities.Invoice{}, nil
		}
		var items []invoiceItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			log.Printf("[invoice][repository] list decode failed table=%s err=%v", r.tableName, err)
			return []entities.Invoice{}, nil
		}
		for _, it := range items {
			out = append(out, fromInvoiceItem(it))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			r.claimNumber(inv.InvoiceNumber, inv.ID),
		},
	})
	if err != nil {
		if conditionFailedAt(err, 1) {
			return entities.Invoice{}, entities.ErrDuplicateInvoiceNumber
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

// Update applies the supplied fields. Changing invoiceNumber moves the
// uniqueness claim in the same transaction as the invoice write.
func (r *InvoiceDynamoRepository) Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	if patch.InvoiceNumber == nil {
		return r.update(ctx, id, patch)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.ID == "" {
		return entities.Invoice{}, nil
	}
	if *patch.InvoiceNumber == current.InvoiceNumber {
		return r.update(ctx, id, patch)
	}

	expr, values, names := buildInvoiceUpdate(patch, r.now().UTC())
	values[":old_number"] = &types.AttributeValueMemberS{Value: current.InvoiceNumber}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:                 aws.String(r.tableName),
				Key:                       idKey(id),
				UpdateExpression:          aws.String(expr),
				ConditionExpression:       aws.String("attribute_exists(#id) AND #invoice_number = :old_number"),
				ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#invoice_number": "invoiceNumber"}),
				ExpressionAttributeValues: values,
			}},
			r.claimNumber(*patch.InvoiceNumber, id),
			r.releaseNumber(current.InvoiceNumber, id),
		},
	})
	if err != nil {
		switch {
		case conditionFailedAt(err, 1):
			return entities.Invoice{}, entities.ErrDuplicateInvoiceNumber
		case conditionFailedAt(err, 0):
			log.Printf("[invoice][repository] invoice changed or removed during number swap id=%s", id)
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) (entities.Invoice, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.ID == "" {
		return entities.Invoice{}, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:                aws.String(r.tableName),
				Key:                      idKey(id),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			r.releaseNumber(current.InvoiceNumber, id),
		},
	})
	if err != nil {
		if conditionFailedAt(err, 0) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return current, nil
}

func (r *InvoiceDynamoRepository) update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	expr, values, names := buildInvoiceUpdate(patch, r.now().UTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) claimNumber(number, invoiceID string) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName: aws.String(r.numbersTable),
		Item: map[string]types.AttributeValue{
			"invoiceNumber": &types.AttributeValueMemberS{Value: number},
			"invoiceId":     &types.AttributeValueMemberS{Value: invoiceID},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#invoice_number)"),
		ExpressionAttributeNames: map[string]string{"#invoice_number": "invoiceNumber"},
	}}
}

// releaseNumber tolerates a missing claim so invoices written before the
// claim table existed can still be renumbered or deleted.
func (r *InvoiceDynamoRepository) releaseNumber(number, invoiceID string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(r.numbersTable),
		Key: map[string]types.AttributeValue{
			"invoiceNumber": &types.AttributeValueMemberS{Value: number},
		},
		ConditionExpression: aws.String("attribute_not_exists(#invoice_number) OR #invoice_id = :invoice_id"),
		ExpressionAttributeNames: map[string]string{
			"#invoice_number": "invoiceNumber",
			"#invoice_id":     "invoiceId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice_id": &types.AttributeValueMemberS{Value: invoiceID},
		},
	}}
}

// buildInvoiceUpdate renders a SET expression for every supplied field plus
// updatedAt.
func buildInvoiceUpdate(p entities.InvoicePatch, now time.Time) (string, map[string]types.AttributeValue, map[string]string) {
	b := newUpdateBuilder()
	if p.InvoiceNumber != nil {
		b.setString("invoiceNumber", *p.InvoiceNumber)
	}
	if p.ClientName != nil {
		b.setString("clientName", *p.ClientName)
	}
	if p.CompanyName != nil {
		b.setString("companyName", *p.CompanyName)
	}
	if p.ClientEmail != nil {
		b.setString("clientEmail", *p.ClientEmail)
	}
	if p.Amount != nil {
		b.setNumber("amount", *p.Amount)
	}
	if p.Status != nil {
		b.setString("status", string(*p.Status))
	}
	if p.Currency != nil {
		b.setString("currency", *p.Currency)
	}
	if p.DueDate != nil {
		b.setString("dueDate", formatTime(*p.DueDate))
	}
	if p.Items != nil {
		b.set("items", &types.AttributeValueMemberL{Value: toLineItemValues(*p.Items)})
	}
	if p.Subtotal != nil {
		b.setNumber("subtotal", *p.Subtotal)
	}
	if p.DiscountRate != nil {
		b.setNumber("discountRate", *p.DiscountRate)
	}
	if p.DiscountAmount != nil {
		b.setNumber("discountAmount", *p.DiscountAmount)
	}
	if p.Total != nil {
		b.setNumber("total", *p.Total)
	}
	b.setString("updatedAt", formatTime(now))
	return b.expression(), b.values, b.names
}

func toLineItemValues(items []entities.InvoiceItem) []types.AttributeValue {
	out := make([]types.AttributeValue, 0, len(items))
	for _, it := range items {
		m := map[string]types.AttributeValue{
			"service": &types.AttributeValueMemberS{Value: it.Service},
			"price":   &types.AttributeValueMemberN{Value: floatToString(it.Price)},
		}
		if it.Description != "" {
			m["description"] = &types.AttributeValueMemberS{Value: it.Description}
		}
		out = append(out, &types.AttributeValueMemberM{Value: m})
	}
	return out
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		lines = append(lines, invoiceLineItem{Service: it.Service, Description: it.Description, Price: it.Price})
	}
	return invoiceItem{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		ClientName:     inv.ClientName,
		CompanyName:    inv.CompanyName,
		ClientEmail:    inv.ClientEmail,
		Amount:         inv.Amount,
		Status:         string(inv.Status),
		Currency:       inv.Currency,
		DueDate:        formatTime(inv.DueDate),
		Items:          lines,
		Subtotal:       inv.Subtotal,
		DiscountRate:   inv.DiscountRate,
		DiscountAmount: inv.DiscountAmount,
		Total:          inv.Total,
		CreatedAt:      formatTime(inv.CreatedAt),
		UpdatedAt:      formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.InvoiceItem{Service: l.Service, Description: l.Description, Price: l.Price})
	}
	return entities.Invoice{
		ID:             it.ID,
		InvoiceNumber:  it.InvoiceNumber,
		ClientName:     it.ClientName,
		CompanyName:    it.CompanyName,
		ClientEmail:    it.ClientEmail,
		Amount:         it.Amount,
		Status:         entities.InvoiceStatus(it.Status),
		Currency:       it.Currency,
		DueDate:        parseTime(it.DueDate),
		Items:          items,
		Subtotal:       it.Subtotal,
		DiscountRate:   it.DiscountRate,
		DiscountAmount: it.DiscountAmount,
		Total:          it.Total,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func sortNewestFirst(list []entities.Invoice) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
