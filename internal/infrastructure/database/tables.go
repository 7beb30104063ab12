package database

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableCreator is the part of *dynamodb.Client needed to bootstrap tables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// TableSpec names a table and its string hash key.
type TableSpec struct {
	Name string
	Key  string
}

// EnsureTables creates each table with on-demand billing. Tables that
// already exist are left untouched.
func EnsureTables(ctx context.Context, ddb TableCreator, tables ...TableSpec) error {
	for _, t := range tables {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(t.Name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(t.Key), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(t.Key), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return err
		}
		log.Printf("[database] created table %s (key=%s)", t.Name, t.Key)
	}
	return nil
}
