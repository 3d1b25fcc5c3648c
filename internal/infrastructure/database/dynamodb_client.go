package database

import (
	"context"
	"time"

	appconfig "order_core/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

const tableReadyTimeout = 2 * time.Minute

// ConnectDynamoDB creates a DynamoDB client from cfg. A non-empty Endpoint
// points the client at DynamoDB Local or another compatible server.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create dynamodb config")
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

// TableAPI is what EnsureTables needs from the client.
type TableAPI interface {
	dynamodb.DescribeTableAPIClient
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates every table in defs that does not exist yet and waits
// for it to become active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, api TableAPI, defs []dynamodb.CreateTableInput, log *logrus.Entry) error {
	waiter := dynamodb.NewTableExistsWaiter(api)
	for i := range defs {
		def := defs[i]
		name := aws.ToString(def.TableName)

		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return errors.Wrapf(err, "describe table %s", name)
		}

		if _, err := api.CreateTable(ctx, &def); err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return errors.Wrapf(err, "create table %s", name)
			}
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableReadyTimeout); err != nil {
			return errors.Wrapf(err, "wait for table %s", name)
		}
		if log != nil {
			log.WithField("table", name).Info("dynamodb table created")
		}
	}
	return nil
}
