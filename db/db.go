// Package db stores catalog entries in DynamoDB, keyed by file path.
package db

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/rsxml/constants"
	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/util"
	"github.com/pkg/errors"
)

const keyName = "path"

// Unprocessed items are resent at most this many times.
const maxRetries = 5

type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// New connects to the endpoint and region from the environment.
func New() (*Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoDBRegion()),
		Endpoint: aws.String(constants.GetDynamoDBEndpoint()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a DynamoDB session")
	}
	return NewStore(dynamodb.New(sess), constants.GetCatalogTable()), nil
}

func NewStore(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

func batches[T any](items []T, size int) [][]T {
	var res [][]T
	for len(items) > size {
		res = append(res, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		res = append(res, items)
	}
	return res
}

// unique keeps the last entry of every path, ordered by path. A batch write
// fails when two of its requests share a key.
func unique(entries []model.CatalogEntry) []model.CatalogEntry {
	byPath := make(map[string]model.CatalogEntry, len(entries))
	for _, e := range entries {
		byPath[e.Path] = e
	}
	res := make([]model.CatalogEntry, 0, len(byPath))
	for _, path := range util.GetKeys(byPath) {
		res = append(res, byPath[path])
	}
	return res
}

func (s *Store) PutEntries(entries []model.CatalogEntry) error {
	for _, batch := range batches(unique(entries), constants.MaxBatchWrite) {
		var requests []*dynamodb.WriteRequest
		for _, e := range batch {
			item, err := dynamodbattribute.MarshalMap(e)
			if err != nil {
				return errors.Wrapf(err, "marshalling %v", e.Path)
			}
			requests = append(requests, &dynamodb.WriteRequest{
				PutRequest: &dynamodb.PutRequest{Item: item},
			})
		}

		pending := map[string][]*dynamodb.WriteRequest{s.table: requests}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt > maxRetries {
				return errors.Errorf("%d items were not written", len(pending[s.table]))
			}
			out, err := s.client.BatchWriteItem(&dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return errors.Wrap(err, "error from DynamoDB")
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

// GetEntries returns the stored entries of paths by path. Unknown paths are
// left out.
func (s *Store) GetEntries(paths []string) (map[string]model.CatalogEntry, error) {
	res := make(map[string]model.CatalogEntry)
	for _, batch := range batches(paths, constants.MaxBatchGet) {
		var keys []map[string]*dynamodb.AttributeValue
		for _, path := range batch {
			keys = append(keys, map[string]*dynamodb.AttributeValue{
				keyName: {S: aws.String(path)},
			})
		}

		pending := map[string]*dynamodb.KeysAndAttributes{s.table: {Keys: keys}}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt > maxRetries {
				return nil, errors.New("some keys were not read")
			}
			out, err := s.client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, errors.Wrap(err, "error from DynamoDB")
			}
			for _, item := range out.Responses[s.table] {
				var e model.CatalogEntry
				if err := dynamodbattribute.UnmarshalMap(item, &e); err != nil {
					return nil, errors.Wrap(err, "unmarshalling catalog entry")
				}
				res[e.Path] = e
			}
			pending = out.UnprocessedKeys
		}
	}
	return res, nil
}
