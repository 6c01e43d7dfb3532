package db

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/tjadex/constants"
	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/util"
	"github.com/pkg/errors"
)

// DynamoDB caps BatchWriteItem and BatchGetItem at these sizes
const (
	maxBatchWrite = 25
	maxBatchGet   = 100
)

// unprocessed items are resent this many times, doubling the wait each time
const maxAttempts = 5

var retryDelay = 50 * time.Millisecond

type item struct {
	PK string
	model.IndexEntry
}

// Key identifies one course of one chart file.
func Key(path string, course model.CourseID) string {
	return path + "#" + strconv.Itoa(int(course))
}

func newClient() (dynamodbiface.DynamoDBAPI, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

func PutSummaries(entries []model.IndexEntry) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	return putSummaries(client, constants.GetDynamoTable(), entries)
}

func putSummaries(client dynamodbiface.DynamoDBAPI, table string, entries []model.IndexEntry) error {
	for _, batch := range util.Chunk(entries, maxBatchWrite) {
		var requests []*dynamodb.WriteRequest
		for _, e := range batch {
			av, err := dynamodbattribute.MarshalMap(item{PK: Key(e.Path, e.Course), IndexEntry: e})
			if err != nil {
				return errors.Wrapf(err, "marshalling %v", e.Path)
			}
			requests = append(requests, &dynamodb.WriteRequest{
				PutRequest: &dynamodb.PutRequest{Item: av},
			})
		}

		pending := map[string][]*dynamodb.WriteRequest{table: requests}
		delay := retryDelay
		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt == maxAttempts {
				return errors.Errorf("%v summaries left unwritten after %v attempts", len(pending[table]), maxAttempts)
			}
			if attempt > 0 {
				time.Sleep(delay)
				delay *= 2
			}
			res, err := client.BatchWriteItem(&dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return errors.Wrap(err, "error from DynamoDB")
			}
			pending = res.UnprocessedItems
		}
	}
	return nil
}

// GetSummaries fetches the entries stored under keys. Keys with nothing
// stored are absent from the result.
func GetSummaries(keys []string) (map[string]model.IndexEntry, error) {
	if len(keys) == 0 {
		return make(map[string]model.IndexEntry), nil
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return getSummaries(client, constants.GetDynamoTable(), keys)
}

func getSummaries(client dynamodbiface.DynamoDBAPI, table string, keys []string) (map[string]model.IndexEntry, error) {
	res := make(map[string]model.IndexEntry)
	for _, batch := range util.Chunk(keys, maxBatchGet) {
		var avKeys []map[string]*dynamodb.AttributeValue
		for _, k := range batch {
			avKeys = append(avKeys, map[string]*dynamodb.AttributeValue{
				"PK": {S: aws.String(k)},
			})
		}

		pending := map[string]*dynamodb.KeysAndAttributes{table: {Keys: avKeys}}
		delay := retryDelay
		for attempt := 0; pending[table] != nil && len(pending[table].Keys) > 0; attempt++ {
			if attempt == maxAttempts {
				return nil, errors.Errorf("%v summaries left unread after %v attempts", len(pending[table].Keys), maxAttempts)
			}
			if attempt > 0 {
				time.Sleep(delay)
				delay *= 2
			}
			dbres, err := client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, errors.Wrap(err, "error from DynamoDB")
			}
			for _, v := range dbres.Responses[table] {
				var it item
				if err := dynamodbattribute.UnmarshalMap(v, &it); err != nil {
					return nil, errors.Wrap(err, "unmarshalling summary")
				}
				res[it.PK] = it.IndexEntry
			}
			pending = dbres.UnprocessedKeys
		}
	}
	return res, nil
}
