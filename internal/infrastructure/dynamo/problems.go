package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
)

// ProblemRepo provides typed DynamoDB operations for the problem statements
// table.
type ProblemRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProblemRepo(client *dynamodb.Client, tableName string) *ProblemRepo {
	return &ProblemRepo{client: client, tableName: tableName}
}

func (r *ProblemRepo) Put(ctx context.Context, p *domain.Problem) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal problem: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ProblemRepo) Get(ctx context.Context, problemID string) (*domain.Problem, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("problem_id", problemID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("problem not found: %w", domain.ErrNotFound)
	}
	var p domain.Problem
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByStatus returns problems with the given status, newest first, with
// optional domain/difficulty filters.
func (r *ProblemRepo) ListByStatus(ctx context.Context, status, problemDomain, difficulty string) ([]domain.Problem, error) {
	input := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String("status-created_at-index"),
		KeyConditionExpression:   aws.String("#s = :s"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: status},
		},
		ScanIndexForward: aws.Bool(false), // newest first
	}

	filter := ""
	if problemDomain != "" {
		filter = "#d = :d"
		input.ExpressionAttributeNames["#d"] = "domain"
		input.ExpressionAttributeValues[":d"] = &types.AttributeValueMemberS{Value: problemDomain}
	}
	if difficulty != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "difficulty = :df"
		input.ExpressionAttributeValues[":df"] = &types.AttributeValueMemberS{Value: difficulty}
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
	}

	out, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	var problems []domain.Problem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

// Count returns the number of problem records.
func (r *ProblemRepo) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.client, r.tableName)
}

// scanCount counts items in a table without retrieving them.
func scanCount(ctx context.Context, client *dynamodb.Client, tableName string) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
