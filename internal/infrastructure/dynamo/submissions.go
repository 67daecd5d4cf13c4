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

// SubmissionRepo provides typed DynamoDB operations for the submissions table.
type SubmissionRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSubmissionRepo(client *dynamodb.Client, tableName string) *SubmissionRepo {
	return &SubmissionRepo{client: client, tableName: tableName}
}

func (r *SubmissionRepo) Put(ctx context.Context, s *domain.Submission) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByStudent returns a student's submissions, newest first.
func (r *SubmissionRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Submission, error) {
	return r.queryIndex(ctx, "student_id-submitted_at-index", "student_id", studentID)
}

// ListByProblem returns all submissions for a problem, newest first.
func (r *SubmissionRepo) ListByProblem(ctx context.Context, problemID string) ([]domain.Submission, error) {
	return r.queryIndex(ctx, "problem_id-submitted_at-index", "problem_id", problemID)
}

// ListAll returns every submission. Used by the recruiter view when no
// problem filter is given.
func (r *SubmissionRepo) ListAll(ctx context.Context) ([]domain.Submission, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var subs []domain.Submission
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Count returns the number of submission records.
func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.client, r.tableName)
}

func (r *SubmissionRepo) queryIndex(ctx context.Context, index, attr, value string) ([]domain.Submission, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var subs []domain.Submission
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
