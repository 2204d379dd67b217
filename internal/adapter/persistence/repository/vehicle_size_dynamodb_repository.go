package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVehicleDimensionsTableName = "vehicle_dimensions"
	maxBatchWriteItems                = 25
)

type vehicleSizeItem struct {
	ID string `dynamodbav:"id"`
	entities.VehicleSize
}

// VehicleSizeDynamoRepository stores the vehicle reference table.
//
// Table requirements:
//   - PK: id (string), "<rank>#<make>#<model>"
//
// Rows carry their rank so ListAll can restore table order after a Scan.
type VehicleSizeDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IVehicleSizeRepository = (*VehicleSizeDynamoRepository)(nil)

func NewVehicleSizeDynamoRepository(ddb *dynamodb.Client, tableName string) *VehicleSizeDynamoRepository {
	return newVehicleSizeDynamoRepository(ddb, tableName)
}

func newVehicleSizeDynamoRepository(ddb dynamoAPI, tableName string) *VehicleSizeDynamoRepository {
	return &VehicleSizeDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultVehicleDimensionsTableName)}
}

func (r *VehicleSizeDynamoRepository) ListAll(ctx context.Context) ([]entities.VehicleSize, error) {
	var items []vehicleSizeItem
	err := r.scan(ctx, nil, func(raw map[string]types.AttributeValue) error {
		var it vehicleSizeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Rank < items[j].Rank })
	out := make([]entities.VehicleSize, 0, len(items))
	for _, it := range items {
		out = append(out, it.VehicleSize)
	}
	return out, nil
}

// DeleteAll removes every row and reports how many were deleted.
func (r *VehicleSizeDynamoRepository) DeleteAll(ctx context.Context) (int, error) {
	var keys []map[string]types.AttributeValue
	err := r.scan(ctx, aws.String("#id"), func(raw map[string]types.AttributeValue) error {
		keys = append(keys, map[string]types.AttributeValue{"id": raw["id"]})
		return nil
	})
	if err != nil {
		return 0, err
	}

	deleted := 0
	for start := 0; start < len(keys); start += maxBatchWriteItems {
		end := min(start+maxBatchWriteItems, len(keys))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, k := range keys[start:end] {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: k}})
		}
		if err := r.batchWrite(ctx, reqs); err != nil {
			return deleted, err
		}
		deleted += end - start
	}
	return deleted, nil
}

// InsertBatch writes at most 25 rows in one BatchWriteItem call.
func (r *VehicleSizeDynamoRepository) InsertBatch(ctx context.Context, rows []entities.VehicleSize) error {
	if len(rows) == 0 {
		return nil
	}
	if len(rows) > maxBatchWriteItems {
		return fmt.Errorf("batch of %d rows exceeds %d", len(rows), maxBatchWriteItems)
	}
	reqs := make([]types.WriteRequest, 0, len(rows))
	for _, row := range rows {
		av, err := attributevalue.MarshalMap(vehicleSizeItem{ID: vehicleSizeKey(row), VehicleSize: row})
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return r.batchWrite(ctx, reqs)
}

func (r *VehicleSizeDynamoRepository) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{r.tableName: reqs},
	})
	if err != nil {
		return err
	}
	if n := len(out.UnprocessedItems[r.tableName]); n > 0 {
		return fmt.Errorf("%d vehicle rows left unprocessed", n)
	}
	return nil
}

func (r *VehicleSizeDynamoRepository) scan(ctx context.Context, projection *string, each func(map[string]types.AttributeValue) error) error {
	var start map[string]types.AttributeValue
	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
		}
		if projection != nil {
			in.ProjectionExpression = projection
			in.ExpressionAttributeNames = map[string]string{"#id": "id"}
		}
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return err
		}
		for _, raw := range out.Items {
			if err := each(raw); err != nil {
				return err
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		start = out.LastEvaluatedKey
	}
}

func vehicleSizeKey(v entities.VehicleSize) string {
	return fmt.Sprintf("%04d#%s#%s", v.Rank, strings.ToLower(v.Make), strings.ToLower(v.Model))
}
