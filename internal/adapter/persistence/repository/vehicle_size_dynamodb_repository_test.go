package repository

import (
	"context"
	"fmt"
	"testing"

	"wrapcommand/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sizeRows(n int) []entities.VehicleSize {
	rows := make([]entities.VehicleSize, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, entities.VehicleSize{Rank: i + 1, Make: "Ford", Model: fmt.Sprintf("M%d", i), TotalSqft: 250})
	}
	return rows
}

func TestVehicleSizeDynamoRepository_InsertBatch(t *testing.T) {
	fake := &fakeDynamo{}
	repo := newVehicleSizeDynamoRepository(fake, "")

	if err := repo.InsertBatch(context.Background(), sizeRows(26)); err == nil {
		t.Fatalf("expected error for oversized batch")
	}
	if err := repo.InsertBatch(context.Background(), sizeRows(3)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	reqs := fake.batches[0].RequestItems["vehicle_dimensions"]
	if len(reqs) != 3 {
		t.Fatalf("expected 3 puts, got %d", len(reqs))
	}
	id := reqs[0].PutRequest.Item["id"].(*types.AttributeValueMemberS).Value
	if id != "0001#ford#m0" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestVehicleSizeDynamoRepository_UnprocessedItems(t *testing.T) {
	fake := &fakeDynamo{batchOut: &dynamodb.BatchWriteItemOutput{
		UnprocessedItems: map[string][]types.WriteRequest{"vehicle_dimensions": {{}}},
	}}
	if err := newVehicleSizeDynamoRepository(fake, "").InsertBatch(context.Background(), sizeRows(2)); err == nil {
		t.Fatalf("expected error for unprocessed rows")
	}
}

func TestVehicleSizeDynamoRepository_DeleteAll(t *testing.T) {
	var items []map[string]types.AttributeValue
	for i := 0; i < 30; i++ {
		items = append(items, map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: fmt.Sprintf("k-%d", i)}})
	}
	fake := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Items: items}}}

	n, err := newVehicleSizeDynamoRepository(fake, "").DeleteAll(context.Background())
	if err != nil || n != 30 {
		t.Fatalf("unexpected n=%d err=%v", n, err)
	}
	if len(fake.batches) != 2 || len(fake.batches[1].RequestItems["vehicle_dimensions"]) != 5 {
		t.Fatalf("expected batches of 25 and 5, got %d", len(fake.batches))
	}
	if fake.scans[0].ProjectionExpression == nil {
		t.Fatalf("delete scan should only project keys")
	}
}

func TestVehicleSizeDynamoRepository_ListAllRestoresOrder(t *testing.T) {
	var items []map[string]types.AttributeValue
	for _, rank := range []int{3, 1, 2} {
		row := entities.VehicleSize{Rank: rank, Make: "Ford", Model: fmt.Sprintf("M%d", rank), TotalSqft: 200}
		av, _ := attributevalue.MarshalMap(vehicleSizeItem{ID: vehicleSizeKey(row), VehicleSize: row})
		items = append(items, av)
	}
	fake := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Items: items}}}

	rows, err := newVehicleSizeDynamoRepository(fake, "").ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i, r := range rows {
		if r.Rank != i+1 {
			t.Fatalf("row %d has rank %d", i, r.Rank)
		}
	}
}
