package repository

import (
	"context"
	"time"

	"wrapcommand/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories call.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// PricedItem is the attribute layout quotes and drafts share.
type PricedItem struct {
	CustomerName   string  `dynamodbav:"customer_name,omitempty"`
	CustomerEmail  string  `dynamodbav:"customer_email"`
	CustomerPhone  string  `dynamodbav:"customer_phone,omitempty"`
	VehicleYear    int     `dynamodbav:"vehicle_year,omitempty"`
	VehicleMake    string  `dynamodbav:"vehicle_make,omitempty"`
	VehicleModel   string  `dynamodbav:"vehicle_model,omitempty"`
	ProductType    string  `dynamodbav:"product_type,omitempty"`
	ProductID      string  `dynamodbav:"product_id,omitempty"`
	ProductName    string  `dynamodbav:"product_name"`
	Sqft           float64 `dynamodbav:"sqft"`
	SqftSource     string  `dynamodbav:"sqft_source"`
	NeedsReview    bool    `dynamodbav:"needs_review"`
	SizeCategory   string  `dynamodbav:"size_category,omitempty"`
	SizeMatchedKey string  `dynamodbav:"size_matched_key,omitempty"`
	PricePerSqft   float64 `dynamodbav:"price_per_sqft"`
	MaterialCost   float64 `dynamodbav:"material_cost"`
	LaborCost      float64 `dynamodbav:"labor_cost"`
	Margin         float64 `dynamodbav:"margin"`
	TotalPrice     float64 `dynamodbav:"total_price"`
}

func toPricedItem(c entities.Customer, v entities.Vehicle, p entities.Pricing) PricedItem {
	return PricedItem{
		CustomerName:   c.Name,
		CustomerEmail:  c.Email,
		CustomerPhone:  c.Phone,
		VehicleYear:    v.Year,
		VehicleMake:    v.Make,
		VehicleModel:   v.Model,
		ProductType:    p.ProductType,
		ProductID:      p.ProductID,
		ProductName:    p.ProductName,
		Sqft:           p.Sqft,
		SqftSource:     string(p.SqftSource),
		NeedsReview:    p.NeedsReview,
		SizeCategory:   p.SizeCategory,
		SizeMatchedKey: p.SizeMatchedKey,
		PricePerSqft:   p.PricePerSqft,
		MaterialCost:   p.MaterialCost,
		LaborCost:      p.LaborCost,
		Margin:         p.Margin,
		TotalPrice:     p.TotalPrice,
	}
}

func (it PricedItem) parts() (entities.Customer, entities.Vehicle, entities.Pricing) {
	return entities.Customer{Name: it.CustomerName, Email: it.CustomerEmail, Phone: it.CustomerPhone},
		entities.Vehicle{Year: it.VehicleYear, Make: it.VehicleMake, Model: it.VehicleModel},
		entities.Pricing{
			ProductType:    it.ProductType,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Sqft:           it.Sqft,
			SqftSource:     entities.SizeSource(it.SqftSource),
			NeedsReview:    it.NeedsReview,
			SizeCategory:   it.SizeCategory,
			SizeMatchedKey: it.SizeMatchedKey,
			PricePerSqft:   it.PricePerSqft,
			MaterialCost:   it.MaterialCost,
			LaborCost:      it.LaborCost,
			Margin:         it.Margin,
			TotalPrice:     it.TotalPrice,
		}
}
