package usecase

import (
	"context"
	"fmt"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/domain/pricing"
	"wrapcommand/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// VehicleSyncBatchSize matches the DynamoDB BatchWriteItem limit.
const VehicleSyncBatchSize = 25

type VehicleSyncResult struct {
	Deleted  int
	Inserted int
	Batches  int
}

// VehicleSyncUseCase replaces the vehicle_dimensions table and loads it back
// as a resolver table.
//
// Sync is not transactional: a failure after DeleteAll leaves the table
// partially populated until the next run.
type VehicleSyncUseCase struct {
	repo interfaces.IVehicleSizeRepository
	log  *zap.Logger
}

func NewVehicleSyncUseCase(repo interfaces.IVehicleSizeRepository, log *zap.Logger) *VehicleSyncUseCase {
	return &VehicleSyncUseCase{repo: repo, log: log}
}

func (u *VehicleSyncUseCase) Sync(ctx context.Context, rows []entities.VehicleSize) (VehicleSyncResult, error) {
	var res VehicleSyncResult
	valid := make([]entities.VehicleSize, 0, len(rows))
	for _, r := range rows {
		if r.Model == "" || r.TotalSqft <= 0 {
			u.log.Warn("[vehicle_sync][usecase] skipping invalid row",
				zap.String("make", r.Make), zap.String("model", r.Model), zap.Float64("total_sqft", r.TotalSqft))
			continue
		}
		r.Rank = len(valid) + 1
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return res, ErrEmptyVehicleTable
	}

	deleted, err := u.repo.DeleteAll(ctx)
	if err != nil {
		return res, fmt.Errorf("delete vehicle table: %w", err)
	}
	res.Deleted = deleted

	for start := 0; start < len(valid); start += VehicleSyncBatchSize {
		end := min(start+VehicleSyncBatchSize, len(valid))
		if err := u.repo.InsertBatch(ctx, valid[start:end]); err != nil {
			return res, fmt.Errorf("insert vehicle batch %d: %w", res.Batches+1, err)
		}
		res.Batches++
		res.Inserted += end - start
	}

	u.log.Info("[vehicle_sync][usecase] table replaced",
		zap.Int("deleted", res.Deleted), zap.Int("inserted", res.Inserted), zap.Int("batches", res.Batches))
	return res, nil
}

// LoadTable reads the stored rows into a resolver table.
func (u *VehicleSyncUseCase) LoadTable(ctx context.Context) (*pricing.VehicleTable, error) {
	rows, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicle table: %w", err)
	}
	t := pricing.NewVehicleTable(rows)
	if t.Len() == 0 {
		return nil, ErrEmptyVehicleTable
	}
	return t, nil
}
