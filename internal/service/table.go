package service

import (
	"context"
	"fmt"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TableService struct {
	tableRepo repo.TableRepository
	orderRepo repo.OrderRepository
	logger    *zap.SugaredLogger
}

func NewTableService(
	tableRepo repo.TableRepository,
	orderRepo repo.OrderRepository,
	logger *zap.SugaredLogger,
) *TableService {
	return &TableService{
		tableRepo: tableRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (s *TableService) CreateTable(ctx context.Context, adminID primitive.ObjectID, number string, status domain.TableStatus) (*domain.Table, error) {
	table := &domain.Table{
		Number:  number,
		Status:  status,
		AdminID: adminID,
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return table, nil
}

func (s *TableService) GetTable(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, adminID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	return table, nil
}

func (s *TableService) ListTables(ctx context.Context, adminID primitive.ObjectID) ([]domain.Table, error) {
	tables, err := s.tableRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	return tables, nil
}

func (s *TableService) ListTablesWithOrders(ctx context.Context, adminID primitive.ObjectID) ([]domain.TableWithOrders, error) {
	tables, err := s.tableRepo.ListWithOrders(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables with orders: %w", err)
	}

	return tables, nil
}

func (s *TableService) UpdateTable(ctx context.Context, adminID, id primitive.ObjectID, number string, status domain.TableStatus) (*domain.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, adminID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	table.Number = number
	table.Status = status

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to update table: %w", err)
	}

	return table, nil
}

func (s *TableService) UpdateTableStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.TableStatus) (*domain.Table, error) {
	table, err := s.tableRepo.UpdateStatus(ctx, adminID, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update table status: %w", err)
	}

	return table, nil
}

func (s *TableService) DeleteTable(ctx context.Context, adminID, id primitive.ObjectID) error {
	count, err := s.orderRepo.CountUnpaidByTable(ctx, adminID, id)
	if err != nil {
		return fmt.Errorf("failed to check table orders: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("table has unpaid orders")
	}

	if err := s.tableRepo.Delete(ctx, adminID, id); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	return nil
}

// SyncTableStatus reconciles a table's status with its unpaid orders. Called
// by the table status worker when order events arrive.
func (s *TableService) SyncTableStatus(ctx context.Context, adminID, tableID primitive.ObjectID) error {
	count, err := s.orderRepo.CountUnpaidByTable(ctx, adminID, tableID)
	if err != nil {
		return fmt.Errorf("failed to count unpaid orders: %w", err)
	}

	table, err := s.tableRepo.GetByID(ctx, adminID, tableID)
	if err != nil {
		return fmt.Errorf("failed to get table: %w", err)
	}

	var status domain.TableStatus
	if count > 0 {
		status = domain.TableStatusOccupied
	} else {
		status = domain.TableStatusEmpty
	}

	// reserved tables stay reserved until seated
	if table.Status == domain.TableStatusReserved && count == 0 {
		return nil
	}

	if table.Status == status {
		return nil
	}

	if _, err := s.tableRepo.UpdateStatus(ctx, adminID, tableID, status); err != nil {
		return fmt.Errorf("failed to sync table status: %w", err)
	}

	s.logger.Infow("table status synced", "table_id", tableID.Hex(), "status", status)

	return nil
}
