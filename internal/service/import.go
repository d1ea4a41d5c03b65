package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/parser"
	"github.com/fevziatanoglu/cafe-management/internal/queue"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	storage "github.com/fevziatanoglu/cafe-management/internal/store/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ImportService drives async menu imports: an uploaded spreadsheet becomes a
// queued task, and a worker parses it into catalog products.
type ImportService struct {
	taskRepo    repo.ImportTaskRepository
	productRepo repo.ProductRepository
	menuRepo    repo.MenuRepository
	parser      *parser.MenuXLSXParser
	broker      queue.Broker
	storage     *storage.Storage
	logger      *zap.SugaredLogger
}

func NewImportService(
	taskRepo repo.ImportTaskRepository,
	productRepo repo.ProductRepository,
	menuRepo repo.MenuRepository,
	parser *parser.MenuXLSXParser,
	broker queue.Broker,
	storage *storage.Storage,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		taskRepo:    taskRepo,
		productRepo: productRepo,
		menuRepo:    menuRepo,
		parser:      parser,
		broker:      broker,
		storage:     storage,
		logger:      logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, adminID primitive.ObjectID, fileName string, file []byte) (primitive.ObjectID, error) {
	menu, err := s.menuRepo.GetByAdmin(ctx, adminID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to get menu: %w", err)
	}

	task := &domain.ImportTask{
		Status:     domain.ImportStatusQueued,
		AdminID:    adminID,
		MenuID:     menu.ID,
		FileName:   fileName,
		File:       file,
		RetryCount: 0,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.MenuImportMessage{
		TaskID:  task.ID.Hex(),
		AdminID: adminID.Hex(),
		MenuID:  menu.ID.Hex(),
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueMenuImport, messageBytes); err != nil {
		// update task status to failed
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.ImportStatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("import task created", "task_id", task.ID.Hex(), "file", fileName)

	return task.ID, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, adminID, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, adminID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

func (s *ImportService) ProcessImportTask(ctx context.Context, adminID, taskID primitive.ObjectID) error {
	task, err := s.taskRepo.GetByID(ctx, adminID, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID.Hex())

	products, err := s.parser.ParseProducts(task.File, task.AdminID, task.MenuID)
	if err != nil {
		s.logger.Errorw("failed to parse menu file", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to parse menu file: %w", err)
	}

	// save products and close the task atomically
	session, err := s.storage.StartSession()
	if err != nil {
		s.logger.Errorw("failed to start session", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "failed to start transaction")
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	err = session.StartTransaction()
	if err != nil {
		s.logger.Errorw("failed to start transaction", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "failed to start transaction")
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := s.productRepo.CreateMany(ctx, products); err != nil {
		s.logger.Errorw("failed to save products", "task_id", taskID.Hex(), "error", err)
		session.AbortTransaction(ctx)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to save products: %w", err)
	}

	if err := s.taskRepo.MarkCompleted(ctx, taskID, len(products)); err != nil {
		s.logger.Errorw("failed to complete task", "task_id", taskID.Hex(), "error", err)
		session.AbortTransaction(ctx)
		return fmt.Errorf("failed to complete task: %w", err)
	}

	if err := session.CommitTransaction(ctx); err != nil {
		s.logger.Errorw("failed to commit transaction", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Infow("import task completed", "task_id", taskID.Hex(), "products", len(products))

	return nil
}
