package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/repository"
	"github.com/oscahub/benefits-gateway/pkg/logger"
	"github.com/oscahub/benefits-gateway/pkg/prom"
	"github.com/oscahub/benefits-gateway/pkg/storage"
)

var ErrFundHistoryNotFound = errors.New("fund history entry not found")

type FundRepository interface {
	GetFund(ctx context.Context) (*model.GovernmentFund, error)
	SetBalance(ctx context.Context, balance float64) (*model.GovernmentFund, error)
	AddHistory(ctx context.Context, h *model.FundHistory) (*model.FundHistory, error)
	DeleteHistory(ctx context.Context, id int64) error
	GetHistoryByID(ctx context.Context, id int64) (*model.FundHistory, error)
	ListHistory(ctx context.Context, f model.FundHistoryFilter) ([]*model.FundHistory, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	List(ctx context.Context, f model.TransactionFilter) ([]*model.Transaction, error)
}

// Receipt is an optional uploaded file accompanying a fund addition.
type Receipt struct {
	Name string
	Body io.Reader
}

type FundService struct {
	repo  FundRepository
	txns  TransactionRepository
	store storage.Store
}

func NewFundService(repo FundRepository, txns TransactionRepository, store storage.Store) *FundService {
	return &FundService{
		repo:  repo,
		txns:  txns,
		store: store,
	}
}

func (s *FundService) GetFund(ctx context.Context) (*model.GovernmentFund, error) {
	return s.repo.GetFund(ctx)
}

func (s *FundService) SetBalance(ctx context.Context, balance float64) (*model.GovernmentFund, error) {
	if balance < 0 {
		return nil, invalid(errors.New("balance must not be negative"))
	}
	return s.repo.SetBalance(ctx, balance)
}

// AddHistory records an addition event. The entry's balance snapshot is
// taken from the caller-supplied available balance; the fund's total
// balance is bumped by the amount inside the same transaction.
func (s *FundService) AddHistory(ctx context.Context, p model.FundHistoryCreateRequest, receipt *Receipt) (*model.FundHistory, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	var receiptFile *string
	if receipt != nil {
		storedName, err := s.store.Save(receipt.Name, receipt.Body)
		if err != nil {
			return nil, fmt.Errorf("store receipt: %w", err)
		}
		receiptFile = &storedName
	}

	h := &model.FundHistory{
		Date:            p.Date,
		Amount:          p.Amount,
		Source:          p.Source,
		Description:     p.Description,
		ReceiptFile:     receiptFile,
		PreviousBalance: p.AvailableBalance,
		NewBalance:      p.AvailableBalance + p.Amount,
	}

	created, err := s.repo.AddHistory(ctx, h)
	if err != nil {
		if receiptFile != nil {
			if rmErr := s.store.Remove(*receiptFile); rmErr != nil {
				logger.Warn("orphaned receipt not removed", "stored_name", *receiptFile, "error", rmErr)
			}
		}
		return nil, err
	}

	prom.IncCounter(prom.SystemFund, prom.MetricFundAdditions)
	return created, nil
}

func (s *FundService) DeleteHistory(ctx context.Context, id int64) error {
	err := s.repo.DeleteHistory(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFundHistoryNotFound) {
			return ErrFundHistoryNotFound
		}
		return err
	}
	prom.IncCounter(prom.SystemFund, prom.MetricFundDeletions)
	return nil
}

func (s *FundService) ListHistory(ctx context.Context, f model.FundHistoryFilter) ([]*model.FundHistory, error) {
	return s.repo.ListHistory(ctx, f)
}

// OpenReceipt returns the stored receipt of a history entry. Entries
// recorded without a receipt, and entries whose file has gone missing
// from disk, both read as not found.
func (s *FundService) OpenReceipt(ctx context.Context, id int64) (*model.FundHistory, io.ReadCloser, error) {
	h, err := s.repo.GetHistoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFundHistoryNotFound) {
			return nil, nil, ErrFundHistoryNotFound
		}
		return nil, nil, err
	}
	if h.ReceiptFile == nil {
		return nil, nil, ErrFundHistoryNotFound
	}
	f, err := s.store.Open(*h.ReceiptFile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrFundHistoryNotFound
		}
		return nil, nil, err
	}
	return h, f, nil
}

func (s *FundService) CreateTransaction(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	txn := &model.Transaction{
		SeniorID: p.SeniorID,
		Amount:   p.Amount,
		Type:     p.Type,
		Category: p.Category,
		Status:   p.Status,
	}
	return s.txns.Create(ctx, txn)
}

func (s *FundService) ListTransactions(ctx context.Context, f model.TransactionFilter) ([]*model.Transaction, error) {
	return s.txns.List(ctx, f)
}
