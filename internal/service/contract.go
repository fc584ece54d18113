package service

import (
	"context"
	"strings"

	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
)

type ContractStore interface {
	Create(ctx context.Context, c *model.Contract) error
	Get(ctx context.Context, id uint) (*model.Contract, error)
	List(ctx context.Context) ([]model.Contract, error)
	Update(ctx context.Context, c *model.Contract, omit ...string) error
	DeleteCascade(ctx context.Context, id uint) error
	ListByClient(ctx context.Context, clientID uint) ([]model.Contract, error)
	ListByStatus(ctx context.Context, status model.ContractStatus) ([]model.Contract, error)
}

type ContractService struct {
	contracts ContractStore
	clients   existenceChecker
}

func NewContractService(contracts ContractStore, clients existenceChecker) *ContractService {
	return &ContractService{contracts: contracts, clients: clients}
}

func (s *ContractService) Create(ctx context.Context, in ContractInput) (*model.Contract, error) {
	contract := &model.Contract{}
	if err := s.apply(ctx, contract, in); err != nil {
		return nil, err
	}
	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("contract", "create")
	return contract, nil
}

func (s *ContractService) Get(ctx context.Context, id uint) (*model.Contract, error) {
	return s.contracts.Get(ctx, id)
}

func (s *ContractService) List(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.List(ctx)
}

func (s *ContractService) Update(ctx context.Context, id uint, in ContractInput) (*model.Contract, error) {
	contract, err := s.contracts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, contract, in); err != nil {
		return nil, err
	}
	if err := s.contracts.Update(ctx, contract); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("contract", "update")
	return contract, nil
}

// Delete removes the contract and its items
func (s *ContractService) Delete(ctx context.Context, id uint) error {
	if err := s.contracts.DeleteCascade(ctx, id); err != nil {
		return err
	}
	prometheus.RecordEntityOperation("contract", "delete")
	return nil
}

func (s *ContractService) ListByClient(ctx context.Context, clientID uint) ([]model.Contract, error) {
	return s.contracts.ListByClient(ctx, clientID)
}

func (s *ContractService) ListByStatus(ctx context.Context, status string) ([]model.Contract, error) {
	st := model.ContractStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, fieldError("status", "status must be one of ACTIVE, INACTIVE, CANCELLED")
	}
	return s.contracts.ListByStatus(ctx, st)
}

func (s *ContractService) apply(ctx context.Context, c *model.Contract, in ContractInput) error {
	if in.StartDate.IsZero() {
		return fieldError("start_date", "start date is required")
	}
	if in.EndDate != nil && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		return fieldError("end_date", "end date cannot be before start date")
	}

	status := model.ContractActive
	if in.Status != "" {
		status = model.ContractStatus(strings.ToUpper(in.Status))
		if !status.Valid() {
			return fieldError("status", "status must be one of ACTIVE, INACTIVE, CANCELLED")
		}
	}
	if in.TotalValue < 0 {
		return fieldError("total_value", "total value cannot be negative")
	}
	if err := checkReference(ctx, s.clients, in.ClientID, "client"); err != nil {
		return err
	}

	c.StartDate = in.StartDate
	c.EndDate = in.EndDate
	if c.EndDate != nil && c.EndDate.IsZero() {
		c.EndDate = nil
	}
	c.Status = status
	c.TotalValue = in.TotalValue
	c.Notes = in.Notes
	c.ClientID = in.ClientID
	return nil
}
