package usecase

import (
	"context"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository

	cbeAccount      string
	telebirrAccount string
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	cbeAccount, telebirrAccount string,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
		cbeAccount:      cbeAccount,
		telebirrAccount: telebirrAccount,
	}
}

// PaymentInstructions is what the payer sees: the amount owed and the
// account to send it to. Confirmation happens off-band (a receipt
// screenshot over WhatsApp), so there is nothing more to automate.
type PaymentInstructions struct {
	Payment       *entity.Payment `json:"payment"`
	AccountNumber string          `json:"account_number"`
}

func (uc *PaymentUseCase) GetInstructions(ctx context.Context, payerID, paymentID string) (*PaymentInstructions, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.PayerID != payerID {
		if _, err := requireAdmin(ctx, uc.userRepo, payerID); err != nil {
			return nil, err
		}
	}

	account := uc.cbeAccount
	if payment.Method == entity.PaymentMethodTelebirr {
		account = uc.telebirrAccount
	}

	return &PaymentInstructions{
		Payment:       payment,
		AccountNumber: account,
	}, nil
}

func (uc *PaymentUseCase) ListMyPayments(ctx context.Context, payerID string, page, limit int) ([]*entity.Payment, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.paymentRepo.ListByPayerID(ctx, payerID, limit, offset)
}

func (uc *PaymentUseCase) ListPayments(ctx context.Context, adminID string, status entity.PaymentStatus, page, limit int) ([]*entity.Payment, int64, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.paymentRepo.List(ctx, status, limit, offset)
}

// ApprovePayment confirms a manually verified transfer. The linked
// listing goes live in the same transaction.
func (uc *PaymentUseCase) ApprovePayment(ctx context.Context, adminID, paymentID string) (*entity.Payment, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	payment, err := uc.paymentRepo.ApplyReview(ctx, paymentID, entity.ActionApprove)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin %s approved payment %s for listing %s", adminID, paymentID, payment.PropertyID)
	return payment, nil
}

// RejectPayment refuses the transfer; the linked listing is rejected
// with it.
func (uc *PaymentUseCase) RejectPayment(ctx context.Context, adminID, paymentID string) (*entity.Payment, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	payment, err := uc.paymentRepo.ApplyReview(ctx, paymentID, entity.ActionReject)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin %s rejected payment %s for listing %s", adminID, paymentID, payment.PropertyID)
	return payment, nil
}
