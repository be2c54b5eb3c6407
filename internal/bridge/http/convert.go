package http

import (
	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/pkg/bridgesdk"
)

func toProfileResponse(p domain.UserProfile) bridgesdk.ProfileResponse {
	return bridgesdk.ProfileResponse{
		ID:          p.ID,
		Address:     p.Address,
		AccountID:   p.OwnerAccountID,
		Name:        p.Name,
		Email:       p.Email,
		KYCVerified: p.KYCVerified,
		CreatedAt:   p.CreatedAt,
	}
}

func toVaultResponse(v domain.Vault, holdings []domain.Holding) bridgesdk.VaultResponse {
	return bridgesdk.VaultResponse{
		ID:        v.ID,
		Address:   v.Address,
		AccountID: v.OwnerAccountID,
		Holdings:  toHoldingResponses(holdings),
		CreatedAt: v.CreatedAt,
	}
}

func toHoldingResponses(holdings []domain.Holding) []bridgesdk.HoldingResponse {
	out := make([]bridgesdk.HoldingResponse, len(holdings))
	for i, h := range holdings {
		out[i] = bridgesdk.HoldingResponse{TokenID: h.TokenID, Balance: h.Balance}
	}
	return out
}

func toTokenResponse(t domain.Token) bridgesdk.TokenInfoResponse {
	return bridgesdk.TokenInfoResponse{
		ID:        t.ID,
		Address:   t.Address,
		AssetID:   t.AssetID,
		Symbol:    t.Symbol,
		Name:      t.Name,
		IsStable:  t.IsStable,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

func toDepositResponse(d domain.FiatDeposit) bridgesdk.DepositResponse {
	return bridgesdk.DepositResponse{
		ID:          d.ID,
		Address:     d.Address,
		AccountID:   d.UserAccountID,
		TokenID:     d.TokenID,
		Amount:      d.Amount,
		FeeAmount:   d.FeeAmount,
		ReferenceID: d.ReferenceID,
		Status:      string(d.Status),
		InitiatedAt: d.InitiatedAt,
		CompletedAt: d.CompletedAt,
	}
}

func toWithdrawalResponse(w domain.FiatWithdrawal) bridgesdk.WithdrawalResponse {
	return bridgesdk.WithdrawalResponse{
		ID:          w.ID,
		Address:     w.Address,
		AccountID:   w.UserAccountID,
		TokenID:     w.TokenID,
		Amount:      w.Amount,
		ReferenceID: w.ReferenceID,
		Status:      string(w.Status),
		InitiatedAt: w.InitiatedAt,
		CompletedAt: w.CompletedAt,
	}
}
