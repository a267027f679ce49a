package ports

import "go.trai.ch/formula/internal/core/domain"

// ReceiptWriter records a successful install inside its prefix.
//
//go:generate go run go.uber.org/mock/mockgen -source=receipt.go -destination=mocks/mock_receipt.go -package=mocks
type ReceiptWriter interface {
	Write(prefix string, receipt domain.Receipt) error
}
