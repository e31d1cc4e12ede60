package outreach

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
)

// DonationPresets are the amounts offered as one-click choices.
var DonationPresets = []int{500, 1000, 5000, 10000}

// DefaultCurrency is preselected on the funding form.
const DefaultCurrency = "INR"

// DefaultCategory receives donations that name no cause.
const DefaultCategory = "general"

var currencies = []models.Currency{
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
}

var categories = []models.DonationCategory{
	{Code: "general", Label: "General Support", Description: "Provide overall support to our homes and the individuals we care for"},
	{Code: "education", Label: "Education", Description: "Support educational needs, resources, and learning opportunities"},
	{Code: "healthcare", Label: "Healthcare", Description: "Fund medical needs, regular check-ups, and health facilities"},
	{Code: "nutrition", Label: "Nutrition & Food"},
}

// DonationRequest is a funding form submission. CustomAmount, when set, wins
// over Amount and must contain digits only.
type DonationRequest struct {
	Amount       int    `json:"amount"`
	CustomAmount string `json:"custom_amount"`
	Currency     string `json:"currency"`
	Category     string `json:"category"`
}

// DonationOptions lists what the funding form offers.
type DonationOptions struct {
	Presets         []int                     `json:"presets"`
	Currencies      []models.Currency         `json:"currencies"`
	Categories      []models.DonationCategory `json:"categories"`
	DefaultCurrency string                    `json:"default_currency"`
	DefaultCategory string                    `json:"default_category"`
}

// Currencies returns the supported donation currencies.
func (s *Service) Currencies() []models.Currency {
	return slices.Clone(currencies)
}

// DonationOptions returns presets, currencies and categories for the form.
func (s *Service) DonationOptions() DonationOptions {
	return DonationOptions{
		Presets:         slices.Clone(DonationPresets),
		Currencies:      s.Currencies(),
		Categories:      slices.Clone(categories),
		DefaultCurrency: DefaultCurrency,
		DefaultCategory: DefaultCategory,
	}
}

// Donate validates a donation and returns a receipt. No payment is taken.
func (s *Service) Donate(ctx context.Context, req DonationRequest) (models.DonationReceipt, error) {
	amount, err := resolveAmount(req)
	if err != nil {
		return models.DonationReceipt{}, err
	}

	currency, err := lookupCurrency(req.Currency)
	if err != nil {
		return models.DonationReceipt{}, err
	}

	category, err := lookupCategory(req.Category)
	if err != nil {
		return models.DonationReceipt{}, err
	}

	receipt := models.DonationReceipt{
		Reference: s.receipts.NewID(),
		Amount:    amount,
		Currency:  currency,
		Category:  category.Code,
		Status:    "processing",
		Message:   fmt.Sprintf("Your %s%d donation to %s is being processed.", currency.Symbol, amount, category.Label),
		CreatedAt: s.now().UTC(),
	}

	s.logger.Info("donation received",
		zap.String("reference", receipt.Reference),
		zap.Int("amount", amount),
		zap.String("currency", currency.Code),
		zap.String("category", category.Code))

	s.notify(ctx, fmt.Sprintf("New donation: %s%d for %s (ref %s)", currency.Symbol, amount, category.Label, receipt.Reference))

	return receipt, nil
}

func resolveAmount(req DonationRequest) (int, error) {
	if custom := strings.TrimSpace(req.CustomAmount); custom != "" {
		for _, r := range custom {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("%w: custom amount %q must contain digits only", ErrInvalidAmount, custom)
			}
		}
		amount, err := strconv.Atoi(custom)
		if err != nil || amount <= 0 {
			return 0, fmt.Errorf("%w: custom amount %q", ErrInvalidAmount, custom)
		}
		return amount, nil
	}

	if !slices.Contains(DonationPresets, req.Amount) {
		return 0, fmt.Errorf("%w: %d is not a preset amount", ErrInvalidAmount, req.Amount)
	}
	return req.Amount, nil
}

func lookupCurrency(code string) (models.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	for _, c := range currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return models.Currency{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
}

func lookupCategory(code string) (models.DonationCategory, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCategory
	}
	for _, c := range categories {
		if c.Code == code {
			return c, nil
		}
	}
	return models.DonationCategory{}, fmt.Errorf("%w: %s", ErrUnsupportedCategory, code)
}
