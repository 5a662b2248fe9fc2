package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
	"github.com/karkhana/factory_ledger_app/internal/tally"
)

// Listing caps for export. The chart and voucher volumes of a single factory
// stay well below these.
const (
	tallyExportAccountLimit = 10000
	tallyExportVoucherLimit = 10000
)

// tallyService exchanges masters and vouchers with Tally.
type tallyService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	voucherRepo portsrepo.VoucherRepository
	chartSvc    portssvc.ChartSvcFacade
}

// NewTallyService creates a new Tally exchange service.
func NewTallyService(accountRepo portsrepo.AccountRepository, voucherRepo portsrepo.VoucherRepository, chartSvc portssvc.ChartSvcFacade) portssvc.TallySvcFacade {
	return &tallyService{
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		chartSvc:    chartSvc,
	}
}

var _ portssvc.TallySvcFacade = (*tallyService)(nil)

// ExportMasters serializes all active ledger accounts as a Tally master
// import file. The owning group's name becomes the ledger parent.
func (s *tallyService) ExportMasters(ctx context.Context) ([]byte, error) {
	groups, err := s.accountRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	groupNames := make(map[string]string, len(groups))
	for _, g := range groups {
		groupNames[g.GroupID] = g.Name
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, tallyExportAccountLimit, 0)
	if err != nil {
		return nil, err
	}

	messages := make([]tally.Message, 0, len(accounts))
	for _, account := range accounts {
		if !account.IsActive {
			continue
		}
		ledger := &tally.Ledger{
			Name:   account.Name,
			Parent: groupNames[account.GroupID],
		}
		if !account.OpeningBalance.IsZero() {
			ledger.OpeningBalance = tally.FormatAmount(account.OpeningBalance, account.BalanceType() == domain.DebitBalance)
		}
		messages = append(messages, tally.Message{Ledger: ledger})
	}

	return tally.Marshal(tally.NewImportEnvelope(tally.ReportAllMasters, messages))
}

// ExportVouchers serializes posted vouchers in the date range with their
// entry lines. Debit lines are deemed positive and carry negative amounts per
// Tally's sign convention.
func (s *tallyService) ExportVouchers(ctx context.Context, from, to time.Time) ([]byte, error) {
	headers, err := s.voucherRepo.ListVouchers(ctx, portsrepo.VoucherListFilter{
		Status:   domain.VoucherPosted,
		FromDate: &from,
		ToDate:   &to,
		Limit:    tallyExportVoucherLimit,
	})
	if err != nil {
		return nil, err
	}

	accountNames := make(map[string]string)
	typeNames := make(map[string]string)
	messages := make([]tally.Message, 0, len(headers))
	for _, header := range headers {
		voucher, err := s.voucherRepo.FindVoucherByID(ctx, header.VoucherID)
		if err != nil {
			return nil, err
		}

		typeName, ok := typeNames[voucher.VoucherTypeID]
		if !ok {
			voucherType, err := s.voucherRepo.FindVoucherTypeByID(ctx, voucher.VoucherTypeID)
			if err != nil {
				return nil, err
			}
			typeName = voucherType.Name
			typeNames[voucher.VoucherTypeID] = typeName
		}

		entries := make([]tally.LedgerEntry, 0, len(voucher.Entries))
		for _, entry := range voucher.Entries {
			name, ok := accountNames[entry.AccountID]
			if !ok {
				account, err := s.accountRepo.FindAccountByID(ctx, entry.AccountID)
				if err != nil {
					return nil, err
				}
				name = account.Name
				accountNames[entry.AccountID] = name
			}
			isDebit := entry.EntryType == domain.DebitEntry
			deemed := "No"
			if isDebit {
				deemed = "Yes"
			}
			entries = append(entries, tally.LedgerEntry{
				LedgerName:       name,
				IsDeemedPositive: deemed,
				Amount:           tally.FormatAmount(entry.Amount, isDebit),
			})
		}

		messages = append(messages, tally.Message{Voucher: &tally.Voucher{
			VoucherTypeName: typeName,
			VoucherNumber:   voucher.VoucherNumber,
			Date:            tally.FormatDate(voucher.TransactionDate),
			Narration:       voucher.Narration,
			Entries:         entries,
		}})
	}

	return tally.Marshal(tally.NewImportEnvelope(tally.ReportVouchers, messages))
}

// ImportMasters creates ledgers from a Tally master export. Accounts whose
// name already exists are skipped, so re-importing the same file is
// idempotent. Ledgers under an unknown parent group produce a warning and are
// skipped.
func (s *tallyService) ImportMasters(ctx context.Context, payload []byte, userID string) (*dto.TallyImportSummary, error) {
	env, err := tally.Parse(payload)
	if err != nil {
		return nil, err
	}

	groups, err := s.accountRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	groupsByName := make(map[string]domain.AccountGroup, len(groups))
	for _, g := range groups {
		groupsByName[g.Name] = g
	}

	existing, err := s.accountRepo.ListAccounts(ctx, tallyExportAccountLimit, 0)
	if err != nil {
		return nil, err
	}
	existingNames := make(map[string]bool, len(existing))
	existingCodes := make(map[string]bool, len(existing))
	for _, a := range existing {
		existingNames[a.Name] = true
		existingCodes[a.Code] = true
	}

	summary := &dto.TallyImportSummary{}
	for _, msg := range env.Body.ImportData.RequestData.Messages {
		if msg.Ledger == nil {
			continue
		}
		ledger := msg.Ledger

		if existingNames[ledger.Name] {
			summary.LedgersSkipped++
			continue
		}

		group, ok := groupsByName[ledger.Parent]
		if !ok {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("ledger %q: unknown parent group %q", ledger.Name, ledger.Parent))
			summary.LedgersSkipped++
			continue
		}

		openingBalance := decimal.Zero
		if ledger.OpeningBalance != "" {
			isDebit := group.GroupType.BalanceType() == domain.DebitBalance
			parsed, perr := tally.ParseAmount(ledger.OpeningBalance, isDebit)
			if perr != nil {
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("ledger %q: %v", ledger.Name, perr))
				summary.LedgersSkipped++
				continue
			}
			openingBalance = parsed
		}

		code := ledgerCode(ledger.Name)
		for existingCodes[code] {
			code += "_X"
		}

		_, err := s.chartSvc.CreateAccount(ctx, dto.CreateAccountRequest{
			Name:           ledger.Name,
			Code:           code,
			GroupCode:      group.Code,
			AccountType:    defaultAccountType(group.GroupType),
			OpeningBalance: openingBalance,
		}, userID)
		if err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("ledger %q: %v", ledger.Name, err))
			summary.LedgersSkipped++
			continue
		}
		existingNames[ledger.Name] = true
		existingCodes[code] = true
		summary.LedgersCreated++
	}

	s.LogInfo(ctx, "tally master import finished",
		slog.Int("created", summary.LedgersCreated),
		slog.Int("skipped", summary.LedgersSkipped),
		slog.Int("warnings", len(summary.Warnings)))
	return summary, nil
}

// ledgerCode derives a chart code from a Tally ledger name.
func ledgerCode(name string) string {
	code := strings.ToUpper(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "_", "&", "AND", "-", "_", ".", "", "'", "")
	return replacer.Replace(code)
}

// defaultAccountType picks the broadest refinement for an imported ledger.
func defaultAccountType(groupType domain.GroupType) domain.AccountType {
	switch groupType {
	case domain.GroupAssets:
		return domain.CurrentAsset
	case domain.GroupLiabilities:
		return domain.CurrentLiability
	case domain.GroupIncome:
		return domain.Revenue
	case domain.GroupEquity:
		return domain.EquityCapital
	default:
		return domain.Expense
	}
}
