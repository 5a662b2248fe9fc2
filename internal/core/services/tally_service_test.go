package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/core/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

type TallyServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockVoucherRepo *MockVoucherRepository
	mockChartSvc    *MockChartService
	service         portssvc.TallySvcFacade

	creditorsGroup domain.AccountGroup
	assetsGroup    domain.AccountGroup
}

func (suite *TallyServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockChartSvc = new(MockChartService)
	suite.service = services.NewTallyService(suite.mockAccountRepo, suite.mockVoucherRepo, suite.mockChartSvc)

	suite.creditorsGroup = domain.AccountGroup{
		GroupID:   "grp-sc",
		Name:      "Sundry Creditors",
		Code:      "SC",
		GroupType: domain.GroupLiabilities,
	}
	suite.assetsGroup = domain.AccountGroup{
		GroupID:   "grp-ca",
		Name:      "Current Assets",
		Code:      "CA",
		GroupType: domain.GroupAssets,
	}
}

// Exporting masters and importing the result into empty books must recreate
// the ledgers with their opening balances, restoring the positive magnitudes
// from Tally's credit-positive wire amounts.
func (suite *TallyServiceTestSuite) TestMastersRoundTrip_PreservesOpeningBalances() {
	ctx := context.Background()
	groups := []domain.AccountGroup{suite.creditorsGroup, suite.assetsGroup}
	accounts := []domain.Account{
		{
			AccountID:      "acc-sup",
			Name:           "Acme Alloys",
			Code:           "SUP_acme",
			GroupID:        suite.creditorsGroup.GroupID,
			AccountType:    domain.CurrentLiability,
			OpeningBalance: decimal.NewFromInt(5000),
			IsActive:       true,
		},
		{
			AccountID:      "acc-cash",
			Name:           "Cash In Hand",
			Code:           "CASH",
			GroupID:        suite.assetsGroup.GroupID,
			AccountType:    domain.CurrentAsset,
			OpeningBalance: decimal.NewFromInt(2500),
			IsActive:       true,
		},
	}

	suite.mockAccountRepo.On("ListGroups", mock.Anything).Return(groups, nil)
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything, 0).Return(accounts, nil).Once()

	payload, err := suite.service.ExportMasters(ctx)
	suite.Require().NoError(err)
	suite.Contains(string(payload), "<OPENINGBALANCE>5000</OPENINGBALANCE>")
	suite.Contains(string(payload), "<OPENINGBALANCE>-2500</OPENINGBALANCE>")

	// Importing into empty books.
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything, 0).Return([]domain.Account{}, nil).Once()

	created := make(map[string]dto.CreateAccountRequest)
	suite.mockChartSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest"), "user-1").
		Run(func(args mock.Arguments) {
			req := args.Get(1).(dto.CreateAccountRequest)
			created[req.Name] = req
		}).
		Return(&domain.Account{}, nil)

	summary, err := suite.service.ImportMasters(ctx, payload, "user-1")
	suite.Require().NoError(err)
	suite.Equal(2, summary.LedgersCreated)
	suite.Equal(0, summary.LedgersSkipped)

	suite.Require().Contains(created, "Acme Alloys")
	suite.Equal("SC", created["Acme Alloys"].GroupCode)
	suite.True(created["Acme Alloys"].OpeningBalance.Equal(decimal.NewFromInt(5000)),
		"credit-normal opening lost: got %s", created["Acme Alloys"].OpeningBalance)

	suite.Require().Contains(created, "Cash In Hand")
	suite.Equal("CA", created["Cash In Hand"].GroupCode)
	suite.True(created["Cash In Hand"].OpeningBalance.Equal(decimal.NewFromInt(2500)),
		"debit-normal opening lost: got %s", created["Cash In Hand"].OpeningBalance)
}

func (suite *TallyServiceTestSuite) TestImportMasters_BadOpeningBalanceWarns() {
	ctx := context.Background()
	payload := []byte(`<ENVELOPE><BODY><IMPORTDATA><REQUESTDATA>
		<TALLYMESSAGE><LEDGER NAME="Acme Alloys"><PARENT>Sundry Creditors</PARENT><OPENINGBALANCE>not-a-number</OPENINGBALANCE></LEDGER></TALLYMESSAGE>
	</REQUESTDATA></IMPORTDATA></BODY></ENVELOPE>`)

	suite.mockAccountRepo.On("ListGroups", mock.Anything).Return([]domain.AccountGroup{suite.creditorsGroup}, nil)
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything, 0).Return([]domain.Account{}, nil)

	summary, err := suite.service.ImportMasters(ctx, payload, "user-1")
	suite.Require().NoError(err)
	suite.Equal(0, summary.LedgersCreated)
	suite.Equal(1, summary.LedgersSkipped)
	suite.Require().Len(summary.Warnings, 1)
	suite.Contains(summary.Warnings[0], "Acme Alloys")
	suite.mockChartSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TallyServiceTestSuite) TestImportMasters_UnknownParentSkipped() {
	ctx := context.Background()
	payload := []byte(`<ENVELOPE><BODY><IMPORTDATA><REQUESTDATA>
		<TALLYMESSAGE><LEDGER NAME="Mystery Ledger"><PARENT>No Such Group</PARENT></LEDGER></TALLYMESSAGE>
	</REQUESTDATA></IMPORTDATA></BODY></ENVELOPE>`)

	suite.mockAccountRepo.On("ListGroups", mock.Anything).Return([]domain.AccountGroup{suite.creditorsGroup}, nil)
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything, 0).Return([]domain.Account{}, nil)

	summary, err := suite.service.ImportMasters(ctx, payload, "user-1")
	suite.Require().NoError(err)
	suite.Equal(1, summary.LedgersSkipped)
	suite.Require().Len(summary.Warnings, 1)
	suite.Contains(summary.Warnings[0], "No Such Group")
}

func TestTallyService(t *testing.T) {
	suite.Run(t, new(TallyServiceTestSuite))
}
