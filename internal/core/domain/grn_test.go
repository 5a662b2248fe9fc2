package domain_test

import (
	"testing"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestGRNWorkflowStatus_StepDone(t *testing.T) {
	status := domain.GRNWorkflowStatus{
		GRNID:            "GRN-42",
		MaterialReceived: true,
		InvoiceReceived:  false,
		PaymentMade:      false,
	}

	assert.True(t, status.StepDone(domain.StepMaterialReceived))
	assert.False(t, status.StepDone(domain.StepInvoiceReceived))
	assert.False(t, status.StepDone(domain.StepPaymentMade))
	assert.False(t, status.StepDone(domain.GRNStep("UNKNOWN")))
}
