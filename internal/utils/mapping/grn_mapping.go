package mapping

import (
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/models"
)

func ToModelGRNWorkflowStatus(d domain.GRNWorkflowStatus) models.GRNWorkflowStatus {
	return models.GRNWorkflowStatus{
		GRNID:              d.GRNID,
		MaterialReceived:   d.MaterialReceived,
		MaterialReceivedAt: d.MaterialReceivedAt,
		MaterialVoucherID:  d.MaterialVoucherID,
		InvoiceReceived:    d.InvoiceReceived,
		InvoiceReceivedAt:  d.InvoiceReceivedAt,
		InvoiceVoucherID:   d.InvoiceVoucherID,
		PaymentMade:        d.PaymentMade,
		PaymentMadeAt:      d.PaymentMadeAt,
		PaymentVoucherID:   d.PaymentVoucherID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainGRNWorkflowStatus(m models.GRNWorkflowStatus) domain.GRNWorkflowStatus {
	return domain.GRNWorkflowStatus{
		GRNID:              m.GRNID,
		MaterialReceived:   m.MaterialReceived,
		MaterialReceivedAt: m.MaterialReceivedAt,
		MaterialVoucherID:  m.MaterialVoucherID,
		InvoiceReceived:    m.InvoiceReceived,
		InvoiceReceivedAt:  m.InvoiceReceivedAt,
		InvoiceVoucherID:   m.InvoiceVoucherID,
		PaymentMade:        m.PaymentMade,
		PaymentMadeAt:      m.PaymentMadeAt,
		PaymentVoucherID:   m.PaymentVoucherID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
