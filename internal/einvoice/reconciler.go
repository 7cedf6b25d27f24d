package einvoice

import (
	"context"
	"fmt"

	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/parsererror"

	"github.com/google/uuid"
)

// reconcile joins accumulated header records with their detail records into
// complete invoices. Headers are processed in first-seen order in batches of
// BatchSize, yielding between batches; headers missing required fields are
// recorded as errors and dropped from the output.
func (p *Parser) reconcile(ctx context.Context, acc *accumulator) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0, len(acc.headerOrder))

	total := len(acc.headerOrder)
	batches := (total + p.opts.BatchSize - 1) / p.opts.BatchSize

	for batch := 0; batch*p.opts.BatchSize < total; batch++ {
		start := batch * p.opts.BatchSize
		end := start + p.opts.BatchSize
		if end > total {
			end = total
		}

		for _, invoiceNumber := range acc.headerOrder[start:end] {
			header := acc.headers[invoiceNumber]

			if reason := missingRequiredField(header); reason != "" {
				acc.addError(&parsererror.ReconcileError{
					Row:           header.row,
					InvoiceNumber: header.invoiceNumber,
					Reason:        reason,
				})
				p.logger.Debug("Dropping unreconcilable invoice",
					logging.Field{Key: logging.FieldInvoiceNumber, Value: header.invoiceNumber},
					logging.Field{Key: logging.FieldRow, Value: header.row})
				continue
			}

			items := acc.items[invoiceNumber]
			if items == nil {
				items = []models.InvoiceItem{}
			}

			invoices = append(invoices, models.Invoice{
				ID:            uuid.New().String(),
				CarrierType:   header.carrierType,
				CarrierNumber: header.carrierNumber,
				InvoiceDate:   header.invoiceDate,
				MerchantID:    header.merchantID,
				MerchantName:  header.merchantName,
				InvoiceNumber: header.invoiceNumber,
				TotalAmount:   header.totalAmount,
				Status:        header.status,
				Items:         items,
			})
		}

		if err := p.yield(ctx); err != nil {
			return nil, err
		}
		p.report(models.Progress{
			Percent: reconcileProgressFloor + reconcileProgressSpread*float64(batch+1)/float64(batches),
			Phase:   models.PhaseReconcile,
			Rows:    end,
		})
	}

	for i := range invoices {
		invoices[i].Items = dedupeItems(invoices[i].Items)
	}

	if total == 0 {
		p.report(models.Progress{Percent: 100, Phase: models.PhaseReconcile})
	}

	return invoices, nil
}

func missingRequiredField(h headerRecord) string {
	switch {
	case h.invoiceNumber == "":
		return "missing required field: invoice number"
	case h.invoiceDate.IsZero():
		return "missing required field: invoice date"
	case h.merchantName == "":
		return "missing required field: merchant name"
	}
	return ""
}

// dedupeItems collapses exact duplicate detail rows. The composite key is
// (invoiceNumber, itemName, amount); first occurrence wins.
func dedupeItems(items []models.InvoiceItem) []models.InvoiceItem {
	if len(items) < 2 {
		return items
	}

	seen := make(map[string]struct{}, len(items))
	deduped := items[:0]
	for _, item := range items {
		key := fmt.Sprintf("%s|%s|%s", item.InvoiceNumber, item.ItemName, item.Amount.String())
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, item)
	}
	return deduped
}
