package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteSummariesCSV writes sales summary rows as CSV
func WriteSummariesCSV(w io.Writer, summaries []SalesSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "transactions", "refunded", "subtotal", "discount", "tax", "total"}); err != nil {
		return err
	}
	for _, s := range summaries {
		record := []string{
			s.Date,
			strconv.Itoa(s.TransactionCount),
			strconv.Itoa(s.RefundedCount),
			s.Subtotal.StringFixed(4),
			s.DiscountAmount.StringFixed(4),
			s.TaxAmount.StringFixed(4),
			s.TotalAmount.StringFixed(4),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTopProductsCSV writes top-seller rows as CSV
func WriteTopProductsCSV(w io.Writer, rows []TopProduct) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "name", "quantity_sold", "revenue"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.ProductCode,
			r.ProductName,
			strconv.Itoa(r.QuantitySold),
			r.Revenue.StringFixed(4),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteValuationCSV writes the stock valuation as CSV, with a totals
// row at the end
func WriteValuationCSV(w io.Writer, valuation *StockValuation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "name", "quantity", "cost_price", "unit_price", "cost_value", "retail_value"}); err != nil {
		return err
	}
	for _, r := range valuation.Rows {
		record := []string{
			r.ProductCode,
			r.ProductName,
			strconv.Itoa(r.Quantity),
			r.CostPrice.StringFixed(4),
			r.UnitPrice.StringFixed(4),
			r.CostValue.StringFixed(4),
			r.RetailValue.StringFixed(4),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	totals := []string{"TOTAL", "", "", "", "",
		valuation.TotalCostValue.StringFixed(4),
		valuation.TotalRetailValue.StringFixed(4),
	}
	if err := cw.Write(totals); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteStockAlertsCSV writes low-stock or expiring rows as CSV
func WriteStockAlertsCSV(w io.Writer, rows []StockAlertRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "name", "quantity", "min_stock", "expiry_date"}); err != nil {
		return err
	}
	for _, r := range rows {
		expiry := ""
		if r.ExpiryDate != nil {
			expiry = r.ExpiryDate.Format("2006-01-02")
		}
		record := []string{
			r.ProductCode,
			r.ProductName,
			strconv.Itoa(r.Quantity),
			strconv.Itoa(r.MinStock),
			expiry,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
