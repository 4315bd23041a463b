package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"day",
		"deliveries",
		"demand",
		"perceived_sales",
		"desired_inventory",
		"discrepancy",
		"order",
		"inventory_start",
		"inventory_end",
		"trend",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Deliveries),
			strconv.Itoa(r.Demand),
			fmtFloat(r.PerceivedSales),
			fmtFloat(r.DesiredInventory),
			fmtFloat(r.Discrepancy),
			strconv.Itoa(r.Order),
			strconv.Itoa(r.InventoryStart),
			strconv.Itoa(r.InventoryEnd),
			string(r.Trend),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}
