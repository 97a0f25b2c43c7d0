// Package statement renders account statements as spreadsheets.
package statement

import (
	"fmt"
	"io"
	"time"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the only sheet in an exported workbook
const SheetName = "Statement"

// ContentType is the MIME type of an exported workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	timestampLayout = "2006-01-02 15:04:05"
	tableHeaderRow  = 8
	moneyFormat     = 4 // #,##0.00
)

var tableHeader = []any{"ID", "Timestamp", "Type", "Amount", "Balance After", "Description", "Reference"}

// WriteXLSX writes a one-sheet workbook with the customer's account details
// followed by txns, oldest first.
func WriteXLSX(w io.Writer, customer models.CustomerSnapshot, txns []models.Transaction) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := writeHeader(f, styles, customer); err != nil {
		return err
	}
	if err := writeTransactions(f, styles, txns); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetName, "A", "A", 14); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "E", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "F", "G", 40); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	bold  int
	money int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("create style: %w", err)
	}
	return sheetStyles{bold: bold, money: money}, nil
}

func writeHeader(f *excelize.File, styles sheetStyles, customer models.CustomerSnapshot) error {
	account := customer.Account
	rows := [][]any{
		{"Account Statement"},
		{"Customer", customer.Name, "Customer ID", customer.ID},
		{"Account", account.Number},
		{"IFSC", account.IFSC},
		{"Type", account.Type.DisplayName()},
		{"Balance", account.Balance.InexactFloat64()},
	}

	for i, row := range rows {
		if err := setRow(f, i+1, row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(SheetName, "A1", "A6", styles.bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return f.SetCellStyle(SheetName, "B6", "B6", styles.money)
}

func writeTransactions(f *excelize.File, styles sheetStyles, txns []models.Transaction) error {
	if err := setRow(f, tableHeaderRow, tableHeader); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(tableHeader), tableHeaderRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A8", last, styles.bold); err != nil {
		return fmt.Errorf("style table header: %w", err)
	}

	for i, txn := range txns {
		values := []any{
			txn.ID,
			txn.Timestamp.Format(timestampLayout),
			txn.Type.DisplayName(),
			txn.Amount.InexactFloat64(),
			txn.BalanceAfter.InexactFloat64(),
			txn.Description,
		}
		if txn.ReferenceID != nil {
			values = append(values, txn.ReferenceID.String())
		}

		if err := setRow(f, tableHeaderRow+1+i, values); err != nil {
			return err
		}
	}

	if len(txns) == 0 {
		return nil
	}

	first, _ := excelize.CoordinatesToCellName(4, tableHeaderRow+1)
	end, _ := excelize.CoordinatesToCellName(5, tableHeaderRow+len(txns))
	return f.SetCellStyle(SheetName, first, end, styles.money)
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

// Filename returns the download name for a statement generated at.
func Filename(accountNumber int64, at time.Time) string {
	return fmt.Sprintf("statement-%d-%s.xlsx", accountNumber, at.Format("20060102"))
}
