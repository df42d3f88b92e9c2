package bankxterm

import (
	"io"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// BalanceSlip is a point-in-time summary of a single account. It carries no
// transaction history.
type BalanceSlip struct {
	AcctID   snowflake.ID
	Kind     AccountKind
	Balance  decimal.Decimal
	Floor    decimal.Decimal
	IssuedAt time.Time
}

func WriteBalanceSlip(w io.Writer, slip BalanceSlip) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetTitle(slip.Kind.Title()+" Account Balance Slip", false)
	pdf.SetCreationDate(slip.IssuedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Balance Slip", "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Account", slip.Kind.Title()},
		{"Account ID", slip.AcctID.String()},
		{"Balance", slip.Balance.StringFixed(2)},
		{"Minimum balance", slip.Floor.StringFixed(2)},
		{"Issued", slip.IssuedAt.Format(time.RFC1123)},
	}
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, r[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, r[1], "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
