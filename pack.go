package quoteit

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// PackVendorRow is one vendor-contacted line of the pack.
type PackVendorRow struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// Pack is the printable three-quotes compliance summary. now is passed in so
// two builds over the same state at the same instant are identical.
type Pack struct {
	Org              string          `json:"org"`
	PreparedBy       string          `json:"preparedBy"`
	Date             string          `json:"date"`
	Reference        string          `json:"reference"`
	GeneratedAt      string          `json:"generatedAt"`
	Request          RequestRecord   `json:"request"`
	Vendors          []PackVendorRow `json:"vendors"`
	Quotes           []QuoteRow      `json:"quotes"`
	SelectedVendorID string          `json:"selectedVendorId"`
	SelectedVendor   string          `json:"selectedVendor"`
	Justification    string          `json:"justification"`
}

// BuildPack assembles the compliance pack from the session state: request
// summary, named vendors contacted, amount-sorted quote comparison and the
// justified selection.
func BuildPack(profile Profile, s Session, now time.Time) Pack {
	org := profile.Org
	if org == "" {
		org = "ToolStack"
	}
	prepared := profile.User
	if prepared == "" {
		prepared = s.RFQ.SignatureName
	}
	if prepared == "" {
		prepared = "-"
	}

	vendors := []PackVendorRow{}
	for _, v := range s.Vendors {
		if Normalize(v.Name) == "" {
			continue
		}
		vendors = append(vendors, PackVendorRow{
			Name:    v.Name,
			Email:   v.Email,
			Phone:   v.Phone,
			Website: v.Website,
		})
	}

	selected := "Not selected"
	if id := s.Compliance.SelectedVendorID; id != "" {
		selected = "-"
		if v, ok := s.VendorByID(id); ok {
			selected = v.Name
		}
	}

	return Pack{
		Org:              org,
		PreparedBy:       prepared,
		Date:             now.UTC().Format("2006-01-02"),
		Reference:        s.Request.Reference,
		GeneratedAt:      now.UTC().Format("2006-01-02 15:04:05"),
		Request:          s.Request,
		Vendors:          vendors,
		Quotes:           QuoteRows(s),
		SelectedVendorID: s.Compliance.SelectedVendorID,
		SelectedVendor:   selected,
		Justification:    s.Compliance.Justification,
	}
}

// WritePackXLSX renders the pack as a workbook: a summary sheet plus the
// vendors-contacted and quotes-comparison tables.
func WritePackXLSX(w io.Writer, p Pack) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("pack header style: %w", err)
	}

	orDash := func(s string) string {
		if Normalize(s) == "" {
			return "-"
		}
		return s
	}

	summary := [][]string{
		{"Organization", p.Org},
		{"Prepared by", p.PreparedBy},
		{"Date", p.Date},
		{"Reference", orDash(p.Reference)},
		{"Generated", p.GeneratedAt},
		{"Title", orDash(p.Request.Title)},
		{"Category", orDash(p.Request.Category)},
		{"Needed by", orDash(p.Request.NeededBy)},
		{"Delivery to", orDash(p.Request.DeliveryTo)},
		{"Specification / items", orDash(p.Request.Spec)},
		{"Notes", orDash(p.Request.Notes)},
		{"Selected vendor", p.SelectedVendor},
		{"Justification", orDash(p.Justification)},
	}
	if err := writeSheet(f, headerStyle, "Summary", []string{"Field", "Value"}, summary); err != nil {
		return err
	}

	var vendorRows [][]string
	for _, v := range p.Vendors {
		vendorRows = append(vendorRows, []string{v.Name, orDash(v.Email), orDash(v.Phone), orDash(v.Website)})
	}
	if err := writeSheet(f, headerStyle, "Vendors", []string{"Vendor", "Email", "Phone", "Website"}, vendorRows); err != nil {
		return err
	}

	var quoteRows [][]string
	for _, q := range p.Quotes {
		sel := ""
		if p.SelectedVendorID != "" && q.VendorID == p.SelectedVendorID {
			sel = "X"
		}
		quoteRows = append(quoteRows, []string{
			sel, q.VendorName, FormatMoney(q.Amount),
			orDash(q.LeadTime), orDash(q.Validity), orDash(q.PaymentTerms), orDash(q.Proof),
		})
	}
	if err := writeSheet(f, headerStyle, "Quotes",
		[]string{"Selected", "Vendor", "Amount", "Lead time", "Validity", "Payment terms", "Proof"}, quoteRows); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write pack workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, headerStyle int, sheetName string, headers []string, data [][]string) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetName, err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}
	return nil
}
