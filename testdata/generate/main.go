// Generates the sample report pairs under testdata/: a BGN source file, a
// correctly converted EUR target, and a defective EUR target with seeded
// errors (a one-cent mismatch, a blank cell and a text cell) for exercising
// the verifier end to end.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/levcheck/verifier/internal/currency"
)

const sheet = "Sheet1"

var headers = []string{"Item", "Description", "Net Amount", "VAT", "Total"}

func main() {
	rng := rand.New(rand.NewSource(42))
	baseDir := findTestdataDir()

	converter := currency.Default()

	const rowCount = 40

	type row struct {
		item, desc      string
		net, vat, total decimal.Decimal
	}

	rows := make([]row, rowCount)
	for i := range rows {
		// Net amount between 1.00 and 5000.00 BGN, exact cents.
		netCents := 100 + rng.Int63n(499_901)
		net := decimal.New(netCents, -2)
		vat := net.Mul(decimal.New(20, -2)).Round(2)
		rows[i] = row{
			item:  fmt.Sprintf("POS-%03d", i+1),
			desc:  fmt.Sprintf("Line item %d", i+1),
			net:   net,
			vat:   vat,
			total: net.Add(vat),
		}
	}

	writeFile := func(name string, eur bool, corrupt bool) {
		f := excelize.NewFile()
		defer f.Close()

		for c, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(c+1, 1)
			_ = f.SetCellValue(sheet, cell, h)
		}

		for i, r := range rows {
			amounts := []decimal.Decimal{r.net, r.vat, r.total}
			if eur {
				for j, a := range amounts {
					amounts[j] = converter.BGNToEUR(a)
				}
			}

			values := []string{r.item, r.desc,
				amounts[0].StringFixed(2), amounts[1].StringFixed(2), amounts[2].StringFixed(2)}

			if corrupt {
				switch i {
				case 4: // off by one cent
					values[4] = amounts[2].Add(decimal.New(1, -2)).StringFixed(2)
				case 11: // formula that did not propagate
					values[3] = ""
				case 23: // stray label in an amount column
					values[2] = "n/a"
				}
			}

			for c, v := range values {
				cell, _ := excelize.CoordinatesToCellName(c+1, i+2)
				_ = f.SetCellValue(sheet, cell, v)
			}
		}

		path := filepath.Join(baseDir, name)
		if err := f.SaveAs(path); err != nil {
			log.Fatalf("save %s: %v", path, err)
		}
		log.Printf("wrote %s (%d data rows)", path, rowCount)
	}

	writeFile("source_bgn.xlsx", false, false)
	writeFile("target_eur.xlsx", true, false)
	writeFile("target_eur_defective.xlsx", true, true)
}

// findTestdataDir resolves the testdata directory whether the generator
// runs from the repo root or from testdata/generate.
func findTestdataDir() string {
	for _, c := range []string{"testdata", ".."} {
		abs, err := filepath.Abs(c)
		if err != nil {
			continue
		}
		if st, err := os.Stat(c); err == nil && st.IsDir() && filepath.Base(abs) == "testdata" {
			return c
		}
	}
	log.Fatal("could not locate the testdata directory; run from the repo root")
	return ""
}
