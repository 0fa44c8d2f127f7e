// Package source reads the XML data files that feed a projection run:
// current balance, monthly fixed costs, income entries, and spending
// scenarios. Structural and range errors are caught here so the
// forecast engine only ever sees validated inputs.
package source

import (
	"encoding/xml"
	"fmt"
	"time"

	"valvelet/internal/model"
)

// Data file names expected inside the data directory.
const (
	BalanceFile    = "balance.xml"
	FixedCostsFile = "fixed_costs.xml"
	IncomeFile     = "income.xml"
	ScenariosFile  = "scenarios.xml"
)

// Inputs bundles everything a comparison run needs.
type Inputs struct {
	Snapshot     model.Snapshot
	FixedMonthly float64
	Incomes      []model.IncomeEntry
	Scenarios    []model.Scenario
}

// isoDate unmarshals YYYY-MM-DD strings from elements and attributes.
type isoDate struct {
	time.Time
}

func (d *isoDate) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := dec.DecodeElement(&s, &start); err != nil {
		return err
	}
	return d.set(s)
}

func (d *isoDate) UnmarshalXMLAttr(attr xml.Attr) error {
	return d.set(attr.Value)
}

func (d *isoDate) set(s string) error {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// Raw XML shapes. Frequency stays a free-form string here; the model
// layer maps it to a typed value and unrecognized spellings are not a
// loading error.

type balanceDoc struct {
	XMLName xml.Name       `xml:"balance"`
	Current balanceCurrent `xml:"current"`
}

type balanceCurrent struct {
	// chardata only decodes into string; parsed in LoadBalance.
	Amount string  `xml:",chardata"`
	AsOf   isoDate `xml:"as-of,attr"`
}

type costsDoc struct {
	XMLName xml.Name   `xml:"costs"`
	Costs   []costItem `xml:"cost"`
}

type costItem struct {
	Name   string  `xml:"name"`
	Amount float64 `xml:"amount"`
}

type incomeDoc struct {
	XMLName xml.Name      `xml:"income"`
	Entries []incomeEntry `xml:"entry"`
}

type incomeEntry struct {
	Frequency string   `xml:"frequency,attr"`
	Source    string   `xml:"source"`
	Amount    float64  `xml:"amount"`
	From      isoDate  `xml:"from"`
	To        *isoDate `xml:"to"`
}

type scenariosDoc struct {
	XMLName   xml.Name      `xml:"scenarios"`
	Scenarios []scenarioDef `xml:"scenario"`
}

type scenarioDef struct {
	Name       string        `xml:"name"`
	Activities []activityDef `xml:"activity"`
}

type activityDef struct {
	Name        string  `xml:"name"`
	Cost        float64 `xml:"cost"`
	DaysPerWeek float64 `xml:"days-per-week"`
}
