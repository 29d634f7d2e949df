package tickreport

import "fmt"

// A DiffReport ranks the price movement of every comparable ticker between
// the two newest revisions of the history source.
type DiffReport struct {
	RunID    string
	Stamp    string // generation time, stampLayout format
	Previous Revision
	Current  Revision
	Total    int            // tickers with two comparable observations
	Records  []ChangeRecord // sorted by descending absolute percent change
}

// NewDiffReport compares every tracked ticker file between the two newest
// revisions.
//
// It fails with ErrNotEnoughRevisions when the history holds fewer than two
// revisions, and ErrNoTickerFiles when the universe is empty. A ticker that
// cannot produce two priced observations is silently excluded from the
// records, per the missing-data policy.
func (u *Universe) NewDiffReport() (*DiffReport, error) {
	revisions, err := u.src.Revisions(DiffSample)
	if err != nil {
		return nil, fmt.Errorf("cannot read revisions: %w", err)
	}
	if len(revisions) < DiffSample {
		return nil, ErrNotEnoughRevisions
	}
	current, previous := revisions[0], revisions[1]

	files, err := u.Files()
	if err != nil {
		return nil, err
	}

	report := &DiffReport{
		RunID:    newRunID(),
		Stamp:    Now().Format(stampLayout),
		Previous: previous,
		Current:  current,
	}
	for _, file := range files {
		obs := u.observations(file, revisions)
		change, ok := ChangeOf(obs[1], obs[0])
		if !ok {
			continue
		}
		report.Records = append(report.Records, ChangeRecord{
			Ticker:        TickerOf(file),
			PreviousPrice: obs[1].Price,
			CurrentPrice:  obs[0].Price,
			Change:        change.Absolute,
			Percent:       change.Percent,
			PreviousTime:  obs[1].Timestamp,
			CurrentTime:   obs[0].Timestamp,
		})
	}
	report.Total = len(report.Records)
	sortByMagnitude(report.Records)
	return report, nil
}

// Gainers returns the records with a positive percent change, biggest
// mover first.
func (r *DiffReport) Gainers() []ChangeRecord { return r.filter(func(p Percent) bool { return p > 0 }) }

// Losers returns the records with a negative percent change, biggest mover
// first.
func (r *DiffReport) Losers() []ChangeRecord { return r.filter(func(p Percent) bool { return p < 0 }) }

// Unchanged returns the records with a zero percent change, including the
// zero-baseline ones.
func (r *DiffReport) Unchanged() []ChangeRecord {
	return r.filter(func(p Percent) bool { return p == 0 })
}

func (r *DiffReport) filter(keep func(Percent) bool) []ChangeRecord {
	var records []ChangeRecord
	for _, rec := range r.Records {
		if keep(rec.Percent) {
			records = append(records, rec)
		}
	}
	return records
}

// Top returns up to the n biggest movers.
func (r *DiffReport) Top(n int) []ChangeRecord {
	if n > len(r.Records) {
		n = len(r.Records)
	}
	return r.Records[:n]
}
