package contagiongo

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Pair is an unordered contact between two agents at a given timestamp.
type Pair struct {
	I, J int
}

// ContactLog is the immutable, precomputed view of a proximity contact
// trace that the simulation driver consumes (spec.md §4.3, C3). It is
// read-only and may be shared by reference across sweep replicate
// workers within one process (spec.md §5).
type ContactLog struct {
	ContactsAt      map[int][]Pair
	IDs             map[int]bool
	FirstAppearance map[int]int
	Tmax            int
}

// IDList returns the set of known ids as a slice, suitable for
// RNG.ChoiceInt.
func (cl *ContactLog) IDList() []int {
	ids := make([]int, 0, len(cl.IDs))
	for id := range cl.IDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// computeFirstAppearance derives FirstAppearance by scanning contacts in
// ascending time order, per spec.md §4.8 step 2 ("if first_appearance is
// not provided, derive it by scanning contacts in ascending time order").
func (cl *ContactLog) computeFirstAppearance() {
	cl.FirstAppearance = make(map[int]int, len(cl.IDs))
	times := make([]int, 0, len(cl.ContactsAt))
	for t := range cl.ContactsAt {
		times = append(times, t)
	}
	sort.Ints(times)
	for _, t := range times {
		for _, pair := range cl.ContactsAt[t] {
			if _, ok := cl.FirstAppearance[pair.I]; !ok {
				cl.FirstAppearance[pair.I] = t
			}
			if _, ok := cl.FirstAppearance[pair.J]; !ok {
				cl.FirstAppearance[pair.J] = t
			}
		}
		if len(cl.FirstAppearance) == len(cl.IDs) {
			break
		}
	}
}

// LoadContactLog reads the contact-log CSV described in spec.md §6:
// one header line, then rows of timestamp_s, id_i, id_j, rssi. Rows with
// id_j < 0 are dropped; malformed rows are skipped (spec.md §7, "input
// malformed: skip the row silently"). An empty result is a fatal
// configuration error.
func LoadContactLog(path string) (*ContactLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening contact log %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	cl := &ContactLog{
		ContactsAt: make(map[int][]Pair),
		IDs:        make(map[int]bool),
	}

	if _, err := r.Read(); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "reading header of %s", path)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip and continue (spec.md §7).
			continue
		}
		timestamp, idI, idJ, ok := parseContactRow(record)
		if !ok || idJ < 0 {
			continue
		}
		cl.ContactsAt[timestamp] = append(cl.ContactsAt[timestamp], Pair{I: idI, J: idJ})
		cl.IDs[idI] = true
		cl.IDs[idJ] = true
		if timestamp > cl.Tmax {
			cl.Tmax = timestamp
		}
	}

	if len(cl.ContactsAt) == 0 || len(cl.IDs) == 0 {
		return nil, errors.Errorf(EmptyContactLogError, path)
	}

	cl.computeFirstAppearance()
	return cl, nil
}

// parseContactRow parses a single CSV record into (timestamp, id_i,
// id_j). RSSI (record[3]) is read but discarded, per spec.md §4.3.
func parseContactRow(record []string) (timestamp, idI, idJ int, ok bool) {
	if len(record) < 4 {
		return 0, 0, 0, false
	}
	var err error
	if timestamp, err = atoiTrim(record[0]); err != nil {
		return 0, 0, 0, false
	}
	if idI, err = atoiTrim(record[1]); err != nil {
		return 0, 0, 0, false
	}
	if idJ, err = atoiTrim(record[2]); err != nil {
		return 0, 0, 0, false
	}
	return timestamp, idI, idJ, true
}
