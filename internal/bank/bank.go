// Package bank defines the set of supported statement formats and the
// contract every format parser implements.
package bank

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/smartfin/statement-importer/internal/category"
	"github.com/smartfin/statement-importer/internal/types"
)

// ID identifies a supported bank statement format. The set is closed: an ID
// only ever comes out of ParseID or one of the constants below, so code
// holding an ID never needs to handle an unknown bank.
type ID string

const (
	Sberbank ID = "sberbank"
	Tinkoff  ID = "tinkoff"
	VTB      ID = "vtb"
	Yandex   ID = "yandex"
)

// ErrUnknownBank is returned by ParseID for an identifier outside the
// supported set. It is the only error that aborts an import before the
// document is read.
var ErrUnknownBank = errors.New("unknown bank")

// ParseID converts a user-supplied bank identifier to an ID,
// case-insensitively.
func ParseID(name string) (ID, error) {
	switch ID(strings.ToLower(strings.TrimSpace(name))) {
	case Sberbank:
		return Sberbank, nil
	case Tinkoff:
		return Tinkoff, nil
	case VTB:
		return VTB, nil
	case Yandex:
		return Yandex, nil
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownBank, name, strings.Join(IDs(), ", "))
}

// IDs returns the supported bank identifiers.
func IDs() []string {
	return []string{string(Sberbank), string(Tinkoff), string(VTB), string(Yandex)}
}

// Parser parses one bank's statement layout into transaction candidates.
//
// Parse never fails: lines that match no pattern are skipped and the
// returned sequence is finite, lazy and preserves document order. It is
// meant to be consumed exactly once per import.
type Parser interface {
	// Name returns the bank identifier this parser handles.
	Name() string

	// Parse scans the statement lines and yields candidates in order.
	Parse(lines []types.RawLine) iter.Seq[types.Candidate]

	// Categories returns the bank's static category label mapping.
	Categories() category.Mapping
}
