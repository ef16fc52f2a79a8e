package importer

import (
	"fmt"

	"github.com/smartfin/statement-importer/internal/bank"
	"github.com/smartfin/statement-importer/internal/bank/sber"
	"github.com/smartfin/statement-importer/internal/bank/tinkoff"
	"github.com/smartfin/statement-importer/internal/bank/vtb"
	"github.com/smartfin/statement-importer/internal/bank/yandex"
)

// parserFor maps every bank ID to its parser. The ID set is closed, so the
// mapping is total for any ID produced by bank.ParseID.
func parserFor(id bank.ID) bank.Parser {
	switch id {
	case bank.Sberbank:
		return sber.New()
	case bank.Tinkoff:
		return tinkoff.New()
	case bank.VTB:
		return vtb.New()
	case bank.Yandex:
		return yandex.New()
	}
	panic(fmt.Sprintf("no parser for bank %q", id))
}
