package primes

import (
	"math/big"
	"slices"

	"lilrsa/internal/domain"
)

// DefaultTier is the tier used when the caller does not ask for one.
const DefaultTier = 64

type pair struct {
	p, q string
}

var table = map[int]pair{
	8: {
		p: "71113279",
		q: "98327129",
	},
	16: {
		p: "4056555933657341",
		q: "6724511755459679",
	},
	32: {
		p: "79307298401562156961148089405447",
		q: "30824043223426789498907784588361",
	},
	64: {
		p: "7102262139724624880661914991820000585426491086958693095823804547",
		q: "9624173466341420108973789000052858499246519294416603422050306371",
	},
	128: {
		p: "16597851732664653479832539660899561330259392364110018498996055891314649436595410983338022590661762428883019671437525654600861057",
		q: "26305498302333606880949544266347706296712431827799414362091494761777430020407232134152351823286246308962513557102167215124195273",
	},
	256: {
		p: "1494141398186731653850514987267408927569873751155410628462374810781689195252894947623071823909741383002264677034397536166343876340283991986185661247650812329538341475803424385956284593384660162773739760431285922187951996647131291980033184374696301250481281",
		q: "6906414688542351682351348704539988550153260283951024160479187151343342136778937789242493569107382338173944334435575451178720924585783852825022281979577396849283335836228286320731973604676992365450113566848563058793848424591430799085267913687835022417560673",
	},
}

// fallback is returned for any tier missing from table.
var fallback = pair{
	p: "87022637054203236686730522290129",
	q: "73945383878180463602657782738853",
}

// Table is the fixed lookup PrimeSource.
type Table struct{}

// New returns the fixed prime table.
func New() Table { return Table{} }

// SelectPrimes returns fresh copies of the pair registered for tier, or the
// fallback pair when tier is not recognised.
func (Table) SelectPrimes(tier int) (p, q *big.Int) {
	pr, ok := table[tier]
	if !ok {
		pr = fallback
	}
	return mustInt(pr.p), mustInt(pr.q)
}

// Tiers lists the recognised tiers in ascending order.
func Tiers() []int {
	out := make([]int, 0, len(table))
	for t := range table {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Known reports whether tier has its own entry in the table.
func Known(tier int) bool {
	_, ok := table[tier]
	return ok
}

func mustInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("primes: bad table entry " + s)
	}
	return n
}

// Compile-time assertion that Table implements domain.PrimeSource.
var _ domain.PrimeSource = Table{}
