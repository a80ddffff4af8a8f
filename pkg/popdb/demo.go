package popdb

import (
	"context"
)

// Default postal codes compared by RunDemo.
const (
	DemoFrom = "10186"
	DemoTo   = "10852"
)

// DemoResult holds both lookups of a demo run and their difference.
type DemoResult struct {
	From, To       string
	FromPop, ToPop uint32
	Diff           uint32
}

// Difference returns to - from in uint32 arithmetic. When to is smaller the
// result wraps modulo 2^32, so Difference(1, 0) is 4294967295.
func Difference(from, to uint32) uint32 {
	return to - from
}

// RunDemo performs the create, insert, query, query, destroy sequence on a
// fresh Database and reports the difference of the two populations.
func RunDemo(ctx context.Context, lib *Library, from, to string) (DemoResult, error) {
	res := DemoResult{From: from, To: to}
	err := WithDatabase(ctx, lib, func(db *Database) error {
		if err := db.Insert(ctx); err != nil {
			return err
		}
		var err error
		if res.FromPop, err = db.Query(ctx, from); err != nil {
			return err
		}
		if res.ToPop, err = db.Query(ctx, to); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return DemoResult{}, err
	}
	res.Diff = Difference(res.FromPop, res.ToPop)
	lib.logger.Info(ctx, "demo finished", "from", from, "to", to, "diff", res.Diff)
	return res, nil
}
